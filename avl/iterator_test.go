// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
)

func TestIteratorEmpty(t *testing.T) {
	set := avl.New[int](nil)

	it := set.Iterator()
	_, ok := it.Next()
	assert.False(t, ok, "empty iterator")

	n := 0
	for range set.All() {
		n += 1
	}
	assert.Equal(t, 0, n, "empty sequence")
	assert.Empty(t, set.Items(), "empty items")
}

func TestIteratorStepByStep(t *testing.T) {
	set := avl.New[string](nil, "m", "c", "x", "a", "e", "z")

	it := set.Iterator()
	for _, expected := range []string{"a", "c", "e", "m", "x", "z"} {
		item, ok := it.Next()
		assert.True(t, ok, "expected: %q", expected)
		assert.Equal(t, expected, item, "next item")
	}
	_, ok := it.Next()
	assert.False(t, ok, "exhausted")
	_, ok = it.Next()
	assert.False(t, ok, "stays exhausted")
}

func TestIteratorsAreIndependent(t *testing.T) {
	set := avl.New[int](nil, 3, 1, 4, 5, 9, 2, 6)

	a := set.Iterator()
	b := set.Iterator()

	a1, _ := a.Next()
	a2, _ := a.Next()
	b1, _ := b.Next()

	assert.Equal(t, 1, a1, "a first")
	assert.Equal(t, 2, a2, "a second")
	assert.Equal(t, 1, b1, "b starts from the beginning")
}

func TestSequenceIsRestartable(t *testing.T) {
	set := avl.New[int](nil, 10, 5, 15, 1, 7)

	seq := set.All()
	first := []int{}
	for item := range seq {
		first = append(first, item)
	}
	second := []int{}
	for item := range seq {
		second = append(second, item)
	}

	assert.Equal(t, []int{1, 5, 7, 10, 15}, first, "first pass")
	assert.Equal(t, first, second, "second pass")
}

func TestSequenceEarlyBreak(t *testing.T) {
	set := avl.New[int](nil)
	for i := 100; i > 0; i -= 1 {
		set.Add(i)
	}

	taken := []int{}
	for item := range set.All() {
		if item > 3 {
			break
		}
		taken = append(taken, item)
	}

	assert.Equal(t, []int{1, 2, 3}, taken, "prefix")
	assert.Equal(t, 100, set.Size(), "iteration is read only")
	assert.NoError(t, set.Check(), "consistency")
}

func TestIteratorAfterRemovals(t *testing.T) {
	set := avl.New[int](nil, 1, 2, 3, 4, 5, 6, 7, 8)
	for _, item := range []int{2, 4, 6, 8} {
		set.Remove(item)
	}

	assert.Equal(t, []int{1, 3, 5, 7}, set.Items(), "odd items remain")
}
