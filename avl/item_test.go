// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/avl/mocks"
	"github.com/bitmark-inc/logger"
)

func TestItemSetOrdersByCompare(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockItem(ctl)
	l := mocks.NewMockItem(ctl)

	// existing node is compared against the new item
	r.EXPECT().Compare(l).Return(1).Times(1)

	set := avl.NewItemSet(logger.New(category), r, l)

	assert.Equal(t, 2, set.Size(), "size")
	assert.Equal(t, avl.Item(r), set.Root().Value(), "root")
	assert.Equal(t, avl.Item(l), set.Root().Left().Value(), "left child")
	assert.Nil(t, set.Root().Right(), "no right child")
}

func TestItemSetContainsUsesIndexOnly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockItem(ctl)
	m.EXPECT().Compare(gomock.Any()).Times(0)

	set := avl.NewItemSet(nil, m)

	assert.True(t, set.Contains(m), "contains")
	assert.Equal(t, avl.Item(m), set.Add(m), "duplicate add")
	assert.Equal(t, 1, set.Size(), "size")
}

func TestItemSetRemoveAbsentDoesNotCompare(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockItem(ctl)
	absent := mocks.NewMockItem(ctl)
	m.EXPECT().Compare(gomock.Any()).Times(0)

	set := avl.NewItemSet(nil, m)
	set.Remove(absent)

	assert.Equal(t, 1, set.Size(), "size")
}

func TestItemSetComparisonFailurePropagates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockItem(ctl)
	other := mocks.NewMockItem(ctl)
	m.EXPECT().Compare(other).DoAndReturn(func(interface{}) int {
		panic("items are not orderable")
	}).Times(1)

	set := avl.NewItemSet(nil, m)

	assert.PanicsWithValue(t, "items are not orderable", func() {
		set.Add(other)
	})
	assert.Equal(t, 1, set.Size(), "size unchanged")
	assert.False(t, set.Contains(other), "not indexed")
}
