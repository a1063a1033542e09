// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Iterator - ascending in-order traversal of a tree
//
// holds only the chain of ancestors still to be visited, so its size
// is bounded by the tree height
type Iterator[T any] struct {
	stack []*Node[T]
}

// Iterator - start a new ascending traversal from the current root
func (set *Set[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{
		stack: make([]*Node[T], 0, set.Height()+1),
	}
	it.pushLeft(set.root)
	return it
}

// Next - return the next highest item, or false if no more items
func (it *Iterator[T]) Next() (T, bool) {
	n := len(it.stack)
	if 0 == n {
		var none T
		return none, false
	}
	p := it.stack[n-1]
	it.stack[n-1] = nil
	it.stack = it.stack[:n-1]

	it.pushLeft(p.right)
	return p.value, true
}

// internal: descend the left spine of a sub-tree
func (it *Iterator[T]) pushLeft(p *Node[T]) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// All - ascending sequence of all items for use with range
func (set *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := set.Iterator()
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Items - all items in ascending order
func (set *Set[T]) Items() []T {
	items := make([]T, 0, set.count)
	for item := range set.All() {
		items = append(items, item)
	}
	return items
}
