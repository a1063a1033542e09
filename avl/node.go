// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of an absent sub-tree
const absentHeight = -1

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	value  T        // item for ordering
	height int      // 0 for a leaf
}

// create a new leaf node
func newNode[T any](value T) *Node[T] {
	return &Node[T]{
		value:  value,
		height: 0,
	}
}

// internal: height of a possibly absent sub-tree
func height[T any](p *Node[T]) int {
	if nil == p {
		return absentHeight
	}
	return p.height
}

// internal: height computed from the children
func properHeight[T any](p *Node[T]) int {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}

// internal: store the correct height after the children changed
func (p *Node[T]) updateHeight() {
	p.height = properHeight(p)
}

// Value - read the item from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Height - stored height of a node, a leaf is zero
func (p *Node[T]) Height() int {
	return height(p)
}

// Left - left sub-tree or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node[T]) IsLeaf() bool {
	return nil == p.left && nil == p.right
}
