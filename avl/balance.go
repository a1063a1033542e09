// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// internal: balance factor, positive when right branch is higher
func balanceFactor[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

// Balance - the balance factor of a node: height(right) - height(left)
func (p *Node[T]) Balance() int {
	return balanceFactor(p)
}

// single RR rotation
//
//	   p                 p1
//	  / \               /  \
//	 a   p1     →      p    c
//	    /  \          / \
//	   b    c        a   b
//
// returns the new sub-tree root
func (set *Set[T]) rotateLeft(p *Node[T]) *Node[T] {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("rotate left at: %v  error: %s", p.value, fault.ErrMissingPivot)
	}
	set.tracef("rotate left: %v  pivot: %v", p.value, p1.value)

	p.right = p1.left
	p1.left = p

	// p is now below p1 so must be done first
	p.updateHeight()
	p1.updateHeight()

	return p1
}

// single LL rotation, mirror of rotateLeft
//
// returns the new sub-tree root
func (set *Set[T]) rotateRight(p *Node[T]) *Node[T] {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("rotate right at: %v  error: %s", p.value, fault.ErrMissingPivot)
	}
	set.tracef("rotate right: %v  pivot: %v", p.value, p1.value)

	p.left = p1.right
	p1.right = p

	p.updateHeight()
	p1.updateHeight()

	return p1
}

// recompute the height of a node whose children may have changed and
// restore the AVL property at that node
//
// returns the possibly new sub-tree root
func (set *Set[T]) rebalance(p *Node[T]) *Node[T] {
	p.updateHeight()

	switch bf := balanceFactor(p); {
	case bf < -1: // left heavy
		if balanceFactor(p.left) > 0 {
			// double LR rotation
			p.left = set.rotateLeft(p.left)
		}
		return set.rotateRight(p)

	case bf > 1: // right heavy
		if balanceFactor(p.right) < 0 {
			// double RL rotation
			p.right = set.rotateRight(p.right)
		}
		return set.rotateLeft(p)

	default:
		return p
	}
}
