// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific item by walking the tree
//
// unlike Contains this does not use the membership index
func (set *Set[T]) Search(item T) *Node[T] {
	if isMissing(item) {
		return nil
	}
	p := set.root
	for nil != p {
		switch c := set.compare(p.value, item); {
		case c > 0: // p.value > item
			p = p.left
		case c < 0: // p.value < item
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// First - return the lowest item
func (set *Set[T]) First() (T, bool) {
	if p := set.root.first(); nil != p {
		return p.value, true
	}
	var none T
	return none, false
}

// Last - return the highest item
func (set *Set[T]) Last() (T, bool) {
	if p := set.root.last(); nil != p {
		return p.value, true
	}
	var none T
	return none, false
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
