// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert an item into the set
//
// returns the item, or the zero value if the item was rejected
// (nil, or not equal to itself so it could not be indexed)
func (set *Set[T]) Add(item T) T {
	if isMissing(item) {
		set.debugf("add: rejected item: %v", item)
		var none T
		return none
	}

	if _, ok := set.index[item]; ok {
		return item
	}

	added := false
	set.root, added = set.insert(set.root, item)
	if !added {
		// an equal item is already in the tree under a different
		// index key, so the compare function disagrees with ==
		set.debugf("add: item: %v  compares equal to an existing item", item)
		return item
	}
	set.index[item] = struct{}{}
	set.count += 1
	return item
}

// internal routine for insert
//
// returns the possibly rotated sub-tree root and whether a new node
// was created
func (set *Set[T]) insert(p *Node[T], item T) (*Node[T], bool) {
	if nil == p { // insert new node
		return newNode(item), true
	}

	added := false
	switch c := set.compare(p.value, item); {
	case c > 0: // p.value > item
		p.left, added = set.insert(p.left, item)
	case c < 0: // p.value < item
		p.right, added = set.insert(p.right, item)
	default:
		// already present, no structural change
		return p, false
	}
	return set.rebalance(p), added
}
