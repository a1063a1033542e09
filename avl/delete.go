// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the set
//
// a nil item, an item not in the set or an empty set are all no-ops
func (set *Set[T]) Remove(item T) {
	if isMissing(item) {
		set.debugf("remove: rejected item: %v", item)
		return
	}

	if _, ok := set.index[item]; !ok {
		return
	}

	removed := false
	set.root, removed = set.remove(set.root, item)
	delete(set.index, item)
	if removed {
		set.count -= 1
	} else {
		set.debugf("remove: item: %v  present in index but not in tree", item)
	}
}

// internal delete routine
//
// returns the possibly rotated sub-tree root and whether a node was
// unlinked
func (set *Set[T]) remove(p *Node[T], item T) (*Node[T], bool) {
	if nil == p { // item not in tree
		return nil, false
	}

	removed := false
	switch c := set.compare(p.value, item); {
	case c > 0: // p.value > item
		p.left, removed = set.remove(p.left, item)
	case c < 0: // p.value < item
		p.right, removed = set.remove(p.right, item)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: the in-order successor has no left child so
		// removing it from this sub-tree unlinks it directly
		successor := p.right.first().value
		q, removed := set.remove(p, successor)
		p.value = successor
		return q, removed
	}

	if !removed {
		return p, false
	}
	return set.rebalance(p), true
}
