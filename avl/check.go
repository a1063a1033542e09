// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify the ordering, heights and balance of every node and
// that the size and membership index agree with the tree
func (set *Set[T]) Check() error {
	n, err := set.check(set.root, nil, nil)
	if nil != err {
		return err
	}
	if n != set.count {
		set.debugf("check: nodes: %d  count: %d", n, set.count)
		return fault.ErrCountMismatch
	}
	if len(set.index) != set.count {
		set.debugf("check: index: %d  count: %d", len(set.index), set.count)
		return fault.ErrIndexMismatch
	}
	return nil
}

// internal: consistency checker, every value in the sub-tree must lie
// strictly between the low and high bounds when they are present
//
// returns the number of nodes in the sub-tree
func (set *Set[T]) check(p *Node[T], low *T, high *T) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && set.compare(*low, p.value) >= 0 {
		set.debugf("check: node: %v  not above: %v", p.value, *low)
		return 0, fault.ErrOrderViolation
	}
	if nil != high && set.compare(p.value, *high) >= 0 {
		set.debugf("check: node: %v  not below: %v", p.value, *high)
		return 0, fault.ErrOrderViolation
	}

	nl, err := set.check(p.left, low, &p.value)
	if nil != err {
		return 0, err
	}
	nr, err := set.check(p.right, &p.value, high)
	if nil != err {
		return 0, err
	}

	if p.height != properHeight(p) {
		set.debugf("check: node: %v  height: %d  expected: %d", p.value, p.height, properHeight(p))
		return 0, fault.ErrHeightMismatch
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		set.debugf("check: node: %v  balance: %d", p.value, bf)
		return 0, fault.ErrUnbalancedNode
	}
	if _, ok := set.index[p.value]; !ok {
		set.debugf("check: node: %v  missing from index", p.value)
		return 0, fault.ErrIndexMismatch
	}
	return 1 + nl + nr, nil
}
