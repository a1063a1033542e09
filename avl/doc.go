// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered set held in an AVL height balanced tree
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores its own height, and an absent sub-tree counts as
// height -1, so a leaf is height 0.  Insert and delete are recursive
// and return the (possibly rotated) root of each sub-tree back up the
// call chain, rebalancing every node on the way.
//
// A separate membership index gives constant time containment checks
// and is kept consistent with the tree by Add and Remove.
//
// Iteration is ascending and lazy, using an explicit stack of
// ancestors so only O(height) state is held.  Modifying a set while an
// iterator over it is partially consumed is not supported.
package avl
