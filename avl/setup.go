// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"reflect"

	"github.com/bitmark-inc/logger"
)

// CompareFunc - ordering of two items: negative if a < b, zero if
// equal and positive if a > b
type CompareFunc[T any] func(a, b T) int

// Item - a self ordering item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Set - type to hold the root node of a tree and its membership index
type Set[T comparable] struct {
	root    *Node[T]
	count   int
	index   map[T]struct{}
	compare CompareFunc[T]
	log     *logger.L
}

// New - create a set of naturally ordered items, filled from the
// optional initial items
//
// log may be nil to disable logging
func New[T cmp.Ordered](log *logger.L, items ...T) *Set[T] {
	return NewFunc[T](cmp.Compare[T], log, items...)
}

// NewFunc - create a set ordered by a compare function, filled from
// the optional initial items
func NewFunc[T comparable](compare CompareFunc[T], log *logger.L, items ...T) *Set[T] {
	set := &Set[T]{
		root:    nil,
		count:   0,
		index:   make(map[T]struct{}),
		compare: compare,
		log:     log,
	}
	for _, item := range items {
		set.Add(item)
	}
	return set
}

// NewItemSet - create a set of items that order themselves
func NewItemSet(log *logger.L, items ...Item) *Set[Item] {
	return NewFunc[Item](compareItems, log, items...)
}

func compareItems(a, b Item) int {
	return a.Compare(b)
}

// IsEmpty - true if set contains no data
func (set *Set[T]) IsEmpty() bool {
	return nil == set.root
}

// Size - number of distinct items currently in the set
func (set *Set[T]) Size() int {
	return set.count
}

// Contains - true if the item was added and not removed since
func (set *Set[T]) Contains(item T) bool {
	if isMissing(item) {
		return false
	}
	_, ok := set.index[item]
	return ok
}

// Root - return the root node of the tree
func (set *Set[T]) Root() *Node[T] {
	return set.root
}

// Height - height of the whole tree, -1 if empty
func (set *Set[T]) Height() int {
	return height(set.root)
}

// Clear - remove all items
func (set *Set[T]) Clear() {
	set.root = nil
	set.count = 0
	set.index = make(map[T]struct{})
}

// internal: true for nil items and for items that are not equal to
// themselves (floating point NaN) and so cannot be indexed
func isMissing[T comparable](item T) bool {
	if item != item {
		return true
	}
	v := reflect.ValueOf(&item).Elem()
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		v = v.Elem()
		switch v.Kind() {
		case reflect.Ptr, reflect.Chan:
			return v.IsNil()
		}
	case reflect.Ptr, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (set *Set[T]) debugf(format string, arguments ...interface{}) {
	if nil != set.log {
		set.log.Debugf(format, arguments...)
	}
}

func (set *Set[T]) tracef(format string, arguments ...interface{}) {
	if nil != set.log {
		set.log.Tracef(format, arguments...)
	}
}
