// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// options controlling what is done with the loaded items
type processOptions struct {
	numeric bool
	tree    bool
	check   bool
	verbose bool
	remove  []string
}

// read items one per line, surrounding space is trimmed and blank
// lines are skipped
func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if "" == s {
			continue
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return lines, nil
}

// convert items to integers, the index of the first bad item is
// reported starting from one
func parseNumbers(items []string) ([]int64, error) {
	numbers := make([]int64, 0, len(items))
	for i, s := range items {
		n, err := strconv.ParseInt(s, 10, 64)
		if nil != err {
			return nil, fmt.Errorf("item: %d  value: %q  error: %w", i+1, s, fault.ErrInvalidNumber)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// build a set from the items and write the result
func process(w io.Writer, status io.Writer, log *logger.L, items []string, options processOptions) error {
	if !options.numeric {
		return output(w, status, log, avl.New(log, items...), options.remove, options)
	}

	numbers, err := parseNumbers(items)
	if nil != err {
		return err
	}
	remove, err := parseNumbers(options.remove)
	if nil != err {
		return err
	}
	return output(w, status, log, avl.New(log, numbers...), remove, options)
}

func output[T cmp.Ordered](w io.Writer, status io.Writer, log *logger.L, set *avl.Set[T], remove []T, options processOptions) error {
	for _, item := range remove {
		set.Remove(item)
	}

	if nil != log {
		log.Infof("items: %d  height: %d", set.Size(), set.Height())
	}
	if options.verbose {
		fmt.Fprintf(status, "items: %d\n", set.Size())
	}

	if options.check {
		if err := set.Check(); nil != err {
			return err
		}
	}

	if options.tree {
		set.Print(w)
		return nil
	}

	for item := range set.All() {
		if _, err := fmt.Fprintln(w, item); nil != err {
			return err
		}
	}
	return nil
}
