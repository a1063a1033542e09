// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

// setup command handler
//
// commands that do not read any items or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [options] [FILE...]\n", program)
		fmt.Printf("\n")
		fmt.Printf("read items one per line from each FILE, or stdin if none,\n")
		fmt.Printf("and write the distinct items in ascending order\n")
		fmt.Printf("\n")
		fmt.Printf("options:\n\n")
		fmt.Printf("  --numeric                  (-n)     - items are signed integers\n")
		fmt.Printf("  --remove=ITEM              (-r)     - remove ITEM after loading, may be repeated\n")
		fmt.Printf("  --tree                     (-t)     - print the balanced tree instead of the items\n")
		fmt.Printf("  --check                    (-k)     - verify the tree and exit non-zero if inconsistent\n")
		fmt.Printf("\n")
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n")
		fmt.Printf("  version                    (v)      - display version sting\n")
		fmt.Printf("\n")
		return true

	default:
		return false
	}
}
