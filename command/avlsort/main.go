// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "numeric", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
		{Long: "remove", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not read any items
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	processing := processOptions{
		numeric: len(options["numeric"]) > 0,
		tree:    len(options["tree"]) > 0,
		check:   len(options["check"]) > 0,
		verbose: len(options["verbose"]) > 0,
		remove:  options["remove"],
	}

	// logging is only enabled by a configuration file
	var log *logger.L
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile := options["config-file"][0]
		theConfiguration, err := getConfiguration(configurationFile)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}

		// start logging
		if err = logger.Initialise(theConfiguration.Logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()

		if err = fault.Initialise(); nil != err {
			exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
		}
		defer fault.Finalise()

		mainLog := logger.New("main")
		defer mainLog.Info("finished")
		mainLog.Info("starting…")
		mainLog.Infof("version: %s", version)
		mainLog.Debugf("theConfiguration: %v", theConfiguration)

		// configuration provides defaults, command line options add to them
		processing.numeric = processing.numeric || theConfiguration.Numeric
		processing.tree = processing.tree || theConfiguration.Tree
		processing.remove = append(theConfiguration.Remove, processing.remove...)

		log = logger.New("avl")
	default:
		exitwithstatus.Message("%s: %s, %d were detected", program, fault.ErrMultipleConfigFiles, len(options["config-file"]))
	}

	items, err := readAll(arguments)
	if nil != err {
		exitwithstatus.Message("%s: read error: %s", program, err)
	}

	if err := process(os.Stdout, os.Stderr, log, items, processing); nil != err {
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}

// read items from each named file in turn, or from stdin if there are
// no names
func readAll(fileNames []string) ([]string, error) {
	if 0 == len(fileNames) {
		return readLines(os.Stdin)
	}

	items := []string{}
	for _, name := range fileNames {
		lines, err := readFile(name)
		if nil != err {
			return nil, err
		}
		items = append(items, lines...)
	}
	return items, nil
}

func readFile(name string) ([]string, error) {
	if "-" == name {
		return readLines(os.Stdin)
	}
	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return readLines(f)
}
