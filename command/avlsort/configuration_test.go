// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/fault"
)

func writeConfiguration(t *testing.T, directory string, content string) string {
	fileName := filepath.Join(directory, "avlsort.conf")
	if err := os.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	directory := t.TempDir()
	fileName := writeConfiguration(t, directory, `return {}`)

	c, err := getConfiguration(fileName)
	assert.NoError(t, err, "configuration")
	assert.Equal(t, filepath.Clean(directory), c.DataDirectory, "data directory")
	assert.False(t, c.Numeric, "numeric")
	assert.False(t, c.Tree, "tree")
	assert.Empty(t, c.Remove, "remove")
	assert.Equal(t, filepath.Join(directory, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.Equal(t, defaultLogCount, c.Logging.Count, "log count")

	info, err := os.Stat(c.Logging.Directory)
	assert.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetConfigurationOverrides(t *testing.T) {
	directory := t.TempDir()
	fileName := writeConfiguration(t, directory, `
return {
    numeric = true,
    tree = true,
    remove = { "3", "5" },
    logging = {
        directory = "logs",
        file = "sorted.log",
        levels = { main = "debug" },
    },
}
`)

	c, err := getConfiguration(fileName)
	assert.NoError(t, err, "configuration")
	assert.True(t, c.Numeric, "numeric")
	assert.True(t, c.Tree, "tree")
	assert.Equal(t, []string{"3", "5"}, c.Remove, "remove")
	assert.Equal(t, filepath.Join(directory, "logs"), c.Logging.Directory, "log directory")
	assert.Equal(t, "sorted.log", c.Logging.File, "log file")
	assert.Equal(t, "debug", c.Logging.Levels["main"], "log level")
}

func TestGetConfigurationErrors(t *testing.T) {
	directory := t.TempDir()

	_, err := getConfiguration(filepath.Join(directory, "absent.conf"))
	assert.Equal(t, fault.ErrConfigFileNotFound, err, "missing file")

	fileName := writeConfiguration(t, directory, `return { data_directory = "" }`)
	_, err = getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidDataDirectory, err, "blank data directory")

	fileName = writeConfiguration(t, directory, `return { data_directory = arg[0] }`)
	_, err = getConfiguration(fileName)
	assert.Equal(t, fault.ErrNotADirectory, err, "data directory is a file")

	fileName = writeConfiguration(t, directory, `return { logging = { file = "sub/x.log" } }`)
	_, err = getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidLogFileName, err, "log file with path")
}
