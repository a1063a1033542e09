// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// The file must return a single table, which is mapped onto the
// fields of a structure using their "gluamapper" tags.  Fields absent
// from the table keep the values already in the structure, so the
// caller can fill in defaults before parsing.
package configuration
