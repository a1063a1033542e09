// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrConfigFileNotFound     = NotFoundError("configuration file is not found")
	ErrCountMismatch          = RecordError("node count does not match set size")
	ErrHeightMismatch         = RecordError("stored node height is incorrect")
	ErrIndexMismatch          = RecordError("membership index does not match tree")
	ErrInvalidDataDirectory   = InvalidError("data directory is invalid")
	ErrInvalidLogFileName     = InvalidError("log file is not a plain name")
	ErrInvalidLoggerChannel   = ProcessError("invalid logger channel")
	ErrInvalidNumber          = InvalidError("item is not a valid number")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMissingPivot           = ProcessError("rotation pivot is missing")
	ErrMultipleConfigFiles    = InvalidError("only one configuration file is allowed")
	ErrNotADirectory          = InvalidError("path is not a directory")
	ErrOrderViolation         = RecordError("item ordering is violated")
	ErrUnbalancedNode         = RecordError("node balance factor is out of range")
	ErrUnexpectedConfigResult = ProcessError("configuration did not return a table")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
