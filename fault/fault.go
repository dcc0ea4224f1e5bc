// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCountMismatch         = ProcessError("node count does not match tree count")
	ErrFileNotFound          = NotFoundError("file not found")
	ErrHeightMismatch        = ProcessError("node height is inconsistent")
	ErrInvalidBathrooms      = InvalidError("bathrooms is invalid")
	ErrInvalidBedrooms       = InvalidError("bedrooms is invalid")
	ErrInvalidCity           = InvalidError("city is invalid")
	ErrInvalidDepartment     = InvalidError("department is invalid")
	ErrInvalidKeyArguments   = InvalidError("keys must be given as primary secondary pairs")
	ErrInvalidLatitude       = InvalidError("latitude is invalid")
	ErrInvalidLongitude      = InvalidError("longitude is invalid")
	ErrInvalidOperationType  = InvalidError("operation type is invalid")
	ErrInvalidPrice          = InvalidError("price is invalid")
	ErrInvalidPropertyType   = InvalidError("property type is invalid")
	ErrInvalidSpacing        = InvalidError("layout spacing is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidSurfaceCovered = InvalidError("surface covered is invalid")
	ErrInvalidSurfaceTotal   = InvalidError("surface total is invalid")
	ErrInvalidTieBreak       = InvalidError("tie break policy is invalid")
	ErrInvalidTitle          = InvalidError("title is invalid")
	ErrMissingColumn         = InvalidError("required column is missing")
	ErrMissingHeader         = InvalidError("header row is missing")
	ErrOutOfOrder            = ProcessError("keys are out of order")
	ErrUnbalanced            = ProcessError("node is unbalanced")
	ErrWatcherNotInitialised = ProcessError("watcher is not initialised")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
