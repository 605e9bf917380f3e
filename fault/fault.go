// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrStatementAlreadyArchived = ExistsError("statement already archived")
	ErrDuplicateSource          = InvalidError("duplicate resolution entry source")
	ErrInvalidAddress           = InvalidError("invalid address")
	ErrInvalidAddressChecksum   = InvalidError("invalid address checksum")
	ErrInvalidArtifactType      = InvalidError("artifact is not valid for this receipt type")
	ErrInvalidConfiguration     = InvalidError("configuration file must return a table")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidDirectory         = InvalidError("invalid directory")
	ErrInvalidHeight            = InvalidError("invalid height")
	ErrInvalidHex               = InvalidError("invalid hexadecimal value")
	ErrInvalidMerklePath        = InvalidError("invalid merkle path")
	ErrInvalidNamespaceName     = InvalidError("invalid namespace name")
	ErrInvalidNetworkType       = InvalidError("invalid network type")
	ErrInvalidNumber            = InvalidError("invalid number")
	ErrInvalidPublicKey         = InvalidError("invalid public key")
	ErrInvalidReceipt           = InvalidError("receipt is missing")
	ErrInvalidReceiptType       = InvalidError("is not valid.")
	ErrInvalidResolvedType      = InvalidError("resolved value is not valid for this resolution entry type")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidUnresolvedType    = InvalidError("unresolved value is not valid for this resolution type")
	ErrMissingStatements        = InvalidError("statements are missing")
	ErrNetworkMismatch          = InvalidError("address network does not match")
	ErrResolutionTypeMismatch   = InvalidError("resolution type does not match resolution entry type")
	ErrInvalidAddressLength     = LengthError("invalid address length")
	ErrInvalidDigestLength      = LengthError("invalid digest length")
	ErrInvalidIdentifierLength  = LengthError("invalid identifier length")
	ErrNamespaceNameTooLong     = LengthError("namespace name too long")
	ErrNamespaceTooManyLevels   = LengthError("namespace has too many levels")
	ErrTrailingData             = LengthError("trailing data after record")
	ErrTruncatedRecord          = LengthError("truncated record")
	ErrStatementNotFound        = NotFoundError("statement not found")
	ErrNotInitialised           = ProcessError("not initialised")
	ErrRateLimiting             = ProcessError("rate limiting")
	ErrUnknownNetworkType       = RecordError("is not a valid network type")
	ErrUnknownReceiptType       = RecordError("is not a valid value")
	ErrUnknownResolutionType    = RecordError("is not a valid resolution type")
	ErrUnsupportedVersion       = RecordError("unsupported version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
