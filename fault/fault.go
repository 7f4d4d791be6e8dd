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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse          = RecordError("account already in use")
	ErrAccountDiscriminatorMismatch = RecordError("account discriminator mismatch")
	ErrAccountOwnedByWrongProgram   = RecordError("account owned by wrong program")
	ErrAccountTooSmall              = RecordError("account too small")
	ErrAddressMismatch              = InvalidError("address does not match derived address")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCannotDecodeAddress          = InvalidError("cannot decode address")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrCertificateMismatch          = InvalidError("certificate fingerprint mismatch")
	ErrColorTooLong                 = LengthError("color too long")
	ErrConfigurationNotTable        = InvalidError("configuration must return a table")
	ErrDatabaseIsNotSet             = NotFoundError("database is not set")
	ErrHobbyTooLong                 = LengthError("hobby too long")
	ErrInsufficientFunds            = ProcessError("insufficient funds")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidLamports              = InvalidError("invalid lamports")
	ErrInvalidPayer                 = InvalidError("invalid payer")
	ErrInvalidSeeds                 = InvalidError("invalid seeds: address is on curve")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrInvalidUTF8                  = InvalidError("text is not valid utf-8")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMaxSeedLengthExceeded        = LengthError("max seed length exceeded")
	ErrMissingOwner                 = InvalidError("missing owner")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNoViableBump                 = ProcessError("unable to find a viable bump seed")
	ErrNotAvailableDuringMode       = ProcessError("not available during current mode")
	ErrNotAvailableOnChain          = ProcessError("not available on this chain")
	ErrNotInTransaction             = ProcessError("not in transaction")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRecordTruncated              = RecordError("record truncated")
	ErrRequestExpired               = InvalidError("request timestamp outside accepted window")
	ErrRequestReplayed              = ExistsError("request already processed")
	ErrTooManyHobbies               = LengthError("too many hobbies")
	ErrTransactionAlreadyInUse      = ProcessError("transaction already in use")
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

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
