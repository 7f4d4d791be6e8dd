// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"bytes"

	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/util"
)

// AddressLength - bytes in an address
const AddressLength = 32

// Address - a 32 byte ledger address
type Address [AddressLength]byte

// SystemProgram - owner of plain accounts that only hold lamports
var SystemProgram = Address{}

// AddressFromBase58 - decode a base58 address
func AddressFromBase58(s string) (Address, error) {
	var a Address
	b := util.FromBase58(s)
	if AddressLength != len(b) {
		return a, fault.ErrCannotDecodeAddress
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromBytes - copy a 32 byte slice into an address
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if AddressLength != len(b) {
		return a, fault.ErrCannotDecodeAddress
	}
	copy(a[:], b)
	return a, nil
}

// MustAddress - decode a constant address, panic on error
func MustAddress(s string) Address {
	a, err := AddressFromBase58(s)
	if nil != err {
		panic("invalid address constant: " + s)
	}
	return a
}

// Bytes - address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equal - compare two addresses
func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

// String - base58 text
func (a Address) String() string {
	return util.ToBase58(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - from JSON
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
