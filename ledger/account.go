// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
)

// packed size of the account header
const headerLength = 8 + derivation.AddressLength

// Account - one ledger entry
type Account struct {
	Lamports uint64             `json:"lamports"`
	Owner    derivation.Address `json:"owner"`
	Data     []byte             `json:"data"`
}

// NewSystemAccount - an empty account holding only lamports
func NewSystemAccount(lamports uint64) *Account {
	return &Account{
		Lamports: lamports,
		Owner:    derivation.SystemProgram,
	}
}

// IsSystem - true if no program has claimed the account
func (a *Account) IsSystem() bool {
	return a.Owner.IsZero()
}

// Space - allocated data length
func (a *Account) Space() int {
	return len(a.Data)
}

// Pack - lamports ++ owner ++ data
func (a *Account) Pack() []byte {
	buffer := make([]byte, headerLength, headerLength+len(a.Data))
	binary.BigEndian.PutUint64(buffer[:8], a.Lamports)
	copy(buffer[8:headerLength], a.Owner[:])
	return append(buffer, a.Data...)
}

// UnpackAccount - decode a stored account
//
// the result does not share memory with the buffer
func UnpackAccount(buffer []byte) (*Account, error) {
	if len(buffer) < headerLength {
		return nil, fault.ErrCannotDecodeAccount
	}
	a := &Account{
		Lamports: binary.BigEndian.Uint64(buffer[:8]),
	}
	copy(a.Owner[:], buffer[8:headerLength])
	if len(buffer) > headerLength {
		a.Data = make([]byte, len(buffer)-headerLength)
		copy(a.Data, buffer[headerLength:])
	}
	return a, nil
}
