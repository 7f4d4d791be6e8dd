// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"github.com/bitmark-inc/favoritesd/account"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/util"
)

// TagType - type code for requests
type TagType uint64

// enumerate the possible requests
const (
	NullTag         TagType = iota
	SetFavoritesTag TagType = iota
	GetFavoritesTag TagType = iota
)

// Packed - a signed request
type Packed []byte

// Signer - produces the owner signature
type Signer interface {
	Sign(message []byte) account.Signature
}

// SetFavorites - replace the favorites of Owner
//
// Favorites is optional; when present it must equal the derived
// address. Timestamp is the signing time in Unix seconds
type SetFavorites struct {
	Owner     *account.Account    `json:"owner"`
	Favorites *derivation.Address `json:"favorites,omitempty"`
	Timestamp uint64              `json:"timestamp"`
	Number    uint64              `json:"number"`
	Color     string              `json:"color"`
	Hobbies   []string            `json:"hobbies"`
	Signature account.Signature   `json:"signature"`
}

// GetFavorites - read the favorites of Owner
type GetFavorites struct {
	Owner     *account.Account    `json:"owner"`
	Favorites *derivation.Address `json:"favorites,omitempty"`
	Signature account.Signature   `json:"signature"`
}

// Pack - Varint64(tag) followed by the fields with signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (set *SetFavorites) Pack(programId derivation.Address) (Packed, error) {
	if nil == set.Owner || nil == set.Owner.AccountInterface {
		return nil, fault.ErrMissingOwner
	}

	message := set.message(programId)

	err := set.Owner.CheckSignature(message, set.Signature)
	if nil != err {
		return message, err
	}
	return appendBytes(message, set.Signature), nil
}

// Sign - sign for the owner
func (set *SetFavorites) Sign(programId derivation.Address, signer Signer) {
	set.Signature = signer.Sign(set.message(programId))
}

func (set *SetFavorites) message(programId derivation.Address) Packed {
	message := util.ToVarint64(uint64(SetFavoritesTag))
	message = appendAccount(message, set.Owner)
	message = appendBytes(message, programId[:])
	message = appendUint64(message, set.Timestamp)
	message = appendUint64(message, set.Number)
	message = appendString(message, set.Color)
	message = appendUint64(message, uint64(len(set.Hobbies)))
	for _, hobby := range set.Hobbies {
		message = appendString(message, hobby)
	}
	return message
}

// Pack - Varint64(tag) followed by the fields with signature last
func (get *GetFavorites) Pack(programId derivation.Address) (Packed, error) {
	if nil == get.Owner || nil == get.Owner.AccountInterface {
		return nil, fault.ErrMissingOwner
	}

	message := get.message(programId)

	err := get.Owner.CheckSignature(message, get.Signature)
	if nil != err {
		return message, err
	}
	return appendBytes(message, get.Signature), nil
}

// Sign - sign for the owner
func (get *GetFavorites) Sign(programId derivation.Address, signer Signer) {
	get.Signature = signer.Sign(get.message(programId))
}

func (get *GetFavorites) message(programId derivation.Address) Packed {
	message := util.ToVarint64(uint64(GetFavoritesTag))
	message = appendAccount(message, get.Owner)
	return appendBytes(message, programId[:])
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, owner *account.Account) Packed {
	return appendBytes(buffer, owner.Bytes())
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}
