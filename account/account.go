// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = iota
	algorithmLimit
)

// Account - base type for accounts
//
// an account is the owner identity: the public half of a signing key,
// shown as base58 of the raw key bytes
type Account struct {
	AccountInterface
}

// AccountInterface - methods each key type provides
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	PublicKey []byte
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}
	return AccountFromBytes(accountDecoded)
}

// AccountFromBytes - convert raw public key bytes to an account
//
// the bytes are copied so the caller may reuse the buffer
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	if ed25519.PublicKeySize != len(accountBytes) {
		return nil, fault.ErrInvalidKeyLength
	}
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountBytes)

	account := &Account{
		AccountInterface: &ED25519Account{
			PublicKey: publicKey,
		},
	}
	return account, nil
}

// UnmarshalText - convert a base58 string into an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Equal - true if both refer to the same public key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return account.KeyType() == other.KeyType() && bytes.Equal(account.PublicKeyBytes(), other.PublicKeyBytes())
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	return append([]byte{}, account.PublicKey...)
}

// String - base58 encoding of the key
func (account *ED25519Account) String() string {
	return util.ToBase58(account.PublicKey)
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}
