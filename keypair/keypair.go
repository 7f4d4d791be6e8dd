// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/favoritesd/account"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/util"
)

// KeyPair - structure to hold public and private keys
type KeyPair struct {
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of the keys
//
// the private key is the 64 byte form: seed followed by public key,
// which is also the usual wallet key file format
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PrivateKey string `json:"private_key"`
}

// New - create a new key pair from secure random data
func New() (*KeyPair, error) {
	return newFrom(rand.Reader)
}

func newFrom(random io.Reader) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}, nil
}

// FromSeed - regenerate keys from a 32 byte hex seed
func FromSeed(seedHex string) (*KeyPair, error) {
	seed, err := hex.DecodeString(seedHex)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// FromBase58PrivateKey - restore keys from the 64 byte base58 private key
func FromBase58PrivateKey(s string) (*KeyPair, error) {
	b := util.FromBase58(s)
	if ed25519.PrivateKeySize != len(b) {
		return nil, fault.ErrInvalidKeyLength
	}
	privateKey := ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
	if !privateKey.Public().(ed25519.PublicKey).Equal(ed25519.PublicKey(b[ed25519.SeedSize:])) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &KeyPair{
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Account - the owner identity of this key pair
func (keyPair *KeyPair) Account() *account.Account {
	a, err := account.AccountFromBytes(keyPair.PublicKey)
	if nil != err {
		return nil
	}
	return a
}

// Sign - sign a message
func (keyPair *KeyPair) Sign(message []byte) account.Signature {
	return ed25519.Sign(keyPair.PrivateKey, message)
}

// Raw - text form for printing or saving
func (keyPair *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Seed:       hex.EncodeToString(keyPair.PrivateKey.Seed()),
		Account:    util.ToBase58(keyPair.PublicKey),
		PrivateKey: util.ToBase58(keyPair.PrivateKey),
	}
}
