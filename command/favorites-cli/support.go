// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/favoritesd/command/favorites-cli/rpccalls"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/keypair"
)

// common errors - keep in alphabetic order
const (
	ErrMissingKey      = fault.NotFoundError("private key is required")
	ErrMissingLamports = fault.InvalidError("lamports must be greater than zero")
)

// accept either the 32 byte hex seed or the 64 byte base58 private key
func parseKey(s string) (*keypair.KeyPair, error) {
	if "" == s {
		return nil, ErrMissingKey
	}
	if _, err := hex.DecodeString(s); nil == err && 2*32 == len(s) {
		return keypair.FromSeed(s)
	}
	return keypair.FromBase58PrivateKey(s)
}

// the address given, or else the key owner
func addressOrOwner(s string, key string) (derivation.Address, error) {
	if "" != s {
		return derivation.AddressFromBase58(s)
	}
	keyPair, err := parseKey(key)
	if nil != err {
		return derivation.Address{}, err
	}
	return derivation.AddressFromBytes(keyPair.PublicKey)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
}

// program id from the option, or else as reported by the node
func programId(m *metadata, client *rpccalls.Client) (derivation.Address, error) {
	if "" != m.programId {
		return derivation.AddressFromBase58(m.programId)
	}
	info, err := client.GetInfo()
	if nil != err {
		return derivation.Address{}, err
	}
	return info.ProgramId, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
