// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Mainnet  = "mainnet"
	Testnet  = "testnet"
	Devnet   = "devnet"
	Localnet = "localnet"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Devnet, Localnet:
		return true
	default:
		return false
	}
}

// IsTesting - chains where lamports can be created freely
func IsTesting(name string) bool {
	switch name {
	case Testnet, Devnet, Localnet:
		return true
	default:
		return false
	}
}
