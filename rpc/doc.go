// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring favoritesd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Favorites.Set      signed create or replace
//	Favorites.Get      signed read
//	Favorites.Address  derive a record address
//	Node.Info          chain, mode and version
//	Node.Balance       lamports held by an address
//	Node.Airdrop       credit lamports on testing chains
package rpc
