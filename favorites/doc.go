// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package favorites - one favorites record per owner
//
// a record lives at an address derived from the fixed seed
// "solana_business_card" and the owner public key under the program
// id; the address is recomputed on every request and never stored
//
// the first successful Set allocates the record, funded by the owner,
// later Sets replace it in full; Get only reads
package favorites
