// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - deterministic program owned addresses
//
// An address is SHA-256 over:
//
//   seed[0] ++ … ++ seed[n] ++ program id ++ "ProgramDerivedAddress"
//
// and is only usable when the 32 byte result is NOT a valid ed25519
// point, so no private key can ever sign for it.  A bump seed (one
// byte, tried from 255 downwards) is appended to the seeds until an
// off curve result is found; the first hit is the canonical bump.
package derivation
