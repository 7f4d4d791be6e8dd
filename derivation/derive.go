// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/favoritesd/fault"
)

// limits on seeds
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32
)

// appended after the program id before hashing
const marker = "ProgramDerivedAddress"

// IsOnCurve - true if the bytes decode as an ed25519 point
//
// non-canonical encodings of valid points count as on curve
func IsOnCurve(b []byte) bool {
	if AddressLength != len(b) {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// CreateProgramAddress - hash the seeds with the program id
//
// fails with ErrInvalidSeeds if the result lies on the curve
func CreateProgramAddress(seeds [][]byte, programId Address) (Address, error) {
	var result Address

	if len(seeds) > MaximumSeeds {
		return result, fault.ErrMaxSeedLengthExceeded
	}
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return result, fault.ErrMaxSeedLengthExceeded
		}
	}

	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write(programId[:])
	h.Write([]byte(marker))
	copy(result[:], h.Sum(nil))

	if IsOnCurve(result[:]) {
		return Address{}, fault.ErrInvalidSeeds
	}
	return result, nil
}

// FindProgramAddress - search for the canonical bump seed
//
// bump seeds are tried from 255 down to 1, the first off curve
// address is returned with its bump
func FindProgramAddress(seeds [][]byte, programId Address) (Address, uint8, error) {
	if len(seeds) >= MaximumSeeds {
		return Address{}, 0, fault.ErrMaxSeedLengthExceeded
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump > 0; bump -= 1 {
		withBump[len(seeds)] = []byte{byte(bump)}
		address, err := CreateProgramAddress(withBump, programId)
		switch err {
		case nil:
			return address, uint8(bump), nil
		case fault.ErrInvalidSeeds:
			// try next
		default:
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.ErrNoViableBump
}
