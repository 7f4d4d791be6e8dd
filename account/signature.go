// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/util"
)

// Signature - the type for a signature
type Signature []byte

// String - base58 form for use by the fmt package (for %s)
func (signature Signature) String() string {
	return util.ToBase58(signature)
}

// GoString - for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + util.ToBase58(signature) + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(util.ToBase58(signature)), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*signature = nil
		return nil
	}
	sig := util.FromBase58(string(s))
	if 0 == len(sig) {
		return fault.ErrInvalidSignature
	}
	*signature = sig
	return nil
}
