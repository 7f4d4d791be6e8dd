// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/util"
)

func TestNewIsRandom(t *testing.T) {
	k1, err := New()
	assert.Nil(t, err, "wrong error")
	k2, err := New()
	assert.Nil(t, err, "wrong error")

	assert.NotEqual(t, k1.PublicKey, k2.PublicKey, "duplicate keys")
}

func TestRawRoundTrip(t *testing.T) {
	k, err := newFrom(bytes.NewReader(bytes.Repeat([]byte{0x42}, 32)))
	assert.Nil(t, err, "wrong error")

	raw := k.Raw()

	fromSeed, err := FromSeed(raw.Seed)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, k.PrivateKey, fromSeed.PrivateKey, "seed restore differs")

	fromPrivate, err := FromBase58PrivateKey(raw.PrivateKey)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, k.PublicKey, fromPrivate.PublicKey, "private key restore differs")

	assert.Equal(t, raw.Account, k.Account().String(), "account text differs")
}

func TestSign(t *testing.T) {
	k, err := New()
	assert.Nil(t, err, "wrong error")

	message := []byte("set favorites")
	assert.Nil(t, k.Account().CheckSignature(message, k.Sign(message)), "signature rejected")
}

func TestInvalidKeys(t *testing.T) {
	_, err := FromSeed("0102")
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short seed accepted")

	_, err = FromBase58PrivateKey("11111111")
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short private key accepted")

	// a valid seed with some other public key appended
	a, _ := New()
	b, _ := New()
	mixed := append(append([]byte{}, a.PrivateKey.Seed()...), b.PublicKey...)
	_, err = FromBase58PrivateKey(util.ToBase58(mixed))
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "mismatched key pair accepted")
}
