// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/bitmark-inc/favoritesd/fault"
)

// record limits, all lengths in bytes
const (
	MaxColorLength = 50
	MaxHobbies     = 5
	MaxHobbyLength = 50

	DiscriminatorLength = 8

	// worst case packed size, also the allocated capacity
	Space = DiscriminatorLength + 8 + (4 + MaxColorLength) + (4 + MaxHobbies*(4+MaxHobbyLength))
)

// Seed - first seed of every record address
const Seed = "solana_business_card"

// first 8 bytes of SHA-256("account:Favorites")
var discriminator = accountDiscriminator("Favorites")

func accountDiscriminator(name string) [DiscriminatorLength]byte {
	digest := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorLength]byte
	copy(d[:], digest[:DiscriminatorLength])
	return d
}

// Discriminator - the tag at the start of every record
func Discriminator() []byte {
	return append([]byte{}, discriminator[:]...)
}

// Record - the favorites of one owner
type Record struct {
	Number  uint64   `json:"number"`
	Color   string   `json:"color"`
	Hobbies []string `json:"hobbies"`
}

// Pack - encode a validated record
//
// layout (numbers little endian):
//   discriminator ++ number(8) ++ len(4) ++ color ++ count(4) ++ [len(4) ++ hobby]
// zero padded to Space bytes
func (record *Record) Pack() ([]byte, error) {
	err := record.Validate()
	if nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, Space)
	buffer = append(buffer, discriminator[:]...)
	buffer = binary.LittleEndian.AppendUint64(buffer, record.Number)
	buffer = appendLengthString(buffer, record.Color)
	buffer = binary.LittleEndian.AppendUint32(buffer, uint32(len(record.Hobbies)))
	for _, hobby := range record.Hobbies {
		buffer = appendLengthString(buffer, hobby)
	}

	packed := make([]byte, Space)
	copy(packed, buffer)
	return packed, nil
}

// Unpack - decode a record from account data
//
// all zero data means the record was never written; the result
// shares no memory with data
func Unpack(data []byte) (*Record, error) {
	if len(data) < DiscriminatorLength || isZero(data[:DiscriminatorLength]) {
		return nil, fault.ErrNotInitialised
	}
	if !bytes.Equal(data[:DiscriminatorLength], discriminator[:]) {
		return nil, fault.ErrAccountDiscriminatorMismatch
	}

	n := DiscriminatorLength
	if len(data) < n+8 {
		return nil, fault.ErrRecordTruncated
	}
	record := &Record{
		Number: binary.LittleEndian.Uint64(data[n:]),
	}
	n += 8

	color, length, err := readString(data[n:], MaxColorLength, fault.ErrColorTooLong)
	if nil != err {
		return nil, err
	}
	record.Color = color
	n += length

	if len(data) < n+4 {
		return nil, fault.ErrRecordTruncated
	}
	count := binary.LittleEndian.Uint32(data[n:])
	n += 4
	if count > MaxHobbies {
		return nil, fault.ErrTooManyHobbies
	}

	if count > 0 {
		record.Hobbies = make([]string, 0, count)
	}
	for i := uint32(0); i < count; i += 1 {
		hobby, length, err := readString(data[n:], MaxHobbyLength, fault.ErrHobbyTooLong)
		if nil != err {
			return nil, err
		}
		record.Hobbies = append(record.Hobbies, hobby)
		n += length
	}

	err = record.Validate()
	if nil != err {
		return nil, err
	}
	return record, nil
}

// length prefix is a little endian uint32
func appendLengthString(buffer []byte, s string) []byte {
	buffer = binary.LittleEndian.AppendUint32(buffer, uint32(len(s)))
	return append(buffer, s...)
}

// returns the string and the number of bytes consumed
func readString(data []byte, maximum int, tooLong error) (string, int, error) {
	if len(data) < 4 {
		return "", 0, fault.ErrRecordTruncated
	}
	length := binary.LittleEndian.Uint32(data)
	if length > uint32(maximum) {
		return "", 0, tooLong
	}
	end := 4 + int(length)
	if len(data) < end {
		return "", 0, fault.ErrRecordTruncated
	}
	return string(data[4:end]), end, nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if 0 != v {
			return false
		}
	}
	return true
}
