// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"unicode/utf8"

	"github.com/bitmark-inc/favoritesd/fault"
)

// Validate - check a record fits the fixed layout
func (record *Record) Validate() error {
	return Validate(record.Color, record.Hobbies)
}

// Validate - check proposed record contents
//
// lengths are in bytes; every hobby is checked, the error only gives
// the kind of failure
func Validate(color string, hobbies []string) error {
	if len(color) > MaxColorLength {
		return fault.ErrColorTooLong
	}

	if len(hobbies) > MaxHobbies {
		return fault.ErrTooManyHobbies
	}

	tooLong := false
	invalid := !utf8.ValidString(color)
	for _, hobby := range hobbies {
		if len(hobby) > MaxHobbyLength {
			tooLong = true
		}
		if !utf8.ValidString(hobby) {
			invalid = true
		}
	}
	if tooLong {
		return fault.ErrHobbyTooLong
	}
	if invalid {
		return fault.ErrInvalidUTF8
	}
	return nil
}
