// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// rent parameters
const (
	accountStorageOverhead = 128
	lamportsPerByteYear    = 3480
	exemptionYears         = 2
)

// MinimumBalance - lamports needed for an account of this data size
// to be exempt from rent
func MinimumBalance(space int) uint64 {
	return uint64(accountStorageOverhead+space) * lamportsPerByteYear * exemptionYears
}

// IsRentExempt - check an account balance against its size
func IsRentExempt(account *Account) bool {
	return account.Lamports >= MinimumBalance(account.Space())
}
