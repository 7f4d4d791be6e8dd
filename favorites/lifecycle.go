// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"bytes"

	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/ledger"
)

// initialiseIfNeeded - storage for a record at address
//
// an absent or lamports-only address is funded by the payer up to the
// rent exempt minimum, sized to Space and assigned to the program;
// existing program storage is returned unchanged
//
// the second result is true if storage was allocated
func initialiseIfNeeded(tx *ledger.Tx, programId derivation.Address, payer derivation.Address, address derivation.Address) (*ledger.Account, bool, error) {

	account, ok := tx.Account(address)
	if ok && !account.IsSystem() {
		if account.Owner != programId {
			return nil, false, fault.ErrAccountOwnedByWrongProgram
		}
		if account.Space() < Space {
			return nil, false, fault.ErrAccountTooSmall
		}
		if !bytes.Equal(account.Data[:DiscriminatorLength], discriminator[:]) {
			return nil, false, fault.ErrAccountDiscriminatorMismatch
		}
		return account, false, nil
	}

	if ok && 0 != account.Space() {
		return nil, false, fault.ErrAccountAlreadyInUse
	}
	if payer == address {
		return nil, false, fault.ErrInvalidPayer
	}

	balance := uint64(0)
	if ok {
		balance = account.Lamports
	}

	minimum := ledger.MinimumBalance(Space)
	if balance < minimum {
		err := tx.Transfer(payer, address, minimum-balance)
		if nil != err {
			return nil, false, err
		}
	}

	account, ok = tx.Account(address)
	if !ok {
		account = ledger.NewSystemAccount(0)
	}
	account.Owner = programId
	account.Data = make([]byte, Space)
	if !ledger.IsRentExempt(account) {
		return nil, false, fault.ErrInsufficientFunds
	}

	return account, true, nil
}
