// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"time"

	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/ledger"
)

// Set - create or replace the favorites of the request owner
//
// the owner pays for the first allocation; nothing is changed unless
// every check passes. A signed request is applied at most once
func (p *Program) Set(request *SetFavorites) error {
	if nil == request {
		return fault.ErrMissingParameters
	}

	packed, err := request.Pack(p.ProgramId())
	if nil != err {
		return err
	}

	err = checkTimestamp(request.Timestamp, time.Now())
	if nil != err {
		p.log.Warnf("set: owner: %s  timestamp: %d  error: %s", request.Owner, request.Timestamp, err)
		return err
	}

	address, bump, err := p.resolve(request.Owner, request.Favorites)
	if nil != err {
		return err
	}

	record := &Record{
		Number:  request.Number,
		Color:   request.Color,
		Hobbies: request.Hobbies,
	}
	data, err := record.Pack()
	if nil != err {
		return err
	}

	payer, err := derivation.AddressFromBytes(request.Owner.PublicKeyBytes())
	if nil != err {
		return err
	}

	err = p.claim(packed)
	if nil != err {
		p.log.Warnf("set: owner: %s  error: %s", request.Owner, err)
		return err
	}

	err = p.ledger.Execute(func(tx *ledger.Tx) error {
		account, created, err := initialiseIfNeeded(tx, p.ProgramId(), payer, address)
		if nil != err {
			return err
		}
		if created {
			p.log.Infof("allocate: %s  owner: %s  bump: %d  lamports: %d", address, request.Owner, bump, account.Lamports)
		}
		copy(account.Data, data)
		tx.Store(address, account)
		return nil
	})
	if nil != err {
		p.release(packed)
		p.log.Debugf("set: owner: %s  error: %s", request.Owner, err)
		return err
	}

	p.log.Infof("set: owner: %s  number: %d  color: %q  hobbies: %q", request.Owner, record.Number, record.Color, record.Hobbies)
	return nil
}
