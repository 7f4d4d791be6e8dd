// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"github.com/bitmark-inc/favoritesd/fault"
)

// Get - read the favorites of the request owner
//
// the result is a copy and may be modified freely
func (p *Program) Get(request *GetFavorites) (*Record, error) {
	if nil == request {
		return nil, fault.ErrMissingParameters
	}

	_, err := request.Pack(p.ProgramId())
	if nil != err {
		return nil, err
	}

	address, _, err := p.resolve(request.Owner, request.Favorites)
	if nil != err {
		return nil, err
	}

	account, ok := p.ledger.Account(address)
	if !ok || account.IsSystem() {
		return nil, fault.ErrNotInitialised
	}
	if account.Owner != p.ProgramId() {
		return nil, fault.ErrAccountOwnedByWrongProgram
	}

	record, err := Unpack(account.Data)
	if nil != err {
		return nil, err
	}

	p.log.Infof("get: owner: %s  number: %d  color: %q  hobbies: %q", request.Owner, record.Number, record.Color, record.Hobbies)
	return record, nil
}
