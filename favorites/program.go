// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/favoritesd/account"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/ledger"
	"github.com/bitmark-inc/logger"
)

// DefaultProgramId - program id used unless configured otherwise
const DefaultProgramId = "BYBFmxjHn48LVAjKfo7dX6kPTw62HNPTktMqnpNeeiHu"

// ReplayWindow - a Set timestamp may differ from the clock by at most this
const ReplayWindow = 5 * time.Minute

// Program - the favorites program bound to one ledger
type Program struct {
	log    *logger.L
	cache  *derivation.Cache
	ledger *ledger.Ledger

	// packed Set requests accepted within the replay window
	seen *cache.Cache
}

// New - create a program instance
func New(programId derivation.Address, l *ledger.Ledger) *Program {
	return &Program{
		log:    logger.New("favorites"),
		cache:  derivation.NewCache(programId),
		ledger: l,
		seen:   cache.New(2*ReplayWindow, ReplayWindow),
	}
}

// ProgramId - the id that owns all records
func (p *Program) ProgramId() derivation.Address {
	return p.cache.ProgramId()
}

// CachedAddresses - number of owners with a remembered address
func (p *Program) CachedAddresses() int {
	return p.cache.Count()
}

// Address - the record address and bump seed of an owner
func (p *Program) Address(owner *account.Account) (derivation.Address, uint8, error) {
	if nil == owner || nil == owner.AccountInterface {
		return derivation.Address{}, 0, fault.ErrMissingOwner
	}
	return p.cache.Find([][]byte{[]byte(Seed), owner.PublicKeyBytes()})
}

// derive the address and compare with any caller supplied value
func (p *Program) resolve(owner *account.Account, supplied *derivation.Address) (derivation.Address, uint8, error) {
	address, bump, err := p.Address(owner)
	if nil != err {
		return derivation.Address{}, 0, err
	}
	if nil != supplied && *supplied != address {
		p.log.Warnf("owner: %s  supplied: %s  derived: %s", owner, supplied, address)
		return derivation.Address{}, 0, fault.ErrAddressMismatch
	}
	return address, bump, nil
}

// reject a timestamp too far from the current time
func checkTimestamp(timestamp uint64, now time.Time) error {
	if 0 == timestamp || timestamp > uint64(1<<62) {
		return fault.ErrRequestExpired
	}
	signed := time.Unix(int64(timestamp), 0)
	if signed.Before(now.Add(-ReplayWindow)) || signed.After(now.Add(ReplayWindow)) {
		return fault.ErrRequestExpired
	}
	return nil
}

// claim a packed request; a second claim within the window fails
//
// an entry outlives the window in which its timestamp is accepted
func (p *Program) claim(packed Packed) error {
	err := p.seen.Add(string(packed), struct{}{}, 2*ReplayWindow)
	if nil != err {
		return fault.ErrRequestReplayed
	}
	return nil
}

// release a claim so a request that failed may be submitted again
func (p *Program) release(packed Packed) {
	p.seen.Delete(string(packed))
}
