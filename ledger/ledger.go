// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"
	"sync"

	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/storage"
	"github.com/bitmark-inc/logger"
)

// Ledger - serialised access to the account pool
type Ledger struct {
	sync.RWMutex
	log  *logger.L
	pool storage.Handle
	trx  storage.Transaction
}

// Tx - the view of the ledger inside Execute
type Tx struct {
	log  *logger.L
	pool storage.Handle
	trx  storage.Transaction
}

// New - create a ledger over an account pool
func New(pool storage.Handle, trx storage.Transaction) *Ledger {
	return &Ledger{
		log:  logger.New("ledger"),
		pool: pool,
		trx:  trx,
	}
}

// Execute - run a function as one atomic ledger transaction
//
// only one Execute runs at a time; any error from the function or
// from the commit discards every write the function made
func (l *Ledger) Execute(f func(*Tx) error) error {
	l.Lock()
	defer l.Unlock()

	err := l.trx.Begin()
	if nil != err {
		l.log.Errorf("begin error: %s", err)
		return err
	}

	tx := &Tx{
		log:  l.log,
		pool: l.pool,
		trx:  l.trx,
	}

	err = f(tx)
	if nil != err {
		l.trx.Abort()
		l.log.Debugf("abort: %s", err)
		return err
	}

	err = l.trx.Commit()
	if nil != err {
		l.trx.Abort()
		l.log.Errorf("commit error: %s", err)
		return err
	}
	return nil
}

// Account - committed state of an account
func (l *Ledger) Account(address derivation.Address) (*Account, bool) {
	l.RLock()
	defer l.RUnlock()
	return getAccount(l.log, l.pool.Get(address[:]), address)
}

// Balance - lamports held at an address, zero if absent
func (l *Ledger) Balance(address derivation.Address) uint64 {
	account, ok := l.Account(address)
	if !ok {
		return 0
	}
	return account.Lamports
}

// Airdrop - credit an address with new lamports
//
// a missing address becomes a system account
func (l *Ledger) Airdrop(address derivation.Address, lamports uint64) error {
	if 0 == lamports {
		return fault.ErrInvalidLamports
	}
	return l.Execute(func(tx *Tx) error {
		account, ok := tx.Account(address)
		if !ok {
			account = NewSystemAccount(0)
		}
		if account.Lamports > math.MaxUint64-lamports {
			return fault.ErrInvalidLamports
		}
		account.Lamports += lamports
		tx.Store(address, account)
		l.log.Infof("airdrop: %s  lamports: %d  balance: %d", address, lamports, account.Lamports)
		return nil
	})
}

// Account - current state of an account including pending writes
//
// the result is a copy; changes are saved only by Store
func (tx *Tx) Account(address derivation.Address) (*Account, bool) {
	return getAccount(tx.log, tx.trx.Get(tx.pool, address[:]), address)
}

// Store - save an account
func (tx *Tx) Store(address derivation.Address, account *Account) {
	tx.log.Debugf("store: %s  lamports: %d  owner: %s  space: %d", address, account.Lamports, account.Owner, account.Space())
	tx.trx.Put(tx.pool, address[:], account.Pack())
}

// Transfer - move lamports out of a system account
func (tx *Tx) Transfer(from derivation.Address, to derivation.Address, lamports uint64) error {
	if from == to {
		return fault.ErrInvalidPayer
	}

	source, ok := tx.Account(from)
	if !ok || source.Lamports < lamports {
		return fault.ErrInsufficientFunds
	}
	if !source.IsSystem() || 0 != source.Space() {
		return fault.ErrInvalidPayer
	}

	destination, ok := tx.Account(to)
	if !ok {
		destination = NewSystemAccount(0)
	}
	if destination.Lamports > math.MaxUint64-lamports {
		return fault.ErrInvalidLamports
	}

	source.Lamports -= lamports
	destination.Lamports += lamports

	tx.Store(from, source)
	tx.Store(to, destination)
	return nil
}

func getAccount(log *logger.L, buffer []byte, address derivation.Address) (*Account, bool) {
	if nil == buffer {
		return nil, false
	}
	account, err := UnpackAccount(buffer)
	if nil != err {
		log.Criticalf("corrupt account: %s  error: %s", address, err)
		logger.Panicf("ledger: corrupt account: %s  error: %s", address, err)
	}
	return account, true
}
