// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/favoritesd/fault"
)

// Transaction - all-or-nothing group of pool writes
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionImpl - transaction over a set of databases
type TransactionImpl struct {
	sync.Mutex
	inUse  bool
	access []Access
}

func newTransaction(access []Access) Transaction {
	return &TransactionImpl{
		inUse:  false,
		access: access,
	}
}

// Begin - start a transaction on every database
func (t *TransactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionAlreadyInUse
	}

	for i, a := range t.access {
		err := a.Begin()
		if nil != err {
			for _, started := range t.access[:i] {
				started.Abort()
			}
			return err
		}
	}

	t.inUse = true
	return nil
}

func (t *TransactionImpl) Put(handle Handle, key []byte, value []byte) {
	handle.Put(key, value)
}

func (t *TransactionImpl) Delete(handle Handle, key []byte) {
	handle.Delete(key)
}

func (t *TransactionImpl) Get(handle Handle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionImpl) Has(handle Handle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write every database
//
// a failed commit leaves the transaction open, the caller must Abort
func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrNotInTransaction
	}

	for _, a := range t.access {
		err := a.Commit()
		if nil != err {
			return err
		}
	}

	t.inUse = false
	return nil
}

// Abort - discard pending writes
func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, a := range t.access {
		a.Abort()
	}
	t.inUse = false
}

func (t *TransactionImpl) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
