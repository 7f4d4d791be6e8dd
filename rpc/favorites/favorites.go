// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/favoritesd/account"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/favorites"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/mode"
	"github.com/bitmark-inc/favoritesd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitFavorites = 200
	rateBurstFavorites = 100
)

// Program - the favorites operations served to clients
type Program interface {
	ProgramId() derivation.Address
	Address(*account.Account) (derivation.Address, uint8, error)
	Set(*favorites.SetFavorites) error
	Get(*favorites.GetFavorites) (*favorites.Record, error)
}

// Favorites - type for RPC calls
type Favorites struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Program      Program
	IsNormalMode func(mode.Mode) bool
}

// New - create the RPC handler
func New(log *logger.L, program Program, isNormalMode func(mode.Mode) bool) *Favorites {
	return &Favorites{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitFavorites, rateBurstFavorites),
		Program:      program,
		IsNormalMode: isNormalMode,
	}
}

// ---

// SetReply - where the record was stored
type SetReply struct {
	Address derivation.Address `json:"address"`
	Bump    uint8              `json:"bump"`
}

// Set - create or replace the favorites of a signed owner
func (f *Favorites) Set(arguments *favorites.SetFavorites, reply *SetReply) error {

	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	if !f.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringMode
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingOwner
	}

	f.Log.Infof("Favorites.Set: owner: %s", arguments.Owner)

	err := f.Program.Set(arguments)
	if nil != err {
		f.Log.Debugf("Favorites.Set: owner: %s  error: %s", arguments.Owner, err)
		return err
	}

	reply.Address, reply.Bump, err = f.Program.Address(arguments.Owner)
	return err
}

// ---

// GetReply - the stored favorites of an owner
type GetReply struct {
	Address derivation.Address `json:"address"`
	Number  uint64             `json:"number"`
	Color   string             `json:"color"`
	Hobbies []string           `json:"hobbies"`
}

// Get - read the favorites of a signed owner
func (f *Favorites) Get(arguments *favorites.GetFavorites, reply *GetReply) error {

	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	if !f.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringMode
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingOwner
	}

	f.Log.Infof("Favorites.Get: owner: %s", arguments.Owner)

	record, err := f.Program.Get(arguments)
	if nil != err {
		f.Log.Debugf("Favorites.Get: owner: %s  error: %s", arguments.Owner, err)
		return err
	}

	address, _, err := f.Program.Address(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Address = address
	reply.Number = record.Number
	reply.Color = record.Color
	reply.Hobbies = record.Hobbies
	if nil == reply.Hobbies {
		reply.Hobbies = []string{}
	}

	return nil
}

// ---

// AddressArguments - owner whose record address is wanted
type AddressArguments struct {
	Owner *account.Account `json:"owner"`
}

// AddressReply - derived record address
type AddressReply struct {
	Address   derivation.Address `json:"address"`
	Bump      uint8              `json:"bump"`
	ProgramId derivation.Address `json:"programId"`
}

// Address - derive the record address of an owner, no signature needed
func (f *Favorites) Address(arguments *AddressArguments, reply *AddressReply) error {

	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingOwner
	}

	address, bump, err := f.Program.Address(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Address = address
	reply.Bump = bump
	reply.ProgramId = f.Program.ProgramId()

	return nil
}
