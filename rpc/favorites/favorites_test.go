// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package favorites_test

import (
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/favorites"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/keypair"
	"github.com/bitmark-inc/favoritesd/mode"
	rpcfavorites "github.com/bitmark-inc/favoritesd/rpc/favorites"
	"github.com/bitmark-inc/favoritesd/rpc/fixtures"
	"github.com/bitmark-inc/favoritesd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

var (
	programId = derivation.MustAddress(favorites.DefaultProgramId)
	address   = derivation.MustAddress("BwqrghZA2htAcqq8dzP1WDAhTXYTYWj7CHxF5j7TDBAe")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func normal(m mode.Mode) bool  { return mode.Normal == m }
func stopped(m mode.Mode) bool { return mode.Stopped == m }

func newOwner(t *testing.T) *keypair.KeyPair {
	keyPair, err := keypair.New()
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	return keyPair
}

func TestSet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, normal)

	owner := newOwner(t)
	arg := favorites.SetFavorites{
		Owner:   owner.Account(),
		Number:  7,
		Color:   "red",
		Hobbies: []string{"chess"},
	}
	arg.Sign(programId, owner)

	p.EXPECT().Set(&arg).Return(nil).Times(1)
	p.EXPECT().Address(arg.Owner).Return(address, uint8(254), nil).Times(1)

	var reply rpcfavorites.SetReply
	err := f.Set(&arg, &reply)
	assert.Nil(t, err, "wrong Set")
	assert.Equal(t, address, reply.Address, "wrong address")
	assert.Equal(t, uint8(254), reply.Bump, "wrong bump")
}

func TestSetWhenProgramRejects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, normal)

	owner := newOwner(t)
	arg := favorites.SetFavorites{
		Owner: owner.Account(),
		Color: "red",
	}

	p.EXPECT().Set(&arg).Return(fault.ErrInvalidSignature).Times(1)

	var reply rpcfavorites.SetReply
	err := f.Set(&arg, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "wrong error")
	assert.True(t, reply.Address.IsZero(), "address set on error")
}

func TestSetWhenNotNormalMode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, stopped)

	owner := newOwner(t)
	arg := favorites.SetFavorites{
		Owner: owner.Account(),
	}

	var reply rpcfavorites.SetReply
	err := f.Set(&arg, &reply)
	assert.Equal(t, fault.ErrNotAvailableDuringMode, err, "wrong error")
}

func TestSetWithoutOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, normal)

	var reply rpcfavorites.SetReply
	err := f.Set(&favorites.SetFavorites{Color: "red"}, &reply)
	assert.Equal(t, fault.ErrMissingOwner, err, "wrong error")
}

func TestGet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, normal)

	owner := newOwner(t)
	arg := favorites.GetFavorites{
		Owner: owner.Account(),
	}
	arg.Sign(programId, owner)

	record := favorites.Record{
		Number:  42,
		Color:   "blue",
		Hobbies: []string{"go", "lua"},
	}

	p.EXPECT().Get(&arg).Return(&record, nil).Times(1)
	p.EXPECT().Address(arg.Owner).Return(address, uint8(255), nil).Times(1)

	var reply rpcfavorites.GetReply
	err := f.Get(&arg, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, address, reply.Address, "wrong address")
	assert.Equal(t, record.Number, reply.Number, "wrong number")
	assert.Equal(t, record.Color, reply.Color, "wrong color")
	assert.Equal(t, record.Hobbies, reply.Hobbies, "wrong hobbies")
}

func TestGetWithNoHobbies(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, normal)

	owner := newOwner(t)
	arg := favorites.GetFavorites{
		Owner: owner.Account(),
	}

	p.EXPECT().Get(&arg).Return(&favorites.Record{Number: 1}, nil).Times(1)
	p.EXPECT().Address(arg.Owner).Return(address, uint8(255), nil).Times(1)

	var reply rpcfavorites.GetReply
	err := f.Get(&arg, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.NotNil(t, reply.Hobbies, "hobbies would encode as null")
	assert.Equal(t, 0, len(reply.Hobbies), "wrong hobbies")
}

func TestGetBeforeSet(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, normal)

	owner := newOwner(t)
	arg := favorites.GetFavorites{
		Owner: owner.Account(),
	}

	p.EXPECT().Get(&arg).Return(nil, fault.ErrNotInitialised).Times(1)

	var reply rpcfavorites.GetReply
	err := f.Get(&arg, &reply)
	assert.Equal(t, fault.ErrNotInitialised, err, "wrong error")
}

func TestGetWhenNotNormalMode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, stopped)

	owner := newOwner(t)

	var reply rpcfavorites.GetReply
	err := f.Get(&favorites.GetFavorites{Owner: owner.Account()}, &reply)
	assert.Equal(t, fault.ErrNotAvailableDuringMode, err, "wrong error")
}

func TestAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)

	// derivation needs no running ledger
	f := rpcfavorites.New(logger.New(fixtures.LogCategory), p, stopped)

	owner := newOwner(t)
	arg := rpcfavorites.AddressArguments{
		Owner: owner.Account(),
	}

	p.EXPECT().Address(arg.Owner).Return(address, uint8(253), nil).Times(1)
	p.EXPECT().ProgramId().Return(programId).Times(1)

	var reply rpcfavorites.AddressReply
	err := f.Address(&arg, &reply)
	assert.Nil(t, err, "wrong Address")
	assert.Equal(t, address, reply.Address, "wrong address")
	assert.Equal(t, uint8(253), reply.Bump, "wrong bump")
	assert.Equal(t, programId, reply.ProgramId, "wrong program id")

	err = f.Address(&rpcfavorites.AddressArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingOwner, err, "wrong error")
}
