// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/favoritesd/chain"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/favorites"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/mode"
	"github.com/bitmark-inc/favoritesd/rpc/fixtures"
	"github.com/bitmark-inc/favoritesd/rpc/mocks"
	"github.com/bitmark-inc/favoritesd/rpc/node"
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
func testingChain() bool       { return true }
func productionChain() bool    { return false }

func TestInfo(t *testing.T) {
	_ = mode.Initialise(chain.Localnet)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	start := time.Now().Add(-time.Minute)
	n := node.New(logger.New(fixtures.LogCategory), start, "1.0", programId, l, func() uint64 { return 3 }, mode.Is, mode.IsTesting)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Localnet, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Normal.String(), reply.Mode, "wrong mode")
	assert.Equal(t, programId, reply.ProgramId, "wrong program id")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong connection count")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}

func TestBalance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", programId, l, nil, normal, productionChain)

	l.EXPECT().Balance(address).Return(uint64(890880)).Times(1)

	var reply node.BalanceReply
	err := n.Balance(&node.BalanceArguments{Address: address}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(890880), reply.Lamports, "wrong lamports")
}

func TestAirdrop(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", programId, l, nil, normal, testingChain)

	gomock.InOrder(
		l.EXPECT().Airdrop(address, uint64(1000)).Return(nil).Times(1),
		l.EXPECT().Balance(address).Return(uint64(1500)).Times(1),
	)

	var reply node.AirdropReply
	err := n.Airdrop(&node.AirdropArguments{Address: address, Lamports: 1000}, &reply)
	assert.Nil(t, err, "wrong Airdrop")
	assert.Equal(t, uint64(1500), reply.Lamports, "wrong lamports")
}

func TestAirdropWhenLedgerRejects(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", programId, l, nil, normal, testingChain)

	l.EXPECT().Airdrop(address, uint64(0)).Return(fault.ErrInvalidLamports).Times(1)

	var reply node.AirdropReply
	err := n.Airdrop(&node.AirdropArguments{Address: address}, &reply)
	assert.Equal(t, fault.ErrInvalidLamports, err, "wrong error")
}

func TestAirdropOnProductionChain(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", programId, l, nil, normal, productionChain)

	var reply node.AirdropReply
	err := n.Airdrop(&node.AirdropArguments{Address: address, Lamports: 1000}, &reply)
	assert.Equal(t, fault.ErrNotAvailableOnChain, err, "wrong error")
}

func TestWhenNotNormalMode(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", programId, l, nil, stopped, testingChain)

	var balance node.BalanceReply
	err := n.Balance(&node.BalanceArguments{Address: address}, &balance)
	assert.Equal(t, fault.ErrNotAvailableDuringMode, err, "wrong Balance error")

	var airdrop node.AirdropReply
	err = n.Airdrop(&node.AirdropArguments{Address: address, Lamports: 1}, &airdrop)
	assert.Equal(t, fault.ErrNotAvailableDuringMode, err, "wrong Airdrop error")
}
