// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/favoritesd/chain"
	"github.com/bitmark-inc/favoritesd/command/favorites-cli/rpccalls"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/favorites"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/keypair"
	"github.com/bitmark-inc/favoritesd/mode"
	"github.com/bitmark-inc/favoritesd/rpc/certificate"
	"github.com/bitmark-inc/favoritesd/rpc/fixtures"
	"github.com/bitmark-inc/favoritesd/rpc/mocks"
	"github.com/bitmark-inc/favoritesd/rpc/server"
	"github.com/bitmark-inc/logger"
)

var (
	programId = derivation.MustAddress(favorites.DefaultProgramId)
	address   = derivation.MustAddress("BwqrghZA2htAcqq8dzP1WDAhTXYTYWj7CHxF5j7TDBAe")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	_ = mode.Initialise(chain.Localnet)
	mode.Set(mode.Normal)
	rc := m.Run()
	_ = mode.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// serve the RPC services over TLS on a loopback port
func startServer(t *testing.T, p *mocks.MockProgram, l *mocks.MockLedger) (string, certificate.Fingerprint) {
	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", fixtures.Certificate(), fixtures.Key())
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}

	p.EXPECT().ProgramId().Return(programId).AnyTimes()
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", p, l, nil)

	ln, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return ln.Addr().String(), fingerprint
}

func newOwner(t *testing.T) *keypair.KeyPair {
	keyPair, err := keypair.New()
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	return keyPair
}

func TestSetFavorites(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	l := mocks.NewMockLedger(ctl)
	listen, fingerprint := startServer(t, p, l)

	owner := newOwner(t)

	// the signature must survive the trip over the wire
	p.EXPECT().Set(gomock.Any()).DoAndReturn(func(request *favorites.SetFavorites) error {
		_, err := request.Pack(programId)
		assert.Nil(t, err, "signature not valid at server")
		assert.Equal(t, uint64(9), request.Number, "wrong number")
		assert.Equal(t, "green", request.Color, "wrong color")
		assert.Equal(t, []string{"go", "lua"}, request.Hobbies, "wrong hobbies")
		return err
	}).Times(1)
	p.EXPECT().Address(gomock.Any()).Return(address, uint8(250), nil).Times(1)

	var verbose bytes.Buffer
	client, err := rpccalls.NewClient(listen, fingerprint, true, &verbose)
	if nil != err {
		t.Fatalf("client error: %s", err)
	}
	defer client.Close()

	reply, err := client.SetFavorites(&rpccalls.SetData{
		Owner:     owner,
		ProgramId: programId,
		Number:    9,
		Color:     "green",
		Hobbies:   []string{"go", "lua"},
	})
	assert.Nil(t, err, "wrong SetFavorites")
	assert.Equal(t, address, reply.Address, "wrong address")
	assert.Equal(t, uint8(250), reply.Bump, "wrong bump")
	assert.Contains(t, verbose.String(), "Set Request:", "missing verbose output")
}

func TestGetFavorites(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	l := mocks.NewMockLedger(ctl)
	listen, fingerprint := startServer(t, p, l)

	owner := newOwner(t)

	p.EXPECT().Get(gomock.Any()).DoAndReturn(func(request *favorites.GetFavorites) (*favorites.Record, error) {
		if _, err := request.Pack(programId); nil != err {
			return nil, err
		}
		return &favorites.Record{Number: 1, Color: "red"}, nil
	}).Times(1)
	p.EXPECT().Address(gomock.Any()).Return(address, uint8(250), nil).Times(1)

	client, err := rpccalls.NewClient(listen, fingerprint, false, nil)
	if nil != err {
		t.Fatalf("client error: %s", err)
	}
	defer client.Close()

	reply, err := client.GetFavorites(owner, programId)
	assert.Nil(t, err, "wrong GetFavorites")
	assert.Equal(t, uint64(1), reply.Number, "wrong number")
	assert.Equal(t, "red", reply.Color, "wrong color")
	assert.Equal(t, []string{}, reply.Hobbies, "wrong hobbies")

	_, err = client.GetFavorites(nil, programId)
	assert.Equal(t, fault.ErrMissingOwner, err, "missing owner")
}

func TestGetFavoritesError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	l := mocks.NewMockLedger(ctl)
	listen, fingerprint := startServer(t, p, l)

	p.EXPECT().Get(gomock.Any()).Return(nil, fault.ErrNotInitialised).Times(1)

	client, err := rpccalls.NewClient(listen, fingerprint, false, nil)
	if nil != err {
		t.Fatalf("client error: %s", err)
	}
	defer client.Close()

	_, err = client.GetFavorites(newOwner(t), programId)
	assert.NotNil(t, err, "wrong GetFavorites")
	assert.Equal(t, fault.ErrNotInitialised.Error(), err.Error(), "wrong error")
}

func TestAddressBalanceAirdropInfo(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockProgram(ctl)
	l := mocks.NewMockLedger(ctl)
	listen, fingerprint := startServer(t, p, l)

	owner := newOwner(t)
	ownerAddress, _ := derivation.AddressFromBytes(owner.PublicKey)

	p.EXPECT().Address(gomock.Any()).Return(address, uint8(250), nil).Times(1)
	l.EXPECT().Airdrop(ownerAddress, uint64(5000)).Return(nil).Times(1)
	l.EXPECT().Balance(ownerAddress).Return(uint64(5000)).Times(2)

	client, err := rpccalls.NewClient(listen, fingerprint, false, nil)
	if nil != err {
		t.Fatalf("client error: %s", err)
	}
	defer client.Close()

	addressReply, err := client.Address(owner.Account())
	assert.Nil(t, err, "wrong Address")
	assert.Equal(t, address, addressReply.Address, "wrong address")
	assert.Equal(t, programId, addressReply.ProgramId, "wrong program id")

	airdropReply, err := client.Airdrop(ownerAddress, 5000)
	assert.Nil(t, err, "wrong Airdrop")
	assert.Equal(t, uint64(5000), airdropReply.Lamports, "wrong airdrop lamports")

	balanceReply, err := client.GetBalance(ownerAddress)
	assert.Nil(t, err, "wrong GetBalance")
	assert.Equal(t, uint64(5000), balanceReply.Lamports, "wrong balance")

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, programId, info.ProgramId, "wrong program id")
	assert.Equal(t, chain.Localnet, info.Chain, "wrong chain")
}

func TestNewClientWithWrongFingerprint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	listen, fingerprint := startServer(t, mocks.NewMockProgram(ctl), mocks.NewMockLedger(ctl))

	fingerprint[31] ^= 0x01
	_, err := rpccalls.NewClient(listen, fingerprint, false, nil)
	assert.NotNil(t, err, "wrong certificate accepted")

	_, err = rpccalls.NewClient(net.JoinHostPort("127.0.0.1", "1"), certificate.Fingerprint{}, false, nil)
	assert.NotNil(t, err, "closed port accepted")
}
