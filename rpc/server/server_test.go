// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/favoritesd/chain"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/favorites"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/keypair"
	"github.com/bitmark-inc/favoritesd/ledger"
	"github.com/bitmark-inc/favoritesd/mode"
	rpcfavorites "github.com/bitmark-inc/favoritesd/rpc/favorites"
	"github.com/bitmark-inc/favoritesd/rpc/fixtures"
	"github.com/bitmark-inc/favoritesd/rpc/node"
	"github.com/bitmark-inc/favoritesd/rpc/server"
	"github.com/bitmark-inc/favoritesd/storage"
	"github.com/bitmark-inc/logger"
)

var (
	programId = derivation.MustAddress(favorites.DefaultProgramId)
	listen    string
)

// following tests run every service end to end over JSON-RPC
// against a real ledger
func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	database := filepath.Join("testing", "server.leveldb")
	if err := storage.Initialise(database, storage.ReadWrite); nil != err {
		panic(err)
	}
	trx, err := storage.Transactor()
	if nil != err {
		panic(err)
	}

	if err := mode.Initialise(chain.Localnet); nil != err {
		panic(err)
	}
	mode.Set(mode.Normal)

	l := ledger.New(storage.Pool.Accounts, trx)
	p := favorites.New(programId, l)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", p, l, func() uint64 { return 1 })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	listen = ln.Addr().String()
	go func() {
		for {
			conn, err := ln.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = ln.Close()
	_ = mode.Finalise()
	storage.Finalise()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newClient(t *testing.T) *rpc.Client {
	conn, err := net.Dial("tcp", listen)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newFundedOwner(t *testing.T, client *rpc.Client) *keypair.KeyPair {
	keyPair, err := keypair.New()
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	address, _ := derivation.AddressFromBytes(keyPair.PublicKey)

	var reply node.AirdropReply
	err = client.Call("Node.Airdrop", &node.AirdropArguments{Address: address, Lamports: 10000000}, &reply)
	if nil != err {
		t.Fatalf("airdrop error: %s", err)
	}
	return keyPair
}

func TestNodeInfo(t *testing.T) {
	client := newClient(t)

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Localnet, reply.Chain, "wrong chain")
	assert.Equal(t, programId, reply.ProgramId, "wrong program id")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")
}

func TestNodeBalance(t *testing.T) {
	client := newClient(t)
	keyPair := newFundedOwner(t, client)
	address, _ := derivation.AddressFromBytes(keyPair.PublicKey)

	var reply node.BalanceReply
	err := client.Call("Node.Balance", &node.BalanceArguments{Address: address}, &reply)
	assert.Nil(t, err, "wrong Node.Balance")
	assert.Equal(t, uint64(10000000), reply.Lamports, "wrong lamports")
}

func TestFavoritesRoundTrip(t *testing.T) {
	client := newClient(t)
	keyPair := newFundedOwner(t, client)

	set := favorites.SetFavorites{
		Owner:     keyPair.Account(),
		Timestamp: uint64(time.Now().Unix()),
		Number:    18446744073709551615,
		Color:     "purple",
		Hobbies:   []string{"skiing", "skydiving", "biking"},
	}
	set.Sign(programId, keyPair)

	var setReply rpcfavorites.SetReply
	err := client.Call("Favorites.Set", &set, &setReply)
	assert.Nil(t, err, "wrong Favorites.Set")

	var addressReply rpcfavorites.AddressReply
	err = client.Call("Favorites.Address", &rpcfavorites.AddressArguments{Owner: keyPair.Account()}, &addressReply)
	assert.Nil(t, err, "wrong Favorites.Address")
	assert.Equal(t, setReply.Address, addressReply.Address, "wrong address")
	assert.Equal(t, setReply.Bump, addressReply.Bump, "wrong bump")

	get := favorites.GetFavorites{
		Owner: keyPair.Account(),
	}
	get.Sign(programId, keyPair)

	var getReply rpcfavorites.GetReply
	err = client.Call("Favorites.Get", &get, &getReply)
	assert.Nil(t, err, "wrong Favorites.Get")
	assert.Equal(t, setReply.Address, getReply.Address, "wrong address")
	assert.Equal(t, set.Number, getReply.Number, "wrong number")
	assert.Equal(t, set.Color, getReply.Color, "wrong color")
	assert.Equal(t, set.Hobbies, getReply.Hobbies, "wrong hobbies")

	var balance node.BalanceReply
	err = client.Call("Node.Balance", &node.BalanceArguments{Address: setReply.Address}, &balance)
	assert.Nil(t, err, "wrong Node.Balance")
	assert.Equal(t, ledger.MinimumBalance(favorites.Space), balance.Lamports, "wrong rent deposit")
}

func TestFavoritesGetBeforeSet(t *testing.T) {
	client := newClient(t)
	keyPair, _ := keypair.New()

	get := favorites.GetFavorites{
		Owner: keyPair.Account(),
	}
	get.Sign(programId, keyPair)

	var reply rpcfavorites.GetReply
	err := client.Call("Favorites.Get", &get, &reply)
	assert.NotNil(t, err, "wrong Favorites.Get")
	assert.Equal(t, fault.ErrNotInitialised.Error(), err.Error(), "wrong error")
}

func TestFavoritesSetRejected(t *testing.T) {
	client := newClient(t)
	keyPair := newFundedOwner(t, client)

	set := favorites.SetFavorites{
		Owner:     keyPair.Account(),
		Timestamp: uint64(time.Now().Unix()),
		Hobbies:   []string{"a", "b", "c", "d", "e", "f"},
	}
	set.Sign(programId, keyPair)

	var reply rpcfavorites.SetReply
	err := client.Call("Favorites.Set", &set, &reply)
	assert.NotNil(t, err, "wrong Favorites.Set")
	assert.Equal(t, fault.ErrTooManyHobbies.Error(), err.Error(), "wrong error")
}

func TestFavoritesSetUnsigned(t *testing.T) {
	client := newClient(t)
	keyPair := newFundedOwner(t, client)

	set := favorites.SetFavorites{
		Owner: keyPair.Account(),
		Color: "red",
	}

	var reply rpcfavorites.SetReply
	err := client.Call("Favorites.Set", &set, &reply)
	assert.NotNil(t, err, "wrong Favorites.Set")
	assert.Equal(t, fault.ErrInvalidSignature.Error(), err.Error(), "wrong error")
}

func TestFavoritesSetReplayed(t *testing.T) {
	client := newClient(t)
	keyPair := newFundedOwner(t, client)

	set := favorites.SetFavorites{
		Owner:     keyPair.Account(),
		Timestamp: uint64(time.Now().Unix()),
		Color:     "teal",
	}
	set.Sign(programId, keyPair)

	var reply rpcfavorites.SetReply
	err := client.Call("Favorites.Set", &set, &reply)
	assert.Nil(t, err, "wrong Favorites.Set")

	err = client.Call("Favorites.Set", &set, &reply)
	assert.NotNil(t, err, "replayed Favorites.Set accepted")
	assert.Equal(t, fault.ErrRequestReplayed.Error(), err.Error(), "wrong error")
}
