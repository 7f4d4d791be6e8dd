// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/rpc/certificate"
	"github.com/bitmark-inc/favoritesd/rpc/fixtures"
	"github.com/bitmark-inc/favoritesd/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newListener(t *testing.T, maximumConnections uint64) (listeners.Listener, string) {
	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	con := listeners.RPCConfiguration{
		MaximumConnections: maximumConnections,
		Listen:             []string{listen},
	}

	s := rpc.NewServer()
	err := s.Register(Add{})
	if nil != err {
		t.Fatalf("register with error: %s", err)
	}

	tlsConfig, fin, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		fixtures.Certificate(),
		fixtures.Key(),
	)
	if nil != err {
		t.Fatalf("get certificate with error: %s", err)
	}

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), s, tlsConfig, fin)
	assert.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	assert.Nil(t, err, "wrong Serve")
	t.Cleanup(func() { _ = l.Close() })

	return l, listen
}

func TestRpcListenerServe(t *testing.T) {
	_, listen := newListener(t, 5)

	c, err := tls.Dial("tcp", listen, certificate.ClientConfig(certificate.Fingerprint{}))
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}

	arg := AddArg{
		A: 2,
		B: 5,
	}
	var reply int

	client := jsonrpc.NewClient(c)
	defer client.Close()

	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
}

func TestRpcListenerCountsConnections(t *testing.T) {
	l, listen := newListener(t, 5)

	c, err := tls.Dial("tcp", listen, certificate.ClientConfig(certificate.Fingerprint{}))
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	client := jsonrpc.NewClient(c)

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, uint64(1), l.Connections(), "wrong connection count")

	client.Close()
	assert.Eventually(t, func() bool { return 0 == l.Connections() }, time.Second, 10*time.Millisecond, "connection not released")
}

func TestRpcListenerWhenMaxConnectionCountReached(t *testing.T) {
	_, listen := newListener(t, 1)

	first, err := tls.Dial("tcp", listen, certificate.ClientConfig(certificate.Fingerprint{}))
	if nil != err {
		t.Fatalf("dial with error: %s", err)
	}
	client := jsonrpc.NewClient(first)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	assert.Nil(t, err, "wrong client Call")

	// the server closes the second connection before any request is served
	second, err := tls.Dial("tcp", listen, certificate.ClientConfig(certificate.Fingerprint{}))
	if nil == err {
		other := jsonrpc.NewClient(second)
		defer other.Close()
		err = other.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply)
	}
	assert.NotNil(t, err, "connection over limit was served")
}

func TestNewRPCWithInvalidConfiguration(t *testing.T) {
	log := logger.New(fixtures.LogCategory)
	s := rpc.NewServer()

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:2130"},
	}, log, s, nil, certificate.Fingerprint{})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
	}, log, s, nil, certificate.Fingerprint{})
	assert.Equal(t, fault.ErrMissingParameters, err, "no listen")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"localhost:2130"},
	}, log, s, nil, certificate.Fingerprint{})
	assert.Equal(t, fault.ErrInvalidIPAddress, err, "host name accepted")
}
