// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/rpc/certificate"
	"github.com/bitmark-inc/favoritesd/rpc/favorites"
	"github.com/bitmark-inc/favoritesd/rpc/listeners"
	"github.com/bitmark-inc/favoritesd/rpc/node"
	"github.com/bitmark-inc/favoritesd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener    listeners.Listener
	fingerprint certificate.Fingerprint

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the client RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, version string, program favorites.Program, l node.Ledger) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	var listener listeners.Listener
	connections := func() uint64 {
		return listener.Connections()
	}

	listener, err = listeners.NewRPC(
		configuration,
		log,
		server.Create(log, version, program, l, connections),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = listener.Serve()
	if nil != err {
		return err
	}

	globalData.listener = listener
	globalData.fingerprint = fingerprint

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	_ = globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Fingerprint - certificate fingerprint clients can pin
func Fingerprint() certificate.Fingerprint {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.fingerprint
}

// Connections - number of client connections currently open
func Connections() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return 0
	}
	return globalData.listener.Connections()
}
