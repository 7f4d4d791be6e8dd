// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/favoritesd/mode"
	"github.com/bitmark-inc/favoritesd/rpc/favorites"
	"github.com/bitmark-inc/favoritesd/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - register every RPC service on a new server
func Create(log *logger.L, version string, program favorites.Program, l node.Ledger, connections func() uint64) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(favorites.New(log, program, mode.Is))
	_ = server.Register(node.New(log, start, version, program.ProgramId(), l, connections, mode.Is, mode.IsTesting))

	return server
}
