// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/mode"
	"github.com/bitmark-inc/favoritesd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100

	// airdrops are throttled separately
	rateLimitAirdrop = 1
	rateBurstAirdrop = 10
)

// Ledger - the balance operations served to clients
type Ledger interface {
	Balance(derivation.Address) uint64
	Airdrop(derivation.Address, uint64) error
}

// Node - type for RPC calls
type Node struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	AirdropLimiter *rate.Limiter
	Start          time.Time
	Version        string
	ProgramId      derivation.Address
	Ledger         Ledger
	Connections    func() uint64
	IsNormalMode   func(mode.Mode) bool
	IsTestingChain func() bool
}

// New - create the RPC handler
func New(
	log *logger.L,
	start time.Time,
	version string,
	programId derivation.Address,
	l Ledger,
	connections func() uint64,
	isNormalMode func(mode.Mode) bool,
	isTestingChain func() bool,
) *Node {
	return &Node{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitNode, rateBurstNode),
		AirdropLimiter: rate.NewLimiter(rateLimitAirdrop, rateBurstAirdrop),
		Start:          start,
		Version:        version,
		ProgramId:      programId,
		Ledger:         l,
		Connections:    connections,
		IsNormalMode:   isNormalMode,
		IsTestingChain: isTestingChain,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string             `json:"chain"`
	Mode      string             `json:"mode"`
	ProgramId derivation.Address `json:"programId"`
	RPCs      uint64             `json:"rpcs"`
	Version   string             `json:"version"`
	Uptime    string             `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.ProgramId = node.ProgramId
	if nil != node.Connections {
		reply.RPCs = node.Connections()
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}

// ---

// BalanceArguments - account to query
type BalanceArguments struct {
	Address derivation.Address `json:"address"`
}

// BalanceReply - lamports held
type BalanceReply struct {
	Lamports uint64 `json:"lamports,string"`
}

// Balance - lamports held by an address, zero if it does not exist
func (node *Node) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if !node.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringMode
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	reply.Lamports = node.Ledger.Balance(arguments.Address)
	return nil
}

// ---

// AirdropArguments - credit request
type AirdropArguments struct {
	Address  derivation.Address `json:"address"`
	Lamports uint64             `json:"lamports,string"`
}

// AirdropReply - balance after the credit
type AirdropReply struct {
	Lamports uint64 `json:"lamports,string"`
}

// Airdrop - credit lamports to an address, testing chains only
func (node *Node) Airdrop(arguments *AirdropArguments, reply *AirdropReply) error {

	if err := ratelimit.Limit(node.AirdropLimiter); nil != err {
		return err
	}

	if !node.IsNormalMode(mode.Normal) {
		return fault.ErrNotAvailableDuringMode
	}

	if !node.IsTestingChain() {
		return fault.ErrNotAvailableOnChain
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	err := node.Ledger.Airdrop(arguments.Address, arguments.Lamports)
	if nil != err {
		return err
	}

	node.Log.Infof("airdrop: %s  lamports: %d", arguments.Address, arguments.Lamports)

	reply.Lamports = node.Ledger.Balance(arguments.Address)
	return nil
}
