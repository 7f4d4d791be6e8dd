// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/favoritesd/chain"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/logger"
)

// Mode - daemon run state
type Mode int32

// all possible modes
//
// the daemon moves Starting -> Normal -> Stopping -> Stopped and
// only Normal accepts favorites requests
const (
	Stopped Mode = iota
	Starting
	Normal
	Stopping
	maximum
)

// fixed for the lifetime of one Initialise
type settings struct {
	log     *logger.L
	chain   string
	testing bool
}

var (
	setup   sync.Mutex
	current atomic.Int32
	fixed   atomic.Pointer[settings]
)

// Initialise - select the chain and enter Starting mode
func Initialise(chainName string) error {
	setup.Lock()
	defer setup.Unlock()

	if nil != fixed.Load() {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("mode")
	log.Info("starting…")

	if !chain.Valid(chainName) {
		log.Criticalf("mode cannot handle chain: '%s'", chainName)
		return fault.ErrInvalidChain
	}

	fixed.Store(&settings{
		log:     log,
		chain:   chainName,
		testing: chain.IsTesting(chainName),
	})
	current.Store(int32(Starting))

	log.Infof("chain: %s  testing: %v", chainName, chain.IsTesting(chainName))
	return nil
}

// Finalise - enter Stopped mode and forget the chain
func Finalise() error {
	setup.Lock()
	defer setup.Unlock()

	s := fixed.Load()
	if nil == s {
		return fault.ErrNotInitialised
	}

	Set(Stopped)
	fixed.Store(nil)

	s.log.Info("finished")
	s.log.Flush()

	return nil
}

// Set - change mode, out of range values are ignored
func Set(mode Mode) {
	s := fixed.Load()

	if mode < Stopped || mode >= maximum {
		if nil != s {
			s.log.Errorf("ignore invalid set: %d", mode)
		}
		return
	}

	previous := Mode(current.Swap(int32(mode)))
	if nil != s && previous != mode {
		s.log.Infof("set: %s -> %s", previous, mode)
	}
}

// Is - detect mode
func Is(mode Mode) bool {
	return int32(mode) == current.Load()
}

// IsNot - detect mode
func IsNot(mode Mode) bool {
	return int32(mode) != current.Load()
}

// IsTesting - true on chains where lamports can be created freely
func IsTesting() bool {
	s := fixed.Load()
	return nil != s && s.testing
}

// ChainName - name of the current chain, empty before Initialise
func ChainName() string {
	s := fixed.Load()
	if nil == s {
		return ""
	}
	return s.chain
}

// String - current mode represented as a string
func String() string {
	return Mode(current.Load()).String()
}

// String - mode represented as a string
func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Starting:
		return "Starting"
	case Normal:
		return "Normal"
	case Stopping:
		return "Stopping"
	default:
		return "*Unknown*"
	}
}
