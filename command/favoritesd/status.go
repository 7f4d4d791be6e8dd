// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/favoritesd/mode"
	"github.com/bitmark-inc/logger"
)

const (
	statusInterval = 5 * time.Minute
)

// periodic summary in the log file
type statusReporter struct {
	log         *logger.L
	interval    time.Duration
	connections func() uint64
	cached      func() int
}

func newStatusReporter(interval time.Duration, connections func() uint64, cached func() int) *statusReporter {
	return &statusReporter{
		log:         logger.New("status"),
		interval:    interval,
		connections: connections,
		cached:      cached,
	}
}

// Run - background process, args is the daemon start time
func (s *statusReporter) Run(args interface{}, shutdown <-chan struct{}) {

	start, ok := args.(time.Time)
	if !ok {
		start = time.Now()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.report(start)
		}
	}
	s.log.Info("stopped")
}

func (s *statusReporter) report(start time.Time) {
	s.log.Infof(
		"mode: %s  rpcs: %d  cached addresses: %d  uptime: %s",
		mode.String(),
		s.connections(),
		s.cached(),
		time.Since(start).Truncate(time.Second),
	)
}
