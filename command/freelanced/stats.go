// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

type memoryStats struct {
	log *logger.L
}

func newMemoryStats(log *logger.L) *memoryStats {
	return &memoryStats{
		log: log,
	}
}

func (m *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		var s runtime.MemStats
		runtime.ReadMemStats(&s)

		a := s.Alloc / mega
		t := s.TotalAlloc / mega
		o := s.Sys / mega
		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  GC: %d", a, t, o, s.NumGC)

		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
	}
}
