// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/background"
)

type ticker struct {
	ticks   uint64
	stopped uint32
}

func (p *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	delay := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(delay):
			atomic.AddUint64(&p.ticks, 1)
		}
	}
	atomic.StoreUint32(&p.stopped, 1)
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	h := background.Start(background.Processes{p1, p2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	h.Stop()

	assert.Equal(t, uint32(1), atomic.LoadUint32(&p1.stopped), "first process not stopped")
	assert.Equal(t, uint32(1), atomic.LoadUint32(&p2.stopped), "second process not stopped")
	assert.NotZero(t, atomic.LoadUint64(&p1.ticks), "first process never ran")
	assert.NotZero(t, atomic.LoadUint64(&p2.ticks), "second process never ran")

	// a stopped process does not run again
	ticks := atomic.LoadUint64(&p1.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, atomic.LoadUint64(&p1.ticks), "ticks after stop")
}

func TestStopTwice(t *testing.T) {
	h := background.Start(background.Processes{&ticker{}}, time.Millisecond)
	h.Stop()
	h.Stop()

	var none *background.T
	none.Stop()
}
