// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/freelanced/fault"
)

// defaults used when configuration leaves the values at zero
const (
	DefaultLimit = 200
	DefaultBurst = 100

	// a request that would have to wait longer than this is refused
	maximumDelay = 2 * time.Second
)

// Limiter - a token bucket that can be reconfigured while in use
type Limiter struct {
	sync.RWMutex
	limiter *rate.Limiter
}

// New - a limiter allowing limit requests per second
func New(limit float64, burst int) *Limiter {
	return &Limiter{
		limiter: create(limit, burst),
	}
}

func create(limit float64, burst int) *rate.Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return rate.NewLimiter(rate.Limit(limit), burst)
}

// Set - replace the rate; the bucket starts full
func (l *Limiter) Set(limit float64, burst int) {
	r := create(limit, burst)
	l.Lock()
	l.limiter = r
	l.Unlock()
}

// Rate - current requests per second and burst
func (l *Limiter) Rate() (float64, int) {
	l.RLock()
	defer l.RUnlock()
	return float64(l.limiter.Limit()), l.limiter.Burst()
}

// Limit - wait for a single request slot
func (l *Limiter) Limit() error {
	l.RLock()
	r := l.limiter.Reserve()
	l.RUnlock()

	if !r.OK() {
		return fault.RateLimiting
	}
	delay := r.Delay()
	if delay > maximumDelay {
		r.Cancel()
		return fault.RateLimiting
	}
	time.Sleep(delay)
	return nil
}
