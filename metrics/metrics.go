// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/freelanced/fault"
)

// outcome label of a successful call
const OutcomeOK = "ok"

var (
	// contract calls by function and outcome
	Calls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freelanced_calls_total",
			Help: "Total number of contract calls",
		},
		[]string{"function", "outcome"},
	)

	// contract call latency
	CallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "freelanced_call_duration_seconds",
			Help:    "Contract call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		},
		[]string{"function"},
	)

	// committed events by name
	Events = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "freelanced_events_total",
			Help: "Total number of committed contract events",
		},
		[]string{"name"},
	)
)

// Outcome - label value for the result of a call
func Outcome(err error) string {
	if nil == err {
		return OutcomeOK
	}
	return fault.Kind(err)
}

// RecordCall - count a call and observe its duration
func RecordCall(function string, err error, duration time.Duration) {
	Calls.WithLabelValues(function, Outcome(err)).Inc()
	CallDuration.WithLabelValues(function).Observe(duration.Seconds())
}

// RecordEvent - count a committed event
func RecordEvent(name string) {
	Events.WithLabelValues(name).Inc()
}

// Serve - expose /metrics on listen
//
// does nothing if listen is empty
func Serve(log *logger.L, listen string) *http.Server {
	if "" == listen {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         listen,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("metrics listening on: %s", listen)
		err := server.ListenAndServe()
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("metrics server error: %s", err)
		}
	}()
	return server
}
