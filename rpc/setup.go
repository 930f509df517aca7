// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/counter"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/host"
	"github.com/bitmark-inc/freelanced/rpc/certificate"
	"github.com/bitmark-inc/freelanced/rpc/listeners"
	"github.com/bitmark-inc/freelanced/rpc/ratelimit"
	"github.com/bitmark-inc/freelanced/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log      *logger.L
	limiter  *ratelimit.Limiter
	listener listeners.Listener
	count    counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the listeners
func Initialise(configuration *listeners.Configuration, version string, h *host.Host) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	var tlsConfig *tls.Config
	if "" != configuration.Certificate {
		c, fingerprint, err := certificate.Load(log, tlsName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", tlsName, fingerprint)
		tlsConfig = c
	} else {
		log.Warnf("%s: no certificate, serving without TLS", tlsName)
	}

	globalData.limiter = ratelimit.New(configuration.RateLimit, configuration.RateBurst)

	rpcServer := server.Create(log, version, h, globalData.limiter, &globalData.count)
	listener, err := listeners.NewRPC(configuration, log, &globalData.count, rpcServer, tlsConfig)
	if nil != err {
		return err
	}
	err = listener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = listener

	// all data initialised
	globalData.initialised = true
	return nil
}

// SetRateLimit - apply a new request rate to every service
func SetRateLimit(limit float64, burst int) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	globalData.limiter.Set(limit, burst)
	globalData.log.Infof("rate limit: %f  burst: %d", limit, burst)
	return nil
}

// Addresses - bound listen addresses
func Addresses() []net.Addr {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.listener {
		return nil
	}
	return globalData.listener.Addresses()
}

// Connections - number of open client connections
func Connections() uint64 {
	return globalData.count.Uint64()
}

// Finalise - stop the listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.listener.Close()
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}
