// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/counter"
	"github.com/bitmark-inc/freelanced/host"
	"github.com/bitmark-inc/freelanced/rpc/contract"
	"github.com/bitmark-inc/freelanced/rpc/node"
	"github.com/bitmark-inc/freelanced/rpc/ratelimit"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, h *host.Host, limiter *ratelimit.Limiter, rpcCount *counter.Counter) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(contract.New(log, limiter, h))
	_ = server.Register(node.New(log, limiter, start, version, rpcCount, h))

	return server
}
