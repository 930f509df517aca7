// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/contract"
	"github.com/bitmark-inc/freelanced/counter"
	"github.com/bitmark-inc/freelanced/rpc/ratelimit"
)

// Deployment - reports whether the contract has been deployed
type Deployment interface {
	Initialised() bool
}

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *ratelimit.Limiter
	Start      time.Time
	Version    string
	Deployment Deployment
	counter    *counter.Counter
}

// New - create the service
func New(log *logger.L, limiter *ratelimit.Limiter, start time.Time, version string, counter *counter.Counter, deployment Deployment) *Node {
	return &Node{
		Log:        log,
		Limiter:    limiter,
		Start:      start,
		Version:    version,
		Deployment: deployment,
		counter:    counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version     string   `json:"version"`
	Uptime      string   `json:"uptime"`
	RPCs        uint64   `json:"rpcs"`
	Initialised bool     `json:"initialised"`
	Functions   []string `json:"functions"`
	Views       []string `json:"views"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := node.Limiter.Limit(); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Initialised = nil != node.Deployment && node.Deployment.Initialised()

	reply.Functions = []string{}
	reply.Views = []string{}
	for _, name := range contract.Functions() {
		view, _ := contract.IsView(name)
		if view {
			reply.Views = append(reply.Views, name)
		} else {
			reply.Functions = append(reply.Functions, name)
		}
	}
	return nil
}
