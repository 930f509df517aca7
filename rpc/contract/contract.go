// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"errors"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/contract"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/host"
	"github.com/bitmark-inc/freelanced/rpc/ratelimit"
)

// Executor - what the service needs from the host
type Executor interface {
	Call(caller address.Address, function string, arguments []byte) (*host.Result, error)
	Read(caller address.Address, function string, arguments []byte) ([]byte, error)
}

// Contract - type for RPC calls
type Contract struct {
	Log      *logger.L
	Limiter  *ratelimit.Limiter
	Executor Executor
}

// New - create the service
func New(log *logger.L, limiter *ratelimit.Limiter, executor Executor) *Contract {
	return &Contract{
		Log:      log,
		Limiter:  limiter,
		Executor: executor,
	}
}

// CallArguments - a function invocation
//
// Arguments is the packed argument record, base64 in JSON
type CallArguments struct {
	Caller    string `json:"caller"`
	Function  string `json:"function"`
	Arguments []byte `json:"arguments"`
}

// CallReply - result of a committed call
type CallReply struct {
	Return    []byte           `json:"return"`
	Events    []contract.Event `json:"events"`
	Timestamp uint64           `json:"timestamp"`
}

// ReadReply - result of a view
type ReadReply struct {
	Return []byte `json:"return"`
}

// errors cross the wire as text, so carry the class name with them
func wireError(err error) error {
	if nil == err {
		return nil
	}
	return errors.New(fault.Kind(err) + ": " + err.Error())
}

func (c *Contract) caller(text string, required bool) (address.Address, error) {
	if "" == text {
		if required {
			return address.Empty, fault.InvalidAddress
		}
		return address.Empty, nil
	}
	a, err := address.Parse(text)
	if nil != err {
		return address.Empty, err
	}
	if address.User != a.Kind() {
		return address.Empty, fault.InvalidAddressKind
	}
	return a, nil
}

// Call - run a function as caller and commit its writes
func (c *Contract) Call(arguments *CallArguments, reply *CallReply) error {
	if err := c.Limiter.Limit(); nil != err {
		return wireError(err)
	}
	if nil == arguments || "" == arguments.Function {
		return wireError(fault.MissingParameters)
	}

	caller, err := c.caller(arguments.Caller, true)
	if nil != err {
		return wireError(err)
	}

	c.Log.Debugf("Call: %s  caller: %s  arguments: %x", arguments.Function, caller, arguments.Arguments)

	result, err := c.Executor.Call(caller, arguments.Function, arguments.Arguments)
	if nil != err {
		c.Log.Debugf("Call: %s  error: %s", arguments.Function, err)
		return wireError(err)
	}

	reply.Return = result.Return
	reply.Events = result.Events
	reply.Timestamp = result.Timestamp
	return nil
}

// Read - run a view function against committed state
//
// the caller is optional for views
func (c *Contract) Read(arguments *CallArguments, reply *ReadReply) error {
	if err := c.Limiter.Limit(); nil != err {
		return wireError(err)
	}
	if nil == arguments || "" == arguments.Function {
		return wireError(fault.MissingParameters)
	}

	caller, err := c.caller(arguments.Caller, false)
	if nil != err {
		return wireError(err)
	}

	result, err := c.Executor.Read(caller, arguments.Function, arguments.Arguments)
	if nil != err {
		return wireError(err)
	}
	reply.Return = result
	return nil
}
