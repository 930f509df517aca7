// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/command/freelance-cli/rpccalls"
	"github.com/bitmark-inc/freelanced/contract"
)

// output of a state changing call
type callResult struct {
	Function  string           `json:"function"`
	ID        *uint64          `json:"id,omitempty"`
	Events    []contract.Event `json:"events"`
	Timestamp uint64           `json:"timestamp"`
}

// converts the packed return of a view
type decoder func([]byte) (interface{}, error)

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s  tls: %t\n", m.connect, m.useTLS)
	}
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

// run a state changing function as the global caller
func call(m *metadata, function string, arguments contract.Arguments) error {
	caller, err := checkAddress(m.caller, ErrRequiredCaller)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Call(caller, function, arguments)
	if nil != err {
		return err
	}

	result := callResult{
		Function:  function,
		Events:    reply.Events,
		Timestamp: reply.Timestamp,
	}
	if 0 != len(reply.Return) {
		u := codec.NewUnpacker(reply.Return)
		id, err := u.Uint64("return")
		if nil != err {
			return err
		}
		if err := u.Done("return"); nil != err {
			return err
		}
		result.ID = &id
	}
	if nil == result.Events {
		result.Events = []contract.Event{}
	}

	return printJson(m.w, result)
}

// run a view, the caller is optional
func view(m *metadata, function string, arguments contract.Arguments, decode decoder) error {
	caller, err := checkAddress(m.caller, nil)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	b, err := client.Read(caller, function, arguments)
	if nil != err {
		return err
	}

	result, err := decode(b)
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
