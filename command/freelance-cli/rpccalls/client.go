// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/contract"
	rpccontract "github.com/bitmark-inc/freelanced/rpc/contract"
	"github.com/bitmark-inc/freelanced/rpc/node"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a freelanced
//
// the daemon uses a self-signed certificate so it is not verified
func NewClient(connect string, useTLS bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.Dial("tcp", connect, tlsConfig)
	} else {
		conn, err = net.Dial("tcp", connect)
	}
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the freelanced connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// Call - run a state changing function as caller
func (c *Client) Call(caller address.Address, function string, arguments contract.Arguments) (*rpccontract.CallReply, error) {
	request := c.request(caller, function, arguments)

	var reply rpccontract.CallReply
	if err := c.client.Call("Contract.Call", request, &reply); nil != err {
		return nil, err
	}
	c.printf("return: %x\n", reply.Return)
	return &reply, nil
}

// Read - run a view function, caller may be empty
func (c *Client) Read(caller address.Address, function string, arguments contract.Arguments) ([]byte, error) {
	request := c.request(caller, function, arguments)

	var reply rpccontract.ReadReply
	if err := c.client.Call("Contract.Read", request, &reply); nil != err {
		return nil, err
	}
	c.printf("return: %x\n", reply.Return)
	return reply.Return, nil
}

// GetInfo - request status from freelanced
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.client.Call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func (c *Client) request(caller address.Address, function string, arguments contract.Arguments) *rpccontract.CallArguments {
	request := &rpccontract.CallArguments{
		Caller:   caller.String(),
		Function: function,
	}
	if nil != arguments {
		request.Arguments = arguments.Pack()
	}
	c.printf("function: %s  caller: %q  arguments: %x\n", function, request.Caller, request.Arguments)
	return request
}

func (c *Client) printf(format string, arguments ...interface{}) {
	if c.verbose && nil != c.handle {
		fmt.Fprintf(c.handle, format, arguments...)
	}
}
