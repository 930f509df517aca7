// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"net/rpc/jsonrpc"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/contract"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/host"
	"github.com/bitmark-inc/freelanced/rpc"
	rpccontract "github.com/bitmark-inc/freelanced/rpc/contract"
	"github.com/bitmark-inc/freelanced/rpc/listeners"
	"github.com/bitmark-inc/freelanced/rpc/node"
	"github.com/bitmark-inc/freelanced/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func TestInitialiseServeFinalise(t *testing.T) {
	assert.Equal(t, fault.NotInitialised, rpc.SetRateLimit(10, 10), "rate limit before start")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "finalise before start")

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory error: %s", err)
	}
	defer db.Close()

	client, _ := address.Derive(address.User, []byte("client"))
	h := host.New(logger.New("host"), db, nil, nil)
	if err := h.Deploy(client, address.Empty); nil != err {
		t.Fatalf("deploy error: %s", err)
	}

	configuration := listeners.Configuration{
		MaximumConnections: 10,
		Listen:             []string{"127.0.0.1:0"},
	}
	err = rpc.Initialise(&configuration, "0.1", h)
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	assert.Equal(t, fault.AlreadyInitialised, rpc.Initialise(&configuration, "0.1", h), "second initialise")

	addrs := rpc.Addresses()
	if !assert.Equal(t, 1, len(addrs), "addresses") {
		t.FailNow()
	}

	conn, err := jsonrpc.Dial("tcp", addrs[0].String())
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}

	var info node.InfoReply
	err = conn.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "info error")
	assert.Equal(t, "0.1", info.Version, "version")
	assert.True(t, info.Initialised, "initialised")
	assert.Equal(t, uint64(1), info.RPCs, "connections")

	create := contract.CreateProjectArguments{
		Title:    "audit",
		Budget:   100,
		Deadline: uint64(time.Now().Unix()) + 86400,
	}
	var reply rpccontract.CallReply
	err = conn.Call("Contract.Call", &rpccontract.CallArguments{
		Caller:    client.String(),
		Function:  "createProject",
		Arguments: create.Pack(),
	}, &reply)
	assert.Nil(t, err, "call error")
	assert.Equal(t, []byte(codec.Uint64(1)), reply.Return, "project id")

	var read rpccontract.ReadReply
	err = conn.Call("Contract.Read", &rpccontract.CallArguments{
		Function: "getPlatformFees",
	}, &read)
	assert.Nil(t, err, "read error")
	assert.Equal(t, []byte(codec.Uint64(0)), read.Return, "fees")

	err = conn.Call("Contract.Read", &rpccontract.CallArguments{
		Function:  "getProjectView",
		Arguments: (&contract.ProjectArguments{ProjectID: 7}).Pack(),
	}, &read)
	if assert.NotNil(t, err, "missing project") {
		assert.Equal(t, "NotFound: project not found", err.Error(), "error text")
	}

	assert.Nil(t, rpc.SetRateLimit(50, 5), "rate limit")

	conn.Close()
	assert.Nil(t, rpc.Finalise(), "finalise")
	assert.Nil(t, rpc.Addresses(), "addresses after finalise")
}
