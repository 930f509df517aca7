// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/freelanced/address"
)

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Connection string      `json:"_connection"`
		Info       interface{} `json:"info"`
	}{
		Connection: m.connect,
		Info:       response,
	})
}

type addressReply struct {
	Address address.Address `json:"address"`
	Kind    address.Kind    `json:"kind"`
}

// no connection needed
func runAddress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	seed, err := checkText(c.String("seed"), ErrRequiredSeed)
	if nil != err {
		return err
	}

	kind := address.User
	if c.Bool("contract") {
		kind = address.Contract
	}
	a, err := address.Derive(kind, []byte(seed))
	if nil != err {
		return err
	}
	return printJson(m.w, addressReply{Address: a, Kind: kind})
}
