// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/state"
	"github.com/bitmark-inc/freelanced/storage"
)

const (
	defaultCount = 20
)

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "hex", HasArg: getoptions.NO_ARGUMENT, Short: 'x'},
		{Long: "verify", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		usage(program)
		return
	}

	count := defaultCount
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count < 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	db, err := storage.Open(arguments[0], storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: open: %q  error: %s", program, arguments[0], err)
	}
	defer db.Close()

	if len(options["verify"]) > 0 {
		ok, err := verify(os.Stdout, state.New(db))
		if nil != err {
			exitwithstatus.Message("%s: verify error: %s", program, err)
		}
		if !ok {
			exitwithstatus.Exit(1)
		}
		return
	}

	if len(arguments) < 2 {
		listTables(os.Stdout)
		return
	}

	table, ok := keyspace.ByName(arguments[1])
	if !ok {
		exitwithstatus.Message("%s: no table corresponding to: %q", program, arguments[1])
	}

	err = dump(os.Stdout, db, table, count, len(options["hex"]) > 0)
	if nil != err {
		exitwithstatus.Message("%s: dump error: %s", program, err)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--count=N] [--hex] database [table]\n", program)
	fmt.Printf("       %s --verify database\n", program)
	listTables(os.Stdout)
}
