// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// freelance-cli - command line client for freelanced
//
// Every contract function has a sub-command; state changing commands
// need the global --caller address, views accept it optionally.
// Results are printed as JSON.
//
//   freelance-cli -c 127.0.0.1:2150 -a AU... create-project -T logo -b 500 -D 720h
//   freelance-cli project -p 1
package main
