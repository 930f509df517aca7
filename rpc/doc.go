// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC access to the contract
//
// Services:
//
//   Contract.Call  - run a mutating function as a caller
//   Contract.Read  - run a view function
//   Node.Info      - version, uptime, connection count, function list
//
// Errors are returned as "Kind: message" text.
package rpc
