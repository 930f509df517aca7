// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - execution environment of the contract
//
// Calls run one at a time.  Each mutating call sees a single
// transaction over committed state: on success every write is
// committed together and the call's events are published, on error
// or panic nothing is written and no event escapes.
package host
