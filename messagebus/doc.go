// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues that carry committed contract events
// from the host to background consumers
//
// Sending never blocks the caller: a full queue drops the message
// and counts it.
package messagebus
