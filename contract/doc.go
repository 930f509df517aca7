// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - freelance marketplace lifecycle
//
// every exported operation takes a Context supplied by the host (caller,
// timestamp and store) and either succeeds completely or returns the
// first error found.  Nothing is rolled back here: the host runs each
// call inside a storage transaction and discards it on error.
//
// Call is the encoded entry point: it decodes the arguments for a named
// function, runs it and encodes the result.
package contract
