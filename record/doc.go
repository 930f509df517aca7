// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - contract entities and their canonical encoding
//
// each entity has an Append method writing its fields in declaration
// order and a matching unpack function that validates every field it
// reads.  The FromBytes variants are for top-level values and reject
// trailing data.
package record
