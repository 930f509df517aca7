// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - flat binary encoding of contract data
//
// Format:
//
//   u8      - 1 byte
//   bool    - 1 byte, 0x00 or 0x01
//   u32/u64 - little endian, 4/8 bytes
//   string  - u32(byte length) ++ UTF-8 bytes
//   bytes   - u32(length) ++ raw bytes
//   list    - u32(count) ++ elements
//   record  - fields inline in declaration order, no prefix
//
// There is no tag or schema in the output; a reader must know the
// field sequence.  Enumerations are range checked by the record
// layer, not here.
package codec
