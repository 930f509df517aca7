// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
)

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes of the fixed width fields
const (
	Uint8Size  = 1
	Uint32Size = 4
	Uint64Size = 8
)

// AppendUint8 - append a single byte
func (buffer Packed) AppendUint8(value uint8) Packed {
	return append(buffer, value)
}

// AppendBool - append a boolean as a single 0x00/0x01 byte
func (buffer Packed) AppendBool(value bool) Packed {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}

// AppendUint32 - append a little endian uint32
func (buffer Packed) AppendUint32(value uint32) Packed {
	var b [Uint32Size]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

// AppendUint64 - append a little endian uint64
func (buffer Packed) AppendUint64(value uint64) Packed {
	var b [Uint64Size]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - append a string
//
// the field is prefixed by Uint32(byte length)
func (buffer Packed) AppendString(s string) Packed {
	buffer = buffer.AppendUint32(uint32(len(s)))
	return append(buffer, s...)
}

// AppendBytes - append a byte array
//
// the field is prefixed by Uint32(length)
func (buffer Packed) AppendBytes(data []byte) Packed {
	buffer = buffer.AppendUint32(uint32(len(data)))
	return append(buffer, data...)
}

// AppendStrings - append a list of strings
//
// the list is prefixed by Uint32(count)
func (buffer Packed) AppendStrings(list []string) Packed {
	buffer = buffer.AppendUint32(uint32(len(list)))
	for _, s := range list {
		buffer = buffer.AppendString(s)
	}
	return buffer
}

// AppendUint64s - append a list of uint64
//
// the list is prefixed by Uint32(count)
func (buffer Packed) AppendUint64s(list []uint64) Packed {
	buffer = buffer.AppendUint32(uint32(len(list)))
	for _, v := range list {
		buffer = buffer.AppendUint64(v)
	}
	return buffer
}

// Uint64 - a standalone encoded uint64, as used for counters and key parts
func Uint64(value uint64) Packed {
	return Packed(make([]byte, 0, Uint64Size)).AppendUint64(value)
}

// String - a standalone encoded string, as used for key parts
func String(s string) Packed {
	return Packed(make([]byte, 0, Uint32Size+len(s))).AppendString(s)
}
