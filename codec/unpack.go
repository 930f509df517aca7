// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/freelanced/fault"
)

// reasons attached to a malformed field
const (
	reasonMissing  = "missing"
	reasonInvalid  = "invalid"
	reasonTrailing = "trailing data"
)

// Unpacker - cursor over a packed buffer
//
// fields must be read in exactly the order they were appended; every
// read is bounds checked and a short buffer fails with a malformed
// error naming the field
type Unpacker struct {
	buffer []byte
	n      int
}

// NewUnpacker - start reading at the beginning of a buffer
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
		n:      0,
	}
}

// NewUnpackerAt - start reading at an offset
func NewUnpackerAt(buffer []byte, offset int) *Unpacker {
	if offset < 0 || offset > len(buffer) {
		offset = len(buffer)
	}
	return &Unpacker{
		buffer: buffer,
		n:      offset,
	}
}

// Offset - the cursor position
func (u *Unpacker) Offset() int {
	return u.n
}

// Remaining - number of unread bytes
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Done - check that the whole buffer was consumed
func (u *Unpacker) Done(field string) error {
	if u.n != len(u.buffer) {
		return fault.Malformed(field, reasonTrailing)
	}
	return nil
}

// take the next count bytes
func (u *Unpacker) next(count int, field string) ([]byte, error) {
	if count < 0 || count > u.Remaining() {
		return nil, fault.Malformed(field, reasonMissing)
	}
	b := u.buffer[u.n : u.n+count]
	u.n += count
	return b, nil
}

// Uint8 - read a single byte
func (u *Unpacker) Uint8(field string) (uint8, error) {
	b, err := u.next(Uint8Size, field)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

// Bool - read a 0x00/0x01 byte
func (u *Unpacker) Bool(field string) (bool, error) {
	b, err := u.Uint8(field)
	if nil != err {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fault.Malformed(field, reasonInvalid)
	}
}

// Uint32 - read a little endian uint32
func (u *Unpacker) Uint32(field string) (uint32, error) {
	b, err := u.next(Uint32Size, field)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 - read a little endian uint64
func (u *Unpacker) Uint64(field string) (uint64, error) {
	b, err := u.next(Uint64Size, field)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Bytes - read a length prefixed byte array
//
// the result is a copy and does not share the underlying buffer
func (u *Unpacker) Bytes(field string) ([]byte, error) {
	length, err := u.Uint32(field)
	if nil != err {
		return nil, err
	}
	b, err := u.next(int(length), field)
	if nil != err {
		return nil, err
	}
	result := make([]byte, len(b))
	copy(result, b)
	return result, nil
}

// String - read a length prefixed UTF-8 string
func (u *Unpacker) String(field string) (string, error) {
	length, err := u.Uint32(field)
	if nil != err {
		return "", err
	}
	b, err := u.next(int(length), field)
	if nil != err {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fault.Malformed(field, reasonInvalid)
	}
	return string(b), nil
}

// Count - read a list element count
//
// each element occupies at least minimumSize bytes so a count that
// cannot possibly fit in the remaining buffer is rejected up front
func (u *Unpacker) Count(field string, minimumSize int) (int, error) {
	count, err := u.Uint32(field)
	if nil != err {
		return 0, err
	}
	if minimumSize > 0 && uint64(count)*uint64(minimumSize) > uint64(u.Remaining()) {
		return 0, fault.Malformed(field, reasonMissing)
	}
	return int(count), nil
}

// Strings - read a count prefixed list of strings
//
// an empty list is returned as nil
func (u *Unpacker) Strings(field string) ([]string, error) {
	count, err := u.Count(field, Uint32Size)
	if nil != err || 0 == count {
		return nil, err
	}
	list := make([]string, 0, count)
	for i := 0; i < count; i += 1 {
		s, err := u.String(field)
		if nil != err {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// Uint64s - read a count prefixed list of uint64
func (u *Unpacker) Uint64s(field string) ([]uint64, error) {
	count, err := u.Count(field, Uint64Size)
	if nil != err || 0 == count {
		return nil, err
	}
	list := make([]uint64, 0, count)
	for i := 0; i < count; i += 1 {
		v, err := u.Uint64(field)
		if nil != err {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}
