// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
)

func TestPackFixedWidth(t *testing.T) {
	p := codec.Packed{}
	p = p.AppendUint8(0xa5)
	p = p.AppendBool(true)
	p = p.AppendBool(false)
	p = p.AppendUint32(0x01020304)
	p = p.AppendUint64(0x0102030405060708)

	expected := []byte{
		0xa5,
		0x01,
		0x00,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	assert.Equal(t, expected, []byte(p), "packed bytes")

	u := codec.NewUnpacker(p)
	b, err := u.Uint8("a")
	assert.Nil(t, err, "uint8 error")
	assert.Equal(t, uint8(0xa5), b, "uint8")

	t1, err := u.Bool("b")
	assert.Nil(t, err, "bool error")
	assert.True(t, t1, "first bool")

	f1, err := u.Bool("c")
	assert.Nil(t, err, "bool error")
	assert.False(t, f1, "second bool")

	v32, err := u.Uint32("d")
	assert.Nil(t, err, "uint32 error")
	assert.Equal(t, uint32(0x01020304), v32, "uint32")

	v64, err := u.Uint64("e")
	assert.Nil(t, err, "uint64 error")
	assert.Equal(t, uint64(0x0102030405060708), v64, "uint64")

	assert.Nil(t, u.Done("record"), "trailing data")
	assert.Equal(t, len(expected), u.Offset(), "final offset")
}

func TestPackString(t *testing.T) {
	p := codec.String("héllo")
	expected := []byte{0x06, 0x00, 0x00, 0x00, 'h', 0xc3, 0xa9, 'l', 'l', 'o'}
	assert.Equal(t, expected, []byte(p), "packed string")

	s, err := codec.NewUnpacker(p).String("title")
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, "héllo", s, "string")

	empty := codec.String("")
	assert.Equal(t, []byte{0, 0, 0, 0}, []byte(empty), "empty string")
	s, err = codec.NewUnpacker(empty).String("title")
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, "", s, "empty string")
}

func TestPackExtremes(t *testing.T) {
	for _, v := range []uint64{0, 1, math.MaxUint32, math.MaxUint64} {
		p := codec.Uint64(v)
		assert.Equal(t, codec.Uint64Size, len(p), "size")
		u := codec.NewUnpacker(p)
		actual, err := u.Uint64("value")
		assert.Nil(t, err, "unpack error")
		assert.Equal(t, v, actual, "round trip")
	}
}

func TestPackLists(t *testing.T) {
	p := codec.Packed{}.
		AppendUint64s([]uint64{7, 9}).
		AppendStrings([]string{"a", "bc"}).
		AppendBytes([]byte{0xff})

	expected := []byte{
		0x02, 0x00, 0x00, 0x00,
		0x07, 0, 0, 0, 0, 0, 0, 0,
		0x09, 0, 0, 0, 0, 0, 0, 0,
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 'a',
		0x02, 0x00, 0x00, 0x00, 'b', 'c',
		0x01, 0x00, 0x00, 0x00, 0xff,
	}
	assert.Equal(t, expected, []byte(p), "packed lists")

	u := codec.NewUnpacker(p)
	ids, err := u.Uint64s("ids")
	assert.Nil(t, err, "uint64s error")
	assert.Equal(t, []uint64{7, 9}, ids, "ids")

	names, err := u.Strings("names")
	assert.Nil(t, err, "strings error")
	assert.Equal(t, []string{"a", "bc"}, names, "names")

	data, err := u.Bytes("data")
	assert.Nil(t, err, "bytes error")
	assert.Equal(t, []byte{0xff}, data, "data")

	assert.Nil(t, u.Done("lists"), "trailing data")
}

func TestUnpackEmptyList(t *testing.T) {
	p := codec.Packed{}.AppendUint64s(nil)
	ids, err := codec.NewUnpacker(p).Uint64s("ids")
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, 0, len(ids), "length")
}

func TestUnpackTruncated(t *testing.T) {
	full := codec.Packed{}.AppendUint64(42).AppendString("title")

	for i := 0; i < len(full); i += 1 {
		u := codec.NewUnpacker(full[:i])
		_, err := u.Uint64("Project.id")
		if nil == err {
			_, err = u.String("Project.title")
		}
		assert.NotNil(t, err, "truncated at %d", i)
		assert.True(t, fault.IsErrMalformed(err), "malformed at %d: %v", i, err)
	}
}

func TestUnpackNamesField(t *testing.T) {
	_, err := codec.NewUnpacker([]byte{1, 2}).Uint32("Milestone.amount")
	assert.Equal(t, "Milestone.amount missing", err.Error(), "message")
}

func TestUnpackInvalid(t *testing.T) {
	_, err := codec.NewUnpacker([]byte{2}).Bool("flag")
	assert.True(t, fault.IsErrMalformed(err), "bool 2: %v", err)

	bad := []byte{0x02, 0x00, 0x00, 0x00, 0xc3, 0x28}
	_, err = codec.NewUnpacker(bad).String("title")
	assert.True(t, fault.IsErrMalformed(err), "invalid utf-8: %v", err)

	// length points past the end
	long := []byte{0x10, 0x00, 0x00, 0x00, 'a'}
	_, err = codec.NewUnpacker(long).String("title")
	assert.True(t, fault.IsErrMalformed(err), "long string: %v", err)

	// huge count with no elements
	huge := []byte{0xff, 0xff, 0xff, 0xff}
	_, err = codec.NewUnpacker(huge).Uint64s("ids")
	assert.True(t, fault.IsErrMalformed(err), "huge count: %v", err)
}

func TestUnpackTrailing(t *testing.T) {
	u := codec.NewUnpacker([]byte{1, 2})
	_, err := u.Uint8("a")
	assert.Nil(t, err, "uint8 error")
	assert.Equal(t, 1, u.Remaining(), "remaining")
	err = u.Done("record")
	assert.True(t, fault.IsErrMalformed(err), "trailing: %v", err)
}

func TestUnpackAtOffset(t *testing.T) {
	p := codec.Packed{}.AppendUint8(9).AppendUint64(300)
	u := codec.NewUnpackerAt(p, 1)
	v, err := u.Uint64("value")
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, uint64(300), v, "value")
	assert.Equal(t, len(p), u.Offset(), "offset")
}
