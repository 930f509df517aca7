// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/freelanced/codec"
)

// IDList - ordered list of entity ids used by the secondary indexes
type IDList []uint64

// Append - encode the list
func (list IDList) Append(buffer codec.Packed) codec.Packed {
	return buffer.AppendUint64s(list)
}

// Pack - standalone encoding
func (list IDList) Pack() codec.Packed {
	return list.Append(nil)
}

// Contains - true if id is present
func (list IDList) Contains(id uint64) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// Add - append id keeping the existing order, ignoring duplicates
func (list IDList) Add(id uint64) IDList {
	if list.Contains(id) {
		return list
	}
	return append(list, id)
}

// Remove - drop every occurrence of id keeping the order of the rest
func (list IDList) Remove(id uint64) IDList {
	result := make(IDList, 0, len(list))
	for _, v := range list {
		if v != id {
			result = append(result, v)
		}
	}
	if 0 == len(result) {
		return nil
	}
	return result
}

// UnpackIDList - read an id list
func UnpackIDList(u *codec.Unpacker) (IDList, error) {
	ids, err := u.Uint64s("IDList.ids")
	if nil != err {
		return nil, err
	}
	return IDList(ids), nil
}

// IDListFromBytes - decode a complete stored id list
func IDListFromBytes(buffer []byte) (IDList, error) {
	u := codec.NewUnpacker(buffer)
	list, err := UnpackIDList(u)
	if nil != err {
		return nil, err
	}
	if err := u.Done("IDList"); nil != err {
		return nil, err
	}
	return list, nil
}
