// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"math"

	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
)

func decodeUint64(buffer []byte) (uint64, error) {
	u := codec.NewUnpacker(buffer)
	value, err := u.Uint64("Counter.value")
	if nil != err {
		return 0, err
	}
	if err := u.Done("Counter"); nil != err {
		return 0, err
	}
	return value, nil
}

// Counter - current value, zero if never written
func (s *State) Counter(key []byte) (uint64, error) {
	buffer := s.store.Get(key)
	if nil == buffer {
		return 0, nil
	}
	value, err := decodeUint64(buffer)
	if nil != err {
		return 0, corrupt("counter", key, err)
	}
	return value, nil
}

// SetCounter - overwrite a counter
func (s *State) SetCounter(key []byte, value uint64) {
	s.store.Put(key, codec.Uint64(value))
}

// NextID - allocate the next id from a counter
//
// the counter holds the last id handed out so the first id is 1
func (s *State) NextID(key []byte) (uint64, error) {
	return s.AddCounter(key, 1)
}

// AddCounter - increase a counter and return the new value
func (s *State) AddCounter(key []byte, amount uint64) (uint64, error) {
	value, err := s.Counter(key)
	if nil != err {
		return 0, err
	}
	if amount > math.MaxUint64-value {
		return 0, fault.InvalidCount
	}
	value += amount
	s.SetCounter(key, value)
	return value, nil
}
