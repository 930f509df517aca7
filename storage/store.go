// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Store - the key value primitive supplied by the host
//
// Get returns nil for an absent key.  Map visits every key starting
// with prefix in ascending key order; returning an error from f stops
// the scan and the error is passed back.  Backend failures are not
// recoverable by the caller and panic.
type Store interface {
	Get(key []byte) []byte
	Has(key []byte) bool
	Put(key []byte, value []byte)
	Delete(key []byte)
	Map(prefix []byte, f func(key []byte, value []byte) error) error
}

// both backends satisfy the store
var (
	_ Store = (*LevelDB)(nil)
	_ Store = (*Transaction)(nil)
)
