// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/freelanced/fault"
)

// Transaction - batched writes over committed state
//
// reads see the transaction's own writes; nothing reaches the database
// until Commit, and Abort discards everything
type Transaction struct {
	sync.Mutex
	inUse bool
	db    *LevelDB
	batch *leveldb.Batch
	cache *dbCache
}

func newTransaction(db *LevelDB) *Transaction {
	return &Transaction{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (t *Transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

func (t *Transaction) mustBeActive() {
	if !t.inUse {
		logger.Panic("storage: transaction is not active")
	}
}

// InUse - true between Begin and Commit/Abort
func (t *Transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Size - number of pending operations
func (t *Transaction) Size() int {
	t.Lock()
	defer t.Unlock()
	return t.batch.Len()
}

// Put - buffer a write
func (t *Transaction) Put(key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeActive()

	v := append([]byte(nil), value...)
	t.cache.Set(dbPut, string(key), v)
	t.batch.Put(key, v)
}

// Delete - buffer a removal
func (t *Transaction) Delete(key []byte) {
	t.Lock()
	defer t.Unlock()
	t.mustBeActive()

	t.cache.Set(dbDelete, string(key), nil)
	t.batch.Delete(key)
}

// Get - pending value, else committed value, else nil
func (t *Transaction) Get(key []byte) []byte {
	t.Lock()
	value, present, cached := t.cache.Get(string(key))
	t.Unlock()

	if cached {
		if !present {
			return nil
		}
		return append([]byte(nil), value...)
	}
	return t.db.Get(key)
}

// Has - key exists after the pending operations
func (t *Transaction) Has(key []byte) bool {
	t.Lock()
	_, present, cached := t.cache.Get(string(key))
	t.Unlock()

	if cached {
		return present
	}
	return t.db.Has(key)
}

type element struct {
	key   []byte
	value []byte
}

// Map - scan committed keys merged with pending operations
func (t *Transaction) Map(prefix []byte, f func(key []byte, value []byte) error) error {
	t.Lock()
	pending := t.cache.Pending(string(prefix))
	t.Unlock()

	merged := make([]element, 0, len(pending))
	err := t.db.Map(prefix, func(key []byte, value []byte) error {
		if _, ok := pending[string(key)]; ok {
			return nil
		}
		merged = append(merged, element{key: key, value: value})
		return nil
	})
	if nil != err {
		return err
	}

	for key, data := range pending {
		if dbPut == data.op {
			merged = append(merged, element{
				key:   []byte(key),
				value: append([]byte(nil), data.value...),
			})
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return bytes.Compare(merged[i].key, merged[j].key) < 0
	})

	for _, e := range merged {
		if err := f(e.key, e.value); nil != err {
			return err
		}
	}
	return nil
}

// Commit - write all pending operations atomically and release
func (t *Transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotActive
	}

	err := t.db.write(t.batch)
	t.reset()
	return err
}

// Abort - discard all pending operations and release
func (t *Transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *Transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}
