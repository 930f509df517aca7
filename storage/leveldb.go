// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/keyspace"
)

// current database layout
const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// LevelDB - committed contract state
type LevelDB struct {
	sync.Mutex
	db  *leveldb.DB
	trx *Transaction
}

// Open - open up a database file
//
// an empty database is tagged with the current version, a newer
// version is refused
func Open(name string, readOnly bool) (*LevelDB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - an empty database held in memory, for tests and tools
func OpenMemory() (*LevelDB, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*LevelDB, error) {
	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fault.IncompatibleDatabase
	}

	if 0 == version {
		if readOnly {
			db.Close()
			return nil, fault.IncompatibleDatabase
		}
		err := putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	l := &LevelDB{
		db: db,
	}
	l.trx = newTransaction(l)
	return l, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(keyspace.VersionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(keyspace.VersionKey, currentVersion, nil)
}

// Close - release the database
func (l *LevelDB) Close() {
	l.Lock()
	defer l.Unlock()
	if nil != l.db {
		l.db.Close()
		l.db = nil
	}
}

// Begin - start the single transaction
func (l *LevelDB) Begin() (*Transaction, error) {
	if nil == l.db {
		return nil, fault.DatabaseIsNotSet
	}
	err := l.trx.begin()
	if nil != err {
		return nil, err
	}
	return l.trx, nil
}

// Get - committed value or nil
func (l *LevelDB) Get(key []byte) []byte {
	value, err := l.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage.Get", err)
	return value
}

// Has - committed key exists
func (l *LevelDB) Has(key []byte) bool {
	found, err := l.db.Has(key, nil)
	logger.PanicIfError("storage.Has", err)
	return found
}

// Put - write directly, outside any transaction
func (l *LevelDB) Put(key []byte, value []byte) {
	err := l.db.Put(key, value, nil)
	logger.PanicIfError("storage.Put", err)
}

// Delete - remove directly, outside any transaction
func (l *LevelDB) Delete(key []byte) {
	err := l.db.Delete(key, nil)
	logger.PanicIfError("storage.Delete", err)
}

// Map - scan committed keys under a prefix
func (l *LevelDB) Map(prefix []byte, f func(key []byte, value []byte) error) error {
	iter := l.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are only valid until the next call to Next
		key := append([]byte(nil), iter.Key()...)
		value := append([]byte(nil), iter.Value()...)
		if err := f(key, value); nil != err {
			return err
		}
	}
	err := iter.Error()
	logger.PanicIfError("storage.Map", err)
	return nil
}

func (l *LevelDB) write(batch *leveldb.Batch) error {
	return l.db.Write(batch, nil)
}
