// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"strings"

	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type cacheData struct {
	op    dbOperation
	value []byte
}

// pending writes of one transaction
//
// entries never expire: they are only dropped by Clear
type dbCache struct {
	cache *cache.Cache
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - returns cached = false if the key was not touched in this
// transaction, otherwise present says whether it currently exists
func (c *dbCache) Get(key string) (value []byte, present bool, cached bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, false, true
	}
	return data.value, true, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

// Pending - all cached operations on keys with the given prefix
func (c *dbCache) Pending(prefix string) map[string]cacheData {
	result := make(map[string]cacheData)
	for key, item := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			result[key] = item.Object.(cacheData)
		}
	}
	return result
}

func (c *dbCache) Count() int {
	return c.cache.ItemCount()
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
