// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyspace_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/keyspace"
)

func TestTablesArePrefixFree(t *testing.T) {
	all := keyspace.All()
	assert.Equal(t, 9, len(all), "table count")

	for i, a := range all {
		assert.Equal(t, 1, len(a.Prefix()), "%s prefix length", a.Name())
		assert.NotEqual(t, byte(0), a.Prefix()[0], "%s uses reserved prefix", a.Name())
		assert.False(t, a.Owns(keyspace.VersionKey), "%s owns version key", a.Name())
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, bytes.HasPrefix(a.Prefix(), b.Prefix()), "%s is prefixed by %s", a.Name(), b.Name())
		}
	}
}

func TestByName(t *testing.T) {
	p, ok := keyspace.ByName("Projects")
	assert.True(t, ok, "by name")
	assert.Equal(t, keyspace.Tables.Projects, p, "projects")

	m, ok := keyspace.ByName("M")
	assert.True(t, ok, "by prefix")
	assert.Equal(t, keyspace.Tables.Milestones, m, "milestones")

	_, ok = keyspace.ByName("nothing")
	assert.False(t, ok, "unknown table")
}

func TestProjectKey(t *testing.T) {
	key := keyspace.ProjectKey(0x0102)
	assert.Equal(t, []byte{'P', 0x02, 0x01, 0, 0, 0, 0, 0, 0}, key, "project key")
	assert.True(t, keyspace.Tables.Projects.Owns(key), "owned")
	assert.Equal(t, key[1:], keyspace.Tables.Projects.Suffix(key), "suffix")
	assert.Nil(t, keyspace.Tables.Milestones.Suffix(key), "foreign suffix")
}

func TestKeysAreDistinct(t *testing.T) {
	alice, err := address.Derive(address.User, []byte("alice"))
	assert.Nil(t, err, "derive")
	bob, err := address.Derive(address.User, []byte("bob"))
	assert.Nil(t, err, "derive")

	keys := [][]byte{
		keyspace.ProjectKey(1),
		keyspace.ProjectKey(2),
		keyspace.MilestoneKey(1, 1),
		keyspace.MilestoneKey(1, 2),
		keyspace.MilestoneKey(2, 1),
		keyspace.RatingKey(alice, 1),
		keyspace.RatingKey(bob, 1),
		keyspace.RatedByKey(1, alice),
		keyspace.RatedByKey(1, bob),
		keyspace.DisputeKey(1, 1),
		keyspace.UserProjectsKey(alice),
		keyspace.UserProjectsKey(bob),
		keyspace.StatusIndexKey(0),
		keyspace.StatusIndexKey(1),
		keyspace.ProjectCounterKey(),
		keyspace.MilestoneCounterKey(1),
		keyspace.MilestoneCounterKey(2),
		keyspace.RatingCounterKey(),
		keyspace.DisputeCounterKey(1),
		keyspace.FeeCounterKey(),
		keyspace.OwnerKey(),
		keyspace.VersionKey,
	}

	seen := make(map[string]int)
	for i, k := range keys {
		if j, ok := seen[string(k)]; ok {
			t.Errorf("key %d duplicates key %d: %x", i, j, k)
		}
		seen[string(k)] = i
	}
}

func TestScopedPrefixes(t *testing.T) {
	alice, err := address.Derive(address.User, []byte("alice"))
	assert.Nil(t, err, "derive")

	assert.True(t, bytes.HasPrefix(keyspace.MilestoneKey(7, 3), keyspace.MilestonePrefix(7)), "milestone in project")
	assert.False(t, bytes.HasPrefix(keyspace.MilestoneKey(8, 3), keyspace.MilestonePrefix(7)), "milestone in other project")
	assert.True(t, bytes.HasPrefix(keyspace.RatingKey(alice, 9), keyspace.RatingPrefix(alice)), "rating for recipient")
	assert.True(t, bytes.HasPrefix(keyspace.DisputeKey(7, 1), keyspace.DisputePrefix(7)), "dispute in project")

	// length prefixed addresses never prefix one another
	short := address.Address("AU1")
	long := address.Address("AU12")
	assert.False(t, bytes.HasPrefix(keyspace.RatingPrefix(long), keyspace.RatingPrefix(short)), "address prefix collision")
}
