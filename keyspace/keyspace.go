// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyspace

import (
	"fmt"
	"reflect"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/codec"
)

// Table - one key namespace
type Table struct {
	name   string
	prefix byte
}

// exported tables
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type tables struct {
	Projects     *Table `prefix:"P"`
	Milestones   *Table `prefix:"M"`
	Ratings      *Table `prefix:"R"`
	RatedBy      *Table `prefix:"Q"`
	Disputes     *Table `prefix:"D"`
	UserProjects *Table `prefix:"U"`
	StatusIndex  *Table `prefix:"S"`
	Counters     *Table `prefix:"X"`
	Settings     *Table `prefix:"O"`
}

// Tables - the set of exported tables
var Tables tables

// list of all tables in declaration order
var allTables []*Table

// VersionKey - database version, outside every table
var VersionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// counter tags
const (
	counterProject   = 'P'
	counterMilestone = 'M'
	counterRating    = 'R'
	counterDispute   = 'D'
	counterFee       = 'F'
)

// setting names
const (
	settingOwner = "owner"
)

func init() {
	if err := setup(); nil != err {
		panic(err)
	}
}

// scan the struct tags and fill in the table pointers
func setup() error {
	tableType := reflect.TypeOf(Tables)
	tableValue := reflect.ValueOf(&Tables).Elem()

	seen := make(map[byte]string)

	for i := 0; i < tableType.NumField(); i += 1 {
		fieldInfo := tableType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("table: %s has invalid prefix: %q", fieldInfo.Name, prefixTag)
		}
		prefix := prefixTag[0]
		if 0 == prefix {
			return fmt.Errorf("table: %s uses reserved prefix", fieldInfo.Name)
		}
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("table: %s duplicates prefix of: %s", fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		t := &Table{
			name:   fieldInfo.Name,
			prefix: prefix,
		}
		tableValue.Field(i).Set(reflect.ValueOf(t))
		allTables = append(allTables, t)
	}
	return nil
}

// All - every table in declaration order
func All() []*Table {
	return append([]*Table(nil), allTables...)
}

// ByName - find a table by its name or single letter prefix
func ByName(name string) (*Table, bool) {
	for _, t := range allTables {
		if t.name == name || (1 == len(name) && name[0] == t.prefix) {
			return t, true
		}
	}
	return nil, false
}

// Name - table name
func (t *Table) Name() string {
	return t.name
}

// Prefix - the single byte namespace prefix as a slice for scanning
func (t *Table) Prefix() []byte {
	return []byte{t.prefix}
}

// Key - prefix followed by the concatenated parts
func (t *Table) Key(parts ...[]byte) []byte {
	n := 1
	for _, p := range parts {
		n += len(p)
	}
	key := make([]byte, 0, n)
	key = append(key, t.prefix)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

// Owns - true if a key falls in this table's namespace
func (t *Table) Owns(key []byte) bool {
	return len(key) > 0 && key[0] == t.prefix
}

// Suffix - key with the prefix removed
func (t *Table) Suffix(key []byte) []byte {
	if !t.Owns(key) {
		return nil
	}
	return key[1:]
}

// ProjectKey - P ++ u64(id)
func ProjectKey(id uint64) []byte {
	return Tables.Projects.Key(codec.Uint64(id))
}

// MilestonePrefix - M ++ u64(projectId), scans one project's milestones
func MilestonePrefix(projectID uint64) []byte {
	return Tables.Milestones.Key(codec.Uint64(projectID))
}

// MilestoneKey - M ++ u64(projectId) ++ u64(milestoneId)
func MilestoneKey(projectID uint64, milestoneID uint64) []byte {
	return Tables.Milestones.Key(codec.Uint64(projectID), codec.Uint64(milestoneID))
}

// RatingPrefix - R ++ address(to), scans one recipient's ratings
func RatingPrefix(to address.Address) []byte {
	return Tables.Ratings.Key(codec.String(to.String()))
}

// RatingKey - R ++ address(to) ++ u64(ratingId)
func RatingKey(to address.Address, ratingID uint64) []byte {
	return Tables.Ratings.Key(codec.String(to.String()), codec.Uint64(ratingID))
}

// RatedByKey - Q ++ u64(projectId) ++ address(from)
func RatedByKey(projectID uint64, from address.Address) []byte {
	return Tables.RatedBy.Key(codec.Uint64(projectID), codec.String(from.String()))
}

// DisputePrefix - D ++ u64(projectId)
func DisputePrefix(projectID uint64) []byte {
	return Tables.Disputes.Key(codec.Uint64(projectID))
}

// DisputeKey - D ++ u64(projectId) ++ u64(disputeId)
func DisputeKey(projectID uint64, disputeID uint64) []byte {
	return Tables.Disputes.Key(codec.Uint64(projectID), codec.Uint64(disputeID))
}

// UserProjectsKey - U ++ address(owner)
func UserProjectsKey(owner address.Address) []byte {
	return Tables.UserProjects.Key(codec.String(owner.String()))
}

// StatusIndexKey - S ++ u8(status)
func StatusIndexKey(status uint8) []byte {
	return Tables.StatusIndex.Key([]byte{status})
}

// ProjectCounterKey - singleton project id counter
func ProjectCounterKey() []byte {
	return Tables.Counters.Key([]byte{counterProject})
}

// MilestoneCounterKey - per project milestone id counter
func MilestoneCounterKey(projectID uint64) []byte {
	return Tables.Counters.Key([]byte{counterMilestone}, codec.Uint64(projectID))
}

// RatingCounterKey - global rating id counter
func RatingCounterKey() []byte {
	return Tables.Counters.Key([]byte{counterRating})
}

// DisputeCounterKey - per project dispute id counter
func DisputeCounterKey(projectID uint64) []byte {
	return Tables.Counters.Key([]byte{counterDispute}, codec.Uint64(projectID))
}

// FeeCounterKey - accumulated platform fee
func FeeCounterKey() []byte {
	return Tables.Counters.Key([]byte{counterFee})
}

// OwnerKey - arbiter address setting
func OwnerKey() []byte {
	return Tables.Settings.Key([]byte(settingOwner))
}
