// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/query"
	"github.com/bitmark-inc/freelanced/record"
	"github.com/bitmark-inc/freelanced/state"
	"github.com/bitmark-inc/freelanced/storage"
)

// stops the scan once enough records are printed
var errEnough = errors.New("enough")

type decoder func([]byte) (interface{}, error)

func decodeCounter(b []byte) (interface{}, error) {
	u := codec.NewUnpacker(b)
	v, err := u.Uint64("Counter")
	if nil != err {
		return nil, err
	}
	return v, u.Done("Counter")
}

func decodeSetting(b []byte) (interface{}, error) {
	return string(b), nil
}

func decoderFor(table *keyspace.Table) decoder {
	switch table {
	case keyspace.Tables.Projects:
		return func(b []byte) (interface{}, error) { return record.ProjectFromBytes(b) }
	case keyspace.Tables.Milestones:
		return func(b []byte) (interface{}, error) { return record.MilestoneFromBytes(b) }
	case keyspace.Tables.Ratings:
		return func(b []byte) (interface{}, error) { return record.RatingFromBytes(b) }
	case keyspace.Tables.Disputes:
		return func(b []byte) (interface{}, error) { return record.DisputeFromBytes(b) }
	case keyspace.Tables.UserProjects, keyspace.Tables.StatusIndex:
		return func(b []byte) (interface{}, error) { return record.IDListFromBytes(b) }
	case keyspace.Tables.RatedBy, keyspace.Tables.Counters:
		return decodeCounter
	case keyspace.Tables.Settings:
		return decodeSetting
	default:
		return nil
	}
}

func listTables(w io.Writer) {
	fmt.Fprintf(w, " tables:\n")
	for _, t := range keyspace.All() {
		fmt.Fprintf(w, "       %s → %s\n", t.Prefix(), t.Name())
	}
}

// print up to count records of a table, zero means all
func dump(w io.Writer, store storage.Store, table *keyspace.Table, count int, hexOnly bool) error {
	decode := decoderFor(table)
	if hexOnly {
		decode = nil
	}

	n := 0
	err := store.Map(table.Prefix(), func(key []byte, value []byte) error {
		if count > 0 && n >= count {
			return errEnough
		}
		fmt.Fprintf(w, "%d: Key: %x\n", n, key)
		if nil == decode {
			fmt.Fprintf(w, "%d: Val: %x\n", n, value)
		} else if v, err := decode(value); nil != err {
			fmt.Fprintf(w, "%d: Val: %x  error: %s\n", n, value, err)
		} else if b, err := json.Marshal(v); nil != err {
			fmt.Fprintf(w, "%d: Val: %x  error: %s\n", n, value, err)
		} else {
			fmt.Fprintf(w, "%d: Val: %s\n", n, b)
		}
		n += 1
		return nil
	})
	if errEnough == err {
		return nil
	}
	return err
}

// cross check the status index against the project records
func verify(w io.Writer, s *state.State) (bool, error) {
	all, err := query.AllProjects(s, nil)
	if nil != err {
		return false, err
	}
	problems, err := query.VerifyStatusIndex(s)
	if nil != err {
		return false, err
	}

	fmt.Fprintf(w, "projects: %d\n", len(all))
	for _, p := range problems {
		fmt.Fprintf(w, "problem: %s\n", p)
	}
	if 0 != len(problems) {
		fmt.Fprintf(w, "status index: %d problems\n", len(problems))
		return false, nil
	}
	fmt.Fprintf(w, "status index: ok\n")
	return true, nil
}
