// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"fmt"
	"sort"

	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/record"
	"github.com/bitmark-inc/freelanced/state"
)

// AllProjects - full scan of the project table, ordered by id
//
// filter may be nil to accept everything; cost is linear in the
// number of projects ever created so it is only for diagnostics
func AllProjects(s *state.State, filter func(*record.Project) bool) ([]*record.Project, error) {
	result := make([]*record.Project, 0)
	err := s.Store().Map(keyspace.Tables.Projects.Prefix(), func(key []byte, value []byte) error {
		p, err := record.ProjectFromBytes(value)
		if nil != err {
			return err
		}
		if nil == filter || filter(p) {
			result = append(result, p)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// VerifyStatusIndex - compare the status index with a full scan
//
// returns one line per discrepancy
func VerifyStatusIndex(s *state.State) ([]string, error) {
	all, err := AllProjects(s, nil)
	if nil != err {
		return nil, err
	}

	actual := make(map[uint64]record.ProjectStatus)
	for _, p := range all {
		actual[p.ID] = p.Status
	}

	problems := []string{}
	indexed := make(map[uint64]record.ProjectStatus)
	for status := record.ProjectOpen; status.Valid(); status += 1 {
		ids, err := s.StatusProjects(status)
		if nil != err {
			return nil, err
		}
		for _, id := range ids {
			if previous, ok := indexed[id]; ok {
				problems = append(problems, fmt.Sprintf("project %d indexed as %s and %s", id, previous, status))
				continue
			}
			indexed[id] = status
			current, ok := actual[id]
			if !ok {
				problems = append(problems, fmt.Sprintf("project %d indexed as %s does not exist", id, status))
			} else if current != status {
				problems = append(problems, fmt.Sprintf("project %d indexed as %s is %s", id, status, current))
			}
		}
	}
	for _, p := range all {
		if _, ok := indexed[p.ID]; !ok {
			problems = append(problems, fmt.Sprintf("project %d with status %s is not indexed", p.ID, p.Status))
		}
	}
	return problems, nil
}
