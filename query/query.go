// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/record"
	"github.com/bitmark-inc/freelanced/state"
)

// Project - a single project by id
func Project(s *state.State, id uint64) (*record.Project, error) {
	return s.Project(id)
}

// resolve a list of ids in list order
func projects(s *state.State, ids record.IDList) ([]*record.Project, error) {
	result := make([]*record.Project, 0, len(ids))
	for _, id := range ids {
		p, err := s.Project(id)
		if nil != err {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

// ProjectsByUser - projects created by or assigned to an address
func ProjectsByUser(s *state.State, user address.Address) ([]*record.Project, error) {
	ids, err := s.UserProjects(user)
	if nil != err {
		return nil, err
	}
	return projects(s, ids)
}

// ProjectsByStatus - projects currently in a status, oldest entry first
func ProjectsByStatus(s *state.State, status record.ProjectStatus) ([]*record.Project, error) {
	if !status.Valid() {
		return nil, fault.InvalidStatus
	}
	ids, err := s.StatusProjects(status)
	if nil != err {
		return nil, err
	}
	return projects(s, ids)
}

// OpenProjects - projects still accepting a freelancer
func OpenProjects(s *state.State) ([]*record.Project, error) {
	return ProjectsByStatus(s, record.ProjectOpen)
}

// Milestone - one milestone of an existing project
func Milestone(s *state.State, projectID uint64, milestoneID uint64) (*record.Milestone, error) {
	if _, err := s.Project(projectID); nil != err {
		return nil, err
	}
	return s.Milestone(projectID, milestoneID)
}

// Milestones - all milestones of an existing project ordered by id
func Milestones(s *state.State, projectID uint64) ([]*record.Milestone, error) {
	if _, err := s.Project(projectID); nil != err {
		return nil, err
	}
	return s.Milestones(projectID)
}

// Ratings - ratings received by an address ordered by id
func Ratings(s *state.State, to address.Address) ([]*record.Rating, error) {
	return s.Ratings(to)
}

// Dispute - the latest dispute of an existing project
func Dispute(s *state.State, projectID uint64) (*record.Dispute, error) {
	if _, err := s.Project(projectID); nil != err {
		return nil, err
	}
	return s.LatestDispute(projectID)
}

// PlatformFees - total fee retained from paid milestones
func PlatformFees(s *state.State) (uint64, error) {
	return s.Counter(keyspace.FeeCounterKey())
}
