// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/record"
	"github.com/bitmark-inc/freelanced/storage"
)

// State - typed view of the contract's store
//
// nothing is cached: every call reads the store again
type State struct {
	store storage.Store
}

// New - wrap a store
func New(store storage.Store) *State {
	return &State{
		store: store,
	}
}

// Store - the underlying store
func (s *State) Store() storage.Store {
	return s.store
}

// report a stored value that no longer decodes
func corrupt(what string, key []byte, err error) error {
	logger.Criticalf("%s: key: %x  corrupt: %s", what, key, err)
	return err
}

// Project - load a project
func (s *State) Project(id uint64) (*record.Project, error) {
	key := keyspace.ProjectKey(id)
	buffer := s.store.Get(key)
	if nil == buffer {
		return nil, fault.ProjectNotFound
	}
	p, err := record.ProjectFromBytes(buffer)
	if nil != err {
		return nil, corrupt("project", key, err)
	}
	return p, nil
}

// PutProject - store the full project
func (s *State) PutProject(p *record.Project) {
	s.store.Put(keyspace.ProjectKey(p.ID), p.Pack())
}

// Milestone - load one milestone
func (s *State) Milestone(projectID uint64, milestoneID uint64) (*record.Milestone, error) {
	key := keyspace.MilestoneKey(projectID, milestoneID)
	buffer := s.store.Get(key)
	if nil == buffer {
		return nil, fault.MilestoneNotFound
	}
	m, err := record.MilestoneFromBytes(buffer)
	if nil != err {
		return nil, corrupt("milestone", key, err)
	}
	return m, nil
}

// PutMilestone - store the full milestone
func (s *State) PutMilestone(m *record.Milestone) {
	s.store.Put(keyspace.MilestoneKey(m.ProjectID, m.ID), m.Pack())
}

// Milestones - all milestones of a project ordered by id
func (s *State) Milestones(projectID uint64) ([]*record.Milestone, error) {
	milestones := make([]*record.Milestone, 0)
	err := s.store.Map(keyspace.MilestonePrefix(projectID), func(key []byte, value []byte) error {
		m, err := record.MilestoneFromBytes(value)
		if nil != err {
			return corrupt("milestone", key, err)
		}
		milestones = append(milestones, m)
		return nil
	})
	if nil != err {
		return nil, err
	}

	// little endian keys do not sort numerically
	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].ID < milestones[j].ID
	})
	return milestones, nil
}

// PutRating - store a rating under its recipient
func (s *State) PutRating(r *record.Rating) {
	s.store.Put(keyspace.RatingKey(r.To, r.ID), r.Pack())
}

// Ratings - all ratings received by an address ordered by id
func (s *State) Ratings(to address.Address) ([]*record.Rating, error) {
	ratings := make([]*record.Rating, 0)
	err := s.store.Map(keyspace.RatingPrefix(to), func(key []byte, value []byte) error {
		r, err := record.RatingFromBytes(value)
		if nil != err {
			return corrupt("rating", key, err)
		}
		ratings = append(ratings, r)
		return nil
	})
	if nil != err {
		return nil, err
	}

	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].ID < ratings[j].ID
	})
	return ratings, nil
}

// RatedBy - id of the rating an address left on a project
func (s *State) RatedBy(projectID uint64, from address.Address) (uint64, bool) {
	key := keyspace.RatedByKey(projectID, from)
	buffer := s.store.Get(key)
	if nil == buffer {
		return 0, false
	}
	id, err := decodeUint64(buffer)
	if nil != err {
		corrupt("rated by", key, err)
		return 0, true
	}
	return id, true
}

// PutRatedBy - record that an address rated a project
func (s *State) PutRatedBy(projectID uint64, from address.Address, ratingID uint64) {
	s.store.Put(keyspace.RatedByKey(projectID, from), codec.Uint64(ratingID))
}

// Dispute - load one dispute
func (s *State) Dispute(projectID uint64, disputeID uint64) (*record.Dispute, error) {
	key := keyspace.DisputeKey(projectID, disputeID)
	buffer := s.store.Get(key)
	if nil == buffer {
		return nil, fault.DisputeNotFound
	}
	d, err := record.DisputeFromBytes(buffer)
	if nil != err {
		return nil, corrupt("dispute", key, err)
	}
	return d, nil
}

// LatestDispute - most recently opened dispute of a project
func (s *State) LatestDispute(projectID uint64) (*record.Dispute, error) {
	id, err := s.Counter(keyspace.DisputeCounterKey(projectID))
	if nil != err {
		return nil, err
	}
	if 0 == id {
		return nil, fault.DisputeNotFound
	}
	return s.Dispute(projectID, id)
}

// PutDispute - store the full dispute
func (s *State) PutDispute(d *record.Dispute) {
	s.store.Put(keyspace.DisputeKey(d.ProjectID, d.ID), d.Pack())
}

// Owner - the arbiter recorded at initialisation
func (s *State) Owner() (address.Address, bool) {
	buffer := s.store.Get(keyspace.OwnerKey())
	if nil == buffer {
		return address.Empty, false
	}
	return address.Address(buffer), true
}

// SetOwner - record the arbiter
func (s *State) SetOwner(owner address.Address) {
	s.store.Put(keyspace.OwnerKey(), []byte(owner))
}

// Initialised - true once the deployment constructor has run
func (s *State) Initialised() bool {
	return s.store.Has(keyspace.OwnerKey())
}
