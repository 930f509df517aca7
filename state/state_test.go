// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state_test

import (
	"math"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/record"
	"github.com/bitmark-inc/freelanced/state"
	"github.com/bitmark-inc/freelanced/storage"
	"github.com/bitmark-inc/freelanced/storage/mocks"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func newState(t *testing.T) (*state.State, func()) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory error: %s", err)
	}
	return state.New(db), db.Close
}

func TestCounters(t *testing.T) {
	s, done := newState(t)
	defer done()

	key := keyspace.ProjectCounterKey()
	v, err := s.Counter(key)
	assert.Nil(t, err, "counter error")
	assert.Equal(t, uint64(0), v, "initial")

	for expected := uint64(1); expected <= 3; expected += 1 {
		id, err := s.NextID(key)
		assert.Nil(t, err, "next error")
		assert.Equal(t, expected, id, "next id")
	}

	// scoped counters are independent
	id, err := s.NextID(keyspace.MilestoneCounterKey(1))
	assert.Nil(t, err, "next error")
	assert.Equal(t, uint64(1), id, "project 1 milestone")
	id, err = s.NextID(keyspace.MilestoneCounterKey(2))
	assert.Nil(t, err, "next error")
	assert.Equal(t, uint64(1), id, "project 2 milestone")

	fee := keyspace.FeeCounterKey()
	total, err := s.AddCounter(fee, 20)
	assert.Nil(t, err, "add error")
	total, err = s.AddCounter(fee, 4)
	assert.Nil(t, err, "add error")
	assert.Equal(t, uint64(24), total, "fee total")

	s.SetCounter(fee, math.MaxUint64)
	_, err = s.AddCounter(fee, 1)
	assert.Equal(t, fault.InvalidCount, err, "overflow")
}

func TestProjectNotFound(t *testing.T) {
	s, done := newState(t)
	defer done()

	_, err := s.Project(99)
	assert.Equal(t, fault.ProjectNotFound, err, "missing project")

	_, err = s.Milestone(99, 1)
	assert.Equal(t, fault.MilestoneNotFound, err, "missing milestone")

	_, err = s.LatestDispute(99)
	assert.Equal(t, fault.DisputeNotFound, err, "missing dispute")
}

func TestMilestonesInIDOrder(t *testing.T) {
	s, done := newState(t)
	defer done()

	// 256 encodes as 00 01 ... so sorts before 2 as raw little endian
	for _, id := range []uint64{256, 2, 1} {
		s.PutMilestone(&record.Milestone{ID: id, ProjectID: 5})
	}
	s.PutMilestone(&record.Milestone{ID: 1, ProjectID: 6})

	list, err := s.Milestones(5)
	assert.Nil(t, err, "milestones error")
	ids := []uint64{}
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []uint64{1, 2, 256}, ids, "ordered ids")

	none, err := s.Milestones(7)
	assert.Nil(t, err, "milestones error")
	assert.Equal(t, 0, len(none), "no milestones")
}

func TestRatings(t *testing.T) {
	s, done := newState(t)
	defer done()

	to := address.Address("AUto")
	s.PutRating(&record.Rating{ID: 300, From: "AUa", To: to, Score: 5})
	s.PutRating(&record.Rating{ID: 4, From: "AUb", To: to, Score: 1})
	s.PutRating(&record.Rating{ID: 5, From: "AUb", To: "AUtoo", Score: 1})

	list, err := s.Ratings(to)
	assert.Nil(t, err, "ratings error")
	assert.Equal(t, 2, len(list), "count")
	assert.Equal(t, uint64(4), list[0].ID, "first")
	assert.Equal(t, uint64(300), list[1].ID, "second")

	_, ok := s.RatedBy(1, "AUa")
	assert.False(t, ok, "not yet rated")
	s.PutRatedBy(1, "AUa", 300)
	id, ok := s.RatedBy(1, "AUa")
	assert.True(t, ok, "rated")
	assert.Equal(t, uint64(300), id, "rating id")
}

func TestStatusIndex(t *testing.T) {
	s, done := newState(t)
	defer done()

	for id := uint64(1); id <= 3; id += 1 {
		p := &record.Project{ID: id, Client: "AUc", Status: record.ProjectOpen}
		s.PutProject(p)
		assert.Nil(t, s.AddStatusProject(record.ProjectOpen, id), "index")
	}

	p, err := s.Project(2)
	assert.Nil(t, err, "load error")
	f := address.Address("AUf")
	p.Freelancer = &f
	assert.Nil(t, s.SetProjectStatus(p, record.ProjectInProgress), "set status")

	open, err := s.StatusProjects(record.ProjectOpen)
	assert.Nil(t, err, "open error")
	assert.Equal(t, record.IDList{1, 3}, open, "open")

	active, err := s.StatusProjects(record.ProjectInProgress)
	assert.Nil(t, err, "active error")
	assert.Equal(t, record.IDList{2}, active, "in progress")

	stored, err := s.Project(2)
	assert.Nil(t, err, "load error")
	assert.Equal(t, record.ProjectInProgress, stored.Status, "stored status")

	// emptied lists are removed
	for _, id := range []uint64{1, 3} {
		p, err := s.Project(id)
		assert.Nil(t, err, "load error")
		assert.Nil(t, s.SetProjectStatus(p, record.ProjectCancelled), "cancel")
	}
	assert.False(t, s.Store().Has(keyspace.StatusIndexKey(uint8(record.ProjectOpen))), "empty list removed")
}

func TestUserProjects(t *testing.T) {
	s, done := newState(t)
	defer done()

	owner := address.Address("AUowner")
	for _, id := range []uint64{3, 1, 2, 1} {
		assert.Nil(t, s.AddUserProject(owner, id), "add")
	}
	list, err := s.UserProjects(owner)
	assert.Nil(t, err, "list error")
	assert.Equal(t, record.IDList{3, 1, 2}, list, "insertion order without duplicates")

	empty, err := s.UserProjects("AUnobody")
	assert.Nil(t, err, "list error")
	assert.Equal(t, 0, len(empty), "empty")
}

func TestOwner(t *testing.T) {
	s, done := newState(t)
	defer done()

	assert.False(t, s.Initialised(), "fresh state")
	_, ok := s.Owner()
	assert.False(t, ok, "no owner")

	s.SetOwner("AUarbiter")
	assert.True(t, s.Initialised(), "initialised")
	owner, ok := s.Owner()
	assert.True(t, ok, "owner")
	assert.Equal(t, address.Address("AUarbiter"), owner, "owner address")
}

func TestCorruptProject(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockStore(ctl)
	store.EXPECT().Get(keyspace.ProjectKey(1)).Return([]byte{1, 2, 3}).Times(1)

	s := state.New(store)
	_, err := s.Project(1)
	assert.True(t, fault.IsErrMalformed(err), "corrupt project: %v", err)
}

func TestCorruptCounter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	store := mocks.NewMockStore(ctl)
	key := keyspace.RatingCounterKey()
	store.EXPECT().Get(key).Return([]byte{1, 0, 0, 0, 0, 0, 0, 0, 9}).Times(1)

	s := state.New(store)
	_, err := s.NextID(key)
	assert.True(t, fault.IsErrMalformed(err), "corrupt counter: %v", err)
}
