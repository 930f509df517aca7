// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/contract"
	"github.com/bitmark-inc/freelanced/contract/mocks"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/host"
	"github.com/bitmark-inc/freelanced/messagebus"
	"github.com/bitmark-inc/freelanced/record"
	"github.com/bitmark-inc/freelanced/storage"
)

const (
	testingDirName = "testing"
	startTime      = int64(1600000000)
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

func mustDerive(name string) address.Address {
	a, err := address.Derive(address.User, []byte(name))
	if nil != err {
		panic(err)
	}
	return a
}

var (
	arbiter    = mustDerive("arbiter")
	client     = mustDerive("client")
	freelancer = mustDerive("freelancer")
)

type clock struct {
	now int64
}

func (c *clock) Now() time.Time {
	return time.Unix(c.now, 0)
}

type fixture struct {
	t     *testing.T
	db    *storage.LevelDB
	h     *host.Host
	queue *messagebus.Queue
	clock *clock
}

func newFixture(t *testing.T, settlement contract.Settlement) *fixture {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory error: %s", err)
	}
	f := &fixture{
		t:     t,
		db:    db,
		queue: messagebus.New(100),
		clock: &clock{now: startTime},
	}
	f.h = host.New(logger.New("host"), db, settlement, f.queue)
	f.h.SetClock(f.clock.Now)

	err = f.h.Deploy(arbiter, address.Empty)
	if nil != err {
		t.Fatalf("deploy error: %s", err)
	}
	f.drain()
	return f
}

func (f *fixture) close() {
	f.db.Close()
}

// all queued events
func (f *fixture) drain() []contract.Event {
	events := []contract.Event{}
	for {
		select {
		case m := <-f.queue.Chan():
			events = append(events, m.Item.(contract.Event))
		default:
			return events
		}
	}
}

func (f *fixture) call(caller address.Address, function string, arguments contract.Arguments) (*host.Result, error) {
	return f.h.Call(caller, function, arguments.Pack())
}

func (f *fixture) mustCall(caller address.Address, function string, arguments contract.Arguments) *host.Result {
	result, err := f.call(caller, function, arguments)
	if nil != err {
		f.t.Fatalf("%s error: %s", function, err)
	}
	return result
}

// project with one completed milestone waiting for approval
func (f *fixture) milestoneToApprove() (uint64, uint64) {
	f.mustCall(client, "createProject", &contract.CreateProjectArguments{
		Title:       "website",
		Description: "shop front",
		Budget:      1000,
		Deadline:    uint64(startTime) + 86400,
		Category:    "web",
	})
	f.mustCall(freelancer, "applyForProject", &contract.ProjectArguments{ProjectID: 1})
	f.mustCall(client, "addMilestone", &contract.AddMilestoneArguments{
		ProjectID: 1,
		Title:     "landing page",
		Amount:    1000,
	})
	f.mustCall(freelancer, "completeMilestone", &contract.CompleteMilestoneArguments{
		ProjectID:    1,
		MilestoneID:  1,
		Deliverables: "https://example.com/landing",
	})
	f.drain()
	return 1, 1
}

func (f *fixture) milestone(projectID uint64, milestoneID uint64) *record.Milestone {
	a := contract.MilestoneArguments{ProjectID: projectID, MilestoneID: milestoneID}
	b, err := f.h.Read(client, "getMilestone", a.Pack())
	if nil != err {
		f.t.Fatalf("getMilestone error: %s", err)
	}
	m, err := record.MilestoneFromBytes(b)
	if nil != err {
		f.t.Fatalf("milestone decode error: %s", err)
	}
	return m
}

func (f *fixture) fees() uint64 {
	b, err := f.h.Read(client, "getPlatformFees", nil)
	if nil != err {
		f.t.Fatalf("getPlatformFees error: %s", err)
	}
	v, err := codec.NewUnpacker(b).Uint64("fees")
	if nil != err {
		f.t.Fatalf("fees decode error: %s", err)
	}
	return v
}

func TestDeploy(t *testing.T) {
	f := newFixture(t, nil)
	defer f.close()

	assert.True(t, f.h.Initialised(), "initialised")

	// second deploy is a no-op
	err := f.h.Deploy(client, client)
	assert.Nil(t, err, "second deploy")
	assert.Equal(t, 0, len(f.drain()), "events from second deploy")

	_, err = f.call(client, "initialise", &contract.InitialiseArguments{Owner: client})
	assert.True(t, fault.IsErrInvalidState(err), "explicit initialise: %v", err)
}

func TestDeployEvent(t *testing.T) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory error: %s", err)
	}
	defer db.Close()

	queue := messagebus.New(10)
	h := host.New(logger.New("host"), db, nil, queue)
	assert.False(t, h.Initialised(), "initialised before deploy")

	err = h.Deploy(arbiter, address.Empty)
	assert.Nil(t, err, "deploy")

	m := <-queue.Chan()
	assert.Equal(t, "ContractDeployed", m.Item.(contract.Event).Name, "event name")
}

func TestCallCommitsAndPublishes(t *testing.T) {
	f := newFixture(t, nil)
	defer f.close()

	result := f.mustCall(client, "createProject", &contract.CreateProjectArguments{
		Title:       "logo",
		Description: "a logo",
		Budget:      500,
		Deadline:    uint64(startTime) + 3600,
	})
	assert.Equal(t, []byte(codec.Uint64(1)), result.Return, "returned id")
	assert.Equal(t, uint64(startTime), result.Timestamp, "timestamp")
	assert.Equal(t, 1, len(result.Events), "result events")

	events := f.drain()
	assert.Equal(t, 1, len(events), "published events")
	assert.Equal(t, "ProjectCreated", events[0].Name, "event name")
	assert.Equal(t, uint64(1), events[0].ProjectID, "event project")

	b, err := f.h.Read(freelancer, "getProjectView", (&contract.ProjectArguments{ProjectID: 1}).Pack())
	assert.Nil(t, err, "read error")
	p, err := record.ProjectFromBytes(b)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, client, p.Client, "client")
	assert.Equal(t, record.ProjectOpen, p.Status, "status")
}

func TestTimestampNeverDecreases(t *testing.T) {
	f := newFixture(t, nil)
	defer f.close()

	arguments := &contract.CreateProjectArguments{
		Title:    "logo",
		Budget:   500,
		Deadline: uint64(startTime) + 3600,
	}

	f.clock.now = startTime + 100
	r1 := f.mustCall(client, "createProject", arguments)

	// clock steps back
	f.clock.now = startTime + 50
	r2 := f.mustCall(client, "createProject", arguments)

	f.clock.now = startTime + 200
	r3 := f.mustCall(client, "createProject", arguments)

	assert.Equal(t, uint64(startTime+100), r1.Timestamp, "first")
	assert.Equal(t, uint64(startTime+100), r2.Timestamp, "second")
	assert.Equal(t, uint64(startTime+200), r3.Timestamp, "third")
}

func TestFailedCallPublishesNothing(t *testing.T) {
	f := newFixture(t, nil)
	defer f.close()

	_, err := f.call(client, "createProject", &contract.CreateProjectArguments{
		Title:    "",
		Budget:   500,
		Deadline: uint64(startTime) + 3600,
	})
	assert.Equal(t, fault.EmptyTitle, err, "error")
	assert.Equal(t, 0, len(f.drain()), "events")

	_, err = f.h.Read(client, "getProjectView", (&contract.ProjectArguments{ProjectID: 1}).Pack())
	assert.Equal(t, fault.ProjectNotFound, err, "project stored")
}

func TestSettlementErrorReverts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	settlement := mocks.NewMockSettlement(ctl)
	f := newFixture(t, settlement)
	defer f.close()

	projectID, milestoneID := f.milestoneToApprove()

	settlement.EXPECT().Transfer(freelancer, uint64(980)).Return(errors.New("insufficient balance")).Times(1)

	_, err := f.call(client, "approveMilestone", &contract.MilestoneArguments{
		ProjectID:   projectID,
		MilestoneID: milestoneID,
	})
	assert.NotNil(t, err, "approve error")
	assert.Equal(t, record.MilestoneCompleted, f.milestone(projectID, milestoneID).Status, "milestone status")
	assert.Equal(t, uint64(0), f.fees(), "fees")
	assert.Equal(t, 0, len(f.drain()), "events")

	// retry succeeds once the transfer goes through
	settlement.EXPECT().Transfer(freelancer, uint64(980)).Return(nil).Times(1)

	f.mustCall(client, "approveMilestone", &contract.MilestoneArguments{
		ProjectID:   projectID,
		MilestoneID: milestoneID,
	})
	assert.Equal(t, record.MilestonePaid, f.milestone(projectID, milestoneID).Status, "milestone status")
	assert.Equal(t, uint64(20), f.fees(), "fees")

	events := f.drain()
	assert.Equal(t, 1, len(events), "events")
	assert.Equal(t, "Milestone 1 paid: 980 to freelancer, 20 platform fee", events[0].Message, "message")
}

func TestPanicRevertsAndReleases(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	settlement := mocks.NewMockSettlement(ctl)
	f := newFixture(t, settlement)
	defer f.close()

	projectID, milestoneID := f.milestoneToApprove()

	settlement.EXPECT().Transfer(gomock.Any(), gomock.Any()).Do(func(to address.Address, amount uint64) {
		panic("settlement backend unavailable")
	}).Times(1)

	_, err := f.call(client, "approveMilestone", &contract.MilestoneArguments{
		ProjectID:   projectID,
		MilestoneID: milestoneID,
	})
	assert.True(t, fault.IsErrProcess(err), "process error: %v", err)
	assert.Equal(t, "Process", fault.Kind(err), "kind")
	assert.Equal(t, record.MilestoneCompleted, f.milestone(projectID, milestoneID).Status, "milestone status")
	assert.Equal(t, 0, len(f.drain()), "events")

	// the transaction was released
	f.mustCall(client, "createProject", &contract.CreateProjectArguments{
		Title:    "next",
		Budget:   10,
		Deadline: uint64(startTime) + 3600,
	})
}

func TestReadOnlyViews(t *testing.T) {
	f := newFixture(t, nil)
	defer f.close()

	arguments := (&contract.CreateProjectArguments{
		Title:    "logo",
		Budget:   500,
		Deadline: uint64(startTime) + 3600,
	}).Pack()

	_, err := f.h.Read(client, "createProject", arguments)
	assert.Equal(t, fault.FunctionNotView, err, "mutating read")

	_, err = f.h.Read(client, "noSuchFunction", nil)
	assert.Equal(t, fault.FunctionNotFound, err, "unknown read")

	_, err = f.h.Call(client, "noSuchFunction", nil)
	assert.Equal(t, fault.FunctionNotFound, err, "unknown call")

	// a view through Call is served read only
	result, err := f.h.Call(client, "getOpenProjects", nil)
	assert.Nil(t, err, "view call")
	assert.Equal(t, []byte(codec.Packed{}.AppendUint32(0)), result.Return, "empty list")
	assert.Equal(t, 0, len(result.Events), "view events")
}

func TestArgumentsMustBeConsumed(t *testing.T) {
	f := newFixture(t, nil)
	defer f.close()

	arguments := (&contract.ProjectArguments{ProjectID: 1}).Pack().AppendUint8(0)
	_, err := f.h.Call(client, "applyForProject", arguments)
	assert.True(t, fault.IsErrMalformed(err), "trailing bytes: %v", err)
}
