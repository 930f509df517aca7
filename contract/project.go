// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/record"
)

// Initialise - deployment constructor
//
// an empty owner makes the deployer the arbiter
func (c *Contract) Initialise(ctx *Context, arguments *InitialiseArguments) error {
	s := ctx.State
	if s.Initialised() {
		return fault.AlreadyInitialised
	}

	owner := arguments.Owner
	if owner.IsEmpty() {
		owner = ctx.Caller
	}
	if owner.IsEmpty() {
		return fault.InvalidAddress
	}

	s.SetOwner(owner)
	s.SetCounter(keyspace.ProjectCounterKey(), 0)

	c.log.Infof("initialised: owner: %s", owner)
	ctx.Emit("ContractDeployed", 0, "FreelancePlatform contract deployed")
	return nil
}

// CreateProject - post a new open project and return its id
func (c *Contract) CreateProject(ctx *Context, arguments *CreateProjectArguments) (uint64, error) {
	c.log.Debugf("createProject: caller: %s  arguments: %+v", ctx.Caller, arguments)

	if "" == arguments.Title {
		return 0, fault.EmptyTitle
	}
	if 0 == arguments.Budget {
		return 0, fault.InvalidBudget
	}
	if arguments.Deadline <= ctx.Timestamp {
		return 0, fault.InvalidDeadline
	}

	s := ctx.State
	id, err := s.NextID(keyspace.ProjectCounterKey())
	if nil != err {
		return 0, err
	}

	p := &record.Project{
		ID:          id,
		Client:      ctx.Caller,
		Freelancer:  nil,
		Title:       arguments.Title,
		Description: arguments.Description,
		Budget:      arguments.Budget,
		Deadline:    arguments.Deadline,
		Status:      record.ProjectOpen,
		CreatedAt:   ctx.Timestamp,
		Category:    arguments.Category,
		Skills:      arguments.Skills,
	}
	s.PutProject(p)

	if err := s.AddUserProject(ctx.Caller, id); nil != err {
		return 0, err
	}
	if err := s.AddStatusProject(record.ProjectOpen, id); nil != err {
		return 0, err
	}

	c.log.Infof("project: %d created by: %s", id, ctx.Caller)
	ctx.Emit("ProjectCreated", id, "Project %d created by %s", id, ctx.Caller)
	return id, nil
}

// ApplyForProject - caller becomes the freelancer of an open project
func (c *Contract) ApplyForProject(ctx *Context, arguments *ProjectArguments) error {
	s := ctx.State
	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return err
	}
	if record.ProjectOpen != p.Status {
		return fault.ProjectNotOpen
	}
	if p.HasFreelancer() {
		return fault.ProjectHasFreelancer
	}
	if p.Client == ctx.Caller {
		return fault.ClientCannotApply
	}

	freelancer := ctx.Caller
	p.Freelancer = &freelancer
	if err := s.SetProjectStatus(p, record.ProjectInProgress); nil != err {
		return err
	}
	if err := s.AddUserProject(freelancer, p.ID); nil != err {
		return err
	}

	c.log.Infof("project: %d freelancer: %s", p.ID, freelancer)
	ctx.Emit("FreelancerApplied", p.ID, "Freelancer %s applied for project %d", freelancer, p.ID)
	return nil
}

// CompleteProject - client closes a project whose milestones are all paid
func (c *Contract) CompleteProject(ctx *Context, arguments *ProjectArguments) error {
	s := ctx.State
	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return err
	}
	if p.Client != ctx.Caller {
		return fault.CallerNotClient
	}
	if record.ProjectInProgress != p.Status {
		return fault.ProjectNotInProgress
	}

	milestones, err := s.Milestones(p.ID)
	if nil != err {
		return err
	}
	for _, m := range milestones {
		if record.MilestonePaid != m.Status {
			return fault.MilestonesOutstanding
		}
	}

	if err := s.SetProjectStatus(p, record.ProjectCompleted); nil != err {
		return err
	}

	c.log.Infof("project: %d completed", p.ID)
	ctx.Emit("ProjectCompleted", p.ID, "Project %d completed", p.ID)
	return nil
}

// CancelProject - client withdraws a project nobody has taken
func (c *Contract) CancelProject(ctx *Context, arguments *ProjectArguments) error {
	s := ctx.State
	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return err
	}
	if p.Client != ctx.Caller {
		return fault.CallerNotClient
	}
	if record.ProjectOpen != p.Status {
		return fault.ProjectNotOpen
	}

	if err := s.SetProjectStatus(p, record.ProjectCancelled); nil != err {
		return err
	}

	c.log.Infof("project: %d cancelled", p.ID)
	ctx.Emit("ProjectCancelled", p.ID, "Project %d cancelled", p.ID)
	return nil
}

// the freelancer address of a project known to have one
func freelancerOf(p *record.Project) address.Address {
	if !p.HasFreelancer() {
		return address.Empty
	}
	return *p.Freelancer
}
