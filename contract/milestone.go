// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/keyspace"
	"github.com/bitmark-inc/freelanced/record"
)

// AddMilestone - client splits an in progress project into payable work
func (c *Contract) AddMilestone(ctx *Context, arguments *AddMilestoneArguments) (uint64, error) {
	s := ctx.State
	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return 0, err
	}
	if p.Client != ctx.Caller {
		return 0, fault.CallerNotClient
	}
	if record.ProjectInProgress != p.Status {
		return 0, fault.ProjectNotInProgress
	}
	if "" == arguments.Title {
		return 0, fault.EmptyTitle
	}
	if 0 == arguments.Amount {
		return 0, fault.InvalidAmount
	}

	existing, err := s.Milestones(p.ID)
	if nil != err {
		return 0, err
	}
	allocated := uint64(0)
	for _, m := range existing {
		allocated += m.Amount
	}
	if allocated > p.Budget || arguments.Amount > p.Budget-allocated {
		return 0, fault.MilestonesExceedBudget
	}

	id, err := s.NextID(keyspace.MilestoneCounterKey(p.ID))
	if nil != err {
		return 0, err
	}

	m := &record.Milestone{
		ID:          id,
		ProjectID:   p.ID,
		Title:       arguments.Title,
		Description: arguments.Description,
		Amount:      arguments.Amount,
		Deadline:    arguments.Deadline,
		Status:      record.MilestonePending,
	}
	s.PutMilestone(m)

	c.log.Infof("project: %d milestone: %d amount: %d", p.ID, id, m.Amount)
	ctx.Emit("MilestoneAdded", p.ID, "Milestone %d added to project %d", id, p.ID)
	return id, nil
}

// CompleteMilestone - freelancer delivers a pending milestone
func (c *Contract) CompleteMilestone(ctx *Context, arguments *CompleteMilestoneArguments) error {
	s := ctx.State
	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return err
	}
	if !p.IsFreelancer(ctx.Caller) {
		return fault.CallerNotFreelancer
	}
	if record.ProjectInProgress != p.Status {
		return fault.ProjectNotInProgress
	}

	m, err := s.Milestone(p.ID, arguments.MilestoneID)
	if nil != err {
		return err
	}
	if record.MilestonePending != m.Status {
		return fault.MilestoneAlreadyComplete
	}

	m.Status = record.MilestoneCompleted
	m.Deliverables = arguments.Deliverables
	m.CompletedAt = ctx.Timestamp
	s.PutMilestone(m)

	c.log.Infof("project: %d milestone: %d completed", p.ID, m.ID)
	ctx.Emit("MilestoneCompleted", p.ID, "Milestone %d completed for project %d", m.ID, p.ID)
	return nil
}

// ApproveMilestone - client accepts delivered work and pays for it
func (c *Contract) ApproveMilestone(ctx *Context, arguments *MilestoneArguments) error {
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

	m, err := s.Milestone(p.ID, arguments.MilestoneID)
	if nil != err {
		return err
	}
	if record.MilestoneCompleted != m.Status {
		return fault.MilestoneNotCompleted
	}

	platformFee, freelancerAmount := Split(m.Amount)

	if nil != ctx.Settlement && freelancerAmount > 0 {
		err := ctx.Settlement.Transfer(freelancerOf(p), freelancerAmount)
		if nil != err {
			c.log.Errorf("project: %d milestone: %d transfer error: %s", p.ID, m.ID, err)
			return err
		}
	}
	if _, err := s.AddCounter(keyspace.FeeCounterKey(), platformFee); nil != err {
		return err
	}

	m.Status = record.MilestonePaid
	m.PaidAt = ctx.Timestamp
	s.PutMilestone(m)

	c.log.Infof("project: %d milestone: %d paid: %d  fee: %d", p.ID, m.ID, freelancerAmount, platformFee)
	ctx.Emit("MilestonePaid", p.ID, "Milestone %d paid: %d to freelancer, %d platform fee", m.ID, freelancerAmount, platformFee)
	return nil
}
