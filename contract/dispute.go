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

// OpenDispute - either participant freezes an in progress project
func (c *Contract) OpenDispute(ctx *Context, arguments *OpenDisputeArguments) (uint64, error) {
	s := ctx.State
	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return 0, err
	}
	if !p.IsParticipant(ctx.Caller) {
		return 0, fault.CallerNotParticipant
	}
	if record.ProjectInProgress != p.Status {
		return 0, fault.ProjectNotInProgress
	}
	if "" == arguments.Reason {
		return 0, fault.EmptyReason
	}

	id, err := s.NextID(keyspace.DisputeCounterKey(p.ID))
	if nil != err {
		return 0, err
	}

	d := &record.Dispute{
		ID:         id,
		ProjectID:  p.ID,
		OpenedBy:   ctx.Caller,
		Reason:     arguments.Reason,
		Status:     record.DisputeOpened,
		OpenedAt:   ctx.Timestamp,
		ResolvedAt: 0,
		ResolvedBy: address.Empty,
	}
	s.PutDispute(d)

	if err := s.SetProjectStatus(p, record.ProjectDisputed); nil != err {
		return 0, err
	}

	c.log.Infof("project: %d dispute: %d opened by: %s", p.ID, id, ctx.Caller)
	ctx.Emit("DisputeOpened", p.ID, "Dispute %d opened on project %d by %s", id, p.ID, ctx.Caller)
	return id, nil
}

// ResolveDispute - arbiter settles the latest dispute of a project
//
// in favour of the freelancer the project is completed, otherwise it
// is cancelled
func (c *Contract) ResolveDispute(ctx *Context, arguments *ResolveDisputeArguments) error {
	s := ctx.State
	owner, ok := s.Owner()
	if !ok {
		return fault.ContractNotInitialised
	}
	if owner != ctx.Caller {
		return fault.CallerNotArbiter
	}

	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return err
	}
	if record.ProjectDisputed != p.Status {
		return fault.ProjectNotDisputed
	}

	d, err := s.LatestDispute(p.ID)
	if nil != err {
		return err
	}
	if record.DisputeOpened != d.Status {
		return fault.DisputeNotOpen
	}

	outcome := record.DisputeResolvedForClient
	status := record.ProjectCancelled
	if arguments.ForFreelancer {
		outcome = record.DisputeResolvedForFreelancer
		status = record.ProjectCompleted
	}

	d.Status = outcome
	d.ResolvedAt = ctx.Timestamp
	d.ResolvedBy = ctx.Caller
	s.PutDispute(d)

	if err := s.SetProjectStatus(p, status); nil != err {
		return err
	}

	c.log.Infof("project: %d dispute: %d %s", p.ID, d.ID, outcome)
	ctx.Emit("DisputeResolved", p.ID, "Dispute %d on project %d %s", d.ID, p.ID, outcome)
	return nil
}
