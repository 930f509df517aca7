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

// AddRating - one participant rates the other once the project is completed
func (c *Contract) AddRating(ctx *Context, arguments *AddRatingArguments) (uint64, error) {
	s := ctx.State
	p, err := s.Project(arguments.ProjectID)
	if nil != err {
		return 0, err
	}
	if record.ProjectCompleted != p.Status {
		return 0, fault.ProjectNotCompleted
	}
	if !p.IsParticipant(ctx.Caller) {
		return 0, fault.CallerNotParticipant
	}
	if !record.ValidScore(arguments.Score) {
		return 0, fault.InvalidScore
	}

	other := p.Client
	if p.Client == ctx.Caller {
		other = freelancerOf(p)
	}
	if other.IsEmpty() || arguments.To != other {
		return 0, fault.InvalidRatingTarget
	}

	if _, rated := s.RatedBy(p.ID, ctx.Caller); rated {
		return 0, fault.AlreadyRated
	}

	id, err := s.NextID(keyspace.RatingCounterKey())
	if nil != err {
		return 0, err
	}

	r := &record.Rating{
		ID:        id,
		From:      ctx.Caller,
		To:        arguments.To,
		ProjectID: p.ID,
		Score:     arguments.Score,
		Comment:   arguments.Comment,
		Timestamp: ctx.Timestamp,
	}
	s.PutRating(r)
	s.PutRatedBy(p.ID, ctx.Caller, id)

	c.log.Infof("project: %d rating: %d score: %d for: %s", p.ID, id, r.Score, r.To)
	ctx.Emit("RatingAdded", p.ID, "Rating %d added for %s on project %d", r.Score, r.To, p.ID)
	return id, nil
}
