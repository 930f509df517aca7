// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
)

// Milestone - a payable unit of work within a project
type Milestone struct {
	ID           uint64          `json:"id"`
	ProjectID    uint64          `json:"projectId"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Amount       uint64          `json:"amount"`
	Deadline     uint64          `json:"deadline"`
	Status       MilestoneStatus `json:"status"`
	Deliverables string          `json:"deliverables"`
	CompletedAt  uint64          `json:"completedAt"`
	PaidAt       uint64          `json:"paidAt"`
}

// Append - encode the milestone
func (m *Milestone) Append(buffer codec.Packed) codec.Packed {
	buffer = buffer.AppendUint64(m.ID)
	buffer = buffer.AppendUint64(m.ProjectID)
	buffer = buffer.AppendString(m.Title)
	buffer = buffer.AppendString(m.Description)
	buffer = buffer.AppendUint64(m.Amount)
	buffer = buffer.AppendUint64(m.Deadline)
	buffer = buffer.AppendUint8(uint8(m.Status))
	buffer = buffer.AppendString(m.Deliverables)
	buffer = buffer.AppendUint64(m.CompletedAt)
	buffer = buffer.AppendUint64(m.PaidAt)
	return buffer
}

// Pack - standalone encoding
func (m *Milestone) Pack() codec.Packed {
	return m.Append(nil)
}

// UnpackMilestone - read and validate a milestone
func UnpackMilestone(u *codec.Unpacker) (*Milestone, error) {
	var err error
	m := &Milestone{}

	if m.ID, err = u.Uint64("Milestone.id"); nil != err {
		return nil, err
	}
	if m.ProjectID, err = u.Uint64("Milestone.projectId"); nil != err {
		return nil, err
	}
	if m.Title, err = u.String("Milestone.title"); nil != err {
		return nil, err
	}
	if m.Description, err = u.String("Milestone.description"); nil != err {
		return nil, err
	}
	if m.Amount, err = u.Uint64("Milestone.amount"); nil != err {
		return nil, err
	}
	if m.Deadline, err = u.Uint64("Milestone.deadline"); nil != err {
		return nil, err
	}
	status, err := u.Uint8("Milestone.status")
	if nil != err {
		return nil, err
	}
	m.Status = MilestoneStatus(status)
	if !m.Status.Valid() {
		return nil, fault.Malformed("Milestone.status", "invalid")
	}
	if m.Deliverables, err = u.String("Milestone.deliverables"); nil != err {
		return nil, err
	}
	if m.CompletedAt, err = u.Uint64("Milestone.completedAt"); nil != err {
		return nil, err
	}
	if m.PaidAt, err = u.Uint64("Milestone.paidAt"); nil != err {
		return nil, err
	}
	return m, nil
}

// MilestoneFromBytes - decode a complete stored milestone
func MilestoneFromBytes(buffer []byte) (*Milestone, error) {
	u := codec.NewUnpacker(buffer)
	m, err := UnpackMilestone(u)
	if nil != err {
		return nil, err
	}
	if err := u.Done("Milestone"); nil != err {
		return nil, err
	}
	return m, nil
}

// PackMilestones - count prefixed list of milestones
func PackMilestones(milestones []*Milestone) codec.Packed {
	buffer := codec.Packed{}.AppendUint32(uint32(len(milestones)))
	for _, m := range milestones {
		buffer = m.Append(buffer)
	}
	return buffer
}

// MilestonesFromBytes - decode a complete list of milestones
func MilestonesFromBytes(buffer []byte) ([]*Milestone, error) {
	u := codec.NewUnpacker(buffer)
	count, err := u.Count("Milestones.count", minimumMilestoneSize)
	if nil != err {
		return nil, err
	}
	milestones := make([]*Milestone, 0, count)
	for i := 0; i < count; i += 1 {
		m, err := UnpackMilestone(u)
		if nil != err {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	if err := u.Done("Milestones"); nil != err {
		return nil, err
	}
	return milestones, nil
}

const minimumMilestoneSize = codec.Uint64Size*6 + codec.Uint32Size*3 + codec.Uint8Size
