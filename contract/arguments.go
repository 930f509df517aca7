// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/record"
)

// Arguments - encoded call arguments of one function
type Arguments interface {
	Pack() codec.Packed
	Unpack(u *codec.Unpacker) error
}

// NoArguments - for functions that take nothing
type NoArguments struct{}

// InitialiseArguments - deployment constructor
type InitialiseArguments struct {
	Owner address.Address `json:"owner"`
}

// CreateProjectArguments - post a new project
type CreateProjectArguments struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      uint64   `json:"budget"`
	Deadline    uint64   `json:"deadline"`
	Category    string   `json:"category"`
	Skills      []string `json:"skills"`
}

// ProjectArguments - functions addressing a single project
type ProjectArguments struct {
	ProjectID uint64 `json:"projectId"`
}

// AddMilestoneArguments - add a milestone to a project
type AddMilestoneArguments struct {
	ProjectID   uint64 `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      uint64 `json:"amount"`
	Deadline    uint64 `json:"deadline"`
}

// MilestoneArguments - functions addressing a single milestone
type MilestoneArguments struct {
	ProjectID   uint64 `json:"projectId"`
	MilestoneID uint64 `json:"milestoneId"`
}

// CompleteMilestoneArguments - deliver a milestone
type CompleteMilestoneArguments struct {
	ProjectID    uint64 `json:"projectId"`
	MilestoneID  uint64 `json:"milestoneId"`
	Deliverables string `json:"deliverables"`
}

// AddRatingArguments - rate the other participant
type AddRatingArguments struct {
	ProjectID uint64          `json:"projectId"`
	To        address.Address `json:"to"`
	Score     uint8           `json:"score"`
	Comment   string          `json:"comment"`
}

// OpenDisputeArguments - raise a dispute
type OpenDisputeArguments struct {
	ProjectID uint64 `json:"projectId"`
	Reason    string `json:"reason"`
}

// ResolveDisputeArguments - arbiter decision
type ResolveDisputeArguments struct {
	ProjectID     uint64 `json:"projectId"`
	ForFreelancer bool   `json:"forFreelancer"`
}

// AddressArguments - functions addressing a user
type AddressArguments struct {
	Address address.Address `json:"address"`
}

// StatusArguments - functions addressing a project status
type StatusArguments struct {
	Status record.ProjectStatus `json:"status"`
}

func (a *NoArguments) Pack() codec.Packed {
	return codec.Packed{}
}

func (a *NoArguments) Unpack(u *codec.Unpacker) error {
	return nil
}

func (a *InitialiseArguments) Pack() codec.Packed {
	return codec.Packed{}.AppendString(a.Owner.String())
}

func (a *InitialiseArguments) Unpack(u *codec.Unpacker) error {
	owner, err := u.String("owner")
	a.Owner = address.Address(owner)
	return err
}

func (a *CreateProjectArguments) Pack() codec.Packed {
	return codec.Packed{}.
		AppendString(a.Title).
		AppendString(a.Description).
		AppendUint64(a.Budget).
		AppendUint64(a.Deadline).
		AppendString(a.Category).
		AppendStrings(a.Skills)
}

func (a *CreateProjectArguments) Unpack(u *codec.Unpacker) (err error) {
	if a.Title, err = u.String("title"); nil != err {
		return
	}
	if a.Description, err = u.String("description"); nil != err {
		return
	}
	if a.Budget, err = u.Uint64("budget"); nil != err {
		return
	}
	if a.Deadline, err = u.Uint64("deadline"); nil != err {
		return
	}
	if a.Category, err = u.String("category"); nil != err {
		return
	}
	a.Skills, err = u.Strings("skills")
	return
}

func (a *ProjectArguments) Pack() codec.Packed {
	return codec.Packed{}.AppendUint64(a.ProjectID)
}

func (a *ProjectArguments) Unpack(u *codec.Unpacker) (err error) {
	a.ProjectID, err = u.Uint64("projectId")
	return
}

func (a *AddMilestoneArguments) Pack() codec.Packed {
	return codec.Packed{}.
		AppendUint64(a.ProjectID).
		AppendString(a.Title).
		AppendString(a.Description).
		AppendUint64(a.Amount).
		AppendUint64(a.Deadline)
}

func (a *AddMilestoneArguments) Unpack(u *codec.Unpacker) (err error) {
	if a.ProjectID, err = u.Uint64("projectId"); nil != err {
		return
	}
	if a.Title, err = u.String("title"); nil != err {
		return
	}
	if a.Description, err = u.String("description"); nil != err {
		return
	}
	if a.Amount, err = u.Uint64("amount"); nil != err {
		return
	}
	a.Deadline, err = u.Uint64("deadline")
	return
}

func (a *MilestoneArguments) Pack() codec.Packed {
	return codec.Packed{}.AppendUint64(a.ProjectID).AppendUint64(a.MilestoneID)
}

func (a *MilestoneArguments) Unpack(u *codec.Unpacker) (err error) {
	if a.ProjectID, err = u.Uint64("projectId"); nil != err {
		return
	}
	a.MilestoneID, err = u.Uint64("milestoneId")
	return
}

func (a *CompleteMilestoneArguments) Pack() codec.Packed {
	return codec.Packed{}.
		AppendUint64(a.ProjectID).
		AppendUint64(a.MilestoneID).
		AppendString(a.Deliverables)
}

func (a *CompleteMilestoneArguments) Unpack(u *codec.Unpacker) (err error) {
	if a.ProjectID, err = u.Uint64("projectId"); nil != err {
		return
	}
	if a.MilestoneID, err = u.Uint64("milestoneId"); nil != err {
		return
	}
	a.Deliverables, err = u.String("deliverables")
	return
}

func (a *AddRatingArguments) Pack() codec.Packed {
	return codec.Packed{}.
		AppendUint64(a.ProjectID).
		AppendString(a.To.String()).
		AppendUint8(a.Score).
		AppendString(a.Comment)
}

func (a *AddRatingArguments) Unpack(u *codec.Unpacker) (err error) {
	if a.ProjectID, err = u.Uint64("projectId"); nil != err {
		return
	}
	to, err := u.String("to")
	if nil != err {
		return
	}
	a.To = address.Address(to)
	if a.Score, err = u.Uint8("score"); nil != err {
		return
	}
	a.Comment, err = u.String("comment")
	return
}

func (a *OpenDisputeArguments) Pack() codec.Packed {
	return codec.Packed{}.AppendUint64(a.ProjectID).AppendString(a.Reason)
}

func (a *OpenDisputeArguments) Unpack(u *codec.Unpacker) (err error) {
	if a.ProjectID, err = u.Uint64("projectId"); nil != err {
		return
	}
	a.Reason, err = u.String("reason")
	return
}

func (a *ResolveDisputeArguments) Pack() codec.Packed {
	return codec.Packed{}.AppendUint64(a.ProjectID).AppendBool(a.ForFreelancer)
}

func (a *ResolveDisputeArguments) Unpack(u *codec.Unpacker) (err error) {
	if a.ProjectID, err = u.Uint64("projectId"); nil != err {
		return
	}
	a.ForFreelancer, err = u.Bool("forFreelancer")
	return
}

func (a *AddressArguments) Pack() codec.Packed {
	return codec.Packed{}.AppendString(a.Address.String())
}

func (a *AddressArguments) Unpack(u *codec.Unpacker) error {
	s, err := u.String("address")
	a.Address = address.Address(s)
	return err
}

func (a *StatusArguments) Pack() codec.Packed {
	return codec.Packed{}.AppendUint8(uint8(a.Status))
}

func (a *StatusArguments) Unpack(u *codec.Unpacker) error {
	status, err := u.Uint8("status")
	if nil != err {
		return err
	}
	a.Status = record.ProjectStatus(status)
	if !a.Status.Valid() {
		return fault.Malformed("status", "invalid")
	}
	return nil
}
