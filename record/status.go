// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strings"

	"github.com/bitmark-inc/freelanced/fault"
)

// ProjectStatus - project lifecycle state
type ProjectStatus uint8

// project states in discriminant order
const (
	ProjectOpen       ProjectStatus = iota
	ProjectInProgress ProjectStatus = iota
	ProjectCompleted  ProjectStatus = iota
	ProjectCancelled  ProjectStatus = iota
	ProjectDisputed   ProjectStatus = iota
	projectStatusLimit
)

var projectStatusNames = [...]string{
	ProjectOpen:       "Open",
	ProjectInProgress: "InProgress",
	ProjectCompleted:  "Completed",
	ProjectCancelled:  "Cancelled",
	ProjectDisputed:   "Disputed",
}

// MilestoneStatus - milestone state, only ever moves forward
type MilestoneStatus uint8

// milestone states in discriminant order
const (
	MilestonePending   MilestoneStatus = iota
	MilestoneCompleted MilestoneStatus = iota
	MilestoneApproved  MilestoneStatus = iota
	MilestonePaid      MilestoneStatus = iota
	milestoneStatusLimit
)

var milestoneStatusNames = [...]string{
	MilestonePending:   "Pending",
	MilestoneCompleted: "Completed",
	MilestoneApproved:  "Approved",
	MilestonePaid:      "Paid",
}

// DisputeStatus - dispute state
type DisputeStatus uint8

// dispute states in discriminant order
const (
	DisputeNone                  DisputeStatus = iota
	DisputeOpened                DisputeStatus = iota
	DisputeResolvedForClient     DisputeStatus = iota
	DisputeResolvedForFreelancer DisputeStatus = iota
	disputeStatusLimit
)

var disputeStatusNames = [...]string{
	DisputeNone:                  "None",
	DisputeOpened:                "Opened",
	DisputeResolvedForClient:     "ResolvedForClient",
	DisputeResolvedForFreelancer: "ResolvedForFreelancer",
}

// Valid - discriminant is in range
func (s ProjectStatus) Valid() bool { return s < projectStatusLimit }

// Valid - discriminant is in range
func (s MilestoneStatus) Valid() bool { return s < milestoneStatusLimit }

// Valid - discriminant is in range
func (s DisputeStatus) Valid() bool { return s < disputeStatusLimit }

func (s ProjectStatus) String() string {
	if !s.Valid() {
		return "*unknown*"
	}
	return projectStatusNames[s]
}

func (s MilestoneStatus) String() string {
	if !s.Valid() {
		return "*unknown*"
	}
	return milestoneStatusNames[s]
}

func (s DisputeStatus) String() string {
	if !s.Valid() {
		return "*unknown*"
	}
	return disputeStatusNames[s]
}

// MarshalText - status as its name for JSON
func (s ProjectStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalText - status as its name for JSON
func (s MilestoneStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// MarshalText - status as its name for JSON
func (s DisputeStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - status from its name, case insensitive
func (s *ProjectStatus) UnmarshalText(text []byte) error {
	status, err := ParseProjectStatus(string(text))
	if nil != err {
		return err
	}
	*s = status
	return nil
}

// ParseProjectStatus - convert a name to a project status
func ParseProjectStatus(name string) (ProjectStatus, error) {
	for i, n := range projectStatusNames {
		if strings.EqualFold(n, name) {
			return ProjectStatus(i), nil
		}
	}
	return 0, fault.InvalidStatus
}
