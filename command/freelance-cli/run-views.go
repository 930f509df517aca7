// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/contract"
	"github.com/bitmark-inc/freelanced/record"
)

func decodeProject(b []byte) (interface{}, error) {
	return record.ProjectFromBytes(b)
}

func decodeProjects(b []byte) (interface{}, error) {
	projects, err := record.ProjectsFromBytes(b)
	if nil == projects && nil == err {
		projects = []*record.Project{}
	}
	return projects, err
}

func decodeMilestone(b []byte) (interface{}, error) {
	return record.MilestoneFromBytes(b)
}

func decodeMilestones(b []byte) (interface{}, error) {
	milestones, err := record.MilestonesFromBytes(b)
	if nil == milestones && nil == err {
		milestones = []*record.Milestone{}
	}
	return milestones, err
}

func decodeRatings(b []byte) (interface{}, error) {
	ratings, err := record.RatingsFromBytes(b)
	if nil == ratings && nil == err {
		ratings = []*record.Rating{}
	}
	return ratings, err
}

func decodeDispute(b []byte) (interface{}, error) {
	return record.DisputeFromBytes(b)
}

type feesReply struct {
	PlatformFees uint64 `json:"platformFees"`
}

func decodeFees(b []byte) (interface{}, error) {
	u := codec.NewUnpacker(b)
	total, err := u.Uint64("fees")
	if nil != err {
		return nil, err
	}
	if err := u.Done("fees"); nil != err {
		return nil, err
	}
	return feesReply{PlatformFees: total}, nil
}

func runProject(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	return view(m, "getProjectView", &contract.ProjectArguments{ProjectID: id}, decodeProject)
}

func runProjects(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	user := c.String("user")
	status := c.String("status")
	open := c.Bool("open")

	selected := 0
	for _, b := range []bool{"" != user, "" != status, open} {
		if b {
			selected += 1
		}
	}
	if 1 != selected {
		return ErrSelectOne
	}

	switch {
	case "" != user:
		a, err := checkAddress(user, ErrRequiredUser)
		if nil != err {
			return err
		}
		return view(m, "getProjectsByUser", &contract.AddressArguments{Address: a}, decodeProjects)

	case "" != status:
		s, err := record.ParseProjectStatus(status)
		if nil != err {
			return err
		}
		return view(m, "getProjectsByStatus", &contract.StatusArguments{Status: s}, decodeProjects)

	default:
		return view(m, "getOpenProjects", &contract.NoArguments{}, decodeProjects)
	}
}

func runMilestone(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	milestone, err := checkMilestoneID(c.Uint64("milestone"))
	if nil != err {
		return err
	}
	return view(m, "getMilestone", &contract.MilestoneArguments{ProjectID: id, MilestoneID: milestone}, decodeMilestone)
}

func runMilestones(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	return view(m, "getMilestones", &contract.ProjectArguments{ProjectID: id}, decodeMilestones)
}

func runRatings(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	a, err := checkAddress(c.String("user"), ErrRequiredUser)
	if nil != err {
		return err
	}
	return view(m, "getRatings", &contract.AddressArguments{Address: a}, decodeRatings)
}

func runDispute(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	return view(m, "getDispute", &contract.ProjectArguments{ProjectID: id}, decodeDispute)
}

func runFees(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return view(m, "getPlatformFees", &contract.NoArguments{}, decodeFees)
}
