// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/freelanced/contract"
)

func runInitialise(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAddress(c.String("owner"), nil)
	if nil != err {
		return err
	}
	return call(m, "initialise", &contract.InitialiseArguments{Owner: owner})
}

func runCreateProject(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	title, err := checkText(c.String("title"), ErrRequiredTitle)
	if nil != err {
		return err
	}
	budget := c.Uint64("budget")
	if 0 == budget {
		return ErrRequiredBudget
	}
	deadline, err := checkDeadline(c.String("deadline"), time.Now())
	if nil != err {
		return err
	}

	arguments := &contract.CreateProjectArguments{
		Title:       title,
		Description: c.String("description"),
		Budget:      budget,
		Deadline:    deadline,
		Category:    c.String("category"),
		Skills:      c.StringSlice("skill"),
	}
	return call(m, "createProject", arguments)
}

func runApply(c *cli.Context) error {
	return projectCall(c, "applyForProject")
}

func runCompleteProject(c *cli.Context) error {
	return projectCall(c, "completeProject")
}

func runCancelProject(c *cli.Context) error {
	return projectCall(c, "cancelProject")
}

func projectCall(c *cli.Context, function string) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	return call(m, function, &contract.ProjectArguments{ProjectID: id})
}

func runAddMilestone(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	title, err := checkText(c.String("title"), ErrRequiredTitle)
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}
	deadline, err := checkDeadline(c.String("deadline"), time.Now())
	if nil != err {
		return err
	}

	arguments := &contract.AddMilestoneArguments{
		ProjectID:   id,
		Title:       title,
		Description: c.String("description"),
		Amount:      amount,
		Deadline:    deadline,
	}
	return call(m, "addMilestone", arguments)
}

func runCompleteMilestone(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	milestone, err := checkMilestoneID(c.Uint64("milestone"))
	if nil != err {
		return err
	}

	arguments := &contract.CompleteMilestoneArguments{
		ProjectID:    id,
		MilestoneID:  milestone,
		Deliverables: c.String("deliverables"),
	}
	return call(m, "completeMilestone", arguments)
}

func runApproveMilestone(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	milestone, err := checkMilestoneID(c.Uint64("milestone"))
	if nil != err {
		return err
	}
	return call(m, "approveMilestone", &contract.MilestoneArguments{ProjectID: id, MilestoneID: milestone})
}

func runRate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	to, err := checkAddress(c.String("to"), ErrRequiredTarget)
	if nil != err {
		return err
	}
	score, err := checkScore(c.Uint("score"))
	if nil != err {
		return err
	}

	arguments := &contract.AddRatingArguments{
		ProjectID: id,
		To:        to,
		Score:     score,
		Comment:   c.String("comment"),
	}
	return call(m, "addRating", arguments)
}

func runOpenDispute(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	reason, err := checkText(c.String("reason"), ErrRequiredReason)
	if nil != err {
		return err
	}
	return call(m, "openDispute", &contract.OpenDisputeArguments{ProjectID: id, Reason: reason})
}

func runResolveDispute(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkProjectID(c.Uint64("project"))
	if nil != err {
		return err
	}
	arguments := &contract.ResolveDisputeArguments{
		ProjectID:     id,
		ForFreelancer: c.Bool("freelancer"),
	}
	return call(m, "resolveDispute", arguments)
}
