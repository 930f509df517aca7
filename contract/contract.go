// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/query"
	"github.com/bitmark-inc/freelanced/record"
)

// Contract - the marketplace engine
type Contract struct {
	log *logger.L
}

// New - create the engine with its log channel
func New(log *logger.L) *Contract {
	return &Contract{
		log: log,
	}
}

type handler func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error)

type function struct {
	view      bool
	arguments func() Arguments
	run       handler
}

// callable functions by name
var functions = map[string]function{
	"initialise": {
		arguments: func() Arguments { return &InitialiseArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			return nil, c.Initialise(ctx, arguments.(*InitialiseArguments))
		},
	},
	"createProject": {
		arguments: func() Arguments { return &CreateProjectArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			id, err := c.CreateProject(ctx, arguments.(*CreateProjectArguments))
			if nil != err {
				return nil, err
			}
			return codec.Uint64(id), nil
		},
	},
	"applyForProject": {
		arguments: func() Arguments { return &ProjectArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			return nil, c.ApplyForProject(ctx, arguments.(*ProjectArguments))
		},
	},
	"addMilestone": {
		arguments: func() Arguments { return &AddMilestoneArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			_, err := c.AddMilestone(ctx, arguments.(*AddMilestoneArguments))
			return nil, err
		},
	},
	"completeMilestone": {
		arguments: func() Arguments { return &CompleteMilestoneArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			return nil, c.CompleteMilestone(ctx, arguments.(*CompleteMilestoneArguments))
		},
	},
	"approveMilestone": {
		arguments: func() Arguments { return &MilestoneArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			return nil, c.ApproveMilestone(ctx, arguments.(*MilestoneArguments))
		},
	},
	"addRating": {
		arguments: func() Arguments { return &AddRatingArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			_, err := c.AddRating(ctx, arguments.(*AddRatingArguments))
			return nil, err
		},
	},
	"completeProject": {
		arguments: func() Arguments { return &ProjectArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			return nil, c.CompleteProject(ctx, arguments.(*ProjectArguments))
		},
	},
	"cancelProject": {
		arguments: func() Arguments { return &ProjectArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			return nil, c.CancelProject(ctx, arguments.(*ProjectArguments))
		},
	},
	"openDispute": {
		arguments: func() Arguments { return &OpenDisputeArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			_, err := c.OpenDispute(ctx, arguments.(*OpenDisputeArguments))
			return nil, err
		},
	},
	"resolveDispute": {
		arguments: func() Arguments { return &ResolveDisputeArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			return nil, c.ResolveDispute(ctx, arguments.(*ResolveDisputeArguments))
		},
	},

	// views
	"getProjectView": {
		view:      true,
		arguments: func() Arguments { return &ProjectArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			p, err := query.Project(ctx.State, arguments.(*ProjectArguments).ProjectID)
			if nil != err {
				return nil, err
			}
			return p.Pack(), nil
		},
	},
	"getProjectsByUser": {
		view:      true,
		arguments: func() Arguments { return &AddressArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			projects, err := query.ProjectsByUser(ctx.State, arguments.(*AddressArguments).Address)
			if nil != err {
				return nil, err
			}
			return record.PackProjects(projects), nil
		},
	},
	"getOpenProjects": {
		view:      true,
		arguments: func() Arguments { return &NoArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			projects, err := query.OpenProjects(ctx.State)
			if nil != err {
				return nil, err
			}
			return record.PackProjects(projects), nil
		},
	},
	"getProjectsByStatus": {
		view:      true,
		arguments: func() Arguments { return &StatusArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			projects, err := query.ProjectsByStatus(ctx.State, arguments.(*StatusArguments).Status)
			if nil != err {
				return nil, err
			}
			return record.PackProjects(projects), nil
		},
	},
	"getMilestone": {
		view:      true,
		arguments: func() Arguments { return &MilestoneArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			a := arguments.(*MilestoneArguments)
			m, err := query.Milestone(ctx.State, a.ProjectID, a.MilestoneID)
			if nil != err {
				return nil, err
			}
			return m.Pack(), nil
		},
	},
	"getMilestones": {
		view:      true,
		arguments: func() Arguments { return &ProjectArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			milestones, err := query.Milestones(ctx.State, arguments.(*ProjectArguments).ProjectID)
			if nil != err {
				return nil, err
			}
			return record.PackMilestones(milestones), nil
		},
	},
	"getRatings": {
		view:      true,
		arguments: func() Arguments { return &AddressArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			ratings, err := query.Ratings(ctx.State, arguments.(*AddressArguments).Address)
			if nil != err {
				return nil, err
			}
			return record.PackRatings(ratings), nil
		},
	},
	"getDispute": {
		view:      true,
		arguments: func() Arguments { return &ProjectArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			d, err := query.Dispute(ctx.State, arguments.(*ProjectArguments).ProjectID)
			if nil != err {
				return nil, err
			}
			return d.Pack(), nil
		},
	},
	"getPlatformFees": {
		view:      true,
		arguments: func() Arguments { return &NoArguments{} },
		run: func(c *Contract, ctx *Context, arguments Arguments) (codec.Packed, error) {
			total, err := query.PlatformFees(ctx.State)
			if nil != err {
				return nil, err
			}
			return codec.Uint64(total), nil
		},
	},
}

// Functions - sorted names of all callable functions
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsView - true if the function never writes
func IsView(name string) (bool, error) {
	f, ok := functions[name]
	if !ok {
		return false, fault.FunctionNotFound
	}
	return f.view, nil
}

// NewArguments - empty argument holder for a function
func NewArguments(name string) (Arguments, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fault.FunctionNotFound
	}
	return f.arguments(), nil
}

// Call - decode arguments, run a function and encode its result
//
// arguments must be consumed completely
func (c *Contract) Call(ctx *Context, name string, arguments []byte) ([]byte, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fault.FunctionNotFound
	}

	a := f.arguments()
	u := codec.NewUnpacker(arguments)
	if err := a.Unpack(u); nil != err {
		return nil, err
	}
	if err := u.Done("arguments"); nil != err {
		return nil, err
	}

	result, err := f.run(c, ctx, a)
	if nil != err {
		c.log.Debugf("%s: caller: %s  error: %s", name, ctx.Caller, err)
		return nil, err
	}
	return result, nil
}
