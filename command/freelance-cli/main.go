// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	useTLS  bool
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2150"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "freelance-cli"
	app.Usage = "client for the freelance contract daemon"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	projectFlag := cli.Uint64Flag{
		Name:  "project, p",
		Value: 0,
		Usage: "*project `ID`",
	}
	milestoneFlag := cli.Uint64Flag{
		Name:  "milestone, m",
		Value: 0,
		Usage: "*milestone `ID`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " freelanced host/IP and port, `HOST:PORT`",
			EnvVar: "FREELANCE_CONNECT",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			Usage:  " calling account `ADDRESS`",
			EnvVar: "FREELANCE_CALLER",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "address",
			Usage:     "derive an account address from a seed phrase",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "*seed `PHRASE`",
				},
				cli.BoolFlag{
					Name:  "contract",
					Usage: " derive a contract address instead of a user address",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "info",
			Usage:     "display freelanced status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "initialise",
			Usage:     "deploy the contract, once only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " arbiter `ADDRESS` default is the caller",
				},
			},
			Action: runInitialise,
		},
		{
			Name:      "create-project",
			Usage:     "post a new project as the client",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, T",
					Value: "",
					Usage: "*project title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " project description `STRING`",
				},
				cli.Uint64Flag{
					Name:  "budget, b",
					Value: 0,
					Usage: "*budget `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "deadline, D",
					Value: "",
					Usage: "*deadline as unix seconds, RFC3339 or a duration from now `TIME`",
				},
				cli.StringFlag{
					Name:  "category, C",
					Value: "",
					Usage: " category `STRING`",
				},
				cli.StringSliceFlag{
					Name:  "skill, s",
					Usage: " required skill `STRING`, may be repeated",
				},
			},
			Action: runCreateProject,
		},
		{
			Name:      "apply",
			Usage:     "become the freelancer of an open project",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag},
			Action:    runApply,
		},
		{
			Name:      "add-milestone",
			Usage:     "add a milestone to an in progress project",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				projectFlag,
				cli.StringFlag{
					Name:  "title, T",
					Value: "",
					Usage: "*milestone title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " milestone description `STRING`",
				},
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: "*amount `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "deadline, D",
					Value: "",
					Usage: "*deadline as unix seconds, RFC3339 or a duration from now `TIME`",
				},
			},
			Action: runAddMilestone,
		},
		{
			Name:      "complete-milestone",
			Usage:     "deliver a milestone as the freelancer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				projectFlag,
				milestoneFlag,
				cli.StringFlag{
					Name:  "deliverables, d",
					Value: "",
					Usage: " deliverables `STRING`",
				},
			},
			Action: runCompleteMilestone,
		},
		{
			Name:      "approve-milestone",
			Usage:     "approve and pay a completed milestone as the client",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag, milestoneFlag},
			Action:    runApproveMilestone,
		},
		{
			Name:      "complete-project",
			Usage:     "close a project once every milestone is paid",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag},
			Action:    runCompleteProject,
		},
		{
			Name:      "cancel-project",
			Usage:     "cancel an open project",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag},
			Action:    runCancelProject,
		},
		{
			Name:      "rate",
			Usage:     "rate the other participant of a completed project",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				projectFlag,
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*rated account `ADDRESS`",
				},
				cli.UintFlag{
					Name:  "score, s",
					Value: 0,
					Usage: "*score 1-5 `NUMBER`",
				},
				cli.StringFlag{
					Name:  "comment, C",
					Value: "",
					Usage: " comment `STRING`",
				},
			},
			Action: runRate,
		},
		{
			Name:      "open-dispute",
			Usage:     "raise a dispute on an in progress project",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				projectFlag,
				cli.StringFlag{
					Name:  "reason, r",
					Value: "",
					Usage: "*reason `STRING`",
				},
			},
			Action: runOpenDispute,
		},
		{
			Name:      "resolve-dispute",
			Usage:     "settle a dispute as the arbiter",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				projectFlag,
				cli.BoolFlag{
					Name:  "freelancer, f",
					Usage: " decide for the freelancer (default is for the client)",
				},
			},
			Action: runResolveDispute,
		},
		{
			Name:      "project",
			Usage:     "show a project",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag},
			Action:    runProject,
		},
		{
			Name:      "projects",
			Usage:     "list projects of a user, with a status, or open",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user, u",
					Value: "",
					Usage: "+projects of account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "+projects with `STATUS`",
				},
				cli.BoolFlag{
					Name:  "open, o",
					Usage: "+open projects",
				},
			},
			Action: runProjects,
		},
		{
			Name:      "milestone",
			Usage:     "show a milestone",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag, milestoneFlag},
			Action:    runMilestone,
		},
		{
			Name:      "milestones",
			Usage:     "list the milestones of a project",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag},
			Action:    runMilestones,
		},
		{
			Name:      "ratings",
			Usage:     "list ratings received by a user",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "user, u",
					Value: "",
					Usage: "*rated account `ADDRESS`",
				},
			},
			Action: runRatings,
		},
		{
			Name:      "dispute",
			Usage:     "show the dispute of a project",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{projectFlag},
			Action:    runDispute,
		},
		{
			Name:      "fees",
			Usage:     "show the accumulated platform fees",
			ArgsUsage: " ",
			Action:    runFees,
		},
		{
			Name:      "version",
			Usage:     "display freelance-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  c.GlobalBool("tls"),
			caller:  c.GlobalString("caller"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
