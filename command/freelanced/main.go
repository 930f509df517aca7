// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/background"
	"github.com/bitmark-inc/freelanced/host"
	"github.com/bitmark-inc/freelanced/messagebus"
	"github.com/bitmark-inc/freelanced/metrics"
	"github.com/bitmark-inc/freelanced/rpc"
	"github.com/bitmark-inc/freelanced/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "variable", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// -D name=value pairs are visible to the configuration script
	variables := make(map[string]string)
	for _, v := range options["variable"] {
		s := strings.SplitN(v, "=", 2)
		if 2 != len(s) {
			exitwithstatus.Message("%s: variable: %q is not name=value", program, v)
		}
		variables[strings.TrimSpace(s[0])] = strings.TrimSpace(s[1])
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// start the data storage
	log.Infof("database: %q", theConfiguration.Database.Name)
	db, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	queue := messagebus.Bus.Events
	if theConfiguration.EventQueue > 0 {
		queue = messagebus.New(theConfiguration.EventQueue)
	}

	// no settlement backend: payments are recorded as events only
	h := host.New(logger.New("host"), db, nil, queue)

	// the consumers must be running before the first event is published
	processes := background.Processes{
		newEventLogger(logger.New("events"), queue),
		newConfigurationWatcher(logger.New("watcher"), configurationFile, variables),
	}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, newMemoryStats(logger.New("memory")))
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	deployer := address.Address(theConfiguration.Deployer)
	if deployer.IsEmpty() {
		deployer = address.Address(theConfiguration.Owner)
	}
	if !h.Initialised() {
		if deployer.IsEmpty() {
			log.Critical("first run requires a deployer or owner address")
			exitwithstatus.Message("first run requires a deployer or owner address")
		}
		log.Infof("deploying contract, owner: %q  deployer: %s", theConfiguration.Owner, deployer)
	}
	err = h.Deploy(deployer, address.Address(theConfiguration.Owner))
	if nil != err {
		log.Criticalf("deploy error: %s", err)
		exitwithstatus.Message("deploy error: %s", err)
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version, h)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	metricsServer := metrics.Serve(logger.New("metrics"), theConfiguration.Metrics.Listen)
	if nil != metricsServer {
		defer metricsServer.Shutdown(context.Background())
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
