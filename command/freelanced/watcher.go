// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/freelanced/rpc"
)

// re-reads the configuration file when it changes and applies the
// settings that can change while running
type configurationWatcher struct {
	log       *logger.L
	fileName  string
	variables map[string]string
	apply     func(*Configuration) error
}

func newConfigurationWatcher(log *logger.L, fileName string, variables map[string]string) *configurationWatcher {
	return &configurationWatcher{
		log:       log,
		fileName:  fileName,
		variables: variables,
		apply:     applyRateLimit,
	}
}

func applyRateLimit(c *Configuration) error {
	return rpc.SetRateLimit(c.ClientRPC.RateLimit, c.ClientRPC.RateBurst)
}

func (w *configurationWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	fileName, err := filepath.Abs(filepath.Clean(w.fileName))
	if nil != err {
		w.log.Errorf("configuration file: %q error: %s", w.fileName, err)
		<-shutdown
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		w.log.Errorf("new watcher error: %s", err)
		<-shutdown
		return
	}
	defer watcher.Close()

	// editors often replace the file, so watch the directory
	err = watcher.Add(filepath.Dir(fileName))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		<-shutdown
		return
	}
	w.log.Infof("watching: %q", fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(fileName) {
				continue
			}
			if !isChange(event) {
				continue
			}
			w.log.Infof("file event: %v", event)
			w.reload(fileName)

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
	w.log.Info("stopped")
}

func (w *configurationWatcher) reload(fileName string) {
	c, err := getConfiguration(fileName, w.variables)
	if nil != err {
		w.log.Errorf("configuration reload error: %s", err)
		return
	}
	err = w.apply(c)
	if nil != err {
		w.log.Errorf("configuration apply error: %s", err)
		return
	}
	w.log.Infof("configuration reloaded: rate limit: %f  burst: %d", c.ClientRPC.RateLimit, c.ClientRPC.RateBurst)
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
