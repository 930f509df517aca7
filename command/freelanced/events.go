// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/contract"
	"github.com/bitmark-inc/freelanced/counter"
	"github.com/bitmark-inc/freelanced/messagebus"
)

// drains committed contract events into the log
type eventLogger struct {
	log   *logger.L
	queue *messagebus.Queue
	count counter.Counter
}

func newEventLogger(log *logger.L, queue *messagebus.Queue) *eventLogger {
	return &eventLogger{
		log:   log,
		queue: queue,
	}
}

func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {
	e.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-e.queue.Chan():
			e.record(item)
		}
	}

	e.log.Infof("events: %d  dropped: %d", e.count.Uint64(), e.queue.Dropped())
	e.log.Info("stopped")
}

func (e *eventLogger) record(item messagebus.Message) {
	event, ok := item.Item.(contract.Event)
	if !ok {
		e.log.Warnf("from: %s  unexpected item: %v", item.From, item.Item)
		return
	}
	e.count.Increment()
	if 0 == event.ProjectID {
		e.log.Infof("%s: %s", event.Name, event.Message)
	} else {
		e.log.Infof("%s: project: %d  %s", event.Name, event.ProjectID, event.Message)
	}
}
