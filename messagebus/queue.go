// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/freelanced/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - an item and the name of its sender
type Message struct {
	From string
	Item interface{}
}

// Queue - a bounded message queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// Bus - the process wide queues
var Bus = struct {
	Events *Queue
}{
	Events: New(queueSize),
}

// New - create a queue holding up to size messages
func New(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue an item without blocking
//
// returns false if the queue was full and the item was dropped
func (q *Queue) Send(from string, item interface{}) bool {
	select {
	case q.c <- Message{From: from, Item: item}:
		return true
	default:
		q.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Dropped - number of items lost to a full queue
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
