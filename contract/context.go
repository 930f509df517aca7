// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/state"
	"github.com/bitmark-inc/freelanced/storage"
)

// Event - notification produced by a successful call
type Event struct {
	Name      string `json:"name"`
	ProjectID uint64 `json:"projectId,omitempty"`
	Message   string `json:"message"`
}

// Context - execution environment of a single call
type Context struct {
	Caller     address.Address
	Timestamp  uint64
	State      *state.State
	Settlement Settlement
	events     []Event
}

// NewContext - context for one call; settlement may be nil
func NewContext(caller address.Address, timestamp uint64, store storage.Store, settlement Settlement) *Context {
	return &Context{
		Caller:     caller,
		Timestamp:  timestamp,
		State:      state.New(store),
		Settlement: settlement,
	}
}

// Emit - record an event
func (ctx *Context) Emit(name string, projectID uint64, format string, arguments ...interface{}) {
	ctx.events = append(ctx.events, Event{
		Name:      name,
		ProjectID: projectID,
		Message:   fmt.Sprintf(format, arguments...),
	})
}

// Events - everything emitted so far
func (ctx *Context) Events() []Event {
	return ctx.events
}
