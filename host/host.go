// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/contract"
	"github.com/bitmark-inc/freelanced/fault"
	"github.com/bitmark-inc/freelanced/messagebus"
	"github.com/bitmark-inc/freelanced/metrics"
	"github.com/bitmark-inc/freelanced/state"
	"github.com/bitmark-inc/freelanced/storage"
)

// name used as the sender of published events
const busSender = "host"

// Result - outcome of a committed call
type Result struct {
	Return    []byte           `json:"return"`
	Events    []contract.Event `json:"events"`
	Timestamp uint64           `json:"timestamp"`
}

// Host - serialised access to the contract
type Host struct {
	sync.Mutex

	log        *logger.L
	db         *storage.LevelDB
	engine     *contract.Contract
	settlement contract.Settlement
	queue      *messagebus.Queue
	clock      func() time.Time
	last       uint64
}

// New - host over an open database
//
// settlement and queue may be nil
func New(log *logger.L, db *storage.LevelDB, settlement contract.Settlement, queue *messagebus.Queue) *Host {
	return &Host{
		log:        log,
		db:         db,
		engine:     contract.New(log),
		settlement: settlement,
		queue:      queue,
		clock:      time.Now,
	}
}

// SetClock - replace the time source
func (h *Host) SetClock(clock func() time.Time) {
	h.Lock()
	defer h.Unlock()
	h.clock = clock
}

// timestamp never goes backwards even if the clock does
func (h *Host) timestamp() uint64 {
	now := h.clock().Unix()
	ts := uint64(0)
	if now > 0 {
		ts = uint64(now)
	}
	if ts < h.last {
		ts = h.last
	}
	h.last = ts
	return ts
}

// Initialised - true once the contract has been deployed
func (h *Host) Initialised() bool {
	return state.New(h.db).Initialised()
}

// Deploy - run the constructor if the store is empty
//
// an already deployed contract is left untouched
func (h *Host) Deploy(deployer address.Address, owner address.Address) error {
	if h.Initialised() {
		h.log.Debug("contract already deployed")
		return nil
	}
	a := contract.InitialiseArguments{
		Owner: owner,
	}
	_, err := h.Call(deployer, "initialise", a.Pack())
	return err
}

// Call - run a function as caller
//
// views are served from committed state
func (h *Host) Call(caller address.Address, function string, arguments []byte) (*Result, error) {
	view, err := contract.IsView(function)
	if nil != err {
		metrics.RecordCall(function, err, 0)
		return nil, err
	}
	if view {
		result, err := h.Read(caller, function, arguments)
		if nil != err {
			return nil, err
		}
		return &Result{Return: result}, nil
	}

	h.Lock()
	defer h.Unlock()

	start := time.Now()
	result, err := h.execute(caller, function, arguments)
	metrics.RecordCall(function, err, time.Since(start))
	if nil != err {
		return nil, err
	}

	for _, e := range result.Events {
		metrics.RecordEvent(e.Name)
		if nil != h.queue && !h.queue.Send(busSender, e) {
			h.log.Warnf("event queue full, dropped: %s", e.Name)
		}
	}
	return result, nil
}

// run one mutating call inside a transaction
func (h *Host) execute(caller address.Address, function string, arguments []byte) (result *Result, err error) {
	trx, err := h.db.Begin()
	if nil != err {
		return nil, err
	}

	defer func() {
		if r := recover(); nil != r {
			trx.Abort()
			h.log.Criticalf("%s: panic: %v", function, r)
			result = nil
			err = fault.ProcessError(fmt.Sprintf("call failed: %v", r))
		}
	}()

	ctx := contract.NewContext(caller, h.timestamp(), trx, h.settlement)
	returned, err := h.engine.Call(ctx, function, arguments)
	if nil != err {
		trx.Abort()
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		h.log.Errorf("%s: commit error: %s", function, err)
		return nil, fault.ProcessError(fmt.Sprintf("commit failed: %s", err))
	}

	h.log.Infof("%s: caller: %s  events: %d", function, caller, len(ctx.Events()))
	return &Result{
		Return:    returned,
		Events:    ctx.Events(),
		Timestamp: ctx.Timestamp,
	}, nil
}

// Read - run a view function against committed state
func (h *Host) Read(caller address.Address, function string, arguments []byte) (result []byte, err error) {
	view, err := contract.IsView(function)
	if nil != err {
		return nil, err
	}
	if !view {
		return nil, fault.FunctionNotView
	}

	start := time.Now()
	defer func() {
		if r := recover(); nil != r {
			h.log.Criticalf("%s: panic: %v", function, r)
			result = nil
			err = fault.ProcessError(fmt.Sprintf("read failed: %v", r))
		}
		metrics.RecordCall(function, err, time.Since(start))
	}()

	h.Lock()
	ts := h.timestamp()
	h.Unlock()

	ctx := contract.NewContext(caller, ts, h.db, nil)
	return h.engine.Call(ctx, function, arguments)
}
