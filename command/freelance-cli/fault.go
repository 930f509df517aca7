// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/freelanced/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidDeadline   = fault.InvalidError("deadline is not unix seconds, RFC3339 or a duration")
	ErrInvalidScore      = fault.InvalidError("score must be 1-5")
	ErrRequiredAmount    = fault.InvalidError("amount is required")
	ErrRequiredBudget    = fault.InvalidError("budget is required")
	ErrRequiredCaller    = fault.InvalidError("caller address is required")
	ErrRequiredDeadline  = fault.InvalidError("deadline is required")
	ErrRequiredMilestone = fault.InvalidError("milestone id is required")
	ErrRequiredProject   = fault.InvalidError("project id is required")
	ErrRequiredReason    = fault.InvalidError("reason is required")
	ErrRequiredSeed      = fault.InvalidError("seed is required")
	ErrRequiredTarget    = fault.InvalidError("rated address is required")
	ErrRequiredTitle     = fault.InvalidError("title is required")
	ErrRequiredUser      = fault.InvalidError("user address is required")
	ErrSelectOne         = fault.InvalidError("select exactly one of: user, status, open")
)
