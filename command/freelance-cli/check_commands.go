// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/record"
)

// address is required unless missing is nil
func checkAddress(text string, missing error) (address.Address, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		if nil == missing {
			return address.Empty, nil
		}
		return address.Empty, missing
	}
	return address.Parse(text)
}

func checkProjectID(id uint64) (uint64, error) {
	if 0 == id {
		return 0, ErrRequiredProject
	}
	return id, nil
}

func checkMilestoneID(id uint64) (uint64, error) {
	if 0 == id {
		return 0, ErrRequiredMilestone
	}
	return id, nil
}

// check for non-blank text
func checkText(text string, missing error) (string, error) {
	if "" == strings.TrimSpace(text) {
		return "", missing
	}
	return text, nil
}

func checkScore(score uint) (uint8, error) {
	if score < record.MinimumScore || score > record.MaximumScore {
		return 0, ErrInvalidScore
	}
	return uint8(score), nil
}

// deadline as unix seconds, an RFC3339 time or a duration after now
func checkDeadline(text string, now time.Time) (uint64, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		return 0, ErrRequiredDeadline
	}
	if n, err := strconv.ParseUint(text, 10, 64); nil == err {
		return n, nil
	}
	if t, err := time.Parse(time.RFC3339, text); nil == err {
		return uint64(t.Unix()), nil
	}
	if d, err := time.ParseDuration(text); nil == err && d > 0 {
		return uint64(now.Add(d).Unix()), nil
	}
	return 0, ErrInvalidDeadline
}
