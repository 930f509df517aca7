// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/address"
)

func TestCheckDeadline(t *testing.T) {
	now := time.Unix(1600000000, 0)

	items := []struct {
		text     string
		expected uint64
		err      error
	}{
		{"1700000000", 1700000000, nil},
		{" 1700000000 ", 1700000000, nil},
		{"2020-09-14T12:26:40Z", 1600086400, nil},
		{"24h", 1600086400, nil},
		{"90m", 1600005400, nil},
		{"", 0, ErrRequiredDeadline},
		{"-1h", 0, ErrInvalidDeadline},
		{"tomorrow", 0, ErrInvalidDeadline},
	}

	for i, item := range items {
		actual, err := checkDeadline(item.text, now)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.expected, actual, "%d: deadline", i)
	}
}

func TestCheckScore(t *testing.T) {
	for score := uint(1); score <= 5; score += 1 {
		s, err := checkScore(score)
		assert.Nil(t, err, "score %d", score)
		assert.Equal(t, uint8(score), s, "score %d", score)
	}
	for _, score := range []uint{0, 6, 256} {
		_, err := checkScore(score)
		assert.Equal(t, ErrInvalidScore, err, "score %d", score)
	}
}

func TestCheckAddress(t *testing.T) {
	a, _ := address.Derive(address.User, []byte("someone"))

	actual, err := checkAddress(" "+a.String()+" ", ErrRequiredCaller)
	assert.Nil(t, err, "valid address")
	assert.Equal(t, a, actual, "address")

	_, err = checkAddress("", ErrRequiredCaller)
	assert.Equal(t, ErrRequiredCaller, err, "missing required")

	actual, err = checkAddress("", nil)
	assert.Nil(t, err, "missing optional")
	assert.Equal(t, address.Empty, actual, "empty")

	_, err = checkAddress("AUnonsense", nil)
	assert.NotNil(t, err, "malformed")
}

func TestCheckIDs(t *testing.T) {
	_, err := checkProjectID(0)
	assert.Equal(t, ErrRequiredProject, err, "project")
	_, err = checkMilestoneID(0)
	assert.Equal(t, ErrRequiredMilestone, err, "milestone")

	id, err := checkProjectID(3)
	assert.Nil(t, err, "project")
	assert.Equal(t, uint64(3), id, "project")

	_, err = checkText("  ", ErrRequiredTitle)
	assert.Equal(t, ErrRequiredTitle, err, "blank text")
}
