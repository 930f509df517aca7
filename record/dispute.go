// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/codec"
	"github.com/bitmark-inc/freelanced/fault"
)

// Dispute - a disagreement raised on an in progress project
type Dispute struct {
	ID         uint64          `json:"id"`
	ProjectID  uint64          `json:"projectId"`
	OpenedBy   address.Address `json:"openedBy"`
	Reason     string          `json:"reason"`
	Status     DisputeStatus   `json:"status"`
	OpenedAt   uint64          `json:"openedAt"`
	ResolvedAt uint64          `json:"resolvedAt"`
	ResolvedBy address.Address `json:"resolvedBy"`
}

// Append - encode the dispute
func (d *Dispute) Append(buffer codec.Packed) codec.Packed {
	buffer = buffer.AppendUint64(d.ID)
	buffer = buffer.AppendUint64(d.ProjectID)
	buffer = buffer.AppendString(d.OpenedBy.String())
	buffer = buffer.AppendString(d.Reason)
	buffer = buffer.AppendUint8(uint8(d.Status))
	buffer = buffer.AppendUint64(d.OpenedAt)
	buffer = buffer.AppendUint64(d.ResolvedAt)
	buffer = buffer.AppendString(d.ResolvedBy.String())
	return buffer
}

// Pack - standalone encoding
func (d *Dispute) Pack() codec.Packed {
	return d.Append(nil)
}

// UnpackDispute - read and validate a dispute
func UnpackDispute(u *codec.Unpacker) (*Dispute, error) {
	var err error
	d := &Dispute{}

	if d.ID, err = u.Uint64("Dispute.id"); nil != err {
		return nil, err
	}
	if d.ProjectID, err = u.Uint64("Dispute.projectId"); nil != err {
		return nil, err
	}
	openedBy, err := u.String("Dispute.openedBy")
	if nil != err {
		return nil, err
	}
	d.OpenedBy = address.Address(openedBy)

	if d.Reason, err = u.String("Dispute.reason"); nil != err {
		return nil, err
	}
	status, err := u.Uint8("Dispute.status")
	if nil != err {
		return nil, err
	}
	d.Status = DisputeStatus(status)
	if !d.Status.Valid() {
		return nil, fault.Malformed("Dispute.status", "invalid")
	}
	if d.OpenedAt, err = u.Uint64("Dispute.openedAt"); nil != err {
		return nil, err
	}
	if d.ResolvedAt, err = u.Uint64("Dispute.resolvedAt"); nil != err {
		return nil, err
	}
	resolvedBy, err := u.String("Dispute.resolvedBy")
	if nil != err {
		return nil, err
	}
	d.ResolvedBy = address.Address(resolvedBy)
	return d, nil
}

// DisputeFromBytes - decode a complete stored dispute
func DisputeFromBytes(buffer []byte) (*Dispute, error) {
	u := codec.NewUnpacker(buffer)
	d, err := UnpackDispute(u)
	if nil != err {
		return nil, err
	}
	if err := u.Done("Dispute"); nil != err {
		return nil, err
	}
	return d, nil
}
