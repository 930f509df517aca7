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

// score limits
const (
	MinimumScore = 1
	MaximumScore = 5
)

// Rating - feedback left by one project participant for the other
type Rating struct {
	ID        uint64          `json:"id"`
	From      address.Address `json:"from"`
	To        address.Address `json:"to"`
	ProjectID uint64          `json:"projectId"`
	Score     uint8           `json:"score"`
	Comment   string          `json:"comment"`
	Timestamp uint64          `json:"timestamp"`
}

// ValidScore - score within the accepted range
func ValidScore(score uint8) bool {
	return score >= MinimumScore && score <= MaximumScore
}

// Append - encode the rating
func (r *Rating) Append(buffer codec.Packed) codec.Packed {
	buffer = buffer.AppendUint64(r.ID)
	buffer = buffer.AppendString(r.From.String())
	buffer = buffer.AppendString(r.To.String())
	buffer = buffer.AppendUint64(r.ProjectID)
	buffer = buffer.AppendUint8(r.Score)
	buffer = buffer.AppendString(r.Comment)
	buffer = buffer.AppendUint64(r.Timestamp)
	return buffer
}

// Pack - standalone encoding
func (r *Rating) Pack() codec.Packed {
	return r.Append(nil)
}

// UnpackRating - read and validate a rating
func UnpackRating(u *codec.Unpacker) (*Rating, error) {
	var err error
	r := &Rating{}

	if r.ID, err = u.Uint64("Rating.id"); nil != err {
		return nil, err
	}
	from, err := u.String("Rating.from")
	if nil != err {
		return nil, err
	}
	if "" == from {
		return nil, fault.Malformed("Rating.from", "empty")
	}
	r.From = address.Address(from)

	to, err := u.String("Rating.to")
	if nil != err {
		return nil, err
	}
	if "" == to {
		return nil, fault.Malformed("Rating.to", "empty")
	}
	r.To = address.Address(to)

	if r.ProjectID, err = u.Uint64("Rating.projectId"); nil != err {
		return nil, err
	}
	if r.Score, err = u.Uint8("Rating.score"); nil != err {
		return nil, err
	}
	if !ValidScore(r.Score) {
		return nil, fault.Malformed("Rating.score", "invalid")
	}
	if r.Comment, err = u.String("Rating.comment"); nil != err {
		return nil, err
	}
	if r.Timestamp, err = u.Uint64("Rating.timestamp"); nil != err {
		return nil, err
	}
	return r, nil
}

// RatingFromBytes - decode a complete stored rating
func RatingFromBytes(buffer []byte) (*Rating, error) {
	u := codec.NewUnpacker(buffer)
	r, err := UnpackRating(u)
	if nil != err {
		return nil, err
	}
	if err := u.Done("Rating"); nil != err {
		return nil, err
	}
	return r, nil
}

// PackRatings - count prefixed list of ratings
func PackRatings(ratings []*Rating) codec.Packed {
	buffer := codec.Packed{}.AppendUint32(uint32(len(ratings)))
	for _, r := range ratings {
		buffer = r.Append(buffer)
	}
	return buffer
}

// RatingsFromBytes - decode a complete list of ratings
func RatingsFromBytes(buffer []byte) ([]*Rating, error) {
	u := codec.NewUnpacker(buffer)
	count, err := u.Count("Ratings.count", minimumRatingSize)
	if nil != err {
		return nil, err
	}
	ratings := make([]*Rating, 0, count)
	for i := 0; i < count; i += 1 {
		r, err := UnpackRating(u)
		if nil != err {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	if err := u.Done("Ratings"); nil != err {
		return nil, err
	}
	return ratings, nil
}

const minimumRatingSize = codec.Uint64Size*3 + codec.Uint32Size*3 + codec.Uint8Size
