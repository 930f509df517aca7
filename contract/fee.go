// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

// platform fee as a fraction of each paid milestone
const (
	feeNumerator   = 2
	feeDenominator = 100
)

// Split - divide a milestone amount into platform fee and freelancer share
//
// the fee rounds down so the remainder always goes to the freelancer
func Split(amount uint64) (platformFee uint64, freelancerAmount uint64) {
	// amount*2 can overflow for the largest amounts
	platformFee = amount/feeDenominator*feeNumerator + amount%feeDenominator*feeNumerator/feeDenominator
	freelancerAmount = amount - platformFee
	return
}
