// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/freelanced/address"
)

// Settlement - moves value on behalf of the contract
//
// an error aborts the whole call
type Settlement interface {
	Transfer(to address.Address, amount uint64) error
}
