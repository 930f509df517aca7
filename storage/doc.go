// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - byte key to byte value store backing the contract
//
// the committed state lives in LevelDB; all contract writes go through
// a Transaction that batches them and overlays them on reads until the
// host decides to Commit or Abort
package storage
