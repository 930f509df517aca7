// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Every contract call fails with exactly one of the classes:
// NotFoundError, UnauthorisedError, InvalidStateError, MalformedError
// or ValidationError; the remaining classes belong to the host.
package fault
