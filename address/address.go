// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/freelanced/fault"
)

// Kind - two letter prefix that distinguishes users from contracts
type Kind string

// supported kinds
const (
	User     Kind = "AU"
	Contract Kind = "AS"
)

// miscellaneous constants
const (
	version        = 0x00
	digestLength   = 32
	checksumLength = 4
	kindLength     = 2
)

// Address - textual account identifier
//
// the empty string is the unassigned sentinel and is never produced
// by FromDigest or accepted by Parse
type Address string

// Empty - the unassigned address
const Empty Address = ""

// FromDigest - build an address from a 32 byte digest
func FromDigest(kind Kind, digest []byte) (Address, error) {
	if User != kind && Contract != kind {
		return Empty, fault.InvalidAddressKind
	}
	if digestLength != len(digest) {
		return Empty, fault.InvalidAddress
	}
	buffer := make([]byte, 0, 1+digestLength+checksumLength)
	buffer = append(buffer, version)
	buffer = append(buffer, digest...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return Address(string(kind) + base58.Encode(buffer)), nil
}

// Derive - address whose digest is the SHA3-256 of some seed data
func Derive(kind Kind, seed []byte) (Address, error) {
	digest := sha3.Sum256(seed)
	return FromDigest(kind, digest[:])
}

// Parse - validate the textual form of an address
func Parse(s string) (Address, error) {
	if len(s) <= kindLength {
		return Empty, fault.InvalidAddress
	}
	kind := Kind(s[:kindLength])
	if User != kind && Contract != kind {
		return Empty, fault.InvalidAddressKind
	}
	buffer, err := base58.Decode(s[kindLength:])
	if nil != err {
		return Empty, fault.InvalidAddress
	}
	if 1+digestLength+checksumLength != len(buffer) {
		return Empty, fault.InvalidAddress
	}
	if version != buffer[0] {
		return Empty, fault.WrongNetworkForAddress
	}
	checksumStart := len(buffer) - checksumLength
	checksum := sha3.Sum256(buffer[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], buffer[checksumStart:]) {
		return Empty, fault.InvalidAddressChecksum
	}
	return Address(s), nil
}

// IsEmpty - true for the unassigned sentinel
func (a Address) IsEmpty() bool {
	return Empty == a
}

// Kind - the prefix of a non-empty address
func (a Address) Kind() Kind {
	if len(a) < kindLength {
		return ""
	}
	return Kind(a[:kindLength])
}

// String - text form
func (a Address) String() string {
	return string(a)
}

// MarshalText - convert to text for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText - convert from text with validation
//
// an empty string is accepted as the unassigned address
func (a *Address) UnmarshalText(s []byte) error {
	text := strings.TrimSpace(string(s))
	if "" == text {
		*a = Empty
		return nil
	}
	parsed, err := Parse(text)
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
