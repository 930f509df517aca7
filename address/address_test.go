// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/freelanced/address"
	"github.com/bitmark-inc/freelanced/fault"
)

func TestDeriveAndParse(t *testing.T) {
	a, err := address.Derive(address.User, []byte("alice"))
	assert.Nil(t, err, "derive error")
	assert.Equal(t, address.User, a.Kind(), "kind")
	assert.False(t, a.IsEmpty(), "empty")

	b, err := address.Derive(address.User, []byte("alice"))
	assert.Nil(t, err, "derive error")
	assert.Equal(t, a, b, "derive is deterministic")

	parsed, err := address.Parse(a.String())
	assert.Nil(t, err, "parse error")
	assert.Equal(t, a, parsed, "parsed")

	c, err := address.Derive(address.Contract, []byte("alice"))
	assert.Nil(t, err, "derive error")
	assert.Equal(t, address.Contract, c.Kind(), "contract kind")
	assert.NotEqual(t, a, c, "kinds differ")
}

func TestParseErrors(t *testing.T) {
	a, err := address.Derive(address.User, []byte("bob"))
	assert.Nil(t, err, "derive error")

	s := a.String()
	last := s[len(s)-1]
	replacement := byte('2')
	if '2' == last {
		replacement = '3'
	}
	corrupt := s[:len(s)-1] + string(replacement)

	items := []struct {
		text  string
		check func(error) bool
	}{
		{"", fault.IsErrValidation},
		{"AU", fault.IsErrValidation},
		{"XX" + s[2:], fault.IsErrValidation},
		{"AU0OIl", fault.IsErrValidation},
		{"AU1111", fault.IsErrValidation},
		{corrupt, fault.IsErrValidation},
	}
	for i, item := range items {
		_, err := address.Parse(item.text)
		assert.NotNil(t, err, "%d: expected error for %q", i, item.text)
		assert.True(t, item.check(err), "%d: wrong class: %v", i, err)
	}
}

func TestFromDigestErrors(t *testing.T) {
	_, err := address.FromDigest(address.User, []byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAddress, err, "short digest")

	_, err = address.FromDigest(address.Kind("ZZ"), make([]byte, 32))
	assert.Equal(t, fault.InvalidAddressKind, err, "bad kind")
}

func TestJSON(t *testing.T) {
	a, err := address.Derive(address.User, []byte("carol"))
	assert.Nil(t, err, "derive error")

	type holder struct {
		Who  address.Address `json:"who"`
		None address.Address `json:"none"`
	}

	buffer, err := json.Marshal(holder{Who: a})
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"who":"`+a.String()+`","none":""}`, string(buffer), "json")

	var h holder
	err = json.Unmarshal(buffer, &h)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, a, h.Who, "who")
	assert.True(t, h.None.IsEmpty(), "none")

	err = json.Unmarshal([]byte(`{"who":"AUnonsense"}`), &h)
	assert.NotNil(t, err, "invalid address accepted")
}
