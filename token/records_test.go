// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
)

func TestMetadataFlags(t *testing.T) {
	m := &MetadataRecord{
		Unit:               address.Address{1},
		UpdateAuthority:    address.Address{2},
		Name:               "name",
		Symbol:             "SYM",
		URI:                "uri",
		Collection:         address.Address{3},
		CollectionVerified: true,
	}

	u, err := unpackMetadata(m.pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, m, u, "round trip")
}

func TestUnpackWrongRecord(t *testing.T) {
	h := &HoldingRecord{
		Unit:    address.Address{1},
		Owner:   address.Address{2},
		Balance: 99,
	}
	buffer := h.pack()

	_, err := unpackMint(buffer)
	assert.Equal(t, fault.NotTokenRecordPack, err, "holding read as mint")

	_, err = unpackHolding(buffer[:len(buffer)-1])
	assert.Equal(t, fault.TruncatedRecord, err, "truncated holding")

	_, err = unpackHolding(append(buffer, 0x00))
	assert.Equal(t, fault.TruncatedRecord, err, "trailing bytes")
}
