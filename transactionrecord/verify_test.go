// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/transactionrecord"
	"github.com/bitmark-inc/budgetd/util"
)

// test the packing/unpacking of a verify collection record
//
// ensures that pack->unpack returns the same original value
func TestPackVerifyCollection(t *testing.T) {

	authorityAccount := makeAccount(authority.publicKey)

	r := transactionrecord.VerifyCollection{
		Expense:   addressOne,
		Authority: authorityAccount,
	}

	expected := []byte{
		0x04, 0x20, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
		0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
		0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16,
		0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e,
		0x1f, 0x20, 0x21, 0x13, 0x55, 0xb2, 0x98, 0x88,
		0x17, 0xf7, 0xea, 0xec, 0x37, 0x74, 0x1b, 0x82,
		0x44, 0x71, 0x63, 0xca, 0xaa, 0x5a, 0x9d, 0xb2,
		0xb6, 0xf0, 0xce, 0x72, 0x26, 0x26, 0x33, 0x8e,
		0x5e, 0x3f, 0xd7, 0xf7,
	}

	// unsigned pack returns the message to be signed
	packed, err := r.Pack()
	assert.Equal(t, fault.InvalidSignature, err, "wrong unsigned error")
	if !bytes.Equal(packed, expected) {
		t.Errorf("pack record: %x  expected: %x", packed, expected)
		t.Errorf("*** GENERATED Packed:\n%s", formatBytes("expected", packed))
		t.Fatal("fatal error")
	}

	// manually sign the record and attach signature to "expected"
	signature := ed25519.Sign(authority.privateKey, expected)
	r.Signature = signature
	l := util.ToVarint64(uint64(len(signature)))
	expected = append(expected, l...)
	expected = append(expected, signature...)

	packed, err = r.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, transactionrecord.Packed(expected), packed, "wrong packed")
	assert.Equal(t, transactionrecord.VerifyCollectionTag, packed.Type(), "wrong type")

	transaction, n, err := packed.Unpack(true)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "wrong consumed count")

	verify, ok := transaction.(*transactionrecord.VerifyCollection)
	assert.True(t, ok, "wrong record type")
	assert.Equal(t, &r, verify, "different fields")

	name, ok := transactionrecord.RecordName(transaction)
	assert.True(t, ok, "no record name")
	assert.Equal(t, "verify", name, "wrong record name")
}

// test a nil authority is rejected
func TestPackVerifyCollectionMissingAuthority(t *testing.T) {
	r := transactionrecord.VerifyCollection{
		Expense: addressOne,
	}
	_, err := r.Pack()
	assert.Equal(t, fault.MissingAuthority, err, "wrong error")
}
