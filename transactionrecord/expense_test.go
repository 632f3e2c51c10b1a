// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// the client flow: pack unsigned, sign, pack again, countersign
func TestPackCreateExpenseSigningFlow(t *testing.T) {

	r := transactionrecord.CreateExpense{
		Budget:          addressOne,
		Expense:         addressTwo,
		Unit:            addressThree,
		ExpenseName:     "Office supplies",
		ExpenseType:     "consumables",
		URI:             "https://example.com/expense.json",
		ApprovedAmount:  1000,
		VariancePercent: 10,
		Payer:           makeAccount(payer.publicKey),
		Authority:       makeAccount(authority.publicKey),
	}

	message, err := r.Pack()
	assert.Equal(t, fault.InvalidSignature, err, "payer signature should be missing")
	r.Signature = ed25519.Sign(payer.privateKey, message)

	partial, err := r.Pack()
	assert.Equal(t, fault.InvalidSignature, err, "countersignature should be missing")
	assert.True(t, len(partial) > len(message), "partial should include first signature")
	r.Countersignature = ed25519.Sign(authority.privateKey, partial)

	packed, err := r.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, transactionrecord.CreateExpenseTag, packed.Type(), "wrong type")

	transaction, n, err := packed.Unpack(true)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, len(packed), n, "wrong consumed count")

	expense, ok := transaction.(*transactionrecord.CreateExpense)
	assert.True(t, ok, "wrong record type")
	assert.Equal(t, &r, expense, "different fields")

	// the id covers the whole record
	id := packed.MakeTxId()
	packed[len(packed)-1] ^= 0xff
	_, _, err = packed.Unpack(true)
	assert.Equal(t, fault.InvalidSignature, err, "corrupt countersignature accepted")
	assert.NotEqual(t, id, packed.MakeTxId(), "id unchanged")
}

// countersigning with the wrong key must fail
func TestPackCreateExpenseWrongCountersigner(t *testing.T) {

	r := transactionrecord.CreateExpense{
		Budget:         addressOne,
		Expense:        addressTwo,
		Unit:           addressThree,
		ExpenseType:    "travel",
		ApprovedAmount: 5,
		Payer:          makeAccount(payer.publicKey),
		Authority:      makeAccount(authority.publicKey),
	}

	message, _ := r.Pack()
	r.Signature = ed25519.Sign(payer.privateKey, message)
	partial, _ := r.Pack()
	r.Countersignature = ed25519.Sign(treasurer.privateKey, partial)

	_, err := r.Pack()
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")
}

func TestPackCreateExpenseLongStrings(t *testing.T) {
	long := make([]byte, 257)
	for i := range long {
		long[i] = 'x'
	}

	r := transactionrecord.CreateExpense{
		ExpenseName: string(long),
		Payer:       makeAccount(payer.publicKey),
		Authority:   makeAccount(authority.publicKey),
	}
	_, err := r.Pack()
	assert.Equal(t, fault.NameTooLong, err, "wrong error")
}
