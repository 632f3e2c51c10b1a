// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

func verifyRecord(expenseAddress address.Address, authority *account.PrivateKey) *transactionrecord.VerifyCollection {
	v := &transactionrecord.VerifyCollection{
		Expense:   expenseAddress,
		Authority: authority.Account(),
	}
	message, _ := v.Pack()
	v.Signature = authority.Sign(message)
	return v
}

func TestVerifyCollection(t *testing.T) {
	f := newFixture(t, 0)
	budgetAddress, collectionUnit := f.createBudget(t)
	expenseAddress := f.createExpense(t, budgetAddress, 1000, 10)

	expense, _ := f.ledger.GetExpense(expenseAddress)
	metadata, _ := f.tokens.GetMetadata(storage.Committed, expense.Unit)
	assert.Equal(t, collectionUnit, metadata.Collection, "wrong collection")
	assert.False(t, metadata.CollectionVerified, "verified before verify")

	_, err := f.ledger.VerifyCollection(verifyRecord(expenseAddress, f.authority))
	assert.Nil(t, err, "verify")

	metadata, _ = f.tokens.GetMetadata(storage.Committed, expense.Unit)
	assert.True(t, metadata.CollectionVerified, "not verified")

	// the signature is the same so the nonce free record is a duplicate
	_, err = f.ledger.VerifyCollection(verifyRecord(expenseAddress, f.authority))
	assert.Equal(t, fault.TransactionAlreadyExists, err, "wrong error")
}

func TestVerifyCollectionUnauthorised(t *testing.T) {
	f := newFixture(t, 0)
	budgetAddress, _ := f.createBudget(t)
	expenseAddress := f.createExpense(t, budgetAddress, 1000, 10)

	_, err := f.ledger.VerifyCollection(verifyRecord(expenseAddress, newKey(t)))
	assert.Equal(t, fault.Unauthorised, err, "wrong error")

	expense, _ := f.ledger.GetExpense(expenseAddress)
	metadata, _ := f.tokens.GetMetadata(storage.Committed, expense.Unit)
	assert.False(t, metadata.CollectionVerified, "stranger verified collection")
}

func TestVerifyCollectionMissingExpense(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.ledger.VerifyCollection(verifyRecord(randomAddress(t), f.authority))
	assert.Equal(t, fault.ExpenseNotFound, err, "wrong error")
}
