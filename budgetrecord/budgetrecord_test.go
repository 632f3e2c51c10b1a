// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package budgetrecord_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
)

var (
	authority  = address.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	collection = address.MustFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
)

func TestMaximumAllowed(t *testing.T) {
	testData := []struct {
		approved uint64
		variance uint8
		maximum  uint64
		err      error
	}{
		{1000, 10, 1100, nil},
		{1000, 0, 1000, nil},
		{1000, 100, 2000, nil},
		{999, 15, 1148, nil}, // 1148.85 truncates
		{1, 50, 1, nil},      // 1.5 truncates
		{math.MaxUint64, 1, 0, fault.MathOverflow},
		{math.MaxUint64, 0, 0, fault.MathOverflow},
		{math.MaxUint64 / 200, 100, (math.MaxUint64 / 200) * 2, nil},
	}

	for i, item := range testData {
		e := budgetrecord.ExpenseRecord{
			ApprovedAmount:  item.approved,
			VariancePercent: item.variance,
		}
		maximum, err := e.MaximumAllowed()
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.maximum, maximum, "%d: maximum", i)
	}
}

func TestCheckSpend(t *testing.T) {
	e := budgetrecord.ExpenseRecord{
		ApprovedAmount:  1000,
		VariancePercent: 10,
	}

	spent, err := e.CheckSpend(600)
	assert.Nil(t, err, "spend 600")
	assert.Equal(t, uint64(600), spent, "after 600")
	e.Spent = spent

	spent, err = e.CheckSpend(500)
	assert.Nil(t, err, "spend 500")
	assert.Equal(t, uint64(1100), spent, "after 500")
	e.Spent = spent

	_, err = e.CheckSpend(1)
	assert.Equal(t, fault.OverBudget, err, "spend past the cap")
	assert.Equal(t, uint64(1100), e.Spent, "spent changed")

	e.Spent = math.MaxUint64 - 1
	e.ApprovedAmount = math.MaxUint64 / 100
	e.VariancePercent = 0
	_, err = e.CheckSpend(2)
	assert.Equal(t, fault.MathOverflow, err, "spent accumulation overflow")
}

func TestSettlement(t *testing.T) {
	s, err := budgetrecord.Settlement(600)
	assert.Nil(t, err, "settlement")
	assert.Equal(t, uint64(600000000), s, "600 units")

	_, err = budgetrecord.Settlement(math.MaxUint64/budgetrecord.SettlementScale + 1)
	assert.Equal(t, fault.MathOverflow, err, "settlement overflow")
}

func TestNextExpenseCount(t *testing.T) {
	b := budgetrecord.BudgetRecord{ExpenseCount: 41}
	n, err := b.NextExpenseCount()
	assert.Nil(t, err, "increment")
	assert.Equal(t, uint32(42), n, "next count")

	b.ExpenseCount = math.MaxUint32
	_, err = b.NextExpenseCount()
	assert.Equal(t, fault.MathOverflow, err, "counter overflow")
}

func TestDerivedAddresses(t *testing.T) {
	budgetAddress, bump, err := budgetrecord.BudgetAddress(collection)
	assert.Nil(t, err, "budget address")

	b := budgetrecord.BudgetRecord{
		Authority:      authority,
		CollectionUnit: collection,
		Bump:           bump,
	}
	assert.Nil(t, b.VerifyAddress(budgetAddress), "verify budget")
	assert.NotNil(t, b.VerifyAddress(authority), "budget at wrong address")

	first, firstBump, err := budgetrecord.ExpenseAddress(collection, 0)
	assert.Nil(t, err, "expense 0")
	second, secondBump, err := budgetrecord.ExpenseAddress(collection, 1)
	assert.Nil(t, err, "expense 1")
	assert.NotEqual(t, first, second, "ordinals must give distinct addresses")
	assert.NotEqual(t, budgetAddress, first, "budget and expense namespaces collide")

	e := budgetrecord.ExpenseRecord{Index: 1, Bump: secondBump}
	assert.Nil(t, e.VerifyAddress(second, collection), "verify expense 1")

	e.Index = 0
	e.Bump = firstBump
	assert.Nil(t, e.VerifyAddress(first, collection), "verify expense 0")
	assert.NotNil(t, e.VerifyAddress(second, collection), "expense 0 at the address of expense 1")
}
