// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package budgetrecord

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
)

// limits
const (
	MaxExpenseTypeLength = 50
	MaxVariancePercent   = 100
	percentBase          = 100
)

// SettlementScale - settlement currency units per expense unit
//
// the settlement currency has 6 decimal places
const SettlementScale = 1000000

// ProgramId - owner of the budget and expense address namespace
var ProgramId = address.MustFromBase58("Hz5ZKTWQMRRcCGwMEjnqcQrLEkTp5E8qD2zZKPFxCmXf")

// derivation tags
var (
	budgetSeed  = []byte("budget")
	expenseSeed = []byte("expense")
)

// BudgetRecord - one per fiscal collection
type BudgetRecord struct {
	Authority      address.Address `json:"authority"`
	CollectionUnit address.Address `json:"collectionUnit"`
	FiscalYear     uint16          `json:"fiscalYear"`
	ExpenseCount   uint32          `json:"expenseCount"`
	Bump           uint8           `json:"bump"`
}

// ExpenseRecord - one per spending category
type ExpenseRecord struct {
	Budget          address.Address `json:"budget"`
	Unit            address.Address `json:"unit"`
	ExpenseType     string          `json:"expenseType"`
	ApprovedAmount  uint64          `json:"approvedAmount"`
	Spent           uint64          `json:"spent"`
	VariancePercent uint8           `json:"variancePercent"`
	Index           uint32          `json:"index"`
	Bump            uint8           `json:"bump"`
}

// BudgetAddress - derive the budget location for a collection unit
func BudgetAddress(collectionUnit address.Address) (address.Address, uint8, error) {
	return address.Find(ProgramId, budgetSeed, collectionUnit[:])
}

// ExpenseAddress - derive the location of the n-th expense of a budget
func ExpenseAddress(collectionUnit address.Address, ordinal uint32) (address.Address, uint8, error) {
	return address.Find(ProgramId, expenseSeed, collectionUnit[:], address.Uint32Seed(ordinal))
}

// VerifyAddress - check a stored budget is where it claims to be
func (budget *BudgetRecord) VerifyAddress(a address.Address) error {
	return address.Verify(a, ProgramId, budget.Bump, budgetSeed, budget.CollectionUnit[:])
}

// VerifyAddress - check a stored expense re-derives from its ordinal
func (expense *ExpenseRecord) VerifyAddress(a address.Address, collectionUnit address.Address) error {
	return address.Verify(a, ProgramId, expense.Bump, expenseSeed, collectionUnit[:], address.Uint32Seed(expense.Index))
}

// NextExpenseCount - the counter after one more expense
func (budget *BudgetRecord) NextExpenseCount() (uint32, error) {
	return CheckedIncrement32(budget.ExpenseCount)
}

// MaximumAllowed - approved amount plus variance
//
//   approved * (100 + variance) / 100, truncating
func (expense *ExpenseRecord) MaximumAllowed() (uint64, error) {
	product, err := CheckedMultiply(expense.ApprovedAmount, percentBase+uint64(expense.VariancePercent))
	if nil != err {
		return 0, err
	}
	return product / percentBase, nil
}

// CheckSpend - compute the new spent total for an amount
func (expense *ExpenseRecord) CheckSpend(amount uint64) (uint64, error) {
	maximum, err := expense.MaximumAllowed()
	if nil != err {
		return 0, err
	}
	newSpent, err := CheckedAdd(expense.Spent, amount)
	if nil != err {
		return 0, err
	}
	if newSpent > maximum {
		return 0, fault.OverBudget
	}
	return newSpent, nil
}

// Settlement - settlement currency amount for a spend
func Settlement(amount uint64) (uint64, error) {
	return CheckedMultiply(amount, SettlementScale)
}
