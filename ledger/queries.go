// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
)

// MaximumListCount - limit on expenses returned by one ListExpenses
const MaximumListCount = 100

// ExpenseItem - an expense and its address
type ExpenseItem struct {
	Address address.Address             `json:"address"`
	Expense *budgetrecord.ExpenseRecord `json:"expense"`
}

// GetBudget - committed budget record
func (l *Ledger) GetBudget(budgetAddress address.Address) (*budgetrecord.BudgetRecord, error) {
	return l.readBudget(storage.Committed, budgetAddress)
}

// GetExpense - committed expense record
func (l *Ledger) GetExpense(expenseAddress address.Address) (*budgetrecord.ExpenseRecord, error) {
	expense, _, err := l.readExpense(storage.Committed, expenseAddress)
	return expense, err
}

// ListExpenses - expenses of a budget by ordinal
//
// returns at most count items starting from ordinal start, and the
// ordinal to continue from
func (l *Ledger) ListExpenses(budgetAddress address.Address, start uint32, count int) ([]ExpenseItem, uint32, error) {
	budget, err := l.GetBudget(budgetAddress)
	if nil != err {
		return nil, 0, err
	}

	if count <= 0 || count > MaximumListCount {
		count = MaximumListCount
	}

	items := make([]ExpenseItem, 0, count)
	ordinal := start
	for ; ordinal < budget.ExpenseCount && len(items) < count; ordinal += 1 {
		a, _, err := budgetrecord.ExpenseAddress(budget.CollectionUnit, ordinal)
		if nil != err {
			return nil, 0, err
		}
		expense, _, err := l.readExpense(storage.Committed, a)
		if nil != err {
			return nil, 0, err
		}
		items = append(items, ExpenseItem{
			Address: a,
			Expense: expense,
		})
	}
	return items, ordinal, nil
}

// Balance - committed balance of a holding
func (l *Ledger) Balance(holding address.Address) (uint64, error) {
	return l.tokens.Balance(storage.Committed, holding)
}

// Holding - committed holding record
func (l *Ledger) Holding(holding address.Address) (*token.HoldingRecord, error) {
	return l.tokens.GetHolding(storage.Committed, holding)
}

// ExpenseHolding - the holding of an expense's own units
func ExpenseHolding(expenseAddress address.Address, expense *budgetrecord.ExpenseRecord) (address.Address, error) {
	return token.HoldingAddress(expenseAddress, expense.Unit)
}
