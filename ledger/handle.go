// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// Handle - the ledger operations offered to clients
type Handle interface {
	IsTesting() bool
	SettlementUnit() address.Address

	CreateBudgetCollection(*transactionrecord.CreateBudgetCollection) (transactionrecord.TxId, error)
	CreateExpense(*transactionrecord.CreateExpense) (transactionrecord.TxId, error)
	Spend(*transactionrecord.Spend) (transactionrecord.TxId, *SpendResult, error)
	VerifyCollection(*transactionrecord.VerifyCollection) (transactionrecord.TxId, error)
	Issue(*transactionrecord.Issue) (transactionrecord.TxId, address.Address, error)
	Execute(transactionrecord.Packed) (*Result, error)

	GetBudget(address.Address) (*budgetrecord.BudgetRecord, error)
	GetExpense(address.Address) (*budgetrecord.ExpenseRecord, error)
	ListExpenses(address.Address, uint32, int) ([]ExpenseItem, uint32, error)
	Balance(address.Address) (uint64, error)
	Holding(address.Address) (*token.HoldingRecord, error)
}

var _ Handle = &Ledger{}
