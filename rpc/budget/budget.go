// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package budget

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/ratelimit"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

const (
	rateLimitBudget = 200
	rateBurstBudget = 100
)

// Budget - type for the RPC
type Budget struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Handle
	ReadOnly bool
}

// New - create a budget RPC handler
func New(log *logger.L, l ledger.Handle, readOnly bool) *Budget {
	return &Budget{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitBudget, rateBurstBudget),
		Ledger:   l,
		ReadOnly: readOnly,
	}
}

// ---

// CreateReply - result from create RPC
type CreateReply struct {
	TxId           transactionrecord.TxId `json:"txId"`
	Budget         address.Address        `json:"budget"`
	CollectionUnit address.Address        `json:"collectionUnit"`
}

// Create - create a budget and its collection unit
func (budget *Budget) Create(arguments *transactionrecord.CreateBudgetCollection, reply *CreateReply) error {
	if err := ratelimit.Limit(budget.Limiter); nil != err {
		return err
	}
	if budget.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if nil == arguments || nil == arguments.Payer {
		return fault.MissingParameters
	}

	budget.Log.Infof("Budget.Create: %s  fiscal year: %d", arguments.Budget, arguments.FiscalYear)

	txId, err := budget.Ledger.CreateBudgetCollection(arguments)
	if nil != err {
		return err
	}

	reply.TxId = txId
	reply.Budget = arguments.Budget
	reply.CollectionUnit = arguments.CollectionUnit
	return nil
}

// ---

// GetArguments - arguments for get RPC
type GetArguments struct {
	Budget address.Address `json:"budget"`
}

// GetReply - result from get RPC
type GetReply struct {
	Budget *budgetrecord.BudgetRecord `json:"budget"`
}

// Get - read a committed budget
func (budget *Budget) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(budget.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := budget.Ledger.GetBudget(arguments.Budget)
	if nil != err {
		return err
	}
	reply.Budget = record
	return nil
}

// ---

// ExpensesArguments - arguments for expense list RPC
type ExpensesArguments struct {
	Budget address.Address `json:"budget"`
	Start  uint32          `json:"start"`
	Count  int             `json:"count"`
}

// ExpensesReply - result from expense list RPC
type ExpensesReply struct {
	Expenses  []ledger.ExpenseItem `json:"expenses"`
	NextStart uint32               `json:"nextStart"`
}

// Expenses - list the expenses of a budget in ordinal order
func (budget *Budget) Expenses(arguments *ExpensesArguments, reply *ExpensesReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(budget.Limiter, arguments.Count, ledger.MaximumListCount); nil != err {
		return err
	}

	items, nextStart, err := budget.Ledger.ListExpenses(arguments.Budget, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Expenses = items
	reply.NextStart = nextStart
	return nil
}
