// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expense

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
	rateLimitExpense = 200
	rateBurstExpense = 100
)

// Expense - type for the RPC
type Expense struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Handle
	ReadOnly bool
}

// New - create an expense RPC handler
func New(log *logger.L, l ledger.Handle, readOnly bool) *Expense {
	return &Expense{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitExpense, rateBurstExpense),
		Ledger:   l,
		ReadOnly: readOnly,
	}
}

func (expense *Expense) writable() error {
	if err := ratelimit.Limit(expense.Limiter); nil != err {
		return err
	}
	if expense.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	return nil
}

// ---

// CreateReply - result from create RPC
type CreateReply struct {
	TxId    transactionrecord.TxId `json:"txId"`
	Expense address.Address        `json:"expense"`
	Unit    address.Address        `json:"unit"`
}

// Create - add an expense to a budget
func (expense *Expense) Create(arguments *transactionrecord.CreateExpense, reply *CreateReply) error {
	if err := expense.writable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Payer || nil == arguments.Authority {
		return fault.MissingParameters
	}

	expense.Log.Infof("Expense.Create: %s  budget: %s  type: %q", arguments.Expense, arguments.Budget, arguments.ExpenseType)

	txId, err := expense.Ledger.CreateExpense(arguments)
	if nil != err {
		return err
	}
	reply.TxId = txId
	reply.Expense = arguments.Expense
	reply.Unit = arguments.Unit
	return nil
}

// ---

// SpendReply - result from spend RPC
type SpendReply struct {
	TxId      transactionrecord.TxId `json:"txId"`
	Spent     uint64                 `json:"spent"`
	Remaining uint64                 `json:"remaining"`
}

// Spend - debit an expense and settle the amount
func (expense *Expense) Spend(arguments *transactionrecord.Spend, reply *SpendReply) error {
	if err := expense.writable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Authority || nil == arguments.TreasuryAuthority {
		return fault.MissingParameters
	}

	expense.Log.Infof("Expense.Spend: %s  amount: %d", arguments.Expense, arguments.Amount)

	txId, result, err := expense.Ledger.Spend(arguments)
	if nil != err {
		return err
	}
	reply.TxId = txId
	reply.Spent = result.Spent
	reply.Remaining = result.Remaining
	return nil
}

// ---

// VerifyCollectionReply - result from verify RPC
type VerifyCollectionReply struct {
	TxId transactionrecord.TxId `json:"txId"`
}

// VerifyCollection - mark the expense unit as a verified collection member
func (expense *Expense) VerifyCollection(arguments *transactionrecord.VerifyCollection, reply *VerifyCollectionReply) error {
	if err := expense.writable(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Authority {
		return fault.MissingParameters
	}

	expense.Log.Infof("Expense.VerifyCollection: %s", arguments.Expense)

	txId, err := expense.Ledger.VerifyCollection(arguments)
	if nil != err {
		return err
	}
	reply.TxId = txId
	return nil
}

// ---

// GetArguments - arguments for get RPC
type GetArguments struct {
	Expense address.Address `json:"expense"`
}

// GetReply - result from get RPC
type GetReply struct {
	Expense        *budgetrecord.ExpenseRecord `json:"expense"`
	MaximumAllowed uint64                      `json:"maximumAllowed"`
	Holding        address.Address             `json:"holding"`
	Balance        uint64                      `json:"balance"`
}

// Get - read a committed expense with its limit and unit balance
func (expense *Expense) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(expense.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := expense.Ledger.GetExpense(arguments.Expense)
	if nil != err {
		return err
	}
	maximum, err := record.MaximumAllowed()
	if nil != err {
		return err
	}
	holding, err := ledger.ExpenseHolding(arguments.Expense, record)
	if nil != err {
		return err
	}
	balance, err := expense.Ledger.Balance(holding)
	if nil != err {
		return err
	}

	reply.Expense = record
	reply.MaximumAllowed = maximum
	reply.Holding = holding
	reply.Balance = balance
	return nil
}
