// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// SpendResult - expense totals as committed by a spend
type SpendResult struct {
	Spent     uint64 `json:"spent"`
	Remaining uint64 `json:"remaining"`
}

// Spend - burn expense units and settle from treasury to operations
//
// the burn, the settlement transfer and the new spent total commit
// together or not at all. Only the approved amount is minted, so a
// spend that reaches into the variance burns just the units still
// held by the expense while spent and the settlement use the full
// amount.
func (l *Ledger) Spend(arguments *transactionrecord.Spend) (transactionrecord.TxId, *SpendResult, error) {

	err := l.checkNetwork(arguments.Authority, arguments.TreasuryAuthority)
	if nil != err {
		return transactionrecord.TxId{}, nil, err
	}

	packed, err := arguments.Pack()
	if nil != err {
		return transactionrecord.TxId{}, nil, err
	}

	if 0 == arguments.Amount {
		return transactionrecord.TxId{}, nil, fault.InvalidAmount
	}

	l.log.Infof("spend: %d  expense: %s", arguments.Amount, arguments.Expense)

	// the unit of an expense never changes so the committed record
	// gives the complete set of addresses to lock
	expense, _, err := l.readExpense(storage.Committed, arguments.Expense)
	if nil != err {
		return transactionrecord.TxId{}, nil, err
	}
	expenseHolding, err := ExpenseHolding(arguments.Expense, expense)
	if nil != err {
		return transactionrecord.TxId{}, nil, err
	}

	locks := []address.Address{
		arguments.Expense,
		expense.Unit,
		expenseHolding,
		arguments.TreasuryHolding,
		arguments.OperationalHolding,
	}
	var result *SpendResult
	txId, err := l.apply(packed, "spend", locks, func(trx storage.Transaction) error {
		var err error
		result, err = l.spend(trx, arguments)
		return err
	})
	if nil != err {
		return txId, nil, err
	}
	return txId, result, nil
}

func (l *Ledger) spend(trx storage.Transaction, arguments *transactionrecord.Spend) (*SpendResult, error) {

	expense, budget, err := l.readExpense(trx, arguments.Expense)
	if nil != err {
		return nil, err
	}
	if arguments.Authority.Address() != budget.Authority {
		return nil, fault.Unauthorised
	}

	maximum, err := expense.MaximumAllowed()
	if nil != err {
		return nil, err
	}
	newSpent, err := expense.CheckSpend(arguments.Amount)
	if nil != err {
		return nil, err
	}

	settlement, err := budgetrecord.Settlement(arguments.Amount)
	if nil != err {
		return nil, err
	}

	// settlement is never paid in the expense's own units
	treasury, err := l.tokens.GetHolding(trx, arguments.TreasuryHolding)
	if nil != err {
		return nil, err
	}
	if treasury.Unit == expense.Unit {
		return nil, fault.UnitMismatch
	}
	if !l.settlementUnit.IsNil() && treasury.Unit != l.settlementUnit {
		return nil, fault.UnitMismatch
	}

	expenseHolding, err := ExpenseHolding(arguments.Expense, expense)
	if nil != err {
		return nil, err
	}

	balance, err := l.tokens.Balance(trx, expenseHolding)
	if nil != err {
		return nil, err
	}
	burn := arguments.Amount
	if burn > balance {
		burn = balance
	}
	if burn > 0 {
		// only the expense signs for its own holding
		err = l.tokens.Burn(trx, token.NewSigners(arguments.Expense), expense.Unit, expenseHolding, burn)
		if nil != err {
			return nil, err
		}
	}

	err = l.tokens.Transfer(trx, token.NewSigners(arguments.TreasuryAuthority.Address()), arguments.TreasuryHolding, arguments.OperationalHolding, settlement)
	if nil != err {
		return nil, err
	}

	l.log.Debugf("expense: %s  spent: %d -> %d  settlement: %d", arguments.Expense, expense.Spent, newSpent, settlement)

	expense.Spent = newSpent
	err = writeRecord(trx, storage.Pool.Expenses, arguments.Expense, expense)
	if nil != err {
		return nil, err
	}
	return &SpendResult{
		Spent:     newSpent,
		Remaining: maximum - newSpent,
	}, nil
}
