// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"unicode/utf8"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// symbolCharacters - expense symbols are the start of the expense type
const symbolCharacters = 10

// CreateExpense - add the next expense to a budget
//
// the expense address must be derived from the budget's current
// expense count
func (l *Ledger) CreateExpense(arguments *transactionrecord.CreateExpense) (transactionrecord.TxId, error) {

	err := l.checkNetwork(arguments.Payer, arguments.Authority)
	if nil != err {
		return transactionrecord.TxId{}, err
	}

	packed, err := arguments.Pack()
	if nil != err {
		return transactionrecord.TxId{}, err
	}

	l.log.Infof("create expense: %s  budget: %s  type: %q", arguments.Expense, arguments.Budget, arguments.ExpenseType)

	locks := []address.Address{arguments.Budget, arguments.Expense, arguments.Unit}
	return l.apply(packed, "expense", locks, func(trx storage.Transaction) error {
		return l.createExpense(trx, arguments)
	})
}

func (l *Ledger) createExpense(trx storage.Transaction, arguments *transactionrecord.CreateExpense) error {

	// argument checks come before any state is read
	if arguments.VariancePercent > budgetrecord.MaxVariancePercent {
		return fault.InvalidVariance
	}
	if 0 == arguments.ApprovedAmount {
		return fault.InvalidAmount
	}
	if len(arguments.ExpenseType) > budgetrecord.MaxExpenseTypeLength {
		return fault.ExpenseTypeTooLong
	}

	err := l.checkMetadataProgram()
	if nil != err {
		return err
	}

	budget, err := l.readBudget(trx, arguments.Budget)
	if nil != err {
		return err
	}
	if arguments.Authority.Address() != budget.Authority {
		return fault.Unauthorised
	}

	ordinal := budget.ExpenseCount
	expenseAddress, bump, err := budgetrecord.ExpenseAddress(budget.CollectionUnit, ordinal)
	if nil != err {
		return err
	}
	l.log.Debugf("derived expense: %s  ordinal: %d  bump: %d", expenseAddress, ordinal, bump)
	if expenseAddress != arguments.Expense {
		return fault.StaleExpenseOrdinal
	}
	if trx.Has(storage.Pool.Expenses, expenseAddress[:]) {
		return fault.ExpenseAlreadyExists
	}

	unit := arguments.Unit
	signers := token.NewSigners(arguments.Payer.Address(), arguments.Authority.Address(), expenseAddress)

	err = l.tokens.InitialiseMint(trx, signers, unit, 0, expenseAddress, expenseAddress)
	if nil != err {
		return err
	}
	holding, err := l.tokens.InitialiseHolding(trx, signers, unit, expenseAddress)
	if nil != err {
		return err
	}
	err = l.tokens.Mint(trx, signers, unit, holding, arguments.ApprovedAmount)
	if nil != err {
		return err
	}

	err = l.metadata.CreateMetadata(trx, signers, token.MetadataArguments{
		Unit:            unit,
		MintAuthority:   expenseAddress,
		UpdateAuthority: expenseAddress,
		Name:            arguments.ExpenseName,
		Symbol:          expenseSymbol(arguments.ExpenseType),
		URI:             arguments.URI,
		Mutable:         true,
		Collection:      budget.CollectionUnit,
	})
	if nil != err {
		return err
	}

	expense := &budgetrecord.ExpenseRecord{
		Budget:          arguments.Budget,
		Unit:            unit,
		ExpenseType:     arguments.ExpenseType,
		ApprovedAmount:  arguments.ApprovedAmount,
		Spent:           0,
		VariancePercent: arguments.VariancePercent,
		Index:           ordinal,
		Bump:            bump,
	}
	err = writeRecord(trx, storage.Pool.Expenses, expenseAddress, expense)
	if nil != err {
		return err
	}

	budget.ExpenseCount, err = budget.NextExpenseCount()
	if nil != err {
		return err
	}
	return writeRecord(trx, storage.Pool.Budgets, arguments.Budget, budget)
}

// first characters of the expense type, within the metadata symbol limit
func expenseSymbol(expenseType string) string {
	symbol := expenseType
	n := 0
	for i := range expenseType {
		if n == symbolCharacters {
			symbol = expenseType[:i]
			break
		}
		n += 1
	}
	for len(symbol) > token.MaxSymbolLength {
		_, size := utf8.DecodeLastRuneInString(symbol)
		symbol = symbol[:len(symbol)-size]
	}
	return symbol
}
