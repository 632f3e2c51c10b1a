// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package expense_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/expense"
	"github.com/bitmark-inc/budgetd/rpc/fixtures"
	"github.com/bitmark-inc/budgetd/rpc/mocks"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

func spendArguments(t *testing.T) *transactionrecord.Spend {
	authority, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "authority key")
	treasurer, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "treasurer key")

	return &transactionrecord.Spend{
		Expense:            address.Address{1},
		TreasuryHolding:    address.Address{2},
		OperationalHolding: address.Address{3},
		Amount:             25,
		Authority:          authority.Account(),
		TreasuryAuthority:  treasurer.Account(),
	}
}

// reply totals come from the committed spend, the expense is not read again
func TestExpenseSpend(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	arguments := spendArguments(t)

	l.EXPECT().Spend(arguments).Return(transactionrecord.TxId{9}, &ledger.SpendResult{Spent: 125, Remaining: 75}, nil).Times(1)

	e := expense.New(logger.New(fixtures.LogCategory), l, false)

	var reply expense.SpendReply
	err := e.Spend(arguments, &reply)
	assert.Nil(t, err, "wrong Spend")
	assert.Equal(t, transactionrecord.TxId{9}, reply.TxId, "wrong tx id")
	assert.Equal(t, uint64(125), reply.Spent, "wrong spent")
	assert.Equal(t, uint64(75), reply.Remaining, "wrong remaining")
}

func TestExpenseSpendError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	arguments := spendArguments(t)

	l.EXPECT().Spend(arguments).Return(transactionrecord.TxId{}, nil, fault.OverBudget).Times(1)

	e := expense.New(logger.New(fixtures.LogCategory), l, false)

	var reply expense.SpendReply
	err := e.Spend(arguments, &reply)
	assert.Equal(t, fault.OverBudget, err, "wrong error")
	assert.Equal(t, uint64(0), reply.Spent, "reply filled on failure")
}

func TestExpenseSpendReadOnly(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockHandle(ctl)
	e := expense.New(logger.New(fixtures.LogCategory), l, true)

	var reply expense.SpendReply
	err := e.Spend(spendArguments(t), &reply)
	assert.Equal(t, fault.NotAvailableInReadOnlyMode, err, "wrong error")
}
