// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/chain"
	"github.com/bitmark-inc/budgetd/counter"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/rpc/budget"
	"github.com/bitmark-inc/budgetd/rpc/expense"
	"github.com/bitmark-inc/budgetd/rpc/fixtures"
	"github.com/bitmark-inc/budgetd/rpc/holding"
	"github.com/bitmark-inc/budgetd/rpc/mocks"
	"github.com/bitmark-inc/budgetd/rpc/node"
	"github.com/bitmark-inc/budgetd/rpc/server"
	"github.com/bitmark-inc/budgetd/rpc/transaction"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// following tests make sure each service is registered under its
// expected name; every case fails in a way specific to one method

func newClient(t *testing.T, readOnly bool) (*rpc.Client, *mocks.MockHandle, func()) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockHandle(ctl)

	c := counter.Counter(3)
	s := server.Create(logger.New(fixtures.LogCategory), &server.Parameters{
		Version:  "1.0",
		Chain:    chain.Testing,
		ReadOnly: readOnly,
		Ledger:   l,
		Count:    &c,
	})

	clientConn, serverConn := net.Pipe()
	go s.ServeConn(serverConn)

	client := rpc.NewClient(clientConn)
	return client, l, func() {
		client.Close()
		ctl.Finish()
	}
}

func TestBudgetCreate(t *testing.T) {
	client, _, done := newClient(t, false)
	defer done()

	var reply budget.CreateReply
	err := client.Call("Budget.Create", &transactionrecord.CreateBudgetCollection{}, &reply)
	assert.NotNil(t, err, "wrong Budget.Create")
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong reply")
}

func TestBudgetGet(t *testing.T) {
	client, l, done := newClient(t, false)
	defer done()

	a := address.Address{1, 2, 3}
	l.EXPECT().GetBudget(a).Return(nil, fault.BudgetNotFound).Times(1)

	var reply budget.GetReply
	err := client.Call("Budget.Get", &budget.GetArguments{Budget: a}, &reply)
	assert.NotNil(t, err, "wrong Budget.Get")
	assert.Equal(t, fault.BudgetNotFound.Error(), err.Error(), "wrong reply")
}

func TestBudgetExpenses(t *testing.T) {
	client, _, done := newClient(t, false)
	defer done()

	var reply budget.ExpensesReply
	err := client.Call("Budget.Expenses", &budget.ExpensesArguments{Count: 0}, &reply)
	assert.NotNil(t, err, "wrong Budget.Expenses")
	assert.Equal(t, fault.InvalidCount.Error(), err.Error(), "wrong reply")
}

func TestExpenseSpendReadOnly(t *testing.T) {
	client, _, done := newClient(t, true)
	defer done()

	var reply expense.SpendReply
	err := client.Call("Expense.Spend", &transactionrecord.Spend{}, &reply)
	assert.NotNil(t, err, "wrong Expense.Spend")
	assert.Equal(t, fault.NotAvailableInReadOnlyMode.Error(), err.Error(), "wrong reply")
}

func TestExpenseGet(t *testing.T) {
	client, l, done := newClient(t, false)
	defer done()

	l.EXPECT().GetExpense(gomock.Any()).Return(nil, fault.ExpenseNotFound).Times(1)

	var reply expense.GetReply
	err := client.Call("Expense.Get", &expense.GetArguments{}, &reply)
	assert.NotNil(t, err, "wrong Expense.Get")
	assert.Equal(t, fault.ExpenseNotFound.Error(), err.Error(), "wrong reply")
}

func TestHoldingBalance(t *testing.T) {
	client, l, done := newClient(t, false)
	defer done()

	l.EXPECT().Holding(gomock.Any()).Return(nil, fault.HoldingNotFound).Times(1)

	var reply holding.BalanceReply
	err := client.Call("Holding.Balance", &holding.BalanceArguments{}, &reply)
	assert.NotNil(t, err, "wrong Holding.Balance")
	assert.Equal(t, fault.HoldingNotFound.Error(), err.Error(), "wrong reply")
}

func TestTransactionSubmit(t *testing.T) {
	client, _, done := newClient(t, false)
	defer done()

	var reply transaction.SubmitReply
	err := client.Call("Transaction.Submit", &transaction.SubmitArguments{}, &reply)
	assert.NotNil(t, err, "wrong Transaction.Submit")
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong reply")
}

func TestNodeInfo(t *testing.T) {
	client, l, done := newClient(t, false)
	defer done()

	l.EXPECT().IsTesting().Return(true).Times(1)
	l.EXPECT().SettlementUnit().Return(address.Nil).Times(1)

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong count")
}
