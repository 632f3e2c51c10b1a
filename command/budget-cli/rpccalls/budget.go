// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/rpc/budget"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// CreateBudgetData - the parameters for a budget creation
type CreateBudgetData struct {
	Payer      *account.PrivateKey
	Name       string
	Symbol     string
	URI        string
	FiscalYear uint16
}

// CreateBudget - create a budget with a fresh collection unit
func (client *Client) CreateBudget(data *CreateBudgetData) (*budget.CreateReply, error) {

	unit, err := account.NewPrivateKey(client.testnet)
	if nil != err {
		return nil, err
	}
	collectionUnit := unit.Account().Address()

	budgetAddress, _, err := budgetrecord.BudgetAddress(collectionUnit)
	if nil != err {
		return nil, err
	}

	record := &transactionrecord.CreateBudgetCollection{
		CollectionUnit: collectionUnit,
		Budget:         budgetAddress,
		Name:           data.Name,
		Symbol:         data.Symbol,
		URI:            data.URI,
		FiscalYear:     data.FiscalYear,
		Payer:          data.Payer.Account(),
	}

	record.Signature, err = signNext(record, data.Payer)
	if nil != err {
		return nil, err
	}
	if _, err := record.Pack(); nil != err {
		return nil, err
	}

	var reply budget.CreateReply
	err = client.call("Budget.Create", record, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBudget - read a budget
func (client *Client) GetBudget(budgetAddress address.Address) (*budgetrecord.BudgetRecord, error) {
	arguments := budget.GetArguments{
		Budget: budgetAddress,
	}
	var reply budget.GetReply
	err := client.call("Budget.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	if nil == reply.Budget {
		return nil, fault.BudgetNotFound
	}
	return reply.Budget, nil
}

// ListExpenses - one page of the expenses of a budget
func (client *Client) ListExpenses(budgetAddress address.Address, start uint32, count int) (*budget.ExpensesReply, error) {
	arguments := budget.ExpensesArguments{
		Budget: budgetAddress,
		Start:  start,
		Count:  count,
	}
	var reply budget.ExpensesReply
	err := client.call("Budget.Expenses", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
