// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/rpc/expense"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// CreateExpenseData - the parameters for an expense creation
type CreateExpenseData struct {
	Budget          address.Address
	Payer           *account.PrivateKey
	Authority       *account.PrivateKey
	Name            string
	Type            string
	URI             string
	ApprovedAmount  uint64
	VariancePercent uint8
}

// CreateExpense - add an expense at the next ordinal of a budget
func (client *Client) CreateExpense(data *CreateExpenseData) (*expense.CreateReply, error) {

	b, err := client.GetBudget(data.Budget)
	if nil != err {
		return nil, err
	}

	expenseAddress, _, err := budgetrecord.ExpenseAddress(b.CollectionUnit, b.ExpenseCount)
	if nil != err {
		return nil, err
	}

	unit, err := account.NewPrivateKey(client.testnet)
	if nil != err {
		return nil, err
	}

	record := &transactionrecord.CreateExpense{
		Budget:          data.Budget,
		Expense:         expenseAddress,
		Unit:            unit.Account().Address(),
		ExpenseName:     data.Name,
		ExpenseType:     data.Type,
		URI:             data.URI,
		ApprovedAmount:  data.ApprovedAmount,
		VariancePercent: data.VariancePercent,
		Payer:           data.Payer.Account(),
		Authority:       data.Authority.Account(),
	}

	record.Signature, err = signNext(record, data.Payer)
	if nil != err {
		return nil, err
	}
	record.Countersignature, err = signNext(record, data.Authority)
	if nil != err {
		return nil, err
	}
	if _, err := record.Pack(); nil != err {
		return nil, err
	}

	var reply expense.CreateReply
	err = client.call("Expense.Create", record, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// SpendData - the parameters for a spend
type SpendData struct {
	Expense            address.Address
	TreasuryHolding    address.Address
	OperationalHolding address.Address
	Amount             uint64
	Nonce              uint64
	Authority          *account.PrivateKey
	TreasuryAuthority  *account.PrivateKey
}

// Spend - debit an expense and settle from the treasury
func (client *Client) Spend(data *SpendData) (*expense.SpendReply, error) {

	record := &transactionrecord.Spend{
		Expense:            data.Expense,
		TreasuryHolding:    data.TreasuryHolding,
		OperationalHolding: data.OperationalHolding,
		Amount:             data.Amount,
		Nonce:              data.Nonce,
		Authority:          data.Authority.Account(),
		TreasuryAuthority:  data.TreasuryAuthority.Account(),
	}

	var err error
	record.Signature, err = signNext(record, data.Authority)
	if nil != err {
		return nil, err
	}
	record.Countersignature, err = signNext(record, data.TreasuryAuthority)
	if nil != err {
		return nil, err
	}
	if _, err := record.Pack(); nil != err {
		return nil, err
	}

	var reply expense.SpendReply
	err = client.call("Expense.Spend", record, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// VerifyCollection - mark an expense unit as verified in its collection
func (client *Client) VerifyCollection(expenseAddress address.Address, authority *account.PrivateKey) (*expense.VerifyCollectionReply, error) {

	record := &transactionrecord.VerifyCollection{
		Expense:   expenseAddress,
		Authority: authority.Account(),
	}

	var err error
	record.Signature, err = signNext(record, authority)
	if nil != err {
		return nil, err
	}
	if _, err := record.Pack(); nil != err {
		return nil, err
	}

	var reply expense.VerifyCollectionReply
	err = client.call("Expense.VerifyCollection", record, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetExpense - read an expense with its limit and unit balance
func (client *Client) GetExpense(expenseAddress address.Address) (*expense.GetReply, error) {
	arguments := expense.GetArguments{
		Expense: expenseAddress,
	}
	var reply expense.GetReply
	err := client.call("Expense.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
