// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/budgetd/command/budget-cli/rpccalls"
	"github.com/bitmark-inc/budgetd/fault"
)

const (
	maximumVariance = 100
)

func runCreateExpense(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	budget, err := checkAddress(c.String("budget"))
	if nil != err {
		return err
	}
	name, err := checkString(c.String("name"), ErrRequiredName)
	if nil != err {
		return err
	}
	expenseType, err := checkString(c.String("type"), ErrRequiredExpenseType)
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}
	variance := c.Uint("variance")
	if variance > maximumVariance {
		return fault.InvalidVariance
	}

	payerName, payer, err := globalPrivateKey(c, m)
	if nil != err {
		return err
	}
	authority, err := otherPrivateKey(m, c.String("authority"), payerName, payer)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "budget: %s\n", budget)
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "type: %s\n", expenseType)
		fmt.Fprintf(m.e, "approved: %d\n", amount)
		fmt.Fprintf(m.e, "variance: %d%%\n", variance)
		fmt.Fprintf(m.e, "payer: %s\n", payer.Account())
		fmt.Fprintf(m.e, "authority: %s\n", authority.Account())
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	data := &rpccalls.CreateExpenseData{
		Budget:          budget,
		Payer:           payer,
		Authority:       authority,
		Name:            name,
		Type:            expenseType,
		URI:             c.String("uri"),
		ApprovedAmount:  amount,
		VariancePercent: uint8(variance),
	}

	response, err := client.CreateExpense(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runSpend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	expense, err := checkAddress(c.String("expense"))
	if nil != err {
		return err
	}
	treasuryHolding, err := checkAddress(c.String("treasury-holding"))
	if nil != err {
		return err
	}
	operationalHolding, err := checkAddress(c.String("operational-holding"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}
	treasuryName, err := checkName(c.String("treasury"))
	if nil != err {
		return err
	}

	authorityName, authority, err := globalPrivateKey(c, m)
	if nil != err {
		return err
	}
	treasury, err := otherPrivateKey(m, treasuryName, authorityName, authority)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "expense: %s\n", expense)
		fmt.Fprintf(m.e, "treasury holding: %s\n", treasuryHolding)
		fmt.Fprintf(m.e, "operational holding: %s\n", operationalHolding)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	data := &rpccalls.SpendData{
		Expense:            expense,
		TreasuryHolding:    treasuryHolding,
		OperationalHolding: operationalHolding,
		Amount:             amount,
		Nonce:              c.Uint64("nonce"),
		Authority:          authority,
		TreasuryAuthority:  treasury,
	}

	response, err := client.Spend(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	expense, err := checkAddress(c.String("expense"))
	if nil != err {
		return err
	}

	_, authority, err := globalPrivateKey(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.VerifyCollection(expense, authority)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runExpense(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	expense, err := checkAddress(c.String("expense"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetExpense(expense)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
