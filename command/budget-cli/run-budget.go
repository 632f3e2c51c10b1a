// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/budgetd/command/budget-cli/rpccalls"
	"github.com/bitmark-inc/budgetd/ledger"
)

func runCreateBudget(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkString(c.String("name"), ErrRequiredName)
	if nil != err {
		return err
	}
	symbol, err := checkString(c.String("symbol"), ErrRequiredSymbol)
	if nil != err {
		return err
	}
	fiscalYear, err := checkFiscalYear(c.String("fiscal-year"))
	if nil != err {
		return err
	}
	uri := c.String("uri")

	_, payer, err := globalPrivateKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "symbol: %s\n", symbol)
		fmt.Fprintf(m.e, "uri: %s\n", uri)
		fmt.Fprintf(m.e, "fiscal year: %d\n", fiscalYear)
		fmt.Fprintf(m.e, "payer: %s\n", payer.Account())
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	data := &rpccalls.CreateBudgetData{
		Payer:      payer,
		Name:       name,
		Symbol:     symbol,
		URI:        uri,
		FiscalYear: fiscalYear,
	}

	response, err := client.CreateBudget(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBudget(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	budget, err := checkAddress(c.String("budget"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBudget(budget)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runExpenses(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	budget, err := checkAddress(c.String("budget"))
	if nil != err {
		return err
	}
	count, err := checkCount(c.Int("count"), ledger.MaximumListCount)
	if nil != err {
		return err
	}
	start := uint32(c.Uint("start"))

	if m.verbose {
		fmt.Fprintf(m.e, "budget: %s\n", budget)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListExpenses(budget, start, count)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
