// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/command/budget-cli/rpccalls"
	"github.com/bitmark-inc/budgetd/token"
)

const (
	maximumDecimals = 18
)

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	unit, err := checkAddress(c.String("unit"))
	if nil != err {
		return err
	}
	owner, err := checkRecipient(c.String("owner"), m.config)
	if nil != err {
		return err
	}
	decimals := c.Uint("decimals")
	if decimals > maximumDecimals {
		return fmt.Errorf("decimals: %d exceeds %d", decimals, maximumDecimals)
	}

	_, authority, err := globalPrivateKey(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "unit: %s\n", unit)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "amount: %d\n", c.Uint64("amount"))
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	data := &rpccalls.IssueData{
		Unit:      unit,
		Owner:     owner,
		Decimals:  uint8(decimals),
		Amount:    c.Uint64("amount"),
		Authority: authority,
	}

	response, err := client.Issue(data)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var holding address.Address
	var err error

	if s := c.String("holding"); "" != s {
		if "" != c.String("unit") {
			return ErrIncompatibleOptions
		}
		holding, err = address.FromBase58(s)
		if nil != err {
			return err
		}
	} else {
		unit, err := checkAddress(c.String("unit"))
		if nil != err {
			return err
		}
		owner, err := checkRecipient(c.String("owner"), m.config)
		if nil != err {
			return err
		}
		holding, err = token.HoldingAddress(owner, unit)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "holding: %s\n", holding)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(holding)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
