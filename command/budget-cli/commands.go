// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise budget-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*budgetd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED` (default is a new seed)",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list all identities",
			Action: runList,
		},
		{
			Name:   "password",
			Usage:  "change an identity's password",
			Action: runChangePassword,
		},
		{
			Name:   "generate",
			Usage:  "generate a seed and account, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "publisher",
			Usage:     "set the budgetd publisher for the listen command",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*publisher `tcp://HOST:PORT`",
				},
			},
			Action: runPublisher,
		},
		{
			Name:   "info",
			Usage:  "display budgetd status",
			Action: runInfo,
		},
		{
			Name:      "create-budget",
			Usage:     "create a budget and its collection unit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*collection `NAME`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*collection `SYMBOL`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " metadata `URI`",
				},
				cli.StringFlag{
					Name:  "fiscal-year, y",
					Value: "",
					Usage: " fiscal `YEAR`",
				},
			},
			Action: runCreateBudget,
		},
		{
			Name:      "create-expense",
			Usage:     "add an expense to a budget, countersigned by the budget authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "budget, b",
					Value: "",
					Usage: "*budget `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: " budget authority identity `NAME` [default identity]",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*expense `NAME`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*expense `TYPE`",
				},
				cli.StringFlag{
					Name:  "uri, u",
					Value: "",
					Usage: " metadata `URI`",
				},
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: "*approved `AMOUNT`",
				},
				cli.UintFlag{
					Name:  "variance, V",
					Value: 0,
					Usage: " variance `PERCENT` 0..100",
				},
			},
			Action: runCreateExpense,
		},
		{
			Name:      "spend",
			Usage:     "spend from an expense, countersigned by the treasury authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "expense, e",
					Value: "",
					Usage: "*expense `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "treasury, t",
					Value: "",
					Usage: "*treasury identity `NAME`",
				},
				cli.StringFlag{
					Name:  "treasury-holding, T",
					Value: "",
					Usage: "*settlement holding to debit `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "operational-holding, o",
					Value: "",
					Usage: "*settlement holding to credit `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: "*`AMOUNT` to spend",
				},
				cli.Uint64Flag{
					Name:  "nonce",
					Value: 0,
					Usage: " `NONCE` to distinguish identical spends",
				},
			},
			Action: runSpend,
		},
		{
			Name:      "verify",
			Usage:     "verify an expense unit as a member of its budget collection",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "expense, e",
					Value: "",
					Usage: "*expense `ADDRESS`",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "issue",
			Usage:     "mint units of a token to an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "unit, u",
					Value: "",
					Usage: "*unit `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner identity or `ACCOUNT` [default identity]",
				},
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " `DECIMALS` for a new unit",
				},
				cli.Uint64Flag{
					Name:  "amount, A",
					Value: 0,
					Usage: " `AMOUNT` to mint",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "budget",
			Usage:     "display a budget",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "budget, b",
					Value: "",
					Usage: "*budget `ADDRESS`",
				},
			},
			Action: runBudget,
		},
		{
			Name:      "expenses",
			Usage:     "list the expenses of a budget",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "budget, b",
					Value: "",
					Usage: "*budget `ADDRESS`",
				},
				cli.UintFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " start ordinal `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runExpenses,
		},
		{
			Name:      "expense",
			Usage:     "display an expense",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "expense, e",
					Value: "",
					Usage: "*expense `ADDRESS`",
				},
			},
			Action: runExpense,
		},
		{
			Name:      "balance",
			Usage:     "display a holding",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "holding, H",
					Value: "",
					Usage: " holding `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "unit, u",
					Value: "",
					Usage: " unit `ADDRESS` used with owner",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner identity or `ACCOUNT` [default identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "submit",
			Usage:     "submit an offline signed record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "record, r",
					Value: "",
					Usage: "*packed record `HEX`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "listen",
			Usage:     "print committed records from the budgetd publisher",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "topic, t",
					Usage: " `TOPIC` to subscribe (default is all)",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 0,
					Usage: " stop after `COUNT` records (default is forever)",
				},
			},
			Action: runListen,
		},
		{
			Name:  "version",
			Usage: "display budget-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
