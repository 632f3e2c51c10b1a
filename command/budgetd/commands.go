// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/certificate"
	"github.com/bitmark-inc/budgetd/zmqutil"
)

const (
	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"

	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			exitwithstatus.Message("generate RPC key: %q and certificate: %q error: %s", privateKeyFilename, certificateFilename, err)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-identity", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			exitwithstatus.Message("generate private key: %q and public key: %q error: %s", privateKeyFilename, publicKeyFilename, err)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "budget", "expense", "expenses", "holding":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                        (h)       - display this message\n\n")
		fmt.Printf("  version                     (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                          and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-identity [DIR]  (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                          and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                       (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                          for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                 (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  budget ADDRESS                        - print a budget as JSON\n")
		fmt.Printf("  expenses ADDRESS [START [COUNT]]      - print the expenses of a budget as JSON\n")
		fmt.Printf("  expense ADDRESS                       - print an expense as JSON\n")
		fmt.Printf("  holding ADDRESS                       - print a holding as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are open so these commands can read the
// committed state
func processDataCommand(l ledger.Handle, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	if "start" == command || "run" == command {
		return false // continue processing
	}

	if len(arguments) < 1 {
		exitwithstatus.Message("missing address argument")
	}
	a, err := address.FromBase58(arguments[0])
	if nil != err {
		exitwithstatus.Message("address: %q  error: %s", arguments[0], err)
	}

	switch command {

	case "budget":
		budget, err := l.GetBudget(a)
		if nil != err {
			exitwithstatus.Message("budget: %s  error: %s", a, err)
		}
		printJSON(budget)

	case "expense":
		expense, err := l.GetExpense(a)
		if nil != err {
			exitwithstatus.Message("expense: %s  error: %s", a, err)
		}
		printJSON(expense)

	case "expenses":
		start := uint64(0)
		count := ledger.MaximumListCount
		if len(arguments) > 1 {
			start, err = strconv.ParseUint(arguments[1], 10, 32)
			if nil != err {
				exitwithstatus.Message("error in start ordinal: %s", err)
			}
		}
		if len(arguments) > 2 {
			count, err = strconv.Atoi(arguments[2])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
		}
		items, next, err := l.ListExpenses(a, uint32(start), count)
		if nil != err {
			exitwithstatus.Message("expenses: %s  error: %s", a, err)
		}
		printJSON(struct {
			Expenses  []ledger.ExpenseItem `json:"expenses"`
			NextStart uint32               `json:"nextStart"`
		}{
			Expenses:  items,
			NextStart: next,
		})

	case "holding":
		holding, err := l.Holding(a)
		if nil != err {
			exitwithstatus.Message("holding: %s  error: %s", a, err)
		}
		printJSON(holding)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	_, _ = os.Stdout.Write(b)
	_, _ = os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
