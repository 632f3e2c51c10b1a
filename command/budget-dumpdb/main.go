// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "decode", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "testnet", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "sqlite", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {

		// this will be a struct type
		poolType := reflect.TypeOf(storage.Pool)

		// print all available tags
		fmt.Printf(" tags:\n")
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			prefixTag := fieldInfo.Tag.Get("prefix")
			fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
		}
		return
	}

	export := len(options["sqlite"]) > 0
	if len(options["help"]) > 0 || 1 != len(options["file"]) || (0 == len(arguments) && !export) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] [--ascii] [--decode] [--testnet] --file=FILE tag [key-prefix]\n"+
			"       %s [--testnet] --file=FILE --sqlite=OUTPUT", program, program)
	}

	colour := len(options["colour"]) > 0
	ascii := len(options["ascii"]) > 0
	decode := len(options["decode"]) > 0
	testnet := len(options["testnet"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]

	logging := logger.Configuration{
		Directory: ".",
		File:      "budget-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	err = storage.Initialise(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	tokens := token.NewLedger(logger.New("token"))

	if export {
		output := options["sqlite"][0]
		if verbose {
			fmt.Printf("export: %q to sqlite: %q\n", filename, output)
		}
		counts, err := exportSQLite(output, tokens, testnet)
		if nil != err {
			exitwithstatus.Message("%s: export error: %s", program, err)
		}
		for _, c := range counts {
			fmt.Printf("%-12s %d\n", c.table, c.rows)
		}
		return
	}

	tag := arguments[0]
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	prefix := []byte(nil)
	if len(arguments) > 1 {
		prefix, err = hex.DecodeString(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}

	p := poolForTag(tag)
	if nil == p {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	cursor := p.NewFetchCursor()
	if len(prefix) > 0 {
		cursor.Seek(prefix)
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}

	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	ce := ""
	if colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		ce = endColour
	}

	for i, e := range data {
		fmt.Printf("%d: %sKey: %s%x%s\n", i, ck1, ck2, e.Key, ce)

		switch {
		case decode:
			item, err := decodeElement(tokens, tag, e, testnet)
			if nil != err {
				fmt.Printf("%d: %sErr: %s%s%s\n", i, cv1, cv2, err, ce)
				continue
			}
			b, err := json.MarshalIndent(item, "", "  ")
			if nil != err {
				fmt.Printf("%d: %sErr: %s%s%s\n", i, cv1, cv2, err, ce)
				continue
			}
			fmt.Printf("%d: %sVal: %s%s%s\n", i, cv1, cv2, b, ce)

		case ascii:
			prefix := fmt.Sprintf("%d: %sVal: %s", i, cv1, cv2)
			hexDump(prefix, ce, e.Value)

		default:
			fmt.Printf("%d: %sVal: %s%x%s\n", i, cv1, cv2, e.Value, ce)
		}
	}
}

// scan the pools to locate the one with a matching prefix tag
func poolForTag(tag string) *storage.PoolHandle {

	// this will be a struct type
	poolType := reflect.TypeOf(storage.Pool)

	// read-only access
	poolValue := reflect.ValueOf(storage.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if tag == prefixTag {
			p, ok := poolValue.Field(i).Interface().(*storage.PoolHandle)
			if ok {
				return p
			}
		}
	}
	return nil
}

// dump hex data on stdout
func hexDump(prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Printf("%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Printf(" ")
			}
			if i+j < len(data) {
				fmt.Printf("%02x ", data[i+j])
			} else {
				fmt.Printf("   ")
			}
		}
		fmt.Printf(" |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Printf("%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Printf("|%s\n", suffix)
	}
}
