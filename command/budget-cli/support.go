// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/command/budget-cli/rpccalls"
)

// connect to the configured budgetd
func newClient(m *metadata) (*rpccalls.Client, error) {
	connect, err := checkConnect(m.config.Connect)
	if nil != err {
		return nil, err
	}
	return rpccalls.NewClient(m.testnet, connect, m.verbose, m.e)
}

// the global identity, or the default identity if not set
func globalIdentity(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return checkName(name)
}

// decrypt the key of the global identity
func globalPrivateKey(c *cli.Context, m *metadata) (string, *account.PrivateKey, error) {
	name, err := globalIdentity(c, m)
	if nil != err {
		return "", nil, err
	}
	private, err := promptAndCheckPassword(m.config, name, c.GlobalString("password"))
	if nil != err {
		return "", nil, err
	}
	return name, private.PrivateKey, nil
}

// decrypt the key of a second signer
//
// the global password only applies to the global identity, any other
// identity is prompted for
func otherPrivateKey(m *metadata, name string, globalName string, globalKey *account.PrivateKey) (*account.PrivateKey, error) {
	if "" == name || name == globalName {
		return globalKey, nil
	}
	private, err := promptAndCheckPassword(m.config, name, "")
	if nil != err {
		return nil, err
	}
	return private.PrivateKey, nil
}

// indented JSON on the output handle
//
// budget and expense URIs are printed as given, so "&" and "<" are not
// turned into \u0026 escapes
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}
