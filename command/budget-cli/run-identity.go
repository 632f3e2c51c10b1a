// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"
	"sort"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/command/budget-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	testnet := m.testnet

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	seed, err := checkSeed(c.String("seed"), testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", testnet)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		TestNet:         testnet,
		Connect:         connect,
		Identities:      make(map[string]configuration.Identity),
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	err = config.AddIdentity(name, description, seed, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	seed := c.String("seed")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
	}

	switch {
	case "" == acc:
		seed, err = checkSeed(seed, m.testnet)
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		err = m.config.AddIdentity(name, description, seed, password)
		if nil != err {
			return err
		}

	case "" == seed:
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}

	default:
		return ErrIncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identities := m.config.Identities

	names := make([]string, 0, len(identities))
	for name := range identities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag := "--"
		if len(identities[name].Salt) > 0 {
			flag = "SK"
		}
		if name == m.config.DefaultIdentity {
			flag += "*"
		} else {
			flag += " "
		}
		fmt.Fprintf(m.w, "%s %-20s  %s  %q\n", flag, name, identities[name].Account, identities[name].Description)
	}

	return nil
}

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = readPassword(fmt.Sprintf("current password for %s: ", name))
		if nil != err {
			return err
		}
	}

	// fail early on a wrong password
	_, err := m.config.Private(password, name)
	if nil != err {
		return err
	}

	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	err = m.config.ChangePassword(name, password, newPassword)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}

// GenerateReply - output of the generate command
type GenerateReply struct {
	Seed    string `json:"seed"`
	Account string `json:"account"`
	Address string `json:"address"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seed, err := account.NewSeed(m.testnet)
	if nil != err {
		return err
	}
	privateKey, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		return err
	}

	acc := privateKey.Account()
	reply := GenerateReply{
		Seed:    seed,
		Account: acc.String(),
		Address: acc.Address().String(),
	}

	printJson(m.w, reply)
	return nil
}
