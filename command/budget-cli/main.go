// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/budgetd/chain"
	"github.com/bitmark-inc/budgetd/command/budget-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "budget-cli"
	app.Usage = "budget, expense and settlement client for budgetd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " connect to budgetd `NETWORK` [budget|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = commands()

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return fmt.Errorf("network: %q can only be budget/testing/local", c.GlobalString("network"))
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			home, err := os.UserHomeDir()
			if nil != err {
				return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
			}
			p = path.Join(home, ".config")
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".toml")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: chain.IsTesting(network),
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
