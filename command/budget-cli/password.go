// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/budgetd/command/budget-cli/configuration"
)

const (
	minimumPasswordLength = 8
)

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	oldState, err := terminal.MakeRaw(0)
	if nil != err {
		return nil, 0, nil, err
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState, nil
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		terminal.Restore(0, oldState)
		return nil, 0, nil, err
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "budget-cli: ")

	return passwordConsole, 0, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, state)

	return console.ReadPassword(prompt)
}

// prompt twice for a new password
func promptNewPassword() (string, error) {
	password, err := readPassword(fmt.Sprintf("Set identity password(length >= %d): ", minimumPasswordLength))
	if nil != err {
		return "", err
	}

	if len(password) < minimumPasswordLength {
		return "", ErrInvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", ErrPasswordMismatch
	}

	if password != verifyPassword {
		return "", ErrPasswordMismatch
	}

	return password, nil
}

// decrypt an identity from the flag password or a prompt
func promptAndCheckPassword(config *configuration.Configuration, name string, password string) (*configuration.Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	if "" == id.Salt {
		return nil, ErrNotPrivateIdentity
	}

	if "" == password {
		password, err = readPassword(fmt.Sprintf("password for %s: ", name))
		if nil != err {
			return nil, err
		}
	}

	return config.Private(password, name)
}
