// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/chain"
	"github.com/bitmark-inc/budgetd/command/budget-cli/configuration"
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// normalise the network name
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "", chain.Testing, "test":
		return chain.Testing, nil
	case chain.Budget, "live":
		return chain.Budget, nil
	case chain.Local, "regression":
		return chain.Local, nil
	default:
		return "", ErrInvalidNetwork
	}
}

// seed is optional, a blank seed creates a new one
func checkSeed(seed string, testnet bool) (string, error) {
	if "" == seed {
		return account.NewSeed(testnet)
	}

	_, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		return "", err
	}
	return seed, nil
}

// an address is required
func checkAddress(s string) (address.Address, error) {
	if "" == s {
		return address.Nil, ErrRequiredAddress
	}
	return address.FromBase58(s)
}

// accept either an identity name from the configuration or a base58
// account or address
func checkRecipient(s string, config *configuration.Configuration) (address.Address, error) {
	if "" == s {
		s = config.DefaultIdentity
	}
	if "" == s {
		return address.Nil, ErrRequiredIdentity
	}

	if acc, err := config.Account(s); nil == err {
		return acc.Address(), nil
	}
	if acc, err := account.FromBase58(s); nil == err {
		return acc.Address(), nil
	}
	return address.FromBase58(s)
}

// amount must be positive
func checkAmount(amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, ErrRequiredAmount
	}
	return amount, nil
}

// a non-blank string
func checkString(s string, required error) (string, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return "", required
	}
	return s, nil
}

// list count: 1 .. maximum
func checkCount(count int, maximum int) (int, error) {
	if count <= 0 || count > maximum {
		return 0, ErrInvalidCount
	}
	return count, nil
}

// optional fiscal year
func checkFiscalYear(s string) (uint16, error) {
	if "" == s {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if nil != err {
		return 0, err
	}
	return uint16(n), nil
}

func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}
