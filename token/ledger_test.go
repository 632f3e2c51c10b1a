// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
)

// create a mint and a funded holding
func setupUnit(t *testing.T, l *token.Ledger, owner address.Address, decimals uint8, amount uint64) (address.Address, address.Address) {
	unit := newAddress()
	var holding address.Address
	err := inTransaction(t, func(trx storage.Transaction) error {
		signers := token.NewSigners(owner)
		err := l.InitialiseMint(trx, signers, unit, decimals, owner, owner)
		if nil != err {
			return err
		}
		holding, err = l.InitialiseHolding(trx, signers, unit, owner)
		if nil != err {
			return err
		}
		if 0 == amount {
			return nil
		}
		return l.Mint(trx, signers, unit, holding, amount)
	})
	if nil != err {
		t.Fatalf("setup unit error: %s", err)
	}
	return unit, holding
}

func TestMintAndBalance(t *testing.T) {
	l := newLedger()
	owner := newAddress()

	unit, holding := setupUnit(t, l, owner, 6, 500)

	expected, err := token.HoldingAddress(owner, unit)
	assert.Nil(t, err, "holding address")
	assert.Equal(t, expected, holding, "holding not at derived address")

	balance, err := l.Balance(storage.Committed, holding)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(500), balance, "wrong balance")

	mint, err := l.GetMint(storage.Committed, unit)
	assert.Nil(t, err, "get mint")
	assert.Equal(t, uint64(500), mint.Supply, "wrong supply")
	assert.Equal(t, uint8(6), mint.Decimals, "wrong decimals")
}

func TestMintDuplicates(t *testing.T) {
	l := newLedger()
	owner := newAddress()
	unit, _ := setupUnit(t, l, owner, 6, 0)

	err := inTransaction(t, func(trx storage.Transaction) error {
		return l.InitialiseMint(trx, token.NewSigners(owner), unit, 0, owner, address.Nil)
	})
	assert.Equal(t, fault.MintAlreadyExists, err, "duplicate mint")

	err = inTransaction(t, func(trx storage.Transaction) error {
		_, err := l.InitialiseHolding(trx, nil, unit, owner)
		return err
	})
	assert.Equal(t, fault.HoldingAlreadyExists, err, "duplicate holding")

	err = inTransaction(t, func(trx storage.Transaction) error {
		_, err := l.InitialiseHolding(trx, nil, newAddress(), owner)
		return err
	})
	assert.Equal(t, fault.MintNotFound, err, "holding without mint")
}

func TestMintRequiresAuthority(t *testing.T) {
	l := newLedger()
	owner := newAddress()
	unit, holding := setupUnit(t, l, owner, 6, 10)

	err := inTransaction(t, func(trx storage.Transaction) error {
		return l.Mint(trx, token.NewSigners(newAddress()), unit, holding, 1)
	})
	assert.Equal(t, fault.Unauthorised, err, "mint by stranger")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Mint(trx, token.NewSigners(owner), unit, holding, math.MaxUint64)
	})
	assert.Equal(t, fault.SupplyOverflow, err, "supply overflow")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Mint(trx, token.NewSigners(owner), unit, holding, 0)
	})
	assert.Equal(t, fault.InvalidAmount, err, "zero mint")

	balance, _ := l.Balance(storage.Committed, holding)
	assert.Equal(t, uint64(10), balance, "balance changed by failed mints")
}

func TestBurn(t *testing.T) {
	l := newLedger()
	owner := newAddress()
	unit, holding := setupUnit(t, l, owner, 6, 100)

	err := inTransaction(t, func(trx storage.Transaction) error {
		return l.Burn(trx, token.NewSigners(newAddress()), unit, holding, 1)
	})
	assert.Equal(t, fault.Unauthorised, err, "burn by stranger")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Burn(trx, token.NewSigners(owner), unit, holding, 101)
	})
	assert.Equal(t, fault.InsufficientFunds, err, "over burn")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Burn(trx, token.NewSigners(owner), unit, holding, 40)
	})
	assert.Nil(t, err, "burn")

	balance, _ := l.Balance(storage.Committed, holding)
	assert.Equal(t, uint64(60), balance, "wrong balance")
	mint, _ := l.GetMint(storage.Committed, unit)
	assert.Equal(t, uint64(60), mint.Supply, "wrong supply")
}

func TestTransfer(t *testing.T) {
	l := newLedger()
	treasury := newAddress()
	operations := newAddress()
	unit, source := setupUnit(t, l, treasury, 6, 1000)

	var destination address.Address
	err := inTransaction(t, func(trx storage.Transaction) error {
		var err error
		destination, err = l.InitialiseHolding(trx, nil, unit, operations)
		return err
	})
	assert.Nil(t, err, "destination holding")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Transfer(trx, token.NewSigners(operations), source, destination, 1)
	})
	assert.Equal(t, fault.Unauthorised, err, "transfer without source owner")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Transfer(trx, token.NewSigners(treasury), source, destination, 1001)
	})
	assert.Equal(t, fault.InsufficientFunds, err, "over transfer")

	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Transfer(trx, token.NewSigners(treasury), source, destination, 250)
	})
	assert.Nil(t, err, "transfer")

	b1, _ := l.Balance(storage.Committed, source)
	b2, _ := l.Balance(storage.Committed, destination)
	assert.Equal(t, uint64(750), b1, "source balance")
	assert.Equal(t, uint64(250), b2, "destination balance")

	// different unit
	_, other := setupUnit(t, l, treasury, 6, 5)
	err = inTransaction(t, func(trx storage.Transaction) error {
		return l.Transfer(trx, token.NewSigners(treasury), other, destination, 1)
	})
	assert.Equal(t, fault.UnitMismatch, err, "transfer across units")

	_, err = l.Balance(storage.Committed, newAddress())
	assert.Equal(t, fault.HoldingNotFound, err, "missing holding")
}

// aborted transactions leave no trace
func TestAbortDiscardsWrites(t *testing.T) {
	l := newLedger()
	owner := newAddress()
	unit := newAddress()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "new transaction")
	err = l.InitialiseMint(trx, nil, unit, 0, owner, owner)
	assert.Nil(t, err, "initialise mint")

	_, err = l.GetMint(trx, unit)
	assert.Nil(t, err, "visible inside transaction")
	_, err = l.GetMint(storage.Committed, unit)
	assert.Equal(t, fault.MintNotFound, err, "visible outside transaction")

	trx.Abort()
	_, err = l.GetMint(storage.Committed, unit)
	assert.Equal(t, fault.MintNotFound, err, "visible after abort")
}
