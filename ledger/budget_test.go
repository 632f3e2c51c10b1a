// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
)

func TestCreateBudgetCollection(t *testing.T) {
	f := newFixture(t, 0)

	budgetAddress, collectionUnit := f.createBudget(t)

	budget, err := f.ledger.GetBudget(budgetAddress)
	assert.Nil(t, err, "get budget")
	assert.Equal(t, f.authority.Account().Address(), budget.Authority, "wrong authority")
	assert.Equal(t, collectionUnit, budget.CollectionUnit, "wrong collection unit")
	assert.Equal(t, uint16(2021), budget.FiscalYear, "wrong fiscal year")
	assert.Equal(t, uint32(0), budget.ExpenseCount, "wrong expense count")

	// exactly one collection unit held by the payer
	holding, _ := token.HoldingAddress(f.authority.Account().Address(), collectionUnit)
	balance, err := f.ledger.Balance(holding)
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(1), balance, "wrong collection balance")

	mint, err := f.tokens.GetMint(storage.Committed, collectionUnit)
	assert.Nil(t, err, "get mint")
	assert.Equal(t, uint64(1), mint.Supply, "wrong supply")
	assert.Equal(t, uint8(0), mint.Decimals, "wrong decimals")

	metadata, err := f.tokens.GetMetadata(storage.Committed, collectionUnit)
	assert.Nil(t, err, "get metadata")
	assert.Equal(t, "Operations 2021", metadata.Name, "wrong name")
	assert.Equal(t, "OPS21", metadata.Symbol, "wrong symbol")
	assert.True(t, metadata.Collection.IsNil(), "collection should be empty")

	edition, err := f.tokens.GetEdition(storage.Committed, collectionUnit)
	assert.Nil(t, err, "get edition")
	assert.Equal(t, uint64(0), edition.MaxSupply, "edition should be non printable")
}

func TestCreateBudgetCollectionDuplicate(t *testing.T) {
	f := newFixture(t, 0)

	c := f.budgetRecord(randomAddress(t))
	_, err := f.ledger.CreateBudgetCollection(c)
	assert.Nil(t, err, "first create")

	_, err = f.ledger.CreateBudgetCollection(c)
	assert.Equal(t, fault.TransactionAlreadyExists, err, "same record twice")

	c.FiscalYear = 2022
	signBudget(c, f.authority)
	_, err = f.ledger.CreateBudgetCollection(c)
	assert.Equal(t, fault.BudgetAlreadyExists, err, "second budget for one collection")

	budget, _ := f.ledger.GetBudget(c.Budget)
	assert.Equal(t, uint16(2021), budget.FiscalYear, "budget overwritten")
}

func TestCreateBudgetCollectionWrongAddress(t *testing.T) {
	f := newFixture(t, 0)

	c := f.budgetRecord(randomAddress(t))
	c.Budget = randomAddress(t)
	signBudget(c, f.authority)

	_, err := f.ledger.CreateBudgetCollection(c)
	assert.Equal(t, fault.IncorrectAddress, err, "wrong error")

	_, err = f.ledger.GetBudget(c.Budget)
	assert.Equal(t, fault.BudgetNotFound, err, "budget created")
	_, err = f.tokens.GetMint(storage.Committed, c.CollectionUnit)
	assert.Equal(t, fault.MintNotFound, err, "collection unit created")
}

func TestCreateBudgetCollectionUnpinnedMetadata(t *testing.T) {
	f := newFixture(t, 0)

	log := logger.New("ledger")
	l := ledger.New(log, f.tokens, f.tokens, &ledger.Configuration{
		MetadataProgram: token.ProgramId,
		Testnet:         true,
	})

	c := f.budgetRecord(randomAddress(t))
	_, err := l.CreateBudgetCollection(c)
	assert.Equal(t, fault.IncorrectProgramId, err, "wrong error")

	_, err = l.GetBudget(c.Budget)
	assert.Equal(t, fault.BudgetNotFound, err, "budget created")
}

func TestCreateBudgetCollectionWrongNetwork(t *testing.T) {
	f := newFixture(t, 0)

	c := f.budgetRecord(randomAddress(t))
	c.Payer.Test = false

	_, err := f.ledger.CreateBudgetCollection(c)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong error")
}

func TestCreateBudgetCollectionBadSignature(t *testing.T) {
	f := newFixture(t, 0)

	c := f.budgetRecord(randomAddress(t))
	c.Name = "changed after signing"

	_, err := f.ledger.CreateBudgetCollection(c)
	assert.Equal(t, fault.InvalidSignature, err, "wrong error")
}

func TestCreateBudgetCollectionLongSymbol(t *testing.T) {
	f := newFixture(t, 0)

	c := f.budgetRecord(randomAddress(t))
	c.Symbol = "SYMBOL-TOO-LONG"
	signBudget(c, f.authority)

	_, err := f.ledger.CreateBudgetCollection(c)
	assert.Equal(t, fault.SymbolTooLong, err, "wrong error")

	_, err = f.tokens.GetMint(storage.Committed, c.CollectionUnit)
	assert.Equal(t, fault.MintNotFound, err, "collection unit left behind")
}
