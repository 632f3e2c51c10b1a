// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"database/sql"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

var (
	budgetAddress  = address.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	expenseAddress = address.MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
)

func setup(t *testing.T) string {
	dir, err := ioutil.TempDir("", "budget-dumpdb-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	config := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(config)

	err = storage.Initialise(filepath.Join(dir, "test"), storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

func teardown(dir string) {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(dir)
}

// a signed issue record
func issueRecord(t *testing.T) transactionrecord.Packed {
	key, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "wrong NewPrivateKey")

	record := &transactionrecord.Issue{
		Unit:      budgetAddress,
		Owner:     key.Account().Address(),
		Decimals:  2,
		Amount:    1000,
		Authority: key.Account(),
	}
	message, _ := record.Pack()
	record.Signature = key.Sign(message)

	packed, err := record.Pack()
	assert.Nil(t, err, "wrong Pack")
	return packed
}

func TestExportSQLite(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	budget := &budgetrecord.BudgetRecord{
		Authority:      expenseAddress,
		CollectionUnit: budgetAddress,
		FiscalYear:     2024,
		ExpenseCount:   1,
	}
	packedBudget, err := budget.Pack()
	assert.Nil(t, err, "wrong budget Pack")

	expense := &budgetrecord.ExpenseRecord{
		Budget:          budgetAddress,
		Unit:            expenseAddress,
		ExpenseType:     "Travel",
		ApprovedAmount:  5000,
		Spent:           1200,
		VariancePercent: 10,
		Index:           0,
	}
	packedExpense, err := expense.Pack()
	assert.Nil(t, err, "wrong expense Pack")

	packedIssue := issueRecord(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong NewDBTransaction")
	trx.Put(storage.Pool.Budgets, budgetAddress[:], packedBudget)
	trx.Put(storage.Pool.Expenses, expenseAddress[:], packedExpense)
	txId := packedIssue.MakeTxId()
	trx.Put(storage.Pool.Transactions, txId[:], packedIssue)
	assert.Nil(t, trx.Commit(), "wrong Commit")

	output := filepath.Join(dir, "export.sqlite")
	tokens := token.NewLedger(logger.New("token"))

	counts, err := exportSQLite(output, tokens, true)
	assert.Nil(t, err, "wrong exportSQLite")

	expected := []tableCount{
		{table: "budgets", rows: 1},
		{table: "expenses", rows: 1},
		{table: "mints", rows: 0},
		{table: "holdings", rows: 0},
		{table: "metadata", rows: 0},
		{table: "transactions", rows: 1},
	}
	assert.Equal(t, expected, counts, "wrong counts")

	db, err := sql.Open("sqlite", output)
	assert.Nil(t, err, "wrong sql.Open")
	defer db.Close()

	var authority string
	var year int
	err = db.QueryRow("SELECT authority, fiscal_year FROM budgets WHERE address = ?", budgetAddress.String()).Scan(&authority, &year)
	assert.Nil(t, err, "wrong budget query")
	assert.Equal(t, expenseAddress.String(), authority, "wrong authority")
	assert.Equal(t, 2024, year, "wrong fiscal year")

	var expenseType string
	var approved, spent int64
	err = db.QueryRow("SELECT expense_type, approved_amount, spent FROM expenses WHERE budget = ?", budgetAddress.String()).Scan(&expenseType, &approved, &spent)
	assert.Nil(t, err, "wrong expense query")
	assert.Equal(t, "Travel", expenseType, "wrong expense type")
	assert.Equal(t, int64(5000), approved, "wrong approved amount")
	assert.Equal(t, int64(1200), spent, "wrong spent")

	var name string
	err = db.QueryRow("SELECT name FROM transactions WHERE txid = ?", txId.String()).Scan(&name)
	assert.Nil(t, err, "wrong transaction query")
	assert.Equal(t, "issue", name, "wrong record name")
}

func TestExportSQLiteExistingTables(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	output := filepath.Join(dir, "export.sqlite")
	tokens := token.NewLedger(logger.New("token"))

	_, err := exportSQLite(output, tokens, true)
	assert.Nil(t, err, "wrong first export")

	_, err = exportSQLite(output, tokens, true)
	assert.NotNil(t, err, "second export into the same file")
}

func TestDecodeElement(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	tokens := token.NewLedger(logger.New("token"))

	budget := &budgetrecord.BudgetRecord{
		Authority:      expenseAddress,
		CollectionUnit: budgetAddress,
		FiscalYear:     2025,
	}
	packed, err := budget.Pack()
	assert.Nil(t, err, "wrong Pack")

	item, err := decodeElement(tokens, "B", storage.Element{Key: budgetAddress[:], Value: packed}, true)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, budget, item, "wrong budget")

	packedIssue := issueRecord(t)
	item, err = decodeElement(tokens, "T", storage.Element{Key: []byte{1}, Value: packedIssue}, true)
	assert.Nil(t, err, "wrong decode")
	tx, ok := item.(*decodedTransaction)
	assert.True(t, ok, "wrong type")
	assert.Equal(t, "issue", tx.Name, "wrong name")
	assert.Equal(t, packedIssue.MakeTxId(), tx.TxId, "wrong txId")

	_, err = decodeElement(tokens, "H", storage.Element{Key: []byte{1, 2}, Value: nil}, true)
	assert.NotNil(t, err, "short key accepted")

	_, err = decodeElement(tokens, "H", storage.Element{Key: budgetAddress[:], Value: nil}, true)
	assert.NotNil(t, err, "missing holding decoded")

	item, err = decodeElement(tokens, "Z", storage.Element{Key: budgetAddress[:], Value: []byte{9}}, true)
	assert.Nil(t, err, "wrong raw decode")
	assert.Equal(t, []byte{9}, item, "wrong raw value")
}
