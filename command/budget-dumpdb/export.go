// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"database/sql"
	"math"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

var schema = []string{
	`CREATE TABLE budgets (
		address         TEXT PRIMARY KEY,
		authority       TEXT NOT NULL,
		collection_unit TEXT NOT NULL,
		fiscal_year     INTEGER NOT NULL,
		expense_count   INTEGER NOT NULL
	)`,
	`CREATE TABLE expenses (
		address          TEXT PRIMARY KEY,
		budget           TEXT NOT NULL,
		unit             TEXT NOT NULL,
		ordinal          INTEGER NOT NULL,
		expense_type     TEXT NOT NULL,
		approved_amount  INTEGER NOT NULL,
		spent            INTEGER NOT NULL,
		variance_percent INTEGER NOT NULL
	)`,
	`CREATE TABLE mints (
		unit           TEXT PRIMARY KEY,
		decimals       INTEGER NOT NULL,
		supply         INTEGER NOT NULL,
		mint_authority TEXT NOT NULL
	)`,
	`CREATE TABLE holdings (
		address TEXT PRIMARY KEY,
		unit    TEXT NOT NULL,
		owner   TEXT NOT NULL,
		balance INTEGER NOT NULL
	)`,
	`CREATE TABLE metadata (
		unit                TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		symbol              TEXT NOT NULL,
		uri                 TEXT NOT NULL,
		collection          TEXT NOT NULL,
		collection_verified INTEGER NOT NULL
	)`,
	`CREATE TABLE transactions (
		txid   TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		packed BLOB NOT NULL
	)`,
}

type tableCount struct {
	table string
	rows  int
}

// exportSQLite - copy every committed record into a new SQLite database
func exportSQLite(filename string, tokens *token.Ledger, testnet bool) ([]tableCount, error) {

	db, err := sql.Open("sqlite", filename)
	if nil != err {
		return nil, err
	}
	defer db.Close()

	tx, err := db.Begin()
	if nil != err {
		return nil, err
	}

	for _, statement := range schema {
		if _, err := tx.Exec(statement); nil != err {
			tx.Rollback()
			return nil, err
		}
	}

	exporters := []struct {
		table  string
		pool   *storage.PoolHandle
		insert string
		row    func(key []byte, value []byte) ([]interface{}, error)
	}{
		{
			table:  "budgets",
			pool:   storage.Pool.Budgets,
			insert: "INSERT INTO budgets VALUES (?, ?, ?, ?, ?)",
			row:    budgetRow,
		},
		{
			table:  "expenses",
			pool:   storage.Pool.Expenses,
			insert: "INSERT INTO expenses VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			row:    expenseRow,
		},
		{
			table:  "mints",
			pool:   storage.Pool.Mints,
			insert: "INSERT INTO mints VALUES (?, ?, ?, ?)",
			row: func(key []byte, _ []byte) ([]interface{}, error) {
				unit, err := address.FromBytes(key)
				if nil != err {
					return nil, err
				}
				m, err := tokens.GetMint(storage.Committed, unit)
				if nil != err {
					return nil, err
				}
				return []interface{}{unit.String(), m.Decimals, integer(m.Supply), m.MintAuthority.String()}, nil
			},
		},
		{
			table:  "holdings",
			pool:   storage.Pool.Holdings,
			insert: "INSERT INTO holdings VALUES (?, ?, ?, ?)",
			row: func(key []byte, _ []byte) ([]interface{}, error) {
				holding, err := address.FromBytes(key)
				if nil != err {
					return nil, err
				}
				h, err := tokens.GetHolding(storage.Committed, holding)
				if nil != err {
					return nil, err
				}
				return []interface{}{holding.String(), h.Unit.String(), h.Owner.String(), integer(h.Balance)}, nil
			},
		},
		{
			table:  "metadata",
			pool:   storage.Pool.Metadata,
			insert: "INSERT INTO metadata VALUES (?, ?, ?, ?, ?, ?)",
			row: func(key []byte, _ []byte) ([]interface{}, error) {
				unit, err := address.FromBytes(key)
				if nil != err {
					return nil, err
				}
				m, err := tokens.GetMetadata(storage.Committed, unit)
				if nil != err {
					return nil, err
				}
				collection := ""
				if !m.Collection.IsNil() {
					collection = m.Collection.String()
				}
				return []interface{}{unit.String(), m.Name, m.Symbol, m.URI, collection, m.CollectionVerified}, nil
			},
		},
		{
			table:  "transactions",
			pool:   storage.Pool.Transactions,
			insert: "INSERT INTO transactions VALUES (?, ?, ?)",
			row: func(_ []byte, value []byte) ([]interface{}, error) {
				packed := transactionrecord.Packed(value)
				item, _, err := packed.Unpack(testnet)
				if nil != err {
					return nil, err
				}
				name, _ := transactionrecord.RecordName(item)
				return []interface{}{packed.MakeTxId().String(), name, []byte(packed)}, nil
			},
		},
	}

	counts := make([]tableCount, 0, len(exporters))
	for _, exporter := range exporters {
		statement, err := tx.Prepare(exporter.insert)
		if nil != err {
			tx.Rollback()
			return nil, err
		}

		n := 0
		err = exporter.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
			row, err := exporter.row(key, value)
			if nil != err {
				return err
			}
			_, err = statement.Exec(row...)
			if nil != err {
				return err
			}
			n += 1
			return nil
		})
		statement.Close()
		if nil != err {
			tx.Rollback()
			return nil, err
		}
		counts = append(counts, tableCount{table: exporter.table, rows: n})
	}

	return counts, tx.Commit()
}

func budgetRow(key []byte, value []byte) ([]interface{}, error) {
	a, err := address.FromBytes(key)
	if nil != err {
		return nil, err
	}
	b, err := budgetrecord.Packed(value).UnpackBudget()
	if nil != err {
		return nil, err
	}
	return []interface{}{a.String(), b.Authority.String(), b.CollectionUnit.String(), b.FiscalYear, b.ExpenseCount}, nil
}

func expenseRow(key []byte, value []byte) ([]interface{}, error) {
	a, err := address.FromBytes(key)
	if nil != err {
		return nil, err
	}
	e, err := budgetrecord.Packed(value).UnpackExpense()
	if nil != err {
		return nil, err
	}
	return []interface{}{
		a.String(),
		e.Budget.String(),
		e.Unit.String(),
		e.Index,
		e.ExpenseType,
		integer(e.ApprovedAmount),
		integer(e.Spent),
		e.VariancePercent,
	}, nil
}

// database/sql rejects uint64 values with the high bit set
func integer(n uint64) interface{} {
	if n > math.MaxInt64 {
		return strconv.FormatUint(n, 10)
	}
	return int64(n)
}
