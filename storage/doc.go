// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte derived or public key address
// 4. txId         = transaction digest as 32 byte SHA3-256(packed transaction)
// 5. packed       = Varint64(tag) ++ fields, see budgetrecord and transactionrecord
//
// Ledger records:
//
//   B ++ budget address        - budget collection
//                                data: packed BudgetRecord
//   E ++ expense address       - expense category
//                                data: packed ExpenseRecord
//
// Token service records:
//
//   M ++ unit address          - mint (unit type)
//                                data: packed Mint
//   H ++ holding address       - holding of one unit by one owner
//                                data: packed Holding
//   D ++ unit address          - descriptive metadata
//                                data: packed Metadata
//   X ++ unit address          - master edition
//                                data: packed MasterEdition
//
// Transactions:
//
//   T ++ txId                  - committed transactions
//                                data: packed transaction data
//
// Testing:
//   Z ++ key                   - testing data
//
// Every write goes through a Transaction: a LevelDB batch with an
// in-memory overlay so reads inside the transaction see earlier writes.
// Several transactions may be open at once; callers must ensure they
// touch disjoint keys.
package storage
