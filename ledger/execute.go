// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// Result - outcome of executing a packed record
type Result struct {
	TxId transactionrecord.TxId        `json:"txId"`
	Name string                        `json:"name"`
	Item transactionrecord.Transaction `json:"item"`
}

// Execute - unpack, verify and apply a complete signed record
//
// the record must contain nothing after its last signature
func (l *Ledger) Execute(packed transactionrecord.Packed) (*Result, error) {

	transaction, n, err := packed.Unpack(l.testnet)
	if nil != err {
		return nil, err
	}
	if n != len(packed) {
		return nil, fault.NotTransactionPack
	}

	name, _ := transactionrecord.RecordName(transaction)
	result := &Result{
		Name: name,
		Item: transaction,
	}

	switch tx := transaction.(type) {
	case *transactionrecord.CreateBudgetCollection:
		result.TxId, err = l.CreateBudgetCollection(tx)
	case *transactionrecord.CreateExpense:
		result.TxId, err = l.CreateExpense(tx)
	case *transactionrecord.Spend:
		result.TxId, _, err = l.Spend(tx)
	case *transactionrecord.VerifyCollection:
		result.TxId, err = l.VerifyCollection(tx)
	case *transactionrecord.Issue:
		result.TxId, _, err = l.Issue(tx)
	default:
		return nil, fault.NotTransactionPack
	}
	if nil != err {
		return nil, err
	}
	return result, nil
}
