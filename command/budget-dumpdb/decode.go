// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// decodedTransaction - a stored record with its type name
type decodedTransaction struct {
	TxId transactionrecord.TxId        `json:"txId"`
	Name string                        `json:"name"`
	Item transactionrecord.Transaction `json:"item"`
}

// decodeElement - convert a stored value into its record type
func decodeElement(tokens *token.Ledger, tag string, e storage.Element, testnet bool) (interface{}, error) {

	switch tag {
	case "B":
		return budgetrecord.Packed(e.Value).UnpackBudget()

	case "E":
		return budgetrecord.Packed(e.Value).UnpackExpense()

	case "T":
		packed := transactionrecord.Packed(e.Value)
		item, _, err := packed.Unpack(testnet)
		if nil != err {
			return nil, err
		}
		name, _ := transactionrecord.RecordName(item)
		return &decodedTransaction{
			TxId: packed.MakeTxId(),
			Name: name,
			Item: item,
		}, nil
	}

	key, err := address.FromBytes(e.Key)
	if nil != err {
		return nil, err
	}

	switch tag {
	case "M":
		return tokens.GetMint(storage.Committed, key)
	case "H":
		return tokens.GetHolding(storage.Committed, key)
	case "D":
		return tokens.GetMetadata(storage.Committed, key)
	case "X":
		return tokens.GetEdition(storage.Committed, key)
	}

	// no structure, show as raw bytes
	return e.Value, nil
}
