// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/hex"
	"encoding/json"

	"github.com/bitmark-inc/budgetd/rpc/node"
	"github.com/bitmark-inc/budgetd/rpc/transaction"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// GetInfo - request status from budgetd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	err := client.call("Node.Info", node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// SubmitReply - submit result with the decoded record left as raw JSON
type SubmitReply struct {
	TxId transactionrecord.TxId `json:"txId"`
	Name string                 `json:"name"`
	Item json.RawMessage        `json:"item"`
}

// Submit - send an offline signed record
func (client *Client) Submit(packed transactionrecord.Packed) (*SubmitReply, error) {
	arguments := transaction.SubmitArguments{
		Packed: hex.EncodeToString(packed),
	}
	var reply SubmitReply
	err := client.call("Transaction.Submit", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
