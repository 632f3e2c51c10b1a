// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/ratelimit"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100

	// hex characters
	maximumPackedLength = 8192
)

// Transaction - type for the RPC
type Transaction struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Handle
	ReadOnly bool
}

// New - create a transaction RPC handler
func New(log *logger.L, l ledger.Handle, readOnly bool) *Transaction {
	return &Transaction{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Ledger:   l,
		ReadOnly: readOnly,
	}
}

// SubmitArguments - a complete signed record as hex
type SubmitArguments struct {
	Packed string `json:"packed"`
}

// SubmitReply - result from submit RPC
type SubmitReply struct {
	TxId transactionrecord.TxId        `json:"txId"`
	Name string                        `json:"name"`
	Item transactionrecord.Transaction `json:"item"`
}

// Submit - apply a record that was packed and signed offline
func (transaction *Transaction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {
	if err := ratelimit.Limit(transaction.Limiter); nil != err {
		return err
	}
	if transaction.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if nil == arguments || 0 == len(arguments.Packed) {
		return fault.MissingParameters
	}
	if len(arguments.Packed) > maximumPackedLength {
		return fault.NotTransactionPack
	}

	packed, err := hex.DecodeString(arguments.Packed)
	if nil != err {
		return err
	}

	result, err := transaction.Ledger.Execute(packed)
	if nil != err {
		return err
	}

	transaction.Log.Infof("Transaction.Submit: %s  id: %s", result.Name, result.TxId)

	reply.TxId = result.TxId
	reply.Name = result.Name
	reply.Item = result.Item
	return nil
}
