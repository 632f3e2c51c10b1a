// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package holding

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/ratelimit"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

const (
	rateLimitHolding = 200
	rateBurstHolding = 100
)

// Holding - type for the RPC
type Holding struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Handle
	ReadOnly bool
}

// New - create a holding RPC handler
func New(log *logger.L, l ledger.Handle, readOnly bool) *Holding {
	return &Holding{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitHolding, rateBurstHolding),
		Ledger:   l,
		ReadOnly: readOnly,
	}
}

// ---

// BalanceArguments - arguments for balance RPC
type BalanceArguments struct {
	Holding address.Address `json:"holding"`
}

// BalanceReply - result from balance RPC
type BalanceReply struct {
	Holding *token.HoldingRecord `json:"holding"`
}

// Balance - read a holding: its unit, owner and amount
func (holding *Holding) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(holding.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	record, err := holding.Ledger.Holding(arguments.Holding)
	if nil != err {
		return err
	}
	reply.Holding = record
	return nil
}

// ---

// IssueReply - result from issue RPC
type IssueReply struct {
	TxId    transactionrecord.TxId `json:"txId"`
	Holding address.Address        `json:"holding"`
}

// Issue - create and fund a unit holding
func (holding *Holding) Issue(arguments *transactionrecord.Issue, reply *IssueReply) error {
	if err := ratelimit.Limit(holding.Limiter); nil != err {
		return err
	}
	if holding.ReadOnly {
		return fault.NotAvailableInReadOnlyMode
	}
	if nil == arguments || nil == arguments.Authority {
		return fault.MissingParameters
	}

	holding.Log.Infof("Holding.Issue: %d  unit: %s  owner: %s", arguments.Amount, arguments.Unit, arguments.Owner)

	txId, h, err := holding.Ledger.Issue(arguments)
	if nil != err {
		return err
	}
	reply.TxId = txId
	reply.Holding = h
	return nil
}
