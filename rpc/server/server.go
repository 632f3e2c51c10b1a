// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/counter"
	"github.com/bitmark-inc/budgetd/ledger"
	"github.com/bitmark-inc/budgetd/rpc/budget"
	"github.com/bitmark-inc/budgetd/rpc/expense"
	"github.com/bitmark-inc/budgetd/rpc/holding"
	"github.com/bitmark-inc/budgetd/rpc/node"
	"github.com/bitmark-inc/budgetd/rpc/transaction"
)

// Parameters - everything the RPC services share
type Parameters struct {
	Version   string
	Chain     string
	ReadOnly  bool
	Ledger    ledger.Handle
	Count     *counter.Counter
	PublicKey func() []byte
}

// Create - an RPC server with all services registered
func Create(log *logger.L, parameters *Parameters) *rpc.Server {

	start := time.Now().UTC()
	l := parameters.Ledger
	readOnly := parameters.ReadOnly

	server := rpc.NewServer()

	_ = server.Register(budget.New(log, l, readOnly))
	_ = server.Register(expense.New(log, l, readOnly))
	_ = server.Register(holding.New(log, l, readOnly))
	_ = server.Register(transaction.New(log, l, readOnly))
	_ = server.Register(node.New(log, start, parameters.Version, parameters.Chain, l, parameters.Count, parameters.PublicKey))

	return server
}
