// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// VerifyCollection - mark an expense unit as a verified member of
// its budget's collection
//
// expenses are created unverified; only the budget authority can
// verify them
func (l *Ledger) VerifyCollection(arguments *transactionrecord.VerifyCollection) (transactionrecord.TxId, error) {

	err := l.checkNetwork(arguments.Authority)
	if nil != err {
		return transactionrecord.TxId{}, err
	}

	packed, err := arguments.Pack()
	if nil != err {
		return transactionrecord.TxId{}, err
	}

	l.log.Infof("verify collection: expense: %s", arguments.Expense)

	locks := []address.Address{arguments.Expense}
	return l.apply(packed, "verify", locks, func(trx storage.Transaction) error {
		return l.verifyCollection(trx, arguments)
	})
}

func (l *Ledger) verifyCollection(trx storage.Transaction, arguments *transactionrecord.VerifyCollection) error {

	err := l.checkMetadataProgram()
	if nil != err {
		return err
	}

	expense, budget, err := l.readExpense(trx, arguments.Expense)
	if nil != err {
		return err
	}

	authority := arguments.Authority.Address()
	if authority != budget.Authority {
		return fault.Unauthorised
	}

	signers := token.NewSigners(authority)
	return l.metadata.VerifyCollection(trx, signers, expense.Unit, budget.CollectionUnit, authority)
}
