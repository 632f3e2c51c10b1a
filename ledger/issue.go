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

// Issue - set up a unit holding and optionally fund it
//
// creates the unit with the signer as mint authority if it does not
// exist, then the owner's holding if it does not exist, then mints
func (l *Ledger) Issue(arguments *transactionrecord.Issue) (transactionrecord.TxId, address.Address, error) {

	err := l.checkNetwork(arguments.Authority)
	if nil != err {
		return transactionrecord.TxId{}, address.Nil, err
	}

	packed, err := arguments.Pack()
	if nil != err {
		return transactionrecord.TxId{}, address.Nil, err
	}

	if arguments.Unit.IsNil() || arguments.Owner.IsNil() {
		return transactionrecord.TxId{}, address.Nil, fault.MissingParameters
	}

	holding, err := token.HoldingAddress(arguments.Owner, arguments.Unit)
	if nil != err {
		return transactionrecord.TxId{}, address.Nil, err
	}

	l.log.Infof("issue: %d  unit: %s  holding: %s", arguments.Amount, arguments.Unit, holding)

	locks := []address.Address{arguments.Unit, holding}
	txId, err := l.apply(packed, "issue", locks, func(trx storage.Transaction) error {
		return l.issue(trx, arguments, holding)
	})
	return txId, holding, err
}

func (l *Ledger) issue(trx storage.Transaction, arguments *transactionrecord.Issue, holding address.Address) error {

	authority := arguments.Authority.Address()
	signers := token.NewSigners(authority)

	if !trx.Has(storage.Pool.Mints, arguments.Unit[:]) {
		err := l.tokens.InitialiseMint(trx, signers, arguments.Unit, arguments.Decimals, authority, authority)
		if nil != err {
			return err
		}
	}

	if !trx.Has(storage.Pool.Holdings, holding[:]) {
		_, err := l.tokens.InitialiseHolding(trx, signers, arguments.Unit, arguments.Owner)
		if nil != err {
			return err
		}
	}

	if 0 == arguments.Amount {
		return nil
	}
	return l.tokens.Mint(trx, signers, arguments.Unit, holding, arguments.Amount)
}
