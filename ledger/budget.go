// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// CreateBudgetCollection - mint a collection unit and bind a new budget to it
//
// the payer becomes the budget authority
func (l *Ledger) CreateBudgetCollection(arguments *transactionrecord.CreateBudgetCollection) (transactionrecord.TxId, error) {

	err := l.checkNetwork(arguments.Payer)
	if nil != err {
		return transactionrecord.TxId{}, err
	}

	// also verifies the signature
	packed, err := arguments.Pack()
	if nil != err {
		return transactionrecord.TxId{}, err
	}

	l.log.Infof("create budget: %s  collection unit: %s", arguments.Budget, arguments.CollectionUnit)

	locks := []address.Address{arguments.Budget, arguments.CollectionUnit}
	return l.apply(packed, "budget", locks, func(trx storage.Transaction) error {
		return l.createBudgetCollection(trx, arguments)
	})
}

func (l *Ledger) createBudgetCollection(trx storage.Transaction, arguments *transactionrecord.CreateBudgetCollection) error {

	err := l.checkMetadataProgram()
	if nil != err {
		return err
	}

	budgetAddress, bump, err := budgetrecord.BudgetAddress(arguments.CollectionUnit)
	if nil != err {
		return err
	}
	l.log.Debugf("derived budget: %s  bump: %d", budgetAddress, bump)
	if budgetAddress != arguments.Budget {
		return fault.IncorrectAddress
	}
	if trx.Has(storage.Pool.Budgets, budgetAddress[:]) {
		return fault.BudgetAlreadyExists
	}

	unit := arguments.CollectionUnit
	payer := arguments.Payer.Address()
	signers := token.NewSigners(payer)

	err = l.tokens.InitialiseMint(trx, signers, unit, 0, payer, payer)
	if nil != err {
		return err
	}
	holding, err := l.tokens.InitialiseHolding(trx, signers, unit, payer)
	if nil != err {
		return err
	}
	err = l.tokens.Mint(trx, signers, unit, holding, 1)
	if nil != err {
		return err
	}

	err = l.metadata.CreateMetadata(trx, signers, token.MetadataArguments{
		Unit:            unit,
		MintAuthority:   payer,
		UpdateAuthority: payer,
		Name:            arguments.Name,
		Symbol:          arguments.Symbol,
		URI:             arguments.URI,
		Mutable:         true,
		Collection:      address.Nil,
	})
	if nil != err {
		return err
	}

	// non printable
	err = l.metadata.CreateMasterEdition(trx, signers, unit, payer, 0)
	if nil != err {
		return err
	}

	budget := &budgetrecord.BudgetRecord{
		Authority:      payer,
		CollectionUnit: unit,
		FiscalYear:     arguments.FiscalYear,
		ExpenseCount:   0,
		Bump:           bump,
	}
	return writeRecord(trx, storage.Pool.Budgets, budgetAddress, budget)
}
