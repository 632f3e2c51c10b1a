// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/messagebus"
	"github.com/bitmark-inc/budgetd/storage"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// Configuration - ledger parameters from the daemon configuration
type Configuration struct {
	MetadataProgram address.Address // must equal token.MetadataProgramId
	SettlementUnit  address.Address // unit moved by spends, Nil accepts any unit
	Testnet         bool
}

// Ledger - applies signed records to the store
type Ledger struct {
	log             *logger.L
	tokens          token.Service
	metadata        token.Metadata
	metadataProgram address.Address
	settlementUnit  address.Address
	testnet         bool
	locks           *lockSet
}

// New - create a ledger over the initialised storage pools
func New(log *logger.L, tokens token.Service, metadata token.Metadata, configuration *Configuration) *Ledger {
	return &Ledger{
		log:             log,
		tokens:          tokens,
		metadata:        metadata,
		metadataProgram: configuration.MetadataProgram,
		settlementUnit:  configuration.SettlementUnit,
		testnet:         configuration.Testnet,
		locks:           newLockSet(),
	}
}

// IsTesting - true if the ledger only accepts test network accounts
func (l *Ledger) IsTesting() bool {
	return l.testnet
}

// SettlementUnit - the configured settlement unit
func (l *Ledger) SettlementUnit() address.Address {
	return l.settlementUnit
}

// the metadata service must be the pinned program
func (l *Ledger) checkMetadataProgram() error {
	if l.metadataProgram != token.MetadataProgramId || l.metadata.ProgramId() != token.MetadataProgramId {
		return fault.IncorrectProgramId
	}
	return nil
}

func (l *Ledger) checkNetwork(accounts ...*account.Account) error {
	for _, a := range accounts {
		if nil == a {
			return fault.MissingAuthority
		}
		if a.IsTesting() != l.testnet {
			return fault.WrongNetworkForPublicKey
		}
	}
	return nil
}

// apply - run f as one atomic unit and record the transaction
//
// the addresses must cover every record f writes
func (l *Ledger) apply(packed transactionrecord.Packed, name string, addresses []address.Address, f func(trx storage.Transaction) error) (transactionrecord.TxId, error) {

	txId := packed.MakeTxId()

	unlock, err := l.locks.tryLock(addresses...)
	if nil != err {
		l.log.Warnf("%s: %s  error: %s", name, txId, err)
		return txId, err
	}
	defer unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return txId, err
	}

	if trx.Has(storage.Pool.Transactions, txId[:]) {
		trx.Abort()
		return txId, fault.TransactionAlreadyExists
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		l.log.Warnf("%s: %s  rejected: %s", name, txId, err)
		return txId, err
	}

	trx.Put(storage.Pool.Transactions, txId[:], packed)

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("%s: %s  commit error: %s", name, txId, err)
		return txId, err
	}

	l.log.Infof("%s: %s  committed", name, txId)
	messagebus.Bus.Broadcast.Send(name, packed)

	return txId, nil
}

// read a budget through any reader
func (l *Ledger) readBudget(reader storage.Reader, budgetAddress address.Address) (*budgetrecord.BudgetRecord, error) {
	packed := reader.Get(storage.Pool.Budgets, budgetAddress[:])
	if nil == packed {
		return nil, fault.BudgetNotFound
	}
	budget, err := budgetrecord.Packed(packed).UnpackBudget()
	if nil != err {
		l.log.Criticalf("budget: %s  unpack error: %s", budgetAddress, err)
		return nil, err
	}
	err = budget.VerifyAddress(budgetAddress)
	if nil != err {
		l.log.Criticalf("budget: %s  address error: %s", budgetAddress, err)
		return nil, err
	}
	return budget, nil
}

// read an expense and its budget through any reader
func (l *Ledger) readExpense(reader storage.Reader, expenseAddress address.Address) (*budgetrecord.ExpenseRecord, *budgetrecord.BudgetRecord, error) {
	packed := reader.Get(storage.Pool.Expenses, expenseAddress[:])
	if nil == packed {
		return nil, nil, fault.ExpenseNotFound
	}
	expense, err := budgetrecord.Packed(packed).UnpackExpense()
	if nil != err {
		l.log.Criticalf("expense: %s  unpack error: %s", expenseAddress, err)
		return nil, nil, err
	}
	budget, err := l.readBudget(reader, expense.Budget)
	if nil != err {
		return nil, nil, err
	}
	err = expense.VerifyAddress(expenseAddress, budget.CollectionUnit)
	if nil != err {
		l.log.Criticalf("expense: %s  address error: %s", expenseAddress, err)
		return nil, nil, err
	}
	return expense, budget, nil
}

func writeRecord(trx storage.Transaction, pool *storage.PoolHandle, key address.Address, record interface {
	Pack() (budgetrecord.Packed, error)
}) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	trx.Put(pool, key[:], packed)
	return nil
}
