// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - atomic group of writes across pools
type Transaction interface {
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
}

// TransactionData - Transaction over one Access
type TransactionData struct {
	access Access
}

// NewDBTransaction - open a new transaction
//
// each call has its own batch; nothing is visible to other
// transactions until Commit
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.NotInitialised
	}
	if poolData.readOnly {
		return nil, fault.NotAvailableInReadOnlyMode
	}

	access := newDA(poolData.db, new(leveldb.Batch), newCache())
	err := access.Begin()
	if nil != err {
		return nil, err
	}
	return &TransactionData{
		access: access,
	}, nil
}

func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	t.access.Put(handle.prefixKey(key), value)
}

func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	t.access.Delete(handle.prefixKey(key))
}

// Get - read a value, including any uncommitted write
//
// returns nil if the key does not exist
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(handle.prefixKey(key))
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	found, err := t.access.Has(handle.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return found
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionData) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return fault.NotInitialised
	}
	return t.access.Commit()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}
