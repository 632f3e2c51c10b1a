// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/budgetd/fault"
)

// Access - raw key access for one transaction
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DumpTx() []byte
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Put([]byte, []byte)
}

// AccessData - a batch and its overlay
type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, trx *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: trx,
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyCommitted
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch atomically and end the transaction
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionAlreadyCommitted
	}

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

func (d *AccessData) DumpTx() []byte {
	return d.batch.Dump()
}

// Get - overlay first, then the committed database
//
// a missing key returns nil, nil
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, found := d.cache.Get(string(key))
	if found {
		return val, nil
	}
	val, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return val, err
}

func (d *AccessData) Has(key []byte) (bool, error) {
	val, found := d.cache.Get(string(key))
	if found {
		return nil != val, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Abort - discard all writes
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}
