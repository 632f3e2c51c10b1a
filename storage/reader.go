// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Reader - read access to pools
//
// a Transaction is a Reader that also sees its own uncommitted writes
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
}

// Committed - Reader over committed data only
var Committed Reader = committed{}

type committed struct{}

func (committed) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (committed) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}
