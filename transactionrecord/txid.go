// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/budgetd/fault"
)

// TxIdLength - bytes in a transaction id
const TxIdLength = 32

// TxId - SHA3-256 of the complete packed transaction
type TxId [TxIdLength]byte

// MakeTxId - create the id for a packed record
func (record Packed) MakeTxId() TxId {
	return TxId(sha3.Sum256(record))
}

// Bytes - convert a binary id to byte slice
func (txId TxId) Bytes() []byte {
	return txId[:]
}

// String - hex for the fmt package (for %s)
func (txId TxId) String() string {
	return hex.EncodeToString(txId[:])
}

// GoString - hex for the fmt package (for %#v)
func (txId TxId) GoString() string {
	return "<txId:" + hex.EncodeToString(txId[:]) + ">"
}

// MarshalText - convert id to hex text
func (txId TxId) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(txId))
	buffer := make([]byte, size)
	hex.Encode(buffer, txId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to an id
func (txId *TxId) UnmarshalText(s []byte) error {
	if hex.EncodedLen(TxIdLength) != len(s) {
		return fault.NotTransactionPack
	}
	_, err := hex.Decode(txId[:], s)
	return err
}
