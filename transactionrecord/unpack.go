// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// returns:
//   pointer to the record
//   number of bytes consumed
//   error
//
// all signatures are verified
func (record Packed) Unpack(testnet bool) (Transaction, int, error) {

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.NotTransactionPack
	}

	r := reader{
		record:  record,
		n:       n,
		testnet: testnet,
	}

	var t Transaction

	switch TagType(recordType) {

	case CreateBudgetCollectionTag:
		c := &CreateBudgetCollection{}
		c.CollectionUnit = r.address()
		c.Budget = r.address()
		c.Name = r.string()
		c.Symbol = r.string()
		c.URI = r.string()
		c.FiscalYear = uint16(r.bounded(0xffff))
		c.Payer = r.account()
		c.Signature = r.signature(c.Payer)
		t = c

	case CreateExpenseTag:
		c := &CreateExpense{}
		c.Budget = r.address()
		c.Expense = r.address()
		c.Unit = r.address()
		c.ExpenseName = r.string()
		c.ExpenseType = r.string()
		c.URI = r.string()
		c.ApprovedAmount = r.varint()
		c.VariancePercent = uint8(r.bounded(0xff))
		c.Payer = r.account()
		c.Authority = r.account()
		c.Signature = r.signature(c.Payer)
		c.Countersignature = r.signature(c.Authority)
		t = c

	case SpendTag:
		s := &Spend{}
		s.Expense = r.address()
		s.TreasuryHolding = r.address()
		s.OperationalHolding = r.address()
		s.Amount = r.varint()
		s.Nonce = r.varint()
		s.Authority = r.account()
		s.TreasuryAuthority = r.account()
		s.Signature = r.signature(s.Authority)
		s.Countersignature = r.signature(s.TreasuryAuthority)
		t = s

	case VerifyCollectionTag:
		v := &VerifyCollection{}
		v.Expense = r.address()
		v.Authority = r.account()
		v.Signature = r.signature(v.Authority)
		t = v

	case IssueTag:
		i := &Issue{}
		i.Unit = r.address()
		i.Owner = r.address()
		i.Decimals = uint8(r.bounded(0xff))
		i.Amount = r.varint()
		i.Authority = r.account()
		i.Signature = r.signature(i.Authority)
		t = i

	default:
		return nil, 0, fault.NotTransactionPack
	}

	if nil != r.err {
		return nil, 0, r.err
	}
	return t, r.n, nil
}

// sequential field reader, stops at the first error
type reader struct {
	record  Packed
	n       int
	testnet bool
	err     error
}

func (r *reader) bytes(minimum int, maximum int) []byte {
	if nil != r.err {
		return nil
	}
	b, n, err := util.ReadBytes(r.record, r.n, minimum, maximum)
	if nil != err {
		r.err = err
		return nil
	}
	r.n = n
	return b
}

func (r *reader) varint() uint64 {
	if nil != r.err {
		return 0
	}
	v, n, err := util.ReadVarint64(r.record, r.n)
	if nil != err {
		r.err = err
		return 0
	}
	r.n = n
	return v
}

func (r *reader) bounded(maximum uint64) uint64 {
	v := r.varint()
	if nil == r.err && v > maximum {
		r.err = fault.InvalidCount
		return 0
	}
	return v
}

func (r *reader) string() string {
	return string(r.bytes(0, maxStringLength))
}

func (r *reader) address() address.Address {
	b := r.bytes(1, address.Length)
	if nil != r.err {
		return address.Nil
	}
	a, err := address.FromBytes(b)
	if nil != err {
		r.err = err
	}
	return a
}

func (r *reader) account() *account.Account {
	b := r.bytes(1, maxAccountLength)
	if nil != r.err {
		return nil
	}
	a, err := account.FromBytes(b)
	if nil != err {
		r.err = err
		return nil
	}
	if a.IsTesting() != r.testnet {
		r.err = fault.WrongNetworkForPublicKey
		return nil
	}
	return a
}

// the signature covers everything before it, including earlier
// signatures
func (r *reader) signature(signer *account.Account) account.Signature {
	if nil != r.err {
		return nil
	}
	message := r.record[:r.n]
	b := r.bytes(1, maxSignatureLength)
	if nil != r.err {
		return nil
	}
	signature := account.Signature(b)
	err := signer.CheckSignature(message, signature)
	if nil != err {
		r.err = err
		return nil
	}
	return signature
}
