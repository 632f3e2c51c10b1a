// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package budgetrecord

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

// TagType - type code for packed records
type TagType uint64

// enumerate the possible record tags
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	BudgetTag  = TagType(iota)
	ExpenseTag = TagType(iota)

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Pack - Varint64(tag) followed by fields in order as struct above
func (budget *BudgetRecord) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(BudgetTag))
	message = util.AppendBytes(message, budget.Authority[:])
	message = util.AppendBytes(message, budget.CollectionUnit[:])
	message = util.AppendVarint64(message, uint64(budget.FiscalYear))
	message = util.AppendVarint64(message, uint64(budget.ExpenseCount))
	message = util.AppendVarint64(message, uint64(budget.Bump))
	return message, nil
}

// Pack - Varint64(tag) followed by fields in order as struct above
func (expense *ExpenseRecord) Pack() (Packed, error) {
	if len(expense.ExpenseType) > MaxExpenseTypeLength {
		return nil, fault.ExpenseTypeTooLong
	}
	if expense.VariancePercent > MaxVariancePercent {
		return nil, fault.InvalidVariance
	}
	if 0 == expense.ApprovedAmount {
		return nil, fault.InvalidAmount
	}

	message := util.ToVarint64(uint64(ExpenseTag))
	message = util.AppendBytes(message, expense.Budget[:])
	message = util.AppendBytes(message, expense.Unit[:])
	message = util.AppendString(message, expense.ExpenseType)
	message = util.AppendVarint64(message, expense.ApprovedAmount)
	message = util.AppendVarint64(message, expense.Spent)
	message = util.AppendVarint64(message, uint64(expense.VariancePercent))
	message = util.AppendVarint64(message, uint64(expense.Index))
	message = util.AppendVarint64(message, uint64(expense.Bump))
	return message, nil
}

// Unpack - turn a byte slice into a record
//
// returns:
//   pointer to the record
//   error
func (record Packed) Unpack() (interface{}, error) {

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, fault.NotBudgetRecordPack
	}

	var err error
	switch TagType(recordType) {

	case BudgetTag:
		r := &BudgetRecord{}

		r.Authority, n, err = readAddress(record, n)
		if nil != err {
			return nil, err
		}
		r.CollectionUnit, n, err = readAddress(record, n)
		if nil != err {
			return nil, err
		}

		var v uint64
		v, n, err = readBounded(record, n, 0xffff)
		if nil != err {
			return nil, err
		}
		r.FiscalYear = uint16(v)

		v, n, err = readBounded(record, n, 0xffffffff)
		if nil != err {
			return nil, err
		}
		r.ExpenseCount = uint32(v)

		v, n, err = readBounded(record, n, 0xff)
		if nil != err {
			return nil, err
		}
		r.Bump = uint8(v)

		if n != len(record) {
			return nil, fault.NotBudgetRecordPack
		}
		return r, nil

	case ExpenseTag:
		r := &ExpenseRecord{}

		r.Budget, n, err = readAddress(record, n)
		if nil != err {
			return nil, err
		}
		r.Unit, n, err = readAddress(record, n)
		if nil != err {
			return nil, err
		}

		var b []byte
		b, n, err = util.ReadBytes(record, n, 0, MaxExpenseTypeLength)
		if nil != err {
			return nil, err
		}
		r.ExpenseType = string(b)

		r.ApprovedAmount, n, err = util.ReadVarint64(record, n)
		if nil != err {
			return nil, err
		}
		r.Spent, n, err = util.ReadVarint64(record, n)
		if nil != err {
			return nil, err
		}

		var v uint64
		v, n, err = readBounded(record, n, MaxVariancePercent)
		if nil != err {
			return nil, err
		}
		r.VariancePercent = uint8(v)

		v, n, err = readBounded(record, n, 0xffffffff)
		if nil != err {
			return nil, err
		}
		r.Index = uint32(v)

		v, n, err = readBounded(record, n, 0xff)
		if nil != err {
			return nil, err
		}
		r.Bump = uint8(v)

		if n != len(record) {
			return nil, fault.NotBudgetRecordPack
		}
		return r, nil

	default:
		return nil, fault.NotBudgetRecordPack
	}
}

// UnpackBudget - unpack a record that must be a budget
func (record Packed) UnpackBudget() (*BudgetRecord, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	budget, ok := r.(*BudgetRecord)
	if !ok {
		return nil, fault.NotBudgetRecordPack
	}
	return budget, nil
}

// UnpackExpense - unpack a record that must be an expense
func (record Packed) UnpackExpense() (*ExpenseRecord, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	expense, ok := r.(*ExpenseRecord)
	if !ok {
		return nil, fault.NotBudgetRecordPack
	}
	return expense, nil
}

func readAddress(record Packed, n int) (address.Address, int, error) {
	b, n, err := util.ReadBytes(record, n, address.Length-1, address.Length)
	if nil != err {
		return address.Nil, 0, err
	}
	a, err := address.FromBytes(b)
	return a, n, err
}

func readBounded(record Packed, n int, maximum uint64) (uint64, int, error) {
	v, n, err := util.ReadVarint64(record, n)
	if nil != err {
		return 0, 0, err
	}
	if v > maximum {
		return 0, 0, fault.InvalidCount
	}
	return v, n, nil
}
