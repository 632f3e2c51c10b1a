// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	CreateBudgetCollectionTag = TagType(iota) // budget + collection unit
	CreateExpenseTag          = TagType(iota) // expense + expense unit
	SpendTag                  = TagType(iota) // burn expense units, settle
	VerifyCollectionTag       = TagType(iota) // mark expense unit as verified member
	IssueTag                  = TagType(iota) // create and fund a unit holding

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// Transaction - generic transaction interface
type Transaction interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	maxStringLength    = 256
	maxSignatureLength = 1024
	maxAccountLength   = 64
)

// CreateBudgetCollection - mint a collection unit and bind a budget to it
type CreateBudgetCollection struct {
	CollectionUnit address.Address   `json:"collectionUnit"` // base58: fresh unit identity
	Budget         address.Address   `json:"budget"`         // base58: derive("budget", collection unit)
	Name           string            `json:"name"`           // utf-8
	Symbol         string            `json:"symbol"`         // utf-8
	URI            string            `json:"uri"`            // utf-8
	FiscalYear     uint16            `json:"fiscalYear"`     // informational
	Payer          *account.Account  `json:"payer"`          // base58: becomes the budget authority
	Signature      account.Signature `json:"signature"`      // hex: corresponds to payer
}

// CreateExpense - add a spending category to a budget
type CreateExpense struct {
	Budget           address.Address   `json:"budget"`           // base58
	Expense          address.Address   `json:"expense"`          // base58: derived from the current expense count
	Unit             address.Address   `json:"unit"`             // base58: fresh expense unit identity
	ExpenseName      string            `json:"expenseName"`      // utf-8
	ExpenseType      string            `json:"expenseType"`      // utf-8
	URI              string            `json:"uri"`              // utf-8
	ApprovedAmount   uint64            `json:"approvedAmount"`   // cap on cumulative spend
	VariancePercent  uint8             `json:"variancePercent"`  // 0..100
	Payer            *account.Account  `json:"payer"`            // base58
	Authority        *account.Account  `json:"authority"`        // base58: must be the budget authority
	Signature        account.Signature `json:"signature"`        // hex: corresponds to payer
	Countersignature account.Signature `json:"countersignature"` // hex: corresponds to authority
}

// Spend - debit an expense and settle from treasury to operations
type Spend struct {
	Expense            address.Address   `json:"expense"`            // base58
	TreasuryHolding    address.Address   `json:"treasuryHolding"`    // base58: settlement unit source
	OperationalHolding address.Address   `json:"operationalHolding"` // base58: settlement unit destination
	Amount             uint64            `json:"amount"`             // expense units
	Nonce              uint64            `json:"nonce"`              // to allow repeated identical spends
	Authority          *account.Account  `json:"authority"`          // base58: must be the budget authority
	TreasuryAuthority  *account.Account  `json:"treasuryAuthority"`  // base58: owner of the treasury holding
	Signature          account.Signature `json:"signature"`          // hex: corresponds to authority
	Countersignature   account.Signature `json:"countersignature"`   // hex: corresponds to treasury authority
}

// VerifyCollection - confirm an expense unit as a member of its budget collection
type VerifyCollection struct {
	Expense   address.Address   `json:"expense"`   // base58
	Authority *account.Account  `json:"authority"` // base58: must be the budget authority
	Signature account.Signature `json:"signature"` // hex: corresponds to authority
}

// Issue - create a unit and holding if missing, then mint to the holding
//
// used to set up settlement units, treasury and operational holdings
type Issue struct {
	Unit      address.Address   `json:"unit"`      // base58
	Owner     address.Address   `json:"owner"`     // base58: holder of the issued units
	Decimals  uint8             `json:"decimals"`  // only used when the unit is created
	Amount    uint64            `json:"amount"`    // zero just creates the holding
	Authority *account.Account  `json:"authority"` // base58: mint authority of the unit
	Signature account.Signature `json:"signature"` // hex: corresponds to authority
}

// RecordName - name of a transaction, as used for publishing topics
func RecordName(t interface{}) (string, bool) {
	switch t.(type) {
	case *CreateBudgetCollection, CreateBudgetCollection:
		return "budget", true
	case *CreateExpense, CreateExpense:
		return "expense", true
	case *Spend, Spend:
		return "spend", true
	case *VerifyCollection, VerifyCollection:
		return "verify", true
	case *Issue, Issue:
		return "issue", true
	default:
		return "*unknown*", false
	}
}
