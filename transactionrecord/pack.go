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

// Pack - CreateBudgetCollection
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       signing by the client
func (budget *CreateBudgetCollection) Pack() (Packed, error) {
	if nil == budget.Payer {
		return nil, fault.MissingAuthority
	}
	if err := checkStrings(budget.Name, budget.Symbol, budget.URI); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(CreateBudgetCollectionTag))
	message = appendAddress(message, budget.CollectionUnit)
	message = appendAddress(message, budget.Budget)
	message = util.AppendString(message, budget.Name)
	message = util.AppendString(message, budget.Symbol)
	message = util.AppendString(message, budget.URI)
	message = util.AppendVarint64(message, uint64(budget.FiscalYear))
	message = appendAccount(message, budget.Payer)

	return sign(message, budget.Payer, budget.Signature)
}

// Pack - CreateExpense
//
// signed by the payer then countersigned by the budget authority
func (expense *CreateExpense) Pack() (Packed, error) {
	if nil == expense.Payer || nil == expense.Authority {
		return nil, fault.MissingAuthority
	}
	if err := checkStrings(expense.ExpenseName, expense.ExpenseType, expense.URI); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(CreateExpenseTag))
	message = appendAddress(message, expense.Budget)
	message = appendAddress(message, expense.Expense)
	message = appendAddress(message, expense.Unit)
	message = util.AppendString(message, expense.ExpenseName)
	message = util.AppendString(message, expense.ExpenseType)
	message = util.AppendString(message, expense.URI)
	message = util.AppendVarint64(message, expense.ApprovedAmount)
	message = util.AppendVarint64(message, uint64(expense.VariancePercent))
	message = appendAccount(message, expense.Payer)
	message = appendAccount(message, expense.Authority)

	message, err := sign(message, expense.Payer, expense.Signature)
	if nil != err {
		return message, err
	}
	return sign(message, expense.Authority, expense.Countersignature)
}

// Pack - Spend
//
// signed by the budget authority then countersigned by the treasury
// authority
func (spend *Spend) Pack() (Packed, error) {
	if nil == spend.Authority || nil == spend.TreasuryAuthority {
		return nil, fault.MissingAuthority
	}

	message := util.ToVarint64(uint64(SpendTag))
	message = appendAddress(message, spend.Expense)
	message = appendAddress(message, spend.TreasuryHolding)
	message = appendAddress(message, spend.OperationalHolding)
	message = util.AppendVarint64(message, spend.Amount)
	message = util.AppendVarint64(message, spend.Nonce)
	message = appendAccount(message, spend.Authority)
	message = appendAccount(message, spend.TreasuryAuthority)

	message, err := sign(message, spend.Authority, spend.Signature)
	if nil != err {
		return message, err
	}
	return sign(message, spend.TreasuryAuthority, spend.Countersignature)
}

// Pack - VerifyCollection
func (verify *VerifyCollection) Pack() (Packed, error) {
	if nil == verify.Authority {
		return nil, fault.MissingAuthority
	}

	message := util.ToVarint64(uint64(VerifyCollectionTag))
	message = appendAddress(message, verify.Expense)
	message = appendAccount(message, verify.Authority)

	return sign(message, verify.Authority, verify.Signature)
}

// Pack - Issue
func (issue *Issue) Pack() (Packed, error) {
	if nil == issue.Authority {
		return nil, fault.MissingAuthority
	}

	message := util.ToVarint64(uint64(IssueTag))
	message = appendAddress(message, issue.Unit)
	message = appendAddress(message, issue.Owner)
	message = util.AppendVarint64(message, uint64(issue.Decimals))
	message = util.AppendVarint64(message, issue.Amount)
	message = appendAccount(message, issue.Authority)

	return sign(message, issue.Authority, issue.Signature)
}

// check the signature of the message so far and append it
func sign(message Packed, signer *account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return message, fault.InvalidSignature
	}
	err := signer.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	return util.AppendBytes(message, signature), nil
}

func checkStrings(s ...string) error {
	for _, item := range s {
		if len(item) > maxStringLength {
			return fault.NameTooLong
		}
	}
	return nil
}

// append an address to a buffer
//
// the field is prefixed by Varint64(length)
func appendAddress(buffer Packed, a address.Address) Packed {
	return util.AppendBytes(buffer, a[:])
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, a *account.Account) Packed {
	return util.AppendBytes(buffer, a.Bytes())
}
