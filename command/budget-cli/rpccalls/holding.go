// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/rpc/holding"
	"github.com/bitmark-inc/budgetd/token"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// IssueData - the parameters for an issue
type IssueData struct {
	Unit      address.Address
	Owner     address.Address
	Decimals  uint8
	Amount    uint64
	Authority *account.PrivateKey
}

// Issue - mint units to the holding of an owner
func (client *Client) Issue(data *IssueData) (*holding.IssueReply, error) {

	record := &transactionrecord.Issue{
		Unit:      data.Unit,
		Owner:     data.Owner,
		Decimals:  data.Decimals,
		Amount:    data.Amount,
		Authority: data.Authority.Account(),
	}

	var err error
	record.Signature, err = signNext(record, data.Authority)
	if nil != err {
		return nil, err
	}
	if _, err := record.Pack(); nil != err {
		return nil, err
	}

	var reply holding.IssueReply
	err = client.call("Holding.Issue", record, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - read a holding
func (client *Client) Balance(h address.Address) (*token.HoldingRecord, error) {
	arguments := holding.BalanceArguments{
		Holding: h,
	}
	var reply holding.BalanceReply
	err := client.call("Holding.Balance", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	if nil == reply.Holding {
		return nil, fault.HoldingNotFound
	}
	return reply.Holding, nil
}
