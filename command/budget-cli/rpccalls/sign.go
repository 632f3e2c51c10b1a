// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/budgetd/account"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/transactionrecord"
)

// packing a record with a missing signature returns the message that
// signature must cover, so records are signed in the same order as
// the signatures appear in the packed data
func signNext(record transactionrecord.Transaction, key *account.PrivateKey) (account.Signature, error) {
	message, err := record.Pack()
	if nil == err {
		return nil, fault.InvalidSignature
	}
	if 0 == len(message) {
		return nil, err
	}
	return key.Sign(message), nil
}

