// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the budget and expense state machine
//
// Each operation is applied as one storage transaction: the addresses
// it writes are try-locked first, every check runs before the first
// write, token and metadata service calls share the same transaction
// and the whole unit is committed or aborted together.
//
// A budget owns a collection unit with a master edition.  Expenses are
// numbered by the budget's expense count; the n-th expense lives at
// the address derived from the collection unit and ordinal n-1, so a
// creator that loses a race for an ordinal gets StaleExpenseOrdinal
// and must re-derive.  A spend burns expense units and settles
// amount * 1000000 of the settlement unit from treasury to
// operations.
package ledger
