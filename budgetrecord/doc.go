// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package budgetrecord - the persisted budget and expense records
//
// A budget record is bound one to one to a collection unit and is
// stored at derive("budget", collection unit).  Each expense is
// stored at derive("expense", collection unit, le32(ordinal)) where
// the ordinal is the budget's expense count at the time of creation.
//
// Packed format (all integers Varint64):
//
//   budget:  tag ++ authority ++ collection ++ fiscal year ++ expense count ++ bump
//   expense: tag ++ budget ++ unit ++ expense type ++ approved ++ spent ++ variance ++ index ++ bump
//
// addresses and strings are prefixed by Varint64(length)
package budgetrecord
