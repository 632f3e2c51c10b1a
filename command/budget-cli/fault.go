// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/budgetd/fault"
)

// command errors - keep in alphabetic order
const (
	ErrIncompatibleOptions   = fault.InvalidError("incompatible options")
	ErrInvalidCount          = fault.InvalidError("invalid count")
	ErrInvalidNetwork        = fault.InvalidError("invalid network")
	ErrInvalidPasswordLength = fault.InvalidError("invalid password length")
	ErrNotPrivateIdentity    = fault.InvalidError("identity has no private key")
	ErrPasswordMismatch      = fault.InvalidError("password mismatch")
	ErrRequiredAddress       = fault.InvalidError("address is required")
	ErrRequiredAmount        = fault.InvalidError("amount is required")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredDescription   = fault.InvalidError("description is required")
	ErrRequiredExpenseType   = fault.InvalidError("expense type is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredName          = fault.InvalidError("name is required")
	ErrRequiredPublisher     = fault.InvalidError("publisher connection is required")
	ErrRequiredRecord        = fault.InvalidError("packed record is required")
	ErrRequiredSymbol        = fault.InvalidError("symbol is required")
)
