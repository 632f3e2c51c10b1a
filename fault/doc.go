// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the ledger, RPC and tools
//
// every error is a single value so callers compare with == and the
// type of the value gives its class, e.g. IsErrLimit(OverBudget)
package fault
