// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for committed transactions
//
// the ledger sends each committed record to Bus.Broadcast and every
// listener (publisher, tests) receives its own copy
package messagebus
