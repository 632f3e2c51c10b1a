// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring budgetd services
//
// the same services are available over raw TLS connections and as
// POST /budgetd/rpc on the HTTPS server, which also offers read only
// GET queries for budgets and expenses
//
// standard golang RPC services can be used on the client side to
// access these services
package rpc
