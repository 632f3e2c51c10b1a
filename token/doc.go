// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - fungible unit and metadata services
//
// The budget ledger delegates unit issuance to two services: a unit
// (mint/holding) service and a metadata service that attaches names
// and collection membership to units.  Both receive the open storage
// transaction so that their writes commit or abort together with the
// caller's own records.
//
// Ledger is the in-process implementation of both, storing its
// records in the Mints, Holdings, Metadata and Editions pools.
package token
