// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - 256 bit record addresses
//
// Records are located without a separate index: each address is a
// pure function of a program id, a list of seeds and a one byte bump.
//
//   address = SHA3-256(seed[0] ++ … ++ seed[n] ++ bump ++ program id ++ marker)
//
// The bump is searched downwards from 255 and the first value that
// gives a point that is NOT a valid ed25519 public key is used, so no
// private key can ever sign for a derived address.  Only the program
// owning the namespace can act for it.
//
// Addresses are stored raw (32 bytes) and shown as base58 text.
package address
