// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/bitmark-inc/budgetd/fault"
)

// Signature - detached ed25519 signature over a packed record
//
// JSON and text forms are hex; an empty signature marks a signer that
// has not signed yet
type Signature []byte

// String - hex for the fmt package
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// MarshalText - signature as hex
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - hex to signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	_, err := hex.Decode(sig, s)
	if nil != err {
		return fault.InvalidSignature
	}
	*signature = sig
	return nil
}
