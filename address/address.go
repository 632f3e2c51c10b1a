// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

// Length - number of bytes in an address
const Length = 32

// limits on seeds
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32
)

// appended to every derivation so the hash cannot collide with
// other uses of SHA3 over the same seeds
var derivedMarker = []byte("budgetd derived address")

// Address - a 32 byte identity or derived record location
type Address [Length]byte

// Nil - the all zero address
var Nil Address

// FromBytes - convert a byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.NotAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	return FromBytes(util.FromBase58(s))
}

// MustFromBase58 - for package level constants only
func MustFromBase58(s string) Address {
	a, err := FromBase58(s)
	if nil != err {
		panic("invalid address constant: " + s)
	}
	return a
}

// IsNil - true for the all zero address
func (a Address) IsNil() bool {
	return Nil == a
}

// Bytes - byte slice copy of the address
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// String - base58 text
func (a Address) String() string {
	return util.ToBase58(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + a.String() + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	b, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = b
	return nil
}

// IsOnCurve - true if the address is a valid ed25519 public key
func (a Address) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}

// Uint32Seed - little endian seed used for ordinals
func Uint32Seed(n uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, n)
	return b
}

// Create - compute the address for one particular bump
//
// fails if the result lies on the curve
func Create(programId Address, bump uint8, seeds ...[]byte) (Address, error) {
	if len(seeds) > MaximumSeeds {
		return Nil, fault.InvalidCount
	}

	h := sha3.New256()
	for _, s := range seeds {
		if len(s) > MaximumSeedLength {
			return Nil, fault.InvalidCount
		}
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(programId[:])
	h.Write(derivedMarker)

	a := Address{}
	copy(a[:], h.Sum(nil))
	if a.IsOnCurve() {
		return Nil, fault.DerivedAddressNotFound
	}
	return a, nil
}

// Find - search for the highest bump giving an off curve address
func Find(programId Address, seeds ...[]byte) (Address, uint8, error) {
	for bump := 255; bump >= 0; bump -= 1 {
		a, err := Create(programId, uint8(bump), seeds...)
		if nil == err {
			return a, uint8(bump), nil
		}
		if fault.DerivedAddressNotFound != err {
			return Nil, 0, err
		}
	}
	return Nil, 0, fault.DerivedAddressNotFound
}

// Verify - re-derive and compare with an address obtained elsewhere
func Verify(expected Address, programId Address, bump uint8, seeds ...[]byte) error {
	a, err := Create(programId, bump, seeds...)
	if nil != err {
		return err
	}
	if a != expected {
		return fault.IncorrectAddress
	}
	return nil
}
