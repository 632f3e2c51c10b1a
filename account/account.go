// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype, never valid for signing
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an ed25519 signing identity
//
// the text form carries a key variant byte (algorithm and network)
// and a four byte SHA3 checksum; the ledger records store only the
// raw 32 byte public key as an address.Address
type Account struct {
	Test      bool
	PublicKey ed25519.PublicKey
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	// Decode the account
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	keyVariantLength, isTest, err := parseKeyVariant(accountDecoded)
	if nil != err {
		return nil, err
	}

	// Compute key length
	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	// Checksum
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if keyLength != ed25519.PublicKeySize {
		return nil, fault.InvalidKeyLength
	}
	return &Account{
		Test:      isTest,
		PublicKey: copyKey(accountDecoded[keyVariantLength:checksumStart]),
	}, nil
}

// FromBytes - convert a key variant prefixed buffer to an account
func FromBytes(accountBytes []byte) (*Account, error) {

	keyVariantLength, isTest, err := parseKeyVariant(accountBytes)
	if nil != err {
		return nil, err
	}

	// Compute key length
	keyLength := len(accountBytes) - keyVariantLength
	if keyLength != ed25519.PublicKeySize {
		return nil, fault.InvalidKeyLength
	}

	return &Account{
		Test:      isTest,
		PublicKey: copyKey(accountBytes[keyVariantLength:]),
	}, nil
}

// FromAddress - account for an address that is a public key
func FromAddress(a address.Address, test bool) (*Account, error) {
	if !a.IsOnCurve() {
		return nil, fault.NotPublicKey
	}
	return &Account{
		Test:      test,
		PublicKey: copyKey(a[:]),
	}, nil
}

func parseKeyVariant(buffer []byte) (int, bool, error) {

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(buffer)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return 0, false, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit || ED25519 != keyAlgorithm {
		return 0, false, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	return keyVariantLength, isTest, nil
}

func copyKey(key []byte) ed25519.PublicKey {
	k := make([]byte, len(key))
	copy(k, key)
	return k
}

// KeyType - key type code (see enumeration above)
func (account *Account) KeyType() int {
	return ED25519
}

// Address - the raw 32 byte public key
func (account *Account) Address() address.Address {
	a, _ := address.FromBytes(account.PublicKey)
	return a
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// IsZero - true if the public key is all zero bytes
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {

	if ed25519.SignatureSize != len(signature) || ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// IsTesting - return whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
