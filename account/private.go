// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"
)

// PrivateKey - an ed25519 private key with its network flag
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - fresh random key, used for one time unit identities
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(nil)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// IsTesting - return whether the private key is in test mode or not
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.Test
}

// KeyType - key type code (see enumeration in account.go)
func (privateKey *PrivateKey) KeyType() int {
	return ED25519
}

// Account - return the corresponding account
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		Test:      privateKey.Test,
		PublicKey: copyKey(privateKey.PrivateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:]),
	}
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.PrivateKey[:]
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}
