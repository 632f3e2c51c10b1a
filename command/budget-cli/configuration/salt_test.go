// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/budgetd/fault"
)

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	assert.Nil(t, err, "wrong MakeSalt")

	text, err := salt.MarshalText()
	assert.Nil(t, err, "wrong MarshalText")
	assert.Equal(t, salt.String(), string(text), "wrong text")

	var decoded Salt
	err = decoded.UnmarshalText(text)
	assert.Nil(t, err, "wrong UnmarshalText")
	assert.Equal(t, *salt, decoded, "wrong salt")

	err = decoded.UnmarshalText([]byte("0102"))
	assert.Equal(t, fault.InvalidSeedLength, err, "wrong error")
}

func TestEncryptData(t *testing.T) {
	var key [32]byte
	copy(key[:], "0123456789abcdef0123456789abcdef")

	data := "this message is long enough to be encrypted"

	encrypted, err := encryptData(data, &key)
	assert.Nil(t, err, "wrong encryptData")

	decrypted, err := decryptData(encrypted, &key)
	assert.Nil(t, err, "wrong decryptData")
	assert.Equal(t, data, decrypted, "wrong data")

	key[0] ^= 0xff
	_, err = decryptData(encrypted, &key)
	assert.Equal(t, fault.CryptoFailed, err, "wrong key accepted")

	_, err = encryptData("short", &key)
	assert.Equal(t, fault.CryptoFailed, err, "short data accepted")
}
