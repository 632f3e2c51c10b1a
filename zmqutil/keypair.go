// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	publicLength  = 32
	privateLength = 32
)

// MakeKeyPair - create a new curve key pair and write the halves to
// separate files
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) {
		return fault.KeyFileAlreadyExists
	}
	if util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	// Z85 from the library, stored as tagged hex
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicKey = taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateKey = taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	err = ioutil.WriteFile(publicKeyFileName, []byte(publicKey), 0666)
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(privateKeyFileName, []byte(privateKey), 0600)
	if nil != err {
		_ = os.Remove(publicKeyFileName)
		return err
	}
	return nil
}

// ReadPublicKeyFile - read a tagged public key file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPublicKey(string(data))
}

// ReadPrivateKeyFile - read a tagged private key file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPrivateKey(string(data))
}

// ReadPublicKey - decode a tagged public key to its 32 bytes
func ReadPublicKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if private {
		return nil, fault.InvalidPublicKeyFile
	}
	return data, nil
}

// ReadPrivateKey - decode a tagged private key to its 32 bytes
func ReadPrivateKey(key string) ([]byte, error) {
	data, private, err := ParseKey(key)
	if nil != err {
		return nil, err
	}
	if !private {
		return nil, fault.InvalidPrivateKeyFile
	}
	return data, nil
}

// ParseKey - decode either kind of tagged key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	switch {
	case strings.HasPrefix(s, taggedPrivate):
		h, err := hex.DecodeString(s[len(taggedPrivate):])
		if nil != err {
			return nil, false, err
		}
		if privateLength != len(h) {
			return nil, false, fault.InvalidPrivateKeyFile
		}
		return h, true, nil

	case strings.HasPrefix(s, taggedPublic):
		h, err := hex.DecodeString(s[len(taggedPublic):])
		if nil != err {
			return nil, false, err
		}
		if publicLength != len(h) {
			return nil, false, fault.InvalidPublicKeyFile
		}
		return h, false, nil
	}
	return nil, false, fault.InvalidPublicKeyFile
}
