// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

// seed layout:
//
//   header      3 bytes
//   network     1 byte   (0x00 budget, 0x01 testing)
//   entropy    16 bytes
//   checksum    4 bytes  first bytes of SHA3-256 over everything before it
var seedHeader = []byte{0x5a, 0xfe, 0x10}

const (
	seedNetworkLive    = 0x00
	seedNetworkTesting = 0x01

	seedEntropyLength  = 16
	seedChecksumLength = 4
	seedLength         = 3 + 1 + seedEntropyLength + seedChecksumLength
)

// NewSeed - random base58 seed for the given network
func NewSeed(testnet bool) (string, error) {
	entropy := make([]byte, seedEntropyLength)
	_, err := rand.Read(entropy)
	if nil != err {
		return "", err
	}
	return encodeSeed(testnet, entropy), nil
}

func encodeSeed(testnet bool, entropy []byte) string {
	network := byte(seedNetworkLive)
	if testnet {
		network = seedNetworkTesting
	}

	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, network)
	seed = append(seed, entropy...)
	digest := sha3.Sum256(seed)
	seed = append(seed, digest[:seedChecksumLength]...)

	return util.ToBase58(seed)
}

// PrivateKeyFromSeed - decode a base58 seed and derive its key pair
func PrivateKeyFromSeed(seedBase58Encoded string) (*PrivateKey, error) {

	seed := util.FromBase58(seedBase58Encoded)
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	n := len(seedHeader)
	if !bytes.Equal(seedHeader, seed[:n]) {
		return nil, fault.InvalidSeedHeader
	}

	testnet := false
	switch seed[n] {
	case seedNetworkLive:
	case seedNetworkTesting:
		testnet = true
	default:
		return nil, fault.CannotDecodeSeed
	}

	// the header binds the key to this seed format
	hash := sha3.NewShake256()
	_, _ = hash.Write(seedHeader)
	_, _ = hash.Write(seed[n+1 : checksumStart])

	ed25519Seed := make([]byte, ed25519.SeedSize)
	_, err := hash.Read(ed25519Seed)
	if nil != err {
		return nil, err
	}

	privateKey := &PrivateKey{
		Test:       testnet,
		PrivateKey: ed25519.NewKeyFromSeed(ed25519Seed),
	}
	return privateKey, nil
}
