// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/storage"
)

// ProgramId - owner of the holding address namespace
var ProgramId = address.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

// MetadataProgramId - the only metadata program the ledger will call
var MetadataProgramId = address.MustFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

// metadata limits
const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxURILength    = 200
)

// Service - unit issuance and movement
type Service interface {
	InitialiseMint(trx storage.Transaction, signers Signers, unit address.Address, decimals uint8, mintAuthority address.Address, freezeAuthority address.Address) error
	InitialiseHolding(trx storage.Transaction, signers Signers, unit address.Address, owner address.Address) (address.Address, error)
	Mint(trx storage.Transaction, signers Signers, unit address.Address, holding address.Address, amount uint64) error
	Burn(trx storage.Transaction, signers Signers, unit address.Address, holding address.Address, amount uint64) error
	Transfer(trx storage.Transaction, signers Signers, source address.Address, destination address.Address, amount uint64) error
	Balance(reader storage.Reader, holding address.Address) (uint64, error)
	GetHolding(reader storage.Reader, holding address.Address) (*HoldingRecord, error)
}

// Metadata - names, editions and collection membership of units
type Metadata interface {
	ProgramId() address.Address
	CreateMetadata(trx storage.Transaction, signers Signers, arguments MetadataArguments) error
	CreateMasterEdition(trx storage.Transaction, signers Signers, unit address.Address, updateAuthority address.Address, maxSupply uint64) error
	VerifyCollection(trx storage.Transaction, signers Signers, unit address.Address, collectionUnit address.Address, collectionAuthority address.Address) error
}

// MetadataArguments - the fields of a new metadata record
type MetadataArguments struct {
	Unit            address.Address
	MintAuthority   address.Address
	UpdateAuthority address.Address
	Name            string
	Symbol          string
	URI             string
	Mutable         bool
	Collection      address.Address // address.Nil if not a collection member
}

// Signers - the addresses that authorised the current operation
//
// includes derived addresses the caller signs for
type Signers map[address.Address]struct{}

// NewSigners - create a signer set
func NewSigners(addresses ...address.Address) Signers {
	s := make(Signers, len(addresses))
	for _, a := range addresses {
		s[a] = struct{}{}
	}
	return s
}

// With - copy of the set with extra signers
func (s Signers) With(addresses ...address.Address) Signers {
	n := make(Signers, len(s)+len(addresses))
	for a := range s {
		n[a] = struct{}{}
	}
	for _, a := range addresses {
		n[a] = struct{}{}
	}
	return n
}

// Has - true if the address authorised the operation
func (s Signers) Has(a address.Address) bool {
	_, ok := s[a]
	return ok
}

// HoldingAddress - the associated holding of an owner for a unit
func HoldingAddress(owner address.Address, unit address.Address) (address.Address, error) {
	a, _, err := address.Find(ProgramId, holdingSeed, owner[:], unit[:])
	return a, err
}

// MetadataAddress - location of the metadata of a unit
func MetadataAddress(unit address.Address) (address.Address, error) {
	a, _, err := address.Find(MetadataProgramId, metadataSeed, MetadataProgramId[:], unit[:])
	return a, err
}

// EditionAddress - location of the master edition of a unit
//
// becomes the mint and freeze authority of the unit
func EditionAddress(unit address.Address) (address.Address, error) {
	a, _, err := address.Find(MetadataProgramId, metadataSeed, MetadataProgramId[:], unit[:], editionSeed)
	return a, err
}

var (
	holdingSeed  = []byte("holding")
	metadataSeed = []byte("metadata")
	editionSeed  = []byte("edition")
)
