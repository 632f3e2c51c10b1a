// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/budgetrecord"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/storage"
)

// Ledger - in-process unit and metadata service
type Ledger struct {
	log *logger.L
}

// NewLedger - create the in-process service
func NewLedger(log *logger.L) *Ledger {
	return &Ledger{
		log: log,
	}
}

// ProgramId - the metadata program this service implements
func (l *Ledger) ProgramId() address.Address {
	return MetadataProgramId
}

// InitialiseMint - create a new unit type with zero supply
func (l *Ledger) InitialiseMint(trx storage.Transaction, signers Signers, unit address.Address, decimals uint8, mintAuthority address.Address, freezeAuthority address.Address) error {
	if unit.IsNil() || mintAuthority.IsNil() {
		return fault.MissingParameters
	}
	if trx.Has(storage.Pool.Mints, unit[:]) {
		return fault.MintAlreadyExists
	}

	mint := &MintRecord{
		Decimals:        decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
	}
	trx.Put(storage.Pool.Mints, unit[:], mint.pack())

	l.log.Debugf("mint: %s  decimals: %d  authority: %s", unit, decimals, mintAuthority)
	return nil
}

// InitialiseHolding - create the associated holding of an owner
func (l *Ledger) InitialiseHolding(trx storage.Transaction, signers Signers, unit address.Address, owner address.Address) (address.Address, error) {
	if !trx.Has(storage.Pool.Mints, unit[:]) {
		return address.Nil, fault.MintNotFound
	}

	holding, err := HoldingAddress(owner, unit)
	if nil != err {
		return address.Nil, err
	}
	if trx.Has(storage.Pool.Holdings, holding[:]) {
		return address.Nil, fault.HoldingAlreadyExists
	}

	record := &HoldingRecord{
		Unit:  unit,
		Owner: owner,
	}
	trx.Put(storage.Pool.Holdings, holding[:], record.pack())

	l.log.Debugf("holding: %s  unit: %s  owner: %s", holding, unit, owner)
	return holding, nil
}

// Mint - increase supply, crediting a holding
//
// the mint authority must be a signer
func (l *Ledger) Mint(trx storage.Transaction, signers Signers, unit address.Address, holding address.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	mint, err := l.GetMint(trx, unit)
	if nil != err {
		return err
	}
	if !signers.Has(mint.MintAuthority) {
		return fault.Unauthorised
	}

	h, err := l.GetHolding(trx, holding)
	if nil != err {
		return err
	}
	if h.Unit != unit {
		return fault.HoldingMismatch
	}

	supply, err := budgetrecord.CheckedAdd(mint.Supply, amount)
	if nil != err {
		return fault.SupplyOverflow
	}
	balance, err := budgetrecord.CheckedAdd(h.Balance, amount)
	if nil != err {
		return fault.SupplyOverflow
	}

	mint.Supply = supply
	h.Balance = balance
	trx.Put(storage.Pool.Mints, unit[:], mint.pack())
	trx.Put(storage.Pool.Holdings, holding[:], h.pack())

	l.log.Debugf("mint: %s  amount: %d  to: %s", unit, amount, holding)
	return nil
}

// Burn - decrease supply, debiting a holding
//
// the holding owner must be a signer
func (l *Ledger) Burn(trx storage.Transaction, signers Signers, unit address.Address, holding address.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	mint, err := l.GetMint(trx, unit)
	if nil != err {
		return err
	}
	h, err := l.GetHolding(trx, holding)
	if nil != err {
		return err
	}
	if h.Unit != unit {
		return fault.HoldingMismatch
	}
	if !signers.Has(h.Owner) {
		return fault.Unauthorised
	}
	if h.Balance < amount {
		return fault.InsufficientFunds
	}

	// supply is at least the sum of all balances
	mint.Supply -= amount
	h.Balance -= amount
	trx.Put(storage.Pool.Mints, unit[:], mint.pack())
	trx.Put(storage.Pool.Holdings, holding[:], h.pack())

	l.log.Debugf("burn: %s  amount: %d  from: %s", unit, amount, holding)
	return nil
}

// Transfer - move units between two holdings of the same unit
//
// the source owner must be a signer
func (l *Ledger) Transfer(trx storage.Transaction, signers Signers, source address.Address, destination address.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	from, err := l.GetHolding(trx, source)
	if nil != err {
		return err
	}
	to, err := l.GetHolding(trx, destination)
	if nil != err {
		return err
	}
	if from.Unit != to.Unit {
		return fault.UnitMismatch
	}
	if !signers.Has(from.Owner) {
		return fault.Unauthorised
	}
	if from.Balance < amount {
		return fault.InsufficientFunds
	}
	if source == destination {
		return nil
	}

	balance, err := budgetrecord.CheckedAdd(to.Balance, amount)
	if nil != err {
		return err
	}
	from.Balance -= amount
	to.Balance = balance
	trx.Put(storage.Pool.Holdings, source[:], from.pack())
	trx.Put(storage.Pool.Holdings, destination[:], to.pack())

	l.log.Debugf("transfer: %d  from: %s  to: %s", amount, source, destination)
	return nil
}

// Balance - current balance of a holding
func (l *Ledger) Balance(reader storage.Reader, holding address.Address) (uint64, error) {
	h, err := l.GetHolding(reader, holding)
	if nil != err {
		return 0, err
	}
	return h.Balance, nil
}

// CreateMetadata - attach metadata to a unit
//
// the mint authority must sign; a collection reference always starts
// unverified
func (l *Ledger) CreateMetadata(trx storage.Transaction, signers Signers, arguments MetadataArguments) error {
	switch {
	case len(arguments.Name) > MaxNameLength:
		return fault.NameTooLong
	case len(arguments.Symbol) > MaxSymbolLength:
		return fault.SymbolTooLong
	case len(arguments.URI) > MaxURILength:
		return fault.URITooLong
	}

	unit := arguments.Unit
	mint, err := l.GetMint(trx, unit)
	if nil != err {
		return err
	}
	if mint.MintAuthority != arguments.MintAuthority || !signers.Has(arguments.MintAuthority) {
		return fault.Unauthorised
	}
	if trx.Has(storage.Pool.Metadata, unit[:]) {
		return fault.MetadataAlreadyExists
	}

	metadata := &MetadataRecord{
		Unit:            unit,
		UpdateAuthority: arguments.UpdateAuthority,
		Name:            arguments.Name,
		Symbol:          arguments.Symbol,
		URI:             arguments.URI,
		Mutable:         arguments.Mutable,
		Collection:      arguments.Collection,
	}
	trx.Put(storage.Pool.Metadata, unit[:], metadata.pack())

	l.log.Debugf("metadata: %s  name: %q  symbol: %q", unit, arguments.Name, arguments.Symbol)
	return nil
}

// CreateMasterEdition - mark a single unit supply as a master edition
//
// mint and freeze authority pass to the edition address so no further
// units can be minted
func (l *Ledger) CreateMasterEdition(trx storage.Transaction, signers Signers, unit address.Address, updateAuthority address.Address, maxSupply uint64) error {
	metadata, err := l.GetMetadata(trx, unit)
	if nil != err {
		return err
	}
	if metadata.UpdateAuthority != updateAuthority || !signers.Has(updateAuthority) {
		return fault.Unauthorised
	}
	mint, err := l.GetMint(trx, unit)
	if nil != err {
		return err
	}
	if !signers.Has(mint.MintAuthority) {
		return fault.Unauthorised
	}
	if 0 != mint.Decimals || 1 != mint.Supply {
		return fault.InvalidAmount
	}
	if trx.Has(storage.Pool.Editions, unit[:]) {
		return fault.MasterEditionAlreadyExists
	}

	edition, err := EditionAddress(unit)
	if nil != err {
		return err
	}
	mint.MintAuthority = edition
	mint.FreezeAuthority = edition
	trx.Put(storage.Pool.Mints, unit[:], mint.pack())

	record := &EditionRecord{
		MaxSupply: maxSupply,
	}
	trx.Put(storage.Pool.Editions, unit[:], record.pack())

	l.log.Debugf("master edition: %s  max supply: %d", unit, maxSupply)
	return nil
}

// VerifyCollection - confirm a unit as a member of a collection
func (l *Ledger) VerifyCollection(trx storage.Transaction, signers Signers, unit address.Address, collectionUnit address.Address, collectionAuthority address.Address) error {
	metadata, err := l.GetMetadata(trx, unit)
	if nil != err {
		return err
	}
	if metadata.Collection != collectionUnit {
		return fault.CollectionMismatch
	}

	collection, err := l.GetMetadata(trx, collectionUnit)
	if nil != err {
		return err
	}
	if collection.UpdateAuthority != collectionAuthority || !signers.Has(collectionAuthority) {
		return fault.Unauthorised
	}
	if !trx.Has(storage.Pool.Editions, collectionUnit[:]) {
		return fault.CollectionNotMasterEdition
	}
	if metadata.CollectionVerified {
		return fault.CollectionAlreadyVerified
	}

	metadata.CollectionVerified = true
	trx.Put(storage.Pool.Metadata, unit[:], metadata.pack())

	l.log.Debugf("verified: %s  collection: %s", unit, collectionUnit)
	return nil
}

// GetMint - read a unit type
func (l *Ledger) GetMint(reader storage.Reader, unit address.Address) (*MintRecord, error) {
	buffer := reader.Get(storage.Pool.Mints, unit[:])
	if nil == buffer {
		return nil, fault.MintNotFound
	}
	mint, err := unpackMint(buffer)
	if nil != err {
		l.log.Criticalf("mint: %s  unpack error: %s", unit, err)
	}
	return mint, err
}

// GetHolding - read a holding
func (l *Ledger) GetHolding(reader storage.Reader, holding address.Address) (*HoldingRecord, error) {
	buffer := reader.Get(storage.Pool.Holdings, holding[:])
	if nil == buffer {
		return nil, fault.HoldingNotFound
	}
	h, err := unpackHolding(buffer)
	if nil != err {
		l.log.Criticalf("holding: %s  unpack error: %s", holding, err)
	}
	return h, err
}

// GetMetadata - read the metadata of a unit
func (l *Ledger) GetMetadata(reader storage.Reader, unit address.Address) (*MetadataRecord, error) {
	buffer := reader.Get(storage.Pool.Metadata, unit[:])
	if nil == buffer {
		return nil, fault.MetadataNotFound
	}
	metadata, err := unpackMetadata(buffer)
	if nil != err {
		l.log.Criticalf("metadata: %s  unpack error: %s", unit, err)
	}
	return metadata, err
}

// GetEdition - read the master edition of a unit
func (l *Ledger) GetEdition(reader storage.Reader, unit address.Address) (*EditionRecord, error) {
	buffer := reader.Get(storage.Pool.Editions, unit[:])
	if nil == buffer {
		return nil, fault.MasterEditionNotFound
	}
	edition, err := unpackEdition(buffer)
	if nil != err {
		l.log.Criticalf("edition: %s  unpack error: %s", unit, err)
	}
	return edition, err
}
