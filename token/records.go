// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/budgetd/address"
	"github.com/bitmark-inc/budgetd/fault"
	"github.com/bitmark-inc/budgetd/util"
)

// record tags, first Varint64 of each packed record
const (
	mintTag     = 1
	holdingTag  = 2
	metadataTag = 3
	editionTag  = 4
)

// MintRecord - a unit type
type MintRecord struct {
	Decimals        uint8           `json:"decimals"`
	Supply          uint64          `json:"supply"`
	MintAuthority   address.Address `json:"mintAuthority"`
	FreezeAuthority address.Address `json:"freezeAuthority"`
}

// HoldingRecord - the balance of one owner in one unit
type HoldingRecord struct {
	Unit    address.Address `json:"unit"`
	Owner   address.Address `json:"owner"`
	Balance uint64          `json:"balance"`
}

// MetadataRecord - descriptive data attached to a unit
//
// seller fee, creators and uses are not supported and always empty
type MetadataRecord struct {
	Unit                address.Address `json:"unit"`
	UpdateAuthority     address.Address `json:"updateAuthority"`
	Name                string          `json:"name"`
	Symbol              string          `json:"symbol"`
	URI                 string          `json:"uri"`
	Mutable             bool            `json:"mutable"`
	Collection          address.Address `json:"collection"`
	CollectionVerified  bool            `json:"collectionVerified"`
	PrimarySaleHappened bool            `json:"primarySaleHappened"`
}

// EditionRecord - master edition, MaxSupply zero is non printable
type EditionRecord struct {
	Supply    uint64 `json:"supply"`
	MaxSupply uint64 `json:"maxSupply"`
}

func (mint *MintRecord) pack() []byte {
	buffer := util.ToVarint64(mintTag)
	buffer = util.AppendVarint64(buffer, uint64(mint.Decimals))
	buffer = util.AppendVarint64(buffer, mint.Supply)
	buffer = util.AppendBytes(buffer, mint.MintAuthority[:])
	buffer = util.AppendBytes(buffer, mint.FreezeAuthority[:])
	return buffer
}

func (holding *HoldingRecord) pack() []byte {
	buffer := util.ToVarint64(holdingTag)
	buffer = util.AppendBytes(buffer, holding.Unit[:])
	buffer = util.AppendBytes(buffer, holding.Owner[:])
	buffer = util.AppendVarint64(buffer, holding.Balance)
	return buffer
}

func (metadata *MetadataRecord) pack() []byte {
	buffer := util.ToVarint64(metadataTag)
	buffer = util.AppendBytes(buffer, metadata.Unit[:])
	buffer = util.AppendBytes(buffer, metadata.UpdateAuthority[:])
	buffer = util.AppendString(buffer, metadata.Name)
	buffer = util.AppendString(buffer, metadata.Symbol)
	buffer = util.AppendString(buffer, metadata.URI)
	buffer = util.AppendBytes(buffer, metadata.Collection[:])
	flags := uint64(0)
	if metadata.Mutable {
		flags |= 0x01
	}
	if metadata.CollectionVerified {
		flags |= 0x02
	}
	if metadata.PrimarySaleHappened {
		flags |= 0x04
	}
	return util.AppendVarint64(buffer, flags)
}

func (edition *EditionRecord) pack() []byte {
	buffer := util.ToVarint64(editionTag)
	buffer = util.AppendVarint64(buffer, edition.Supply)
	return util.AppendVarint64(buffer, edition.MaxSupply)
}

// sequential decoder, stops at the first error
type decoder struct {
	buffer []byte
	n      int
	err    error
}

func newDecoder(buffer []byte, tag uint64) *decoder {
	d := &decoder{
		buffer: buffer,
	}
	if d.varint() != tag && nil == d.err {
		d.err = fault.NotTokenRecordPack
	}
	return d
}

func (d *decoder) varint() uint64 {
	if nil != d.err {
		return 0
	}
	v, n, err := util.ReadVarint64(d.buffer, d.n)
	if nil != err {
		d.err = err
		return 0
	}
	d.n = n
	return v
}

func (d *decoder) bytes(maximum int) []byte {
	if nil != d.err {
		return nil
	}
	b, n, err := util.ReadBytes(d.buffer, d.n, 0, maximum)
	if nil != err {
		d.err = err
		return nil
	}
	d.n = n
	return b
}

func (d *decoder) address() address.Address {
	b := d.bytes(address.Length)
	if nil != d.err {
		return address.Nil
	}
	a, err := address.FromBytes(b)
	if nil != err {
		d.err = err
	}
	return a
}

// finish - check everything was consumed
func (d *decoder) finish() error {
	if nil == d.err && d.n != len(d.buffer) {
		d.err = fault.TruncatedRecord
	}
	return d.err
}

func unpackMint(buffer []byte) (*MintRecord, error) {
	d := newDecoder(buffer, mintTag)
	mint := &MintRecord{
		Decimals:        uint8(d.varint()),
		Supply:          d.varint(),
		MintAuthority:   d.address(),
		FreezeAuthority: d.address(),
	}
	return mint, d.finish()
}

func unpackHolding(buffer []byte) (*HoldingRecord, error) {
	d := newDecoder(buffer, holdingTag)
	holding := &HoldingRecord{
		Unit:    d.address(),
		Owner:   d.address(),
		Balance: d.varint(),
	}
	return holding, d.finish()
}

func unpackMetadata(buffer []byte) (*MetadataRecord, error) {
	d := newDecoder(buffer, metadataTag)
	metadata := &MetadataRecord{
		Unit:            d.address(),
		UpdateAuthority: d.address(),
		Name:            string(d.bytes(MaxNameLength)),
		Symbol:          string(d.bytes(MaxSymbolLength)),
		URI:             string(d.bytes(MaxURILength)),
		Collection:      d.address(),
	}
	flags := d.varint()
	metadata.Mutable = 0 != flags&0x01
	metadata.CollectionVerified = 0 != flags&0x02
	metadata.PrimarySaleHappened = 0 != flags&0x04
	return metadata, d.finish()
}

func unpackEdition(buffer []byte) (*EditionRecord, error) {
	d := newDecoder(buffer, editionTag)
	edition := &EditionRecord{
		Supply:    d.varint(),
		MaxSupply: d.varint(),
	}
	return edition, d.finish()
}
