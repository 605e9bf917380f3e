// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"fmt"
	"sort"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/identifier"
	"github.com/catapult-tools/statementd/merkle"
)

// ResolutionStatement - change log of one alias at one height
//
// the concrete types are *AddressResolutionStatement and
// *MosaicResolutionStatement
type ResolutionStatement interface {
	RecordId() (string, bool)
	ResolutionType() ResolutionType
	Height() uint64
	Sources() []Source
	Pack(network account.NetworkType) Packed
	GenerateHash(network account.NetworkType) merkle.Digest
}

// compile time checks
var (
	_ ResolutionStatement = (*AddressResolutionStatement)(nil)
	_ ResolutionStatement = (*MosaicResolutionStatement)(nil)
)

// fields shared by both kinds of statement
type resolutionStatement struct {
	recordId string
	height   uint64
	sources  []Source
}

func newResolutionStatement(recordId string, height uint64, sources []Source) (resolutionStatement, error) {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })
	for i := 1; i < len(ordered); i += 1 {
		if 0 == ordered[i-1].Compare(ordered[i]) {
			return resolutionStatement{}, fmt.Errorf("source: %s %w", ordered[i], fault.ErrDuplicateSource)
		}
	}
	return resolutionStatement{
		recordId: recordId,
		height:   height,
		sources:  sources,
	}, nil
}

// RecordId - database id assigned by the node, if any
func (r *resolutionStatement) RecordId() (string, bool) {
	return r.recordId, "" != r.recordId
}

// Height - block height of the statement
func (r *resolutionStatement) Height() uint64 {
	return r.height
}

// Sources - positions of all entries in stored order
func (r *resolutionStatement) Sources() []Source {
	s := make([]Source, len(r.sources))
	copy(s, r.sources)
	return s
}

// NewResolutionStatement - build either kind of statement, checking
// that the unresolved value and every entry match resolutionType
func NewResolutionStatement(recordId string, resolutionType ResolutionType, height uint64, unresolved interface{}, entries []ResolutionEntry) (ResolutionStatement, error) {
	if _, err := ResolutionTypeFromUint8(uint8(resolutionType)); nil != err {
		return nil, err
	}
	for _, e := range entries {
		if nil == e || e.Type() != resolutionType.ReceiptType() {
			return nil, fmt.Errorf("resolution type: [%s] entry: %T %w", resolutionType, e, fault.ErrResolutionTypeMismatch)
		}
	}

	switch resolutionType {
	case AddressResolution:
		u, ok := unresolved.(identifier.UnresolvedAddress)
		if !ok {
			return nil, fmt.Errorf("unresolved type: [%T] for resolution type: [%s] %w", unresolved, resolutionType, fault.ErrInvalidUnresolvedType)
		}
		typed := make([]*AddressResolutionEntry, 0, len(entries))
		for _, e := range entries {
			a, ok := e.(*AddressResolutionEntry)
			if !ok {
				return nil, fmt.Errorf("resolution type: [%s] entry: %T %w", resolutionType, e, fault.ErrResolutionTypeMismatch)
			}
			typed = append(typed, a)
		}
		return NewAddressResolutionStatement(recordId, height, u, typed)

	case MosaicResolution:
		u, ok := unresolved.(identifier.UnresolvedMosaicId)
		if !ok {
			return nil, fmt.Errorf("unresolved type: [%T] for resolution type: [%s] %w", unresolved, resolutionType, fault.ErrInvalidUnresolvedType)
		}
		typed := make([]*MosaicResolutionEntry, 0, len(entries))
		for _, e := range entries {
			m, ok := e.(*MosaicResolutionEntry)
			if !ok {
				return nil, fmt.Errorf("resolution type: [%s] entry: %T %w", resolutionType, e, fault.ErrResolutionTypeMismatch)
			}
			typed = append(typed, m)
		}
		return NewMosaicResolutionStatement(recordId, height, u, typed)

	default:
		return nil, fmt.Errorf("%d %w", uint8(resolutionType), fault.ErrUnknownResolutionType)
	}
}

// ---

// AddressResolutionStatement - what an address alias resolved to
// through one block
type AddressResolutionStatement struct {
	resolutionStatement
	unresolved identifier.UnresolvedAddress
	entries    []*AddressResolutionEntry
}

// NewAddressResolutionStatement - the entries are copied
func NewAddressResolutionStatement(recordId string, height uint64, unresolved identifier.UnresolvedAddress, entries []*AddressResolutionEntry) (*AddressResolutionStatement, error) {
	if nil == unresolved {
		return nil, fmt.Errorf("unresolved type: [<nil>] %w", fault.ErrInvalidUnresolvedType)
	}

	owned := make([]*AddressResolutionEntry, len(entries))
	sources := make([]Source, len(entries))
	for i, e := range entries {
		if nil == e {
			return nil, fmt.Errorf("entry: %d %w", i, fault.ErrResolutionTypeMismatch)
		}
		owned[i] = e
		sources[i] = e.Source()
	}

	base, err := newResolutionStatement(recordId, height, sources)
	if nil != err {
		return nil, err
	}
	return &AddressResolutionStatement{
		resolutionStatement: base,
		unresolved:          unresolved,
		entries:             owned,
	}, nil
}

// ResolutionType - always AddressResolution
func (r *AddressResolutionStatement) ResolutionType() ResolutionType {
	return AddressResolution
}

// Unresolved - the alias (or concrete address)
func (r *AddressResolutionStatement) Unresolved() identifier.UnresolvedAddress {
	return r.unresolved
}

// Entries - copy of the entries in stored order
func (r *AddressResolutionStatement) Entries() []*AddressResolutionEntry {
	e := make([]*AddressResolutionEntry, len(r.entries))
	copy(e, r.entries)
	return e
}

// EntryById - the entry in effect at a transaction position
func (r *AddressResolutionStatement) EntryById(primaryId uint32, secondaryId uint32) (*AddressResolutionEntry, bool) {
	i, ok := entryIndexById(r.sources, primaryId, secondaryId)
	if !ok {
		return nil, false
	}
	return r.entries[i], true
}

// Pack - header ++ unresolved address ++ entries
//
// an alias is encoded for the given network
func (r *AddressResolutionStatement) Pack(network account.NetworkType) Packed {
	buffer := make(Packed, 0, headerLength+account.AddressLength+len(r.entries)*(SourceLength+account.AddressLength))
	buffer = appendHeader(buffer, ResolutionStatementVersion, AddressAliasResolution)
	buffer = append(buffer, r.unresolved.UnresolvedAddressBytes(network)...)
	for _, e := range r.entries {
		buffer = append(buffer, e.Pack()...)
	}
	return buffer
}

// GenerateHash - SHA3-256 of the packed statement
func (r *AddressResolutionStatement) GenerateHash(network account.NetworkType) merkle.Digest {
	return merkle.NewDigest(r.Pack(network))
}

// ---

// MosaicResolutionStatement - what a mosaic alias resolved to
// through one block
type MosaicResolutionStatement struct {
	resolutionStatement
	unresolved identifier.UnresolvedMosaicId
	entries    []*MosaicResolutionEntry
}

// NewMosaicResolutionStatement - the entries are copied
func NewMosaicResolutionStatement(recordId string, height uint64, unresolved identifier.UnresolvedMosaicId, entries []*MosaicResolutionEntry) (*MosaicResolutionStatement, error) {
	if nil == unresolved {
		return nil, fmt.Errorf("unresolved type: [<nil>] %w", fault.ErrInvalidUnresolvedType)
	}

	owned := make([]*MosaicResolutionEntry, len(entries))
	sources := make([]Source, len(entries))
	for i, e := range entries {
		if nil == e {
			return nil, fmt.Errorf("entry: %d %w", i, fault.ErrResolutionTypeMismatch)
		}
		owned[i] = e
		sources[i] = e.Source()
	}

	base, err := newResolutionStatement(recordId, height, sources)
	if nil != err {
		return nil, err
	}
	return &MosaicResolutionStatement{
		resolutionStatement: base,
		unresolved:          unresolved,
		entries:             owned,
	}, nil
}

// ResolutionType - always MosaicResolution
func (r *MosaicResolutionStatement) ResolutionType() ResolutionType {
	return MosaicResolution
}

// Unresolved - the alias (or concrete mosaic id)
func (r *MosaicResolutionStatement) Unresolved() identifier.UnresolvedMosaicId {
	return r.unresolved
}

// Entries - copy of the entries in stored order
func (r *MosaicResolutionStatement) Entries() []*MosaicResolutionEntry {
	e := make([]*MosaicResolutionEntry, len(r.entries))
	copy(e, r.entries)
	return e
}

// EntryById - the entry in effect at a transaction position
func (r *MosaicResolutionStatement) EntryById(primaryId uint32, secondaryId uint32) (*MosaicResolutionEntry, bool) {
	i, ok := entryIndexById(r.sources, primaryId, secondaryId)
	if !ok {
		return nil, false
	}
	return r.entries[i], true
}

// Pack - header ++ unresolved mosaic id ++ entries
//
// the network is not used, it is present to match the address statement
func (r *MosaicResolutionStatement) Pack(network account.NetworkType) Packed {
	buffer := make(Packed, 0, headerLength+identifier.IdentifierLength+len(r.entries)*(SourceLength+identifier.IdentifierLength))
	buffer = appendHeader(buffer, ResolutionStatementVersion, MosaicAliasResolution)
	buffer = append(buffer, r.unresolved.UnresolvedBytes()...)
	for _, e := range r.entries {
		buffer = append(buffer, e.Pack()...)
	}
	return buffer
}

// GenerateHash - SHA3-256 of the packed statement
func (r *MosaicResolutionStatement) GenerateHash(network account.NetworkType) merkle.Digest {
	return merkle.NewDigest(r.Pack(network))
}

// ---

// ResolveAddress - what unresolved pointed to at a position in the block
// at height
//
// a concrete address resolves to itself, otherwise the first statement
// for the same height and alias is consulted
func ResolveAddress(statements []*AddressResolutionStatement, height uint64, unresolved identifier.UnresolvedAddress, primaryId uint32, secondaryId uint32) (account.Address, bool) {
	if a, ok := unresolved.(account.Address); ok {
		return a, true
	}
	for _, s := range statements {
		if height != s.height || unresolved != s.unresolved {
			continue
		}
		e, ok := s.EntryById(primaryId, secondaryId)
		if !ok {
			return account.Address{}, false
		}
		return e.Resolved(), true
	}
	return account.Address{}, false
}

// ResolveMosaicId - what unresolved pointed to at a position in the
// block at height
//
// a concrete mosaic id resolves to itself, otherwise the first
// statement for the same height and alias is consulted
func ResolveMosaicId(statements []*MosaicResolutionStatement, height uint64, unresolved identifier.UnresolvedMosaicId, primaryId uint32, secondaryId uint32) (identifier.MosaicId, bool) {
	if m, ok := unresolved.(identifier.MosaicId); ok {
		return m, true
	}
	for _, s := range statements {
		if height != s.height || unresolved != s.unresolved {
			continue
		}
		e, ok := s.EntryById(primaryId, secondaryId)
		if !ok {
			return 0, false
		}
		return e.Resolved(), true
	}
	return 0, false
}
