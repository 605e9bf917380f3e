// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"fmt"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/identifier"
)

// ResolutionType - which kind of alias a resolution statement covers
type ResolutionType uint8

// resolution kinds
const (
	AddressResolution ResolutionType = 0
	MosaicResolution  ResolutionType = 1
)

// ResolutionTypeFromUint8 - decode a resolution kind
func ResolutionTypeFromUint8(n uint8) (ResolutionType, error) {
	switch r := ResolutionType(n); r {
	case AddressResolution, MosaicResolution:
		return r, nil
	default:
		return 0, fmt.Errorf("%d %w", n, fault.ErrUnknownResolutionType)
	}
}

// ReceiptType - the receipt type of statements and entries of this kind
func (r ResolutionType) ReceiptType() Type {
	if MosaicResolution == r {
		return MosaicAliasResolution
	}
	return AddressAliasResolution
}

// String - constant style name
func (r ResolutionType) String() string {
	switch r {
	case AddressResolution:
		return "ADDRESS"
	case MosaicResolution:
		return "MOSAIC"
	default:
		return fmt.Sprintf("ResolutionType(%d)", uint8(r))
	}
}

// ResolutionEntry - one recorded change of an alias
//
// the concrete types are *AddressResolutionEntry and *MosaicResolutionEntry
type ResolutionEntry interface {
	Source() Source
	Type() Type
	Pack() Packed
}

// compile time checks
var (
	_ ResolutionEntry = (*AddressResolutionEntry)(nil)
	_ ResolutionEntry = (*MosaicResolutionEntry)(nil)
)

func validateEntryType(t Type, expected Type) error {
	if err := ValidateType(t, ResolutionStatementTypes); nil != err {
		return err
	}
	if t != expected {
		return fmt.Errorf("entry type: [%s] %w", t, fault.ErrInvalidResolvedType)
	}
	return nil
}

// AddressResolutionEntry - alias resolved to an account address
type AddressResolutionEntry struct {
	source      Source
	receiptType Type
	resolved    account.Address
}

// NewAddressResolutionEntry - t must be AddressAliasResolution
func NewAddressResolutionEntry(resolved account.Address, source Source, t Type) (*AddressResolutionEntry, error) {
	if err := validateEntryType(t, AddressAliasResolution); nil != err {
		return nil, err
	}
	return &AddressResolutionEntry{
		source:      source,
		receiptType: t,
		resolved:    resolved,
	}, nil
}

// Source - position of the change
func (e *AddressResolutionEntry) Source() Source {
	return e.source
}

// Type - always AddressAliasResolution
func (e *AddressResolutionEntry) Type() Type {
	return e.receiptType
}

// Resolved - the account the alias pointed to
func (e *AddressResolutionEntry) Resolved() account.Address {
	return e.resolved
}

// Pack - source ++ 25 byte address
func (e *AddressResolutionEntry) Pack() Packed {
	buffer := make(Packed, 0, SourceLength+account.AddressLength)
	buffer = appendSource(buffer, e.source)
	return append(buffer, e.resolved.Bytes()...)
}

// MosaicResolutionEntry - alias resolved to a mosaic
type MosaicResolutionEntry struct {
	source      Source
	receiptType Type
	resolved    identifier.MosaicId
}

// NewMosaicResolutionEntry - t must be MosaicAliasResolution
func NewMosaicResolutionEntry(resolved identifier.MosaicId, source Source, t Type) (*MosaicResolutionEntry, error) {
	if err := validateEntryType(t, MosaicAliasResolution); nil != err {
		return nil, err
	}
	return &MosaicResolutionEntry{
		source:      source,
		receiptType: t,
		resolved:    resolved,
	}, nil
}

// Source - position of the change
func (e *MosaicResolutionEntry) Source() Source {
	return e.source
}

// Type - always MosaicAliasResolution
func (e *MosaicResolutionEntry) Type() Type {
	return e.receiptType
}

// Resolved - the mosaic the alias pointed to
func (e *MosaicResolutionEntry) Resolved() identifier.MosaicId {
	return e.resolved
}

// Pack - source ++ 8 byte mosaic id
func (e *MosaicResolutionEntry) Pack() Packed {
	buffer := make(Packed, 0, SourceLength+identifier.IdentifierLength)
	buffer = appendSource(buffer, e.source)
	return appendUint64(buffer, e.resolved.Id())
}
