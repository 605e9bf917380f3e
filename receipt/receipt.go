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

// Receipt - generic receipt interface
//
// the concrete types are *BalanceChangeReceipt, *BalanceTransferReceipt,
// *ArtifactExpiryReceipt and *InflationReceipt
type Receipt interface {
	Type() Type
	Version() Version
	Size() (uint32, bool)
	Pack() Packed
}

// compile time checks
var (
	_ Receipt = (*BalanceChangeReceipt)(nil)
	_ Receipt = (*BalanceTransferReceipt)(nil)
	_ Receipt = (*ArtifactExpiryReceipt)(nil)
	_ Receipt = (*InflationReceipt)(nil)
)

// Option - optional construction parameter
type Option func(*base)

// WithSize - record the size reported by the node
func WithSize(size uint32) Option {
	return func(b *base) {
		b.size = size
		b.hasSize = true
	}
}

// fields common to all receipts
type base struct {
	receiptType Type
	version     Version
	size        uint32
	hasSize     bool
}

func newBase(t Type, version Version, category TypeSet, options []Option) (base, error) {
	if err := ValidateType(t, category); nil != err {
		return base{}, err
	}
	b := base{
		receiptType: t,
		version:     version,
	}
	for _, o := range options {
		o(&b)
	}
	return b, nil
}

// Type - the receipt type
func (b *base) Type() Type {
	return b.receiptType
}

// Version - the receipt version
func (b *base) Version() Version {
	return b.version
}

// Size - size reported by the node, if any
func (b *base) Size() (uint32, bool) {
	return b.size, b.hasSize
}

// ---

// BalanceChangeReceipt - a single account credited or debited
type BalanceChangeReceipt struct {
	base
	target   account.Address
	mosaicId identifier.MosaicId
	amount   uint64
}

// NewBalanceChangeReceipt - t must be harvest fee or one of the lock types
func NewBalanceChangeReceipt(t Type, target account.Address, mosaicId identifier.MosaicId, amount uint64, options ...Option) (*BalanceChangeReceipt, error) {
	b, err := newBase(t, BalanceChangeVersion, BalanceChangeTypes, options)
	if nil != err {
		return nil, err
	}
	return &BalanceChangeReceipt{
		base:     b,
		target:   target,
		mosaicId: mosaicId,
		amount:   amount,
	}, nil
}

// TargetAddress - the account whose balance changed
func (r *BalanceChangeReceipt) TargetAddress() account.Address {
	return r.target
}

// MosaicId - the mosaic whose balance changed
func (r *BalanceChangeReceipt) MosaicId() identifier.MosaicId {
	return r.mosaicId
}

// Amount - change in absolute units
func (r *BalanceChangeReceipt) Amount() uint64 {
	return r.amount
}

// Pack - binary wire form
func (r *BalanceChangeReceipt) Pack() Packed {
	buffer := make(Packed, 0, headerLength+identifier.IdentifierLength+amountLength+account.AddressLength)
	buffer = appendHeader(buffer, r.version, r.receiptType)
	buffer = appendUint64(buffer, r.mosaicId.Id())
	buffer = appendUint64(buffer, r.amount)
	return append(buffer, r.target.Bytes()...)
}

// ---

// BalanceTransferReceipt - value moved between two accounts
//
// the recipient may still be a namespace alias
type BalanceTransferReceipt struct {
	base
	sender    account.Address
	recipient identifier.UnresolvedAddress
	mosaicId  identifier.MosaicId
	amount    uint64
}

// NewBalanceTransferReceipt - t must be one of the rental fee types
func NewBalanceTransferReceipt(t Type, sender account.Address, recipient identifier.UnresolvedAddress, mosaicId identifier.MosaicId, amount uint64, options ...Option) (*BalanceTransferReceipt, error) {
	b, err := newBase(t, BalanceTransferVersion, BalanceTransferTypes, options)
	if nil != err {
		return nil, err
	}
	if nil == recipient {
		return nil, fault.ErrInvalidAddress
	}
	return &BalanceTransferReceipt{
		base:      b,
		sender:    sender,
		recipient: recipient,
		mosaicId:  mosaicId,
		amount:    amount,
	}, nil
}

// SenderAddress - the paying account
func (r *BalanceTransferReceipt) SenderAddress() account.Address {
	return r.sender
}

// RecipientAddress - the receiving account or its alias
func (r *BalanceTransferReceipt) RecipientAddress() identifier.UnresolvedAddress {
	return r.recipient
}

// MosaicId - the mosaic transferred
func (r *BalanceTransferReceipt) MosaicId() identifier.MosaicId {
	return r.mosaicId
}

// Amount - quantity transferred
func (r *BalanceTransferReceipt) Amount() uint64 {
	return r.amount
}

// Pack - binary wire form
//
// an aliased recipient is encoded for the sender's network
func (r *BalanceTransferReceipt) Pack() Packed {
	buffer := make(Packed, 0, headerLength+identifier.IdentifierLength+amountLength+2*account.AddressLength)
	buffer = appendHeader(buffer, r.version, r.receiptType)
	buffer = appendUint64(buffer, r.mosaicId.Id())
	buffer = appendUint64(buffer, r.amount)
	buffer = append(buffer, r.sender.Bytes()...)
	return append(buffer, r.recipient.UnresolvedAddressBytes(r.sender.NetworkType())...)
}

// ---

// ArtifactExpiryReceipt - a mosaic or namespace reached the end of its lifetime
type ArtifactExpiryReceipt struct {
	base
	artifact identifier.Artifact
}

// NewArtifactExpiryReceipt - mosaic expired takes a MosaicId, the namespace
// types take a NamespaceId
func NewArtifactExpiryReceipt(t Type, artifact identifier.Artifact, options ...Option) (*ArtifactExpiryReceipt, error) {
	b, err := newBase(t, ArtifactExpiryVersion, ArtifactExpiryTypes, options)
	if nil != err {
		return nil, err
	}

	ok := false
	switch artifact.(type) {
	case identifier.MosaicId:
		ok = MosaicExpired == t
	case identifier.NamespaceId:
		ok = NamespaceExpired == t || NamespaceDeleted == t
	}
	if !ok {
		return nil, fmt.Errorf("artifact: %T for receipt type: [%s] %w", artifact, t, fault.ErrInvalidArtifactType)
	}

	return &ArtifactExpiryReceipt{
		base:     b,
		artifact: artifact,
	}, nil
}

// ArtifactId - the expired mosaic or namespace
func (r *ArtifactExpiryReceipt) ArtifactId() identifier.Artifact {
	return r.artifact
}

// Pack - binary wire form
func (r *ArtifactExpiryReceipt) Pack() Packed {
	buffer := make(Packed, 0, headerLength+identifier.IdentifierLength)
	buffer = appendHeader(buffer, r.version, r.receiptType)
	return append(buffer, r.artifact.Bytes()...)
}

// ---

// InflationReceipt - new currency created at a block
type InflationReceipt struct {
	base
	mosaicId identifier.MosaicId
	amount   uint64
}

// NewInflationReceipt - the only valid type is Inflation
func NewInflationReceipt(t Type, mosaicId identifier.MosaicId, amount uint64, options ...Option) (*InflationReceipt, error) {
	b, err := newBase(t, InflationVersion, InflationTypes, options)
	if nil != err {
		return nil, err
	}
	return &InflationReceipt{
		base:     b,
		mosaicId: mosaicId,
		amount:   amount,
	}, nil
}

// MosaicId - the inflated mosaic
func (r *InflationReceipt) MosaicId() identifier.MosaicId {
	return r.mosaicId
}

// Amount - quantity created
func (r *InflationReceipt) Amount() uint64 {
	return r.amount
}

// Pack - binary wire form
func (r *InflationReceipt) Pack() Packed {
	buffer := make(Packed, 0, headerLength+identifier.IdentifierLength+amountLength)
	buffer = appendHeader(buffer, r.version, r.receiptType)
	buffer = appendUint64(buffer, r.mosaicId.Id())
	return appendUint64(buffer, r.amount)
}
