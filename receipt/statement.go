// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/identifier"
	"github.com/catapult-tools/statementd/merkle"
)

// Statement - every receipt and resolution of one block
type Statement struct {
	transactionStatements       []*TransactionStatement
	addressResolutionStatements []*AddressResolutionStatement
	mosaicResolutionStatements  []*MosaicResolutionStatement
}

// NewStatement - the slices are copied
func NewStatement(transactionStatements []*TransactionStatement, addressResolutionStatements []*AddressResolutionStatement, mosaicResolutionStatements []*MosaicResolutionStatement) *Statement {
	s := &Statement{
		transactionStatements:       make([]*TransactionStatement, len(transactionStatements)),
		addressResolutionStatements: make([]*AddressResolutionStatement, len(addressResolutionStatements)),
		mosaicResolutionStatements:  make([]*MosaicResolutionStatement, len(mosaicResolutionStatements)),
	}
	copy(s.transactionStatements, transactionStatements)
	copy(s.addressResolutionStatements, addressResolutionStatements)
	copy(s.mosaicResolutionStatements, mosaicResolutionStatements)
	return s
}

// TransactionStatements - copy of the transaction statements
func (s *Statement) TransactionStatements() []*TransactionStatement {
	t := make([]*TransactionStatement, len(s.transactionStatements))
	copy(t, s.transactionStatements)
	return t
}

// AddressResolutionStatements - copy of the address resolution statements
func (s *Statement) AddressResolutionStatements() []*AddressResolutionStatement {
	a := make([]*AddressResolutionStatement, len(s.addressResolutionStatements))
	copy(a, s.addressResolutionStatements)
	return a
}

// MosaicResolutionStatements - copy of the mosaic resolution statements
func (s *Statement) MosaicResolutionStatements() []*MosaicResolutionStatement {
	m := make([]*MosaicResolutionStatement, len(s.mosaicResolutionStatements))
	copy(m, s.mosaicResolutionStatements)
	return m
}

// ResolvedAddress - resolve an address alias against this block
func (s *Statement) ResolvedAddress(height uint64, unresolved identifier.UnresolvedAddress, primaryId uint32, secondaryId uint32) (account.Address, bool) {
	return ResolveAddress(s.addressResolutionStatements, height, unresolved, primaryId, secondaryId)
}

// ResolvedMosaicId - resolve a mosaic alias against this block
func (s *Statement) ResolvedMosaicId(height uint64, unresolved identifier.UnresolvedMosaicId, primaryId uint32, secondaryId uint32) (identifier.MosaicId, bool) {
	return ResolveMosaicId(s.mosaicResolutionStatements, height, unresolved, primaryId, secondaryId)
}

// Hashes - leaf hashes of the receipts merkle tree in block order:
// transaction statements, then address and finally mosaic resolutions
func (s *Statement) Hashes(network account.NetworkType) []merkle.Digest {
	hashes := make([]merkle.Digest, 0, len(s.transactionStatements)+len(s.addressResolutionStatements)+len(s.mosaicResolutionStatements))
	for _, t := range s.transactionStatements {
		hashes = append(hashes, t.GenerateHash())
	}
	for _, a := range s.addressResolutionStatements {
		hashes = append(hashes, a.GenerateHash(network))
	}
	for _, m := range s.mosaicResolutionStatements {
		hashes = append(hashes, m.GenerateHash(network))
	}
	return hashes
}

// ReceiptsRoot - merkle root of Hashes
func (s *Statement) ReceiptsRoot(network account.NetworkType) merkle.Digest {
	return merkle.Root(s.Hashes(network))
}
