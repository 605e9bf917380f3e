// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package archive - persistent block statements keyed by height
//
// each statement is stored as deterministic CBOR of its DTO alongside
// the receipts root computed when it was imported
package archive

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/merkle"
	"github.com/catapult-tools/statementd/storage"
)

// Archive - statement and root pools
type Archive struct {
	statements storage.Handle
	roots      storage.Handle
	encoder    cbor.EncMode
}

// New - archive over two pools, normally storage.Pool.Statements and
// storage.Pool.Roots
func New(statements storage.Handle, roots storage.Handle) (*Archive, error) {
	encoder, err := cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		return nil, err
	}
	return &Archive{
		statements: statements,
		roots:      roots,
		encoder:    encoder,
	}, nil
}

// Put - store a statement, an existing height is never overwritten
func (a *Archive) Put(height uint64, dto *mapping.StatementsDTO, root merkle.Digest) error {
	key := storage.HeightKey(height)
	if a.statements.Has(key) {
		return fmt.Errorf("height: %d %w", height, fault.ErrStatementAlreadyArchived)
	}

	buffer, err := a.encoder.Marshal(dto)
	if nil != err {
		return err
	}

	a.statements.Put(key, buffer)
	a.roots.Put(key, root[:])
	return nil
}

// Has - true if a statement exists for height
func (a *Archive) Has(height uint64) bool {
	return a.statements.Has(storage.HeightKey(height))
}

// Get - decode the statement stored for height
func (a *Archive) Get(height uint64) (*mapping.StatementsDTO, error) {
	buffer := a.statements.Get(storage.HeightKey(height))
	if nil == buffer {
		return nil, fmt.Errorf("height: %d %w", height, fault.ErrStatementNotFound)
	}

	dto := &mapping.StatementsDTO{}
	if err := cbor.Unmarshal(buffer, dto); nil != err {
		return nil, fmt.Errorf("height: %d: %w", height, err)
	}
	return dto, nil
}

// Root - receipts root recorded at import
func (a *Archive) Root(height uint64) (merkle.Digest, error) {
	var root merkle.Digest

	buffer := a.roots.Get(storage.HeightKey(height))
	if nil == buffer {
		return root, fmt.Errorf("height: %d %w", height, fault.ErrStatementNotFound)
	}
	err := merkle.DigestFromBytes(&root, buffer)
	return root, err
}

// Delete - remove a height, no error if absent
func (a *Archive) Delete(height uint64) {
	key := storage.HeightKey(height)
	a.statements.Delete(key)
	a.roots.Delete(key)
}

// LastHeight - highest archived height
func (a *Archive) LastHeight() (uint64, bool) {
	e, found := a.roots.LastElement()
	if !found {
		return 0, false
	}
	return storage.HeightFromKey(e.Key)
}

// Heights - up to count archived heights starting at start
func (a *Archive) Heights(start uint64, count int) ([]uint64, error) {
	elements, err := a.roots.NewFetchCursor().Seek(storage.HeightKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}
	heights := make([]uint64, 0, len(elements))
	for _, e := range elements {
		if h, ok := storage.HeightFromKey(e.Key); ok {
			heights = append(heights, h)
		}
	}
	return heights, nil
}
