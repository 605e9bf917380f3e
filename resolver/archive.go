// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"fmt"

	"github.com/catapult-tools/statementd/cache"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/merkle"
)

// ImportArguments - a receipts body for one block
type ImportArguments struct {
	Height     uint64                 `json:"height,string"`
	Statements *mapping.StatementsDTO `json:"statements"`
}

// ImportReply - what was archived
type ImportReply struct {
	Root       merkle.Digest `json:"root"`
	Statements int           `json:"statements"`
}

// Import - validate and archive a block's statements
//
// every statement must carry the block height
func (r *Resolver) Import(arguments *ImportArguments, reply *ImportReply) error {
	if err := r.Limiter.Wait(); nil != err {
		return err
	}

	if nil == arguments.Statements {
		return fault.ErrMissingStatements
	}
	if err := checkHeights(arguments.Height, arguments.Statements); nil != err {
		return err
	}

	s, err := mapping.StatementFromDTO(arguments.Statements, r.Network)
	if nil != err {
		return err
	}

	hashes := s.Hashes(r.Network)
	root := merkle.Root(hashes)

	err = r.Archive.Put(arguments.Height, arguments.Statements, root)
	if nil != err {
		r.Log.Warnf("import height: %d  error: %s", arguments.Height, err)
		return err
	}

	key := cache.HeightKey(arguments.Height)
	cache.Pool.Statements.Put(key, s)
	cache.Pool.Hashes.Put(key, hashes)

	r.Log.Infof("imported height: %d  statements: %d  root: %s", arguments.Height, len(hashes), root)

	reply.Root = root
	reply.Statements = len(hashes)
	return nil
}

func checkHeights(height uint64, dto *mapping.StatementsDTO) error {
	for _, t := range dto.TransactionStatements {
		if height != uint64(t.Statement.Height) {
			return fmt.Errorf("transaction statement height: %d %w", t.Statement.Height, fault.ErrInvalidHeight)
		}
	}
	for _, a := range dto.AddressResolutionStatements {
		if height != uint64(a.Statement.Height) {
			return fmt.Errorf("address resolution statement height: %d %w", a.Statement.Height, fault.ErrInvalidHeight)
		}
	}
	for _, m := range dto.MosaicResolutionStatements {
		if height != uint64(m.Statement.Height) {
			return fmt.Errorf("mosaic resolution statement height: %d %w", m.Statement.Height, fault.ErrInvalidHeight)
		}
	}
	return nil
}

// ListArguments - range of heights
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - archived heights
type ListReply struct {
	Heights   []uint64 `json:"heights"`
	NextStart uint64   `json:"nextStart,string"`
}

// List - archived heights from start
func (r *Resolver) List(arguments *ListArguments, reply *ListReply) error {
	if err := r.Limiter.WaitPage(arguments.Count); nil != err {
		return err
	}

	heights, err := r.Archive.Heights(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Heights = heights
	reply.NextStart = arguments.Start
	if n := len(heights); n > 0 {
		reply.NextStart = heights[n-1] + 1
	}
	return nil
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - state of the archive
type InfoReply struct {
	Network    string `json:"network"`
	LastHeight uint64 `json:"lastHeight,string"`
	Empty      bool   `json:"empty"`
}

// Info - highest archived height
func (r *Resolver) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := r.Limiter.Wait(); nil != err {
		return err
	}

	height, ok := r.Archive.LastHeight()
	reply.Network = r.Network.String()
	reply.LastHeight = height
	reply.Empty = !ok
	return nil
}
