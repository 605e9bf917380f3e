// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/merkle"
)

// HeightArguments - a single block
type HeightArguments struct {
	Height uint64 `json:"height,string"`
}

// HashesReply - statement hashes of a block and their root
type HashesReply struct {
	Hashes []merkle.Digest `json:"hashes"`
	Root   merkle.Digest   `json:"root"`
}

// Hashes - leaf hashes in block order
func (r *Resolver) Hashes(arguments *HeightArguments, reply *HashesReply) error {
	if err := r.Limiter.Wait(); nil != err {
		return err
	}

	hashes, err := r.hashes(arguments.Height)
	if nil != err {
		return err
	}
	reply.Hashes = make([]merkle.Digest, len(hashes))
	copy(reply.Hashes, hashes)
	reply.Root = merkle.Root(hashes)
	return nil
}

// ProofArguments - a statement hash to prove
type ProofArguments struct {
	Height uint64        `json:"height,string"`
	Leaf   merkle.Digest `json:"leaf"`
}

// ProofReply - path from the leaf to the root
type ProofReply struct {
	Path []merkle.PathItem `json:"path"`
	Root merkle.Digest     `json:"root"`
}

// Proof - build the merkle path of a statement hash
func (r *Resolver) Proof(arguments *ProofArguments, reply *ProofReply) error {
	if err := r.Limiter.Wait(); nil != err {
		return err
	}

	hashes, err := r.hashes(arguments.Height)
	if nil != err {
		return err
	}

	index := -1
	for i, h := range hashes {
		if h == arguments.Leaf {
			index = i
			break
		}
	}
	if index < 0 {
		return fault.ErrStatementNotFound
	}

	path, err := merkle.BuildPath(hashes, index)
	if nil != err {
		return err
	}
	reply.Path = path
	reply.Root = merkle.Root(hashes)
	return nil
}

// VerifyArguments - a leaf and its claimed path
type VerifyArguments struct {
	Height uint64            `json:"height,string"`
	Leaf   merkle.Digest     `json:"leaf"`
	Path   []merkle.PathItem `json:"path"`
}

// VerifyReply - result of verification against the archived root
type VerifyReply struct {
	Valid bool          `json:"valid"`
	Root  merkle.Digest `json:"root"`
}

// Verify - check a path against the root recorded at import
func (r *Resolver) Verify(arguments *VerifyArguments, reply *VerifyReply) error {
	if err := r.Limiter.Wait(); nil != err {
		return err
	}

	root, err := r.Archive.Root(arguments.Height)
	if nil != err {
		return err
	}

	reply.Root = root
	reply.Valid = merkle.VerifyPath(arguments.Leaf, arguments.Path, root)

	r.Log.Infof("verify leaf: %s at height: %d  valid: %t", arguments.Leaf, arguments.Height, reply.Valid)
	return nil
}
