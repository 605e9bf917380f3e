// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"github.com/catapult-tools/statementd/identifier"
)

// ResolveArguments - where and what to resolve
//
// Unresolved is a hex encoded address (or plain address) for address
// resolution and a 16 digit hex id for mosaic resolution
type ResolveArguments struct {
	Height      uint64 `json:"height,string"`
	Unresolved  string `json:"unresolved"`
	PrimaryId   uint32 `json:"primaryId"`
	SecondaryId uint32 `json:"secondaryId"`
}

// ResolveReply - result of a resolution
type ResolveReply struct {
	Resolved string `json:"resolved"`
	Found    bool   `json:"found"`
}

// ResolveAddress - the account an address alias pointed to
func (r *Resolver) ResolveAddress(arguments *ResolveArguments, reply *ResolveReply) error {
	if err := r.Limiter.Wait(); nil != err {
		return err
	}

	unresolved, err := identifier.UnresolvedAddressFromEncoded(arguments.Unresolved)
	if nil != err {
		return err
	}

	r.Log.Infof("resolve address: %s at height: %d (%d,%d)", unresolved, arguments.Height, arguments.PrimaryId, arguments.SecondaryId)

	// a concrete value resolves to itself at any height
	if !unresolved.IsAlias() {
		reply.Found = true
		reply.Resolved = unresolved.String()
		return nil
	}

	s, err := r.statement(arguments.Height)
	if nil != err {
		return err
	}

	address, ok := s.ResolvedAddress(arguments.Height, unresolved, arguments.PrimaryId, arguments.SecondaryId)
	reply.Found = ok
	reply.Resolved = ""
	if ok {
		reply.Resolved = address.String()
	}
	return nil
}

// ResolveMosaic - the mosaic a mosaic alias pointed to
func (r *Resolver) ResolveMosaic(arguments *ResolveArguments, reply *ResolveReply) error {
	if err := r.Limiter.Wait(); nil != err {
		return err
	}

	unresolved, err := identifier.UnresolvedMosaicIdFromHex(arguments.Unresolved)
	if nil != err {
		return err
	}

	r.Log.Infof("resolve mosaic: %s at height: %d (%d,%d)", unresolved, arguments.Height, arguments.PrimaryId, arguments.SecondaryId)

	// a concrete value resolves to itself at any height
	if !unresolved.IsAlias() {
		reply.Found = true
		reply.Resolved = unresolved.String()
		return nil
	}

	s, err := r.statement(arguments.Height)
	if nil != err {
		return err
	}

	mosaicId, ok := s.ResolvedMosaicId(arguments.Height, unresolved, arguments.PrimaryId, arguments.SecondaryId)
	reply.Found = ok
	reply.Resolved = ""
	if ok {
		reply.Resolved = mosaicId.String()
	}
	return nil
}
