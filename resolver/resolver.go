// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package resolver - answer alias and proof queries against archived
// block statements
//
// calls follow the Arguments/Reply shape so that the same type can be
// registered with net/rpc
package resolver

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/cache"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/merkle"
	"github.com/catapult-tools/statementd/ratelimit"
	"github.com/catapult-tools/statementd/receipt"
)

//go:generate mockgen -source=resolver.go -destination=mocks/archive.go -package=mocks

// Archive - persistent statements by height
type Archive interface {
	Put(height uint64, dto *mapping.StatementsDTO, root merkle.Digest) error
	Has(height uint64) bool
	Get(height uint64) (*mapping.StatementsDTO, error)
	Root(height uint64) (merkle.Digest, error)
	LastHeight() (uint64, bool)
	Heights(start uint64, count int) ([]uint64, error)
}

// defaults for the limiter
const (
	DefaultRateLimit = 200
	DefaultRateBurst = 100
)

// limit for list count
const maximumHeightList = 100

// Resolver - type for resolution calls
type Resolver struct {
	Log     *logger.L
	Limiter *ratelimit.Limiter
	Network account.NetworkType
	Archive Archive
}

// New - create a resolver, cache.Initialise must have been called
func New(log *logger.L, archive Archive, network account.NetworkType, rateLimit float64, rateBurst int) *Resolver {
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	if rateBurst <= 0 {
		rateBurst = DefaultRateBurst
	}
	return &Resolver{
		Log:     log,
		Limiter: ratelimit.New(rateLimit, rateBurst, maximumHeightList),
		Network: network,
		Archive: archive,
	}
}

// fetch the decoded statement for a height, from cache if possible
func (r *Resolver) statement(height uint64) (*receipt.Statement, error) {
	key := cache.HeightKey(height)
	if s, ok := cache.Pool.Statements.Get(key); ok {
		r.Log.Debugf("cache hit: %d", height)
		return s.(*receipt.Statement), nil
	}

	dto, err := r.Archive.Get(height)
	if nil != err {
		return nil, err
	}
	s, err := mapping.StatementFromDTO(dto, r.Network)
	if nil != err {
		r.Log.Errorf("archived statement at height: %d  error: %s", height, err)
		return nil, fmt.Errorf("height: %d: %w", height, err)
	}

	cache.Pool.Statements.Put(key, s)
	return s, nil
}

// merkle leaves of a height, from cache if possible
func (r *Resolver) hashes(height uint64) ([]merkle.Digest, error) {
	key := cache.HeightKey(height)
	if h, ok := cache.Pool.Hashes.Get(key); ok {
		return h.([]merkle.Digest), nil
	}

	s, err := r.statement(height)
	if nil != err {
		return nil, err
	}
	h := s.Hashes(r.Network)
	cache.Pool.Hashes.Put(key, h)
	return h, nil
}
