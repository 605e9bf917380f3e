// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -source=handle.go -destination=mocks/handle.go -package=mocks

// Handle - access to a single pool
type Handle interface {
	Put(key []byte, value []byte)
	Delete(key []byte)
	Get(key []byte) []byte
	Has(key []byte) bool
	LastElement() (Element, bool)
	NewFetchCursor() *FetchCursor
}

// PoolHandle - handle for a storage pool
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
	readOnly bool
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// compile time check
var _ Handle = (*PoolHandle)(nil)

// HeightKey - pools indexed by block height use big endian keys
func HeightKey(height uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, height)
	return key
}

// HeightFromKey - inverse of HeightKey, false if the key is not 8 bytes
func HeightFromKey(key []byte) (uint64, bool) {
	if 8 != len(key) {
		return 0, false
	}
	return binary.BigEndian.Uint64(key), true
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Put nil database")
		return
	}
	if p.readOnly {
		logger.Panic("pool.Put read only database")
		return
	}
	err := p.database.Put(p.prefixKey(key), value, nil)
	logger.PanicIfError("pool.Put", err)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Delete nil database")
		return
	}
	err := p.database.Delete(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Delete", err)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false
	}
	value, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return Element{}, false
	}

	iter := p.database.NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result.Key = dataKey
		result.Value = dataValue
		found = true
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.LastElement", err)
	return result, found
}
