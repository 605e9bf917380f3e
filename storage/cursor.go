// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math/big"

	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/catapult-tools/statementd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// to increment the key
var one = big.NewInt(1)

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil, fault.ErrNotInitialised
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	// advance the start to the key following the last one returned
	if n > 0 {
		keyLen := len(results[n-1].Key)
		start := make([]byte, keyLen+1)
		start[0] = cursor.pool.prefix
		b := big.Int{}
		next := b.SetBytes(results[n-1].Key).Add(&b, one).Bytes()
		if len(next) > keyLen {
			cursor.maxRange.Start = cursor.pool.limit // key was all 0xff
		} else {
			copy(start[1+keyLen-len(next):], next)
			cursor.maxRange.Start = start
		}
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return fault.ErrNotInitialised
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
