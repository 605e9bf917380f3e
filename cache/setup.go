// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// how often the janitor removes expired items
const cleanupInterval = time.Minute

// PoolData - one expiring key/value store
type PoolData struct {
	items        *gocache.Cache
	expiresAfter time.Duration
}

// all must be exported (i.e. initial capital) or initialisation will panic
//
// the "exp" tag is the default expiry, "configurable" pools take the
// expiry passed to Initialise instead when it is non-zero
type pools struct {
	Statements *PoolData `exp:"10m" configurable:"true"`
	Hashes     *PoolData `exp:"10m" configurable:"true"`
	TestData   *PoolData `exp:"3s"`
}

// Pool is the interface to perform CRUD operations on objects stored in memory
var Pool pools

// Initialise must be called before any operations to Pool
func Initialise(expiry time.Duration) error {
	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {
		exp := gocache.NoExpiration

		fieldInfo := poolType.Field(i)
		expTag := fieldInfo.Tag.Get("exp")
		if len(expTag) > 0 {
			d, err := time.ParseDuration(expTag)
			if nil != err {
				return fmt.Errorf("invalid time duration: %s", expTag)
			}
			exp = d
		}
		if expiry > 0 && "true" == fieldInfo.Tag.Get("configurable") {
			exp = expiry
		}

		p := &PoolData{
			items:        gocache.New(exp, cleanupInterval),
			expiresAfter: exp,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Finalise - drop everything
func Finalise() {
	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {
		if p, ok := poolValue.Field(i).Interface().(*PoolData); ok && nil != p {
			p.items.Flush()
		}
	}
}

// HeightKey - key for pools indexed by block height
func HeightKey(height uint64) string {
	return strconv.FormatUint(height, 10)
}

// Put - store with the pool's default expiry
func (p *PoolData) Put(key string, value interface{}) {
	p.items.Set(key, value, gocache.DefaultExpiration)
}

// Get - nil, false if absent or expired
func (p *PoolData) Get(key string) (interface{}, bool) {
	return p.items.Get(key)
}

// Delete - remove a key
func (p *PoolData) Delete(key string) {
	p.items.Delete(key)
}

// Items - copy of all unexpired items
func (p *PoolData) Items() map[string]interface{} {
	items := p.items.Items()
	m := make(map[string]interface{}, len(items))
	for k, v := range items {
		if v.Expired() {
			continue
		}
		m[k] = v.Object
	}
	return m
}

// Size - number of items, possibly including expired ones not yet removed
func (p *PoolData) Size() int {
	return p.items.ItemCount()
}

// ExpiresAfter - the pool's expiry
func (p *PoolData) ExpiresAfter() time.Duration {
	return p.expiresAfter
}
