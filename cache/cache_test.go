// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-tools/statementd/cache"
)

func TestPool(t *testing.T) {
	require.NoError(t, cache.Initialise(0), "initialise")
	defer cache.Finalise()

	p := cache.Pool.TestData

	p.Put("key-one", "data-one")
	p.Put("key-two", "data-two")
	p.Put("key-remove-me", "to be deleted")
	p.Delete("key-remove-me")
	p.Put("key-three", "data-three")
	p.Put("key-one", "data-one")     // duplicate
	p.Put("key-three", "data-three") // duplicate
	p.Put("key-four", "data-four")
	p.Put("key-delete-this", "to be deleted")
	p.Put("key-five", "data-five")
	p.Put("key-six", "data-six")
	p.Delete("key-delete-this")
	p.Put("key-seven", "data-seven")
	p.Put("key-one", "data-one(NEW)") // duplicate

	expectedItems := map[string]interface{}{
		"key-one":   "data-one(NEW)",
		"key-two":   "data-two",
		"key-three": "data-three",
		"key-four":  "data-four",
		"key-five":  "data-five",
		"key-six":   "data-six",
		"key-seven": "data-seven",
	}

	assert.Equal(t, len(expectedItems), p.Size(), "size")
	assert.Equal(t, expectedItems, p.Items(), "items")

	v, found := p.Get("key-three")
	assert.True(t, found, "key-three")
	assert.Equal(t, "data-three", v, "key-three")

	_, found = p.Get("key-remove-me")
	assert.False(t, found, "deleted key found")
}

func TestExpiry(t *testing.T) {
	require.NoError(t, cache.Initialise(0), "initialise")
	defer cache.Finalise()

	p := cache.Pool.TestData
	assert.Equal(t, 3*time.Second, p.ExpiresAfter(), "test pool expiry")

	p.Put("key", "value")
	time.Sleep(3500 * time.Millisecond)

	_, found := p.Get("key")
	assert.False(t, found, "item did not expire")
	assert.Equal(t, 0, len(p.Items()), "expired item listed")
}

func TestConfigurableExpiry(t *testing.T) {
	require.NoError(t, cache.Initialise(90*time.Second), "initialise")
	defer cache.Finalise()

	assert.Equal(t, 90*time.Second, cache.Pool.Statements.ExpiresAfter(), "statements")
	assert.Equal(t, 90*time.Second, cache.Pool.Hashes.ExpiresAfter(), "hashes")
	assert.Equal(t, 3*time.Second, cache.Pool.TestData.ExpiresAfter(), "fixed pool changed")

	require.NoError(t, cache.Initialise(0), "initialise")
	assert.Equal(t, 10*time.Minute, cache.Pool.Statements.ExpiresAfter(), "default")
}

func TestHeightKey(t *testing.T) {
	assert.Equal(t, "1473", cache.HeightKey(1473), "height key")
}
