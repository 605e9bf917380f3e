// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache maintains the memory data store
//
//	***** Data Structure *****
//
//	Pool             Key                Value                    ExpiresAfter
//	|___ Statements  height (decimal)   *receipt.Statement       configurable, default 10m
//	|___ Hashes      height (decimal)   []merkle.Digest          configurable, default 10m
//	|___ TestData    string             anything                 3s
//
//	***** Purpose *****
//
//	Statements:
//	  decoded statements so that repeated resolutions at one height do
//	  not decode the archived record again
//
//	Hashes:
//	  merkle leaves of a statement for proof building
//
// Expired items are removed by the go-cache janitor.
package cache
