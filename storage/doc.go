// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk statement archive
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. height       = big endian uint64 (8 bytes) so that keys sort by height
// 4. root         = receipts merkle root as 32 byte SHA3-256
//
// Statements:
//
//	S ++ height                - archived block statement
//	                             data: CBOR encoded mapping.StatementsDTO
//	R ++ height                - receipts root of the archived statement
//	                             data: root
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
