// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - mosaic and namespace identifiers
//
// A transaction may name an account or a mosaic through a namespace
// alias.  Such a value is "unresolved" until the alias is looked up in
// the block's resolution statements.  Both concrete values and aliases
// satisfy the Unresolved* interfaces so that receipts can carry either.
//
// Wire forms:
//
//	mosaic id         8 bytes little endian
//	namespace id      8 bytes little endian, high bit always set
//	aliased address   (network | 0x01) ++ namespace id ++ 16 zero bytes
package identifier
