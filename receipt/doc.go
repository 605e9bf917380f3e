// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package receipt - block execution receipts and alias resolution statements
//
// All values are immutable after construction and may be shared
// between goroutines without locking.
//
// Binary layouts (all integers little endian):
//
//	header                 version(2) ++ type(2)
//	artifact expiry        header ++ artifact id(8)
//	balance change         header ++ mosaic id(8) ++ amount(8) ++ target(25)
//	balance transfer       header ++ mosaic id(8) ++ amount(8) ++ sender(25) ++ recipient(25)
//	inflation              header ++ mosaic id(8) ++ amount(8)
//	source                 primary id(4) ++ secondary id(4)
//	resolution entry       source(8) ++ address(25) | mosaic id(8)
//	resolution statement   header ++ unresolved(25 | 8) ++ entries...
//	transaction statement  header ++ source(8) ++ receipts...
//
// The statement hashes are SHA3-256 of the statement layouts above.
package receipt
