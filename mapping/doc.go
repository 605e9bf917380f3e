// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mapping - convert the node's receipts response into statements
//
// The DTO types mirror the JSON body of /block/{height}/receipts:
//
//	{
//	  "transactionStatements": [
//	    {"meta": {"id": "..."},
//	     "statement": {"height": "10", "source": {"primaryId": 0, "secondaryId": 0},
//	                   "receipts": [{"version": 1, "type": 8515, ...}]}}
//	  ],
//	  "addressResolutionStatements": [
//	    {"statement": {"height": "10", "unresolved": "90...",
//	                   "resolutionEntries": [{"source": {...}, "resolved": "90..."}]}}
//	  ],
//	  "mosaicResolutionStatements": [...]
//	}
//
// Heights and amounts are decimal strings, identifiers are hex and
// addresses are the hex of their 25 byte form.
package mapping
