// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"fmt"

	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/merkle"
)

// TransactionStatement - all receipts produced by one transaction
type TransactionStatement struct {
	recordId string
	height   uint64
	source   Source
	receipts []Receipt
}

// NewTransactionStatement - the receipts are copied
func NewTransactionStatement(recordId string, height uint64, source Source, receipts []Receipt) (*TransactionStatement, error) {
	owned := make([]Receipt, len(receipts))
	for i, r := range receipts {
		if nil == r {
			return nil, fmt.Errorf("receipt: %d %w", i, fault.ErrInvalidReceipt)
		}
		owned[i] = r
	}
	return &TransactionStatement{
		recordId: recordId,
		height:   height,
		source:   source,
		receipts: owned,
	}, nil
}

// RecordId - database id assigned by the node, if any
func (t *TransactionStatement) RecordId() (string, bool) {
	return t.recordId, "" != t.recordId
}

// Height - block height of the statement
func (t *TransactionStatement) Height() uint64 {
	return t.height
}

// Source - the transaction that produced the receipts
func (t *TransactionStatement) Source() Source {
	return t.source
}

// Receipts - copy of the receipts in stored order
func (t *TransactionStatement) Receipts() []Receipt {
	r := make([]Receipt, len(t.receipts))
	copy(r, t.receipts)
	return r
}

// Pack - header ++ source ++ receipts
func (t *TransactionStatement) Pack() Packed {
	buffer := make(Packed, 0, 128)
	buffer = appendHeader(buffer, TransactionStatementVersion, TransactionGroup)
	buffer = appendSource(buffer, t.source)
	for _, r := range t.receipts {
		buffer = append(buffer, r.Pack()...)
	}
	return buffer
}

// GenerateHash - SHA3-256 of the packed statement
func (t *TransactionStatement) GenerateHash() merkle.Digest {
	return merkle.NewDigest(t.Pack())
}
