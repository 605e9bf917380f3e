// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/catapult-tools/statementd/fault"
)

// StatementsDTO - the complete receipts body of one block
type StatementsDTO struct {
	TransactionStatements       []TransactionStatementDTO `json:"transactionStatements" cbor:"transactionStatements"`
	AddressResolutionStatements []ResolutionStatementDTO  `json:"addressResolutionStatements" cbor:"addressResolutionStatements"`
	MosaicResolutionStatements  []ResolutionStatementDTO  `json:"mosaicResolutionStatements" cbor:"mosaicResolutionStatements"`
}

// MetaDTO - database metadata attached by the node
type MetaDTO struct {
	Id string `json:"id,omitempty" cbor:"id,omitempty"`
}

// SourceDTO - receipt source
type SourceDTO struct {
	PrimaryId   uint32 `json:"primaryId" cbor:"primaryId"`
	SecondaryId uint32 `json:"secondaryId" cbor:"secondaryId"`
}

// TransactionStatementDTO - wrapper with metadata
type TransactionStatementDTO struct {
	Meta      MetaDTO                     `json:"meta" cbor:"meta"`
	Statement TransactionStatementBodyDTO `json:"statement" cbor:"statement"`
}

// TransactionStatementBodyDTO - receipts of one transaction
type TransactionStatementBodyDTO struct {
	Height   Uint64String `json:"height" cbor:"height"`
	Source   SourceDTO    `json:"source" cbor:"source"`
	Receipts []ReceiptDTO `json:"receipts" cbor:"receipts"`
}

// ReceiptDTO - union of all receipt bodies, the type selects the fields used
//
// balance receipts may identify accounts by address or, from older
// nodes, by public key
type ReceiptDTO struct {
	Version          uint16       `json:"version" cbor:"version"`
	Type             uint16       `json:"type" cbor:"type"`
	Size             *uint32      `json:"size,omitempty" cbor:"size,omitempty"`
	TargetAddress    string       `json:"targetAddress,omitempty" cbor:"targetAddress,omitempty"`
	TargetPublicKey  string       `json:"targetPublicKey,omitempty" cbor:"targetPublicKey,omitempty"`
	SenderAddress    string       `json:"senderAddress,omitempty" cbor:"senderAddress,omitempty"`
	SenderPublicKey  string       `json:"senderPublicKey,omitempty" cbor:"senderPublicKey,omitempty"`
	RecipientAddress string       `json:"recipientAddress,omitempty" cbor:"recipientAddress,omitempty"`
	MosaicId         string       `json:"mosaicId,omitempty" cbor:"mosaicId,omitempty"`
	Amount           Uint64String `json:"amount,omitempty" cbor:"amount,omitempty"`
	ArtifactId       string       `json:"artifactId,omitempty" cbor:"artifactId,omitempty"`
}

// ResolutionStatementDTO - wrapper with metadata
type ResolutionStatementDTO struct {
	Meta      MetaDTO                    `json:"meta" cbor:"meta"`
	Statement ResolutionStatementBodyDTO `json:"statement" cbor:"statement"`
}

// ResolutionStatementBodyDTO - history of one alias
type ResolutionStatementBodyDTO struct {
	Height            Uint64String         `json:"height" cbor:"height"`
	Unresolved        string               `json:"unresolved" cbor:"unresolved"`
	ResolutionEntries []ResolutionEntryDTO `json:"resolutionEntries" cbor:"resolutionEntries"`
}

// ResolutionEntryDTO - one resolution
type ResolutionEntryDTO struct {
	Source   SourceDTO `json:"source" cbor:"source"`
	Resolved string    `json:"resolved" cbor:"resolved"`
}

// Uint64String - a 64 bit value written as a decimal string in JSON
//
// bare JSON numbers are also accepted
type Uint64String uint64

// MarshalJSON - quoted decimal
func (u Uint64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

// UnmarshalJSON - quoted or bare decimal
func (u *Uint64String) UnmarshalJSON(s []byte) error {
	text := string(s)
	if len(s) >= 2 && '"' == s[0] && '"' == s[len(s)-1] {
		text = string(s[1 : len(s)-1])
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if nil != err {
		return fmt.Errorf("%q %w", text, fault.ErrInvalidNumber)
	}
	*u = Uint64String(n)
	return nil
}
