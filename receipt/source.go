// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"encoding/binary"
	"fmt"

	"github.com/catapult-tools/statementd/fault"
)

// SourceLength - bytes in a packed source
const SourceLength = 8

// Source - position inside a block that produced a receipt
//
// PrimaryId is the 1 based transaction index and SecondaryId the
// index inside an aggregate, zero for the outer transaction
type Source struct {
	PrimaryId   uint32 `json:"primaryId"`
	SecondaryId uint32 `json:"secondaryId"`
}

// Compare - lexicographic order: -1, 0 or +1
func (s Source) Compare(other Source) int {
	switch {
	case s.PrimaryId < other.PrimaryId:
		return -1
	case s.PrimaryId > other.PrimaryId:
		return 1
	case s.SecondaryId < other.SecondaryId:
		return -1
	case s.SecondaryId > other.SecondaryId:
		return 1
	default:
		return 0
	}
}

// Less - true if s sorts before other
func (s Source) Less(other Source) bool {
	return s.Compare(other) < 0
}

// Pack - 8 byte wire form
func (s Source) Pack() Packed {
	return appendSource(make(Packed, 0, SourceLength), s)
}

// String - for the fmt package
func (s Source) String() string {
	return fmt.Sprintf("(%d,%d)", s.PrimaryId, s.SecondaryId)
}

// SourceFromBytes - decode the 8 byte wire form
func SourceFromBytes(buffer []byte) (Source, error) {
	if len(buffer) < SourceLength {
		return Source{}, fault.ErrTruncatedRecord
	}
	return Source{
		PrimaryId:   binary.LittleEndian.Uint32(buffer[0:4]),
		SecondaryId: binary.LittleEndian.Uint32(buffer[4:8]),
	}, nil
}
