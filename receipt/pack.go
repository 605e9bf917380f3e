// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"encoding/binary"
)

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes of the fixed fields
const (
	headerLength = 4
	amountLength = 8
)

// append the version and type header
func appendHeader(buffer Packed, version Version, t Type) Packed {
	buffer = appendUint16(buffer, uint16(version))
	return appendUint16(buffer, uint16(t))
}

// append a source
func appendSource(buffer Packed, s Source) Packed {
	buffer = appendUint32(buffer, s.PrimaryId)
	return appendUint32(buffer, s.SecondaryId)
}

func appendUint16(buffer Packed, value uint16) Packed {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, value)
	return append(buffer, b...)
}

func appendUint32(buffer Packed, value uint32) Packed {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, value)
	return append(buffer, b...)
}

func appendUint64(buffer Packed, value uint64) Packed {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, value)
	return append(buffer, b...)
}
