// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/catapult-tools/statementd/fault"
)

// limits
const (
	IdentifierLength    = 8
	hexIdentifierLength = 2 * IdentifierLength

	aliasFlag = uint64(1) << 63
)

// MosaicId - a concrete mosaic identifier
type MosaicId uint64

// MosaicIdFromHex - parse 16 hex digits
func MosaicIdFromHex(s string) (MosaicId, error) {
	n, err := parseHexId(s)
	return MosaicId(n), err
}

// GenerateMosaicId - the id derived from a creation nonce and the
// owner's public key
func GenerateMosaicId(nonce uint32, ownerPublicKey []byte) MosaicId {
	n := make([]byte, 4)
	binary.LittleEndian.PutUint32(n, nonce)

	h := sha3.New256()
	h.Write(n)
	h.Write(ownerPublicKey)
	d := h.Sum(nil)

	return MosaicId(binary.LittleEndian.Uint64(d[:IdentifierLength]) &^ aliasFlag)
}

// Id - raw value
func (m MosaicId) Id() uint64 {
	return uint64(m)
}

// Bytes - 8 bytes little endian
func (m MosaicId) Bytes() []byte {
	return uint64Bytes(uint64(m))
}

// IsAlias - a concrete id is never an alias
func (m MosaicId) IsAlias() bool {
	return false
}

// UnresolvedBytes - wire form as an unresolved mosaic
func (m MosaicId) UnresolvedBytes() []byte {
	return m.Bytes()
}

// String - 16 upper case hex digits
func (m MosaicId) String() string {
	return fmt.Sprintf("%016X", uint64(m))
}

// GoString - for the fmt package (%#v)
func (m MosaicId) GoString() string {
	return "<mosaic:" + m.String() + ">"
}

// MarshalText - hex text
func (m MosaicId) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText - hex text
func (m *MosaicId) UnmarshalText(s []byte) error {
	n, err := parseHexId(string(s))
	if nil != err {
		return err
	}
	*m = MosaicId(n)
	return nil
}

func (MosaicId) artifact() {}

func parseHexId(s string) (uint64, error) {
	if hexIdentifierLength != len(s) {
		return 0, fault.ErrInvalidIdentifierLength
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if nil != err {
		return 0, fault.ErrInvalidHex
	}
	return n, nil
}

func uint64Bytes(n uint64) []byte {
	buffer := make([]byte, IdentifierLength)
	binary.LittleEndian.PutUint64(buffer, n)
	return buffer
}
