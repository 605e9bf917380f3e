// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
)

// set on the network byte of an aliased address
const addressAliasFlag = 0x01

// UnresolvedMosaicId - either a MosaicId or a NamespaceId alias
//
// values are comparable with == and a MosaicId never equals a
// NamespaceId with the same numeric value
type UnresolvedMosaicId interface {
	Id() uint64
	IsAlias() bool
	UnresolvedBytes() []byte
	String() string
}

// UnresolvedAddress - either an account.Address or a NamespaceId alias
type UnresolvedAddress interface {
	IsAlias() bool
	UnresolvedAddressBytes(network account.NetworkType) []byte
	String() string
}

// Artifact - the thing an expiry receipt refers to: a MosaicId or a NamespaceId
type Artifact interface {
	Id() uint64
	Bytes() []byte
	String() string
	artifact()
}

// compile time checks
var (
	_ UnresolvedMosaicId = MosaicId(0)
	_ UnresolvedMosaicId = NamespaceId(0)
	_ UnresolvedAddress  = account.Address{}
	_ UnresolvedAddress  = NamespaceId(0)
	_ Artifact           = MosaicId(0)
	_ Artifact           = NamespaceId(0)
)

// UnresolvedMosaicIdFromUint64 - the high bit distinguishes an alias
func UnresolvedMosaicIdFromUint64(n uint64) UnresolvedMosaicId {
	if 0 != n&aliasFlag {
		return NamespaceId(n)
	}
	return MosaicId(n)
}

// UnresolvedMosaicIdFromHex - parse 16 hex digits
func UnresolvedMosaicIdFromHex(s string) (UnresolvedMosaicId, error) {
	n, err := parseHexId(s)
	if nil != err {
		return nil, err
	}
	return UnresolvedMosaicIdFromUint64(n), nil
}

// UnresolvedMosaicIdFromBytes - 8 bytes little endian
func UnresolvedMosaicIdFromBytes(buffer []byte) (UnresolvedMosaicId, error) {
	if IdentifierLength != len(buffer) {
		return nil, fault.ErrInvalidIdentifierLength
	}
	return UnresolvedMosaicIdFromUint64(binary.LittleEndian.Uint64(buffer)), nil
}

// UnresolvedAddressFromBytes - decode the 25 byte wire form
func UnresolvedAddressFromBytes(buffer []byte) (UnresolvedAddress, error) {
	if account.AddressLength != len(buffer) {
		return nil, fault.ErrInvalidAddressLength
	}
	if 0 != buffer[0]&addressAliasFlag {
		if _, err := account.NetworkTypeFromByte(buffer[0] &^ addressAliasFlag); nil != err {
			return nil, fault.ErrInvalidNetworkType
		}
		return NamespaceId(binary.LittleEndian.Uint64(buffer[1 : 1+IdentifierLength])), nil
	}
	return account.AddressFromBytes(buffer)
}

// UnresolvedAddressFromEncoded - decode the hex form used by the REST
// responses, a plain base32 address is also accepted
func UnresolvedAddressFromEncoded(s string) (UnresolvedAddress, error) {
	switch len(s) {
	case account.EncodedAddressLength:
		buffer, err := hex.DecodeString(s)
		if nil != err {
			return nil, fault.ErrInvalidHex
		}
		return UnresolvedAddressFromBytes(buffer)
	case account.PlainAddressLength:
		return account.AddressFromPlain(s)
	default:
		return nil, fault.ErrInvalidAddressLength
	}
}
