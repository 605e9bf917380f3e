// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/catapult-tools/statementd/fault"
)

// miscellaneous constants
const (
	AddressLength        = 25 // network byte ++ ripemd160 ++ checksum
	PlainAddressLength   = 40 // base32 of the 25 bytes
	EncodedAddressLength = 50 // hex of the 25 bytes
	PublicKeyLength      = 32

	checksumLength = 4
	hashLength     = 1 + ripemd160.Size

	prettyGroup = 6
)

// Address - a decoded account address
//
// layout: network(1) ++ RIPEMD160(SHA3-256(public key))(20) ++ checksum(4)
// where checksum is the first 4 bytes of SHA3-256 of the first 21 bytes
type Address [AddressLength]byte

// NewAddress - parse a plain (or pretty) address and check that it
// belongs to the expected network
func NewAddress(plain string, network NetworkType) (Address, error) {
	a, err := AddressFromPlain(plain)
	if nil != err {
		return Address{}, err
	}
	if a.NetworkType() != network {
		return Address{}, fault.ErrNetworkMismatch
	}
	return a, nil
}

// AddressFromPlain - parse base32 text, hyphens are ignored
func AddressFromPlain(plain string) (Address, error) {
	s := strings.ToUpper(strings.Replace(strings.TrimSpace(plain), "-", "", -1))
	if PlainAddressLength != len(s) {
		return Address{}, fault.ErrInvalidAddressLength
	}
	if _, err := networkTypeFromPrefix(s[0]); nil != err {
		return Address{}, err
	}
	buffer, err := base32.StdEncoding.DecodeString(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	return AddressFromBytes(buffer)
}

// AddressFromEncoded - parse the hex form used by the REST responses
func AddressFromEncoded(encoded string) (Address, error) {
	if EncodedAddressLength != len(encoded) {
		return Address{}, fault.ErrInvalidAddressLength
	}
	buffer, err := hex.DecodeString(encoded)
	if nil != err {
		return Address{}, fault.ErrInvalidHex
	}
	return AddressFromBytes(buffer)
}

// AddressFromBytes - validate network byte and checksum of a binary address
func AddressFromBytes(buffer []byte) (Address, error) {
	if AddressLength != len(buffer) {
		return Address{}, fault.ErrInvalidAddressLength
	}
	if _, err := NetworkTypeFromByte(buffer[0]); nil != err {
		return Address{}, fault.ErrInvalidNetworkType
	}
	checksum := sha3.Sum256(buffer[:hashLength])
	if !bytes.Equal(checksum[:checksumLength], buffer[hashLength:]) {
		return Address{}, fault.ErrInvalidAddressChecksum
	}
	var a Address
	copy(a[:], buffer)
	return a, nil
}

// AddressFromPublicKey - derive the address of a hex encoded public key
func AddressFromPublicKey(publicKey string, network NetworkType) (Address, error) {
	key, err := hex.DecodeString(publicKey)
	if nil != err || PublicKeyLength != len(key) {
		return Address{}, fault.ErrInvalidPublicKey
	}
	if _, err := NetworkTypeFromByte(byte(network)); nil != err {
		return Address{}, err
	}

	keyHash := sha3.Sum256(key)
	r := ripemd160.New()
	r.Write(keyHash[:])

	var a Address
	a[0] = byte(network)
	copy(a[1:hashLength], r.Sum(nil))
	checksum := sha3.Sum256(a[:hashLength])
	copy(a[hashLength:], checksum[:checksumLength])
	return a, nil
}

// IsValidPlainAddress - true if the text decodes to a checksummed address
func IsValidPlainAddress(plain string) bool {
	_, err := AddressFromPlain(plain)
	return nil == err
}

// NetworkType - the network this address belongs to
func (a Address) NetworkType() NetworkType {
	return NetworkType(a[0])
}

// Bytes - the 25 byte wire form
func (a Address) Bytes() []byte {
	return a[:]
}

// Plain - base32 text, 40 characters
func (a Address) Plain() string {
	return base32.StdEncoding.EncodeToString(a[:])
}

// Pretty - plain text split into groups of 6 by hyphens
func (a Address) Pretty() string {
	plain := a.Plain()
	groups := make([]string, 0, (len(plain)+prettyGroup-1)/prettyGroup)
	for i := 0; i < len(plain); i += prettyGroup {
		j := i + prettyGroup
		if j > len(plain) {
			j = len(plain)
		}
		groups = append(groups, plain[i:j])
	}
	return strings.Join(groups, "-")
}

// Encoded - upper case hex of the 25 bytes
func (a Address) Encoded() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}

// String - for the fmt package
func (a Address) String() string {
	return a.Plain()
}

// GoString - for the fmt package (%#v)
func (a Address) GoString() string {
	return "<address:" + a.Pretty() + ">"
}

// MarshalText - JSON uses the plain form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Plain()), nil
}

// UnmarshalText - accept plain, pretty or hex encoded text
func (a *Address) UnmarshalText(s []byte) error {
	var (
		decoded Address
		err     error
	)
	if EncodedAddressLength == len(s) {
		decoded, err = AddressFromEncoded(string(s))
	} else {
		decoded, err = AddressFromPlain(string(s))
	}
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// IsAlias - a decoded address is always a concrete account
func (a Address) IsAlias() bool {
	return false
}

// UnresolvedAddressBytes - a concrete address is its own unresolved form
// and keeps its own network byte
func (a Address) UnresolvedAddressBytes(network NetworkType) []byte {
	return a.Bytes()
}
