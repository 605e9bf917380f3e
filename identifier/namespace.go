// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
)

// namespace name limits
const (
	MaximumNameLength     = 64
	MaximumNamespaceDepth = 3

	namespaceSeparator = "."
)

// NamespaceId - identifier of a namespace, also used as an alias
type NamespaceId uint64

// NamespaceIdFromHex - parse 16 hex digits
func NamespaceIdFromHex(s string) (NamespaceId, error) {
	n, err := parseHexId(s)
	return NamespaceId(n), err
}

// NamespaceIdFromName - id of the last part of a dotted path
func NamespaceIdFromName(path string) (NamespaceId, error) {
	ids, err := GenerateNamespacePath(path)
	if nil != err {
		return 0, err
	}
	return ids[len(ids)-1], nil
}

// GenerateNamespaceId - id of a single level name below parent
//
// the root level uses a zero parent
func GenerateNamespaceId(name string, parent NamespaceId) (NamespaceId, error) {
	if err := checkName(name); nil != err {
		return 0, err
	}

	p := make([]byte, IdentifierLength)
	binary.LittleEndian.PutUint64(p, uint64(parent))

	h := sha3.New256()
	h.Write(p)
	h.Write([]byte(name))
	d := h.Sum(nil)

	return NamespaceId(binary.LittleEndian.Uint64(d[:IdentifierLength]) | aliasFlag), nil
}

// GenerateNamespaceIdInPath - id of name (which may itself be dotted)
// below the dotted parent path
func GenerateNamespaceIdInPath(name string, parentPath string) (NamespaceId, error) {
	return NamespaceIdFromName(parentPath + namespaceSeparator + name)
}

// GenerateNamespacePath - ids of every level of a dotted path, root first
func GenerateNamespacePath(path string) ([]NamespaceId, error) {
	parts := strings.Split(path, namespaceSeparator)
	if len(parts) > MaximumNamespaceDepth {
		return nil, fault.ErrNamespaceTooManyLevels
	}

	ids := make([]NamespaceId, 0, len(parts))
	parent := NamespaceId(0)
	for _, name := range parts {
		id, err := GenerateNamespaceId(name, parent)
		if nil != err {
			return nil, err
		}
		ids = append(ids, id)
		parent = id
	}
	return ids, nil
}

// names are lower case letters, digits, '-' and '_' and must start
// with a letter or digit
func checkName(name string) error {
	if 0 == len(name) {
		return fault.ErrInvalidNamespaceName
	}
	if len(name) > MaximumNameLength {
		return fault.ErrNamespaceNameTooLong
	}
	for i := 0; i < len(name); i += 1 {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case (c == '-' || c == '_') && i > 0:
		default:
			return fault.ErrInvalidNamespaceName
		}
	}
	return nil
}

// Id - raw value
func (n NamespaceId) Id() uint64 {
	return uint64(n)
}

// Bytes - 8 bytes little endian
func (n NamespaceId) Bytes() []byte {
	return uint64Bytes(uint64(n))
}

// IsAlias - a namespace id used in place of an address or mosaic is an alias
func (n NamespaceId) IsAlias() bool {
	return true
}

// UnresolvedBytes - wire form as an unresolved mosaic
func (n NamespaceId) UnresolvedBytes() []byte {
	return n.Bytes()
}

// UnresolvedAddressBytes - wire form as an unresolved address
func (n NamespaceId) UnresolvedAddressBytes(network account.NetworkType) []byte {
	buffer := make([]byte, account.AddressLength)
	buffer[0] = byte(network) | addressAliasFlag
	binary.LittleEndian.PutUint64(buffer[1:], uint64(n))
	return buffer
}

// String - 16 upper case hex digits
func (n NamespaceId) String() string {
	return fmt.Sprintf("%016X", uint64(n))
}

// GoString - for the fmt package (%#v)
func (n NamespaceId) GoString() string {
	return "<namespace:" + n.String() + ">"
}

// MarshalText - hex text
func (n NamespaceId) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText - hex text
func (n *NamespaceId) UnmarshalText(s []byte) error {
	v, err := parseHexId(string(s))
	if nil != err {
		return err
	}
	*n = NamespaceId(v)
	return nil
}

func (NamespaceId) artifact() {}
