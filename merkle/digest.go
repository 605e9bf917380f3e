// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/catapult-tools/statementd/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - type for a SHA3-256 digest
//
// stored in natural byte order and printed as upper case hex,
// which is the form used by the node's REST responses
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// NewDigestOf - digest of the concatenation of several byte slices
// without building the concatenated buffer
func NewDigestOf(parts ...[]byte) Digest {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return strings.ToUpper(hex.EncodeToString(digest[:]))
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + digest.String() + ">"
}

// IsZero - true for the all zero digest used as the empty tree root
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if DigestLength != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidDigestLength
	}
	byteCount, err := hex.Decode(digest[:], s)
	if nil != err {
		return fault.ErrInvalidHex
	}
	if DigestLength != byteCount {
		return fault.ErrInvalidDigestLength
	}
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromHex - parse a 64 character hex string
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	err := d.UnmarshalText([]byte(s))
	return d, err
}
