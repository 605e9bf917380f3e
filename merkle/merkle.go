// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"strings"

	"github.com/catapult-tools/statementd/fault"
)

// FullMerkleTree - compute the complete tree from a set of leaf hashes
//
// structure is:
//  1. N * leaf digests
//  2. level 1..m digests
//  3. merkle root digest
//
// an odd node at any level is paired with itself
func FullMerkleTree(leaves []Digest) []Digest {

	// compute length of ids + all tree levels including root
	idCount := len(leaves)
	if 0 == idCount {
		return nil
	}

	totalLength := 1 // all ids + space for the final root
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	// add initial ids
	tree := make([]Digest, totalLength)
	copy(tree[:], leaves)

	n := idCount
	j := 0
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			tree[n] = NewDigestOf(tree[j][:], tree[k][:])
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the merkle root of a set of leaves
//
// an empty set has the zero digest as its root
func Root(leaves []Digest) Digest {
	tree := FullMerkleTree(leaves)
	if 0 == len(tree) {
		return Digest{}
	}
	return tree[len(tree)-1]
}

// Position - which side a path item sits relative to the running hash
type Position uint8

// sibling positions
const (
	Left  Position = 1
	Right Position = 2
)

// String - single letter form used on the command line
func (p Position) String() string {
	switch p {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// MarshalText - JSON encoding as the node uses it
func (p Position) MarshalText() ([]byte, error) {
	switch p {
	case Left:
		return []byte("left"), nil
	case Right:
		return []byte("right"), nil
	default:
		return nil, fault.ErrInvalidMerklePath
	}
}

// UnmarshalText - accept both "left"/"right" and "L"/"R"
func (p *Position) UnmarshalText(s []byte) error {
	switch strings.ToLower(string(s)) {
	case "left", "l":
		*p = Left
	case "right", "r":
		*p = Right
	default:
		return fault.ErrInvalidMerklePath
	}
	return nil
}

// PathItem - one sibling on the way from a leaf to the root
type PathItem struct {
	Hash     Digest   `json:"hash"`
	Position Position `json:"position"`
}

// BuildPath - the sibling path proving leaves[index] is part of Root(leaves)
func BuildPath(leaves []Digest, index int) ([]PathItem, error) {
	if index < 0 || index >= len(leaves) {
		return nil, fault.ErrInvalidCount
	}

	tree := FullMerkleTree(leaves)
	path := make([]PathItem, 0, 8)

	base := 0
	for width := len(leaves); width > 1; width = (width + 1) / 2 {
		sibling := index ^ 1
		position := Right
		if 1 == index&1 {
			position = Left
		}
		if sibling >= width {
			sibling = index // odd node is paired with itself
		}
		path = append(path, PathItem{
			Hash:     tree[base+sibling],
			Position: position,
		})
		base += width
		index /= 2
	}
	return path, nil
}

// VerifyPath - check that the leaf combined along path produces root
func VerifyPath(leaf Digest, path []PathItem, root Digest) bool {
	hash := leaf
	for _, item := range path {
		switch item.Position {
		case Left:
			hash = NewDigestOf(item.Hash[:], hash[:])
		case Right:
			hash = NewDigestOf(hash[:], item.Hash[:])
		default:
			return false
		}
	}
	return hash == root
}

// PathString - compact "L:hash,R:hash" form of a path
func PathString(path []PathItem) string {
	items := make([]string, len(path))
	for i, item := range path {
		items[i] = item.Position.String() + ":" + item.Hash.String()
	}
	return strings.Join(items, ",")
}

// PathFromString - parse the compact form, an empty string is an
// empty path
func PathFromString(s string) ([]PathItem, error) {
	if "" == s {
		return []PathItem{}, nil
	}
	items := strings.Split(s, ",")
	path := make([]PathItem, len(items))
	for i, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), ":", 2)
		if 2 != len(parts) {
			return nil, fault.ErrInvalidMerklePath
		}
		if err := path[i].Position.UnmarshalText([]byte(parts[0])); nil != err {
			return nil, err
		}
		d, err := DigestFromHex(parts[1])
		if nil != err {
			return nil, err
		}
		path[i].Hash = d
	}
	return path, nil
}
