// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/merkle"
)

func TestDigest(t *testing.T) {
	d := merkle.NewDigest([]byte("hello world"))

	// printf '%s' 'hello world' | sha3sum -a 256
	stringDigest := "644BCC7E564373040999AAC89E7622F3CA71FBA1D972FD94A31C3BFBF24E3938"

	var expected merkle.Digest
	n, err := fmt.Sscan(stringDigest, &expected)
	if nil != err {
		t.Fatalf("hex to digest error: %s", err)
	}
	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	if d != expected {
		t.Errorf("digest = %#v expected %#v", d, expected)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s expected %s", s, stringDigest)
	}

	s = fmt.Sprintf("%#v", d)
	if s != "<SHA3-256:"+stringDigest+">" {
		t.Errorf("hash-v: digest = %s expected %s", s, stringDigest)
	}
}

func TestDigestOfParts(t *testing.T) {
	whole := merkle.NewDigest([]byte("hello world"))
	parts := merkle.NewDigestOf([]byte("hello"), []byte(" "), []byte("world"))
	assert.Equal(t, whole, parts, "split digest differs")
}

func TestDigestText(t *testing.T) {
	d := merkle.NewDigest([]byte("hello world"))

	buffer, err := json.Marshal(d)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"644BCC7E564373040999AAC89E7622F3CA71FBA1D972FD94A31C3BFBF24E3938"`, string(buffer), "wrong JSON")

	var lower merkle.Digest
	err = json.Unmarshal([]byte(`"644bcc7e564373040999aac89e7622f3ca71fba1d972fd94a31c3bfbf24e3938"`), &lower)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, lower, "lower case hex not accepted")

	_, err = merkle.DigestFromHex("644BCC")
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short hex accepted")

	_, err = merkle.DigestFromHex("ZZ4BCC7E564373040999AAC89E7622F3CA71FBA1D972FD94A31C3BFBF24E3938")
	assert.Equal(t, fault.ErrInvalidHex, err, "bad hex accepted")

	var b merkle.Digest
	err = merkle.DigestFromBytes(&b, d[:])
	assert.Nil(t, err, "from bytes error")
	assert.Equal(t, d, b, "wrong digest from bytes")

	err = merkle.DigestFromBytes(&b, d[1:])
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short buffer accepted")
}
