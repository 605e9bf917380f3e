// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/identifier"
)

const (
	network = account.MijinTest

	// SDGLFWDSHILTIUHGIBH5UGX2VYF5VNJEKCCDBR26
	plainAddress = "SDGLFWDSHILTIUHGIBH5UGX2VYF5VNJEKCCDBR26"
	hexAddress   = "90CCB2D8723A173450E6404FDA1AFAAE0BDAB524508430C75E"

	mosaicHex = "85BBEA6CC462B244"
)

func makeAddress(t *testing.T, plain string) account.Address {
	a, err := account.AddressFromPlain(plain)
	require.NoError(t, err, "address: %s", plain)
	return a
}

// derive a valid address from a repeated byte public key
func derivedAddress(t *testing.T, b byte) account.Address {
	key := strings.Repeat(hex.EncodeToString([]byte{b}), account.PublicKeyLength)
	a, err := account.AddressFromPublicKey(key, network)
	require.NoError(t, err, "public key: %s", key)
	return a
}

func mustMosaic(t *testing.T, s string) identifier.MosaicId {
	m, err := identifier.MosaicIdFromHex(s)
	require.NoError(t, err, "mosaic: %s", s)
	return m
}

func toHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
