// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/identifier"
	"github.com/catapult-tools/statementd/receipt"
)

func addressEntry(t *testing.T, a account.Address, p uint32, s uint32) *receipt.AddressResolutionEntry {
	e, err := receipt.NewAddressResolutionEntry(a, receipt.Source{PrimaryId: p, SecondaryId: s}, receipt.AddressAliasResolution)
	require.NoError(t, err, "entry (%d,%d)", p, s)
	return e
}

func mosaicEntry(t *testing.T, m identifier.MosaicId, p uint32, s uint32) *receipt.MosaicResolutionEntry {
	e, err := receipt.NewMosaicResolutionEntry(m, receipt.Source{PrimaryId: p, SecondaryId: s}, receipt.MosaicAliasResolution)
	require.NoError(t, err, "entry (%d,%d)", p, s)
	return e
}

func TestAddressStatementHash(t *testing.T) {
	a := makeAddress(t, plainAddress)

	s, err := receipt.NewAddressResolutionStatement("", 10, a, []*receipt.AddressResolutionEntry{
		addressEntry(t, a, 1, 1),
	})
	require.NoError(t, err, "create")

	_, hasId := s.RecordId()
	assert.False(t, hasId, "unexpected record id")
	assert.Equal(t, uint64(10), s.Height(), "height")
	assert.Equal(t, receipt.AddressResolution, s.ResolutionType(), "resolution type")

	expected := "DD7E0D121A33C7133366F8FD36DD6CD5DE01D9008BA9369D2B7DA1BCCBB04A72"
	assert.Equal(t, expected, s.GenerateHash(network).String(), "hash")

	// round trip through the binary form
	u, err := receipt.UnpackResolutionStatement("", 10, s.Pack(network))
	require.NoError(t, err, "unpack")
	assert.Equal(t, expected, u.GenerateHash(network).String(), "unpacked hash")
}

func TestMosaicStatementHash(t *testing.T) {
	unresolved, err := identifier.UnresolvedMosaicIdFromHex(mosaicHex)
	require.NoError(t, err, "unresolved")

	s, err := receipt.NewMosaicResolutionStatement("5CA4AA5E7C0A5A0001E6C0FE", 10, unresolved, []*receipt.MosaicResolutionEntry{
		mosaicEntry(t, mustMosaic(t, mosaicHex), 1, 1),
	})
	require.NoError(t, err, "create")

	id, hasId := s.RecordId()
	assert.True(t, hasId, "missing record id")
	assert.Equal(t, "5CA4AA5E7C0A5A0001E6C0FE", id, "record id")

	expected := "9BB7E01FAEA831E790E4A2DE8DBEDB32F73889493F6B1BC02031457CB655F6D0"
	assert.Equal(t, expected, s.GenerateHash(network).String(), "hash")

	u, err := receipt.UnpackResolutionStatement("", 10, s.Pack(network))
	require.NoError(t, err, "unpack")
	assert.Equal(t, unresolved, u.(*receipt.MosaicResolutionStatement).Unresolved(), "unresolved")
	assert.Equal(t, expected, u.GenerateHash(network).String(), "unpacked hash")
}

func TestAliasedAddressStatementRoundTrip(t *testing.T) {
	alias := identifier.NamespaceId(0xB86D9DC6A3678565)
	a1 := derivedAddress(t, 0x01)
	a2 := derivedAddress(t, 0x02)

	s, err := receipt.NewAddressResolutionStatement("", 99, alias, []*receipt.AddressResolutionEntry{
		addressEntry(t, a1, 1, 0),
		addressEntry(t, a2, 2, 3),
	})
	require.NoError(t, err, "create")

	packed := s.Pack(network)
	assert.Equal(t, byte(network)|0x01, packed[4], "alias network byte")

	u, err := receipt.UnpackResolutionStatement("", 99, packed)
	require.NoError(t, err, "unpack")
	as := u.(*receipt.AddressResolutionStatement)
	assert.Equal(t, alias, as.Unresolved(), "unresolved")
	assert.Equal(t, s.Sources(), as.Sources(), "sources")
	assert.Equal(t, packed, as.Pack(network), "repack")
}

func TestAddressResolutionScenario(t *testing.T) {
	ns1, err := identifier.NamespaceIdFromName("addressnamespace1")
	require.NoError(t, err, "namespace")
	a1 := derivedAddress(t, 0xa1)
	a2 := derivedAddress(t, 0xa2)

	s, err := receipt.NewAddressResolutionStatement("", 1473, ns1, []*receipt.AddressResolutionEntry{
		addressEntry(t, a1, 1, 0),
		addressEntry(t, a2, 3, 5),
	})
	require.NoError(t, err, "create")
	statement := receipt.NewStatement(nil, []*receipt.AddressResolutionStatement{s}, nil)

	tests := []struct {
		p, s     uint32
		expected account.Address
	}{
		{4, 0, a2},
		{2, 1, a1},
		{3, 6, a2},
	}
	for i, item := range tests {
		actual, ok := statement.ResolvedAddress(1473, ns1, item.p, item.s)
		assert.True(t, ok, "%d: (%d,%d) not found", i, item.p, item.s)
		assert.Equal(t, item.expected, actual, "%d: (%d,%d)", i, item.p, item.s)

		actual, ok = receipt.ResolveAddress([]*receipt.AddressResolutionStatement{s}, 1473, ns1, item.p, item.s)
		assert.True(t, ok, "%d: static (%d,%d) not found", i, item.p, item.s)
		assert.Equal(t, item.expected, actual, "%d: static (%d,%d)", i, item.p, item.s)
	}

	_, ok := statement.ResolvedAddress(1474, ns1, 4, 0)
	assert.False(t, ok, "resolved at other height")

	other := identifier.NamespaceId(0xB86D9DC6A3678566)
	_, ok = statement.ResolvedAddress(1473, other, 4, 0)
	assert.False(t, ok, "resolved other alias")

	// concrete addresses need no statement
	actual, ok := statement.ResolvedAddress(1, a1, 9, 9)
	assert.True(t, ok, "concrete not resolved")
	assert.Equal(t, a1, actual, "concrete changed")
}

func TestMosaicResolutionScenario(t *testing.T) {
	ns4, err := identifier.NamespaceIdFromName("mosaicnamespace1")
	require.NoError(t, err, "namespace")
	const (
		m1 = identifier.MosaicId(0x1111)
		m2 = identifier.MosaicId(0x2222)
		m3 = identifier.MosaicId(0x3333)
		m4 = identifier.MosaicId(0x4444)
	)

	s, err := receipt.NewMosaicResolutionStatement("", 1500, ns4, []*receipt.MosaicResolutionEntry{
		mosaicEntry(t, m1, 1, 1),
		mosaicEntry(t, m2, 1, 4),
		mosaicEntry(t, m3, 1, 7),
		mosaicEntry(t, m4, 2, 4),
	})
	require.NoError(t, err, "create")
	statement := receipt.NewStatement(nil, nil, []*receipt.MosaicResolutionStatement{s})

	tests := []struct {
		p, s     uint32
		expected identifier.MosaicId
	}{
		{1, 1, m1},
		{1, 4, m2},
		{1, 7, m3},
		{2, 1, m3},
		{2, 4, m4},
		{1, 6, m2},
		{1, 2, m1},
		{5, 0, m4},
	}
	for i, item := range tests {
		actual, ok := statement.ResolvedMosaicId(1500, ns4, item.p, item.s)
		assert.True(t, ok, "%d: (%d,%d) not found", i, item.p, item.s)
		assert.Equal(t, item.expected, actual, "%d: (%d,%d)", i, item.p, item.s)
	}

	_, ok := statement.ResolvedMosaicId(1500, ns4, 1, 0)
	assert.False(t, ok, "(1,0) resolved before first entry")

	actual, ok := statement.ResolvedMosaicId(1500, m3, 1, 0)
	assert.True(t, ok, "concrete not resolved")
	assert.Equal(t, m3, actual, "concrete changed")
}

// entries may be stored in any order
func TestResolutionOrderInsensitive(t *testing.T) {
	ns := identifier.NamespaceId(0xA5362C92E1FBC248)
	ordered, err := receipt.NewMosaicResolutionStatement("", 1, ns, []*receipt.MosaicResolutionEntry{
		mosaicEntry(t, 10, 1, 0),
		mosaicEntry(t, 20, 2, 2),
		mosaicEntry(t, 30, 3, 0),
	})
	require.NoError(t, err)
	shuffled, err := receipt.NewMosaicResolutionStatement("", 1, ns, []*receipt.MosaicResolutionEntry{
		mosaicEntry(t, 30, 3, 0),
		mosaicEntry(t, 10, 1, 0),
		mosaicEntry(t, 20, 2, 2),
	})
	require.NoError(t, err)

	for p := uint32(1); p <= 4; p += 1 {
		for s := uint32(0); s <= 3; s += 1 {
			e1, ok1 := ordered.EntryById(p, s)
			e2, ok2 := shuffled.EntryById(p, s)
			require.Equal(t, ok1, ok2, "(%d,%d) presence", p, s)
			if ok1 {
				assert.Equal(t, e1.Resolved(), e2.Resolved(), "(%d,%d)", p, s)
			}
		}
	}
}

func TestDuplicateSource(t *testing.T) {
	ns := identifier.NamespaceId(0xA5362C92E1FBC248)
	_, err := receipt.NewMosaicResolutionStatement("", 1, ns, []*receipt.MosaicResolutionEntry{
		mosaicEntry(t, 10, 1, 0),
		mosaicEntry(t, 20, 1, 0),
	})
	assert.ErrorIs(t, err, fault.ErrDuplicateSource, "duplicate accepted")
}

func TestEntryTypeChecks(t *testing.T) {
	_, err := receipt.NewAddressResolutionEntry(makeAddress(t, plainAddress), receipt.Source{}, receipt.MosaicAliasResolution)
	assert.ErrorIs(t, err, fault.ErrInvalidResolvedType, "mosaic type for address")

	_, err = receipt.NewMosaicResolutionEntry(1, receipt.Source{}, receipt.HarvestFee)
	assert.ErrorIs(t, err, fault.ErrInvalidReceiptType, "harvest fee")
}

func TestGenericResolutionStatement(t *testing.T) {
	a := makeAddress(t, plainAddress)
	ns := identifier.NamespaceId(0xB86D9DC6A3678565)

	s, err := receipt.NewResolutionStatement("", receipt.AddressResolution, 5, ns, []receipt.ResolutionEntry{
		addressEntry(t, a, 1, 0),
	})
	require.NoError(t, err, "address statement")
	assert.Equal(t, receipt.AddressResolution, s.ResolutionType(), "resolution type")

	_, err = receipt.NewResolutionStatement("", receipt.AddressResolution, 5, ns, []receipt.ResolutionEntry{
		mosaicEntry(t, 1, 1, 0),
	})
	assert.ErrorIs(t, err, fault.ErrResolutionTypeMismatch, "mosaic entry in address statement")

	_, err = receipt.NewResolutionStatement("", receipt.MosaicResolution, 5, a, nil)
	assert.ErrorIs(t, err, fault.ErrInvalidUnresolvedType, "address as mosaic")

	_, err = receipt.NewResolutionStatement("", receipt.AddressResolution, 5, identifier.MosaicId(1), nil)
	assert.ErrorIs(t, err, fault.ErrInvalidUnresolvedType, "mosaic as address")

	_, err = receipt.NewResolutionStatement("", receipt.ResolutionType(7), 5, ns, nil)
	assert.ErrorIs(t, err, fault.ErrUnknownResolutionType, "unknown resolution")
}

// duplicates are found wherever they sit in stored order
func TestDuplicateSourceNotAdjacent(t *testing.T) {
	ns := identifier.NamespaceId(0xA5362C92E1FBC248)
	_, err := receipt.NewMosaicResolutionStatement("", 1, ns, []*receipt.MosaicResolutionEntry{
		mosaicEntry(t, 10, 3, 1),
		mosaicEntry(t, 20, 1, 0),
		mosaicEntry(t, 30, 2, 0),
		mosaicEntry(t, 40, 3, 1),
	})
	assert.ErrorIs(t, err, fault.ErrDuplicateSource, "duplicate accepted")
	assert.Contains(t, err.Error(), "(3,1)", "wrong source reported")

	// same primary, different secondary is not a duplicate
	_, err = receipt.NewMosaicResolutionStatement("", 1, ns, []*receipt.MosaicResolutionEntry{
		mosaicEntry(t, 10, 3, 1),
		mosaicEntry(t, 20, 3, 0),
		mosaicEntry(t, 30, 1, 3),
	})
	assert.Nil(t, err, "distinct sources rejected")
}

func TestSourceOrder(t *testing.T) {
	ordered := []receipt.Source{
		{PrimaryId: 0, SecondaryId: 0},
		{PrimaryId: 0, SecondaryId: 9},
		{PrimaryId: 1, SecondaryId: 0},
		{PrimaryId: 1, SecondaryId: 1},
		{PrimaryId: 2, SecondaryId: 0},
	}
	for i, a := range ordered {
		for j, b := range ordered {
			assert.Equal(t, i < j, a.Less(b), "%s < %s", a, b)
			switch {
			case i < j:
				assert.Equal(t, -1, a.Compare(b), "compare %s %s", a, b)
			case i > j:
				assert.Equal(t, 1, a.Compare(b), "compare %s %s", a, b)
			default:
				assert.Equal(t, 0, a.Compare(b), "compare %s %s", a, b)
			}
		}
	}
}

func TestResolutionTypeFromUint8(t *testing.T) {
	r, err := receipt.ResolutionTypeFromUint8(0)
	assert.Nil(t, err, "address")
	assert.Equal(t, receipt.AddressResolution, r, "address")
	assert.Equal(t, receipt.AddressAliasResolution, r.ReceiptType(), "address receipt type")

	r, err = receipt.ResolutionTypeFromUint8(1)
	assert.Nil(t, err, "mosaic")
	assert.Equal(t, receipt.MosaicResolution, r, "mosaic")
	assert.Equal(t, receipt.MosaicAliasResolution, r.ReceiptType(), "mosaic receipt type")

	_, err = receipt.ResolutionTypeFromUint8(2)
	assert.True(t, fault.IsErrRecord(err), "wrong error class")
	assert.ErrorIs(t, err, fault.ErrUnknownResolutionType, "wrong error")
	assert.Equal(t, "2 is not a valid resolution type", err.Error(), "wrong message")

	// checked before any entry is examined
	_, err = receipt.NewResolutionStatement("", receipt.ResolutionType(2), 5, identifier.NamespaceId(1), []receipt.ResolutionEntry{
		mosaicEntry(t, 1, 1, 0),
	})
	assert.ErrorIs(t, err, fault.ErrUnknownResolutionType, "unknown resolution with entries")
}
