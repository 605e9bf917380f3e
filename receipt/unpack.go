// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"encoding/binary"
	"fmt"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/identifier"
)

// total sizes of each receipt record
const (
	artifactExpiryLength  = headerLength + identifier.IdentifierLength
	balanceChangeLength   = headerLength + identifier.IdentifierLength + amountLength + account.AddressLength
	balanceTransferLength = balanceChangeLength + account.AddressLength
	inflationLength       = headerLength + identifier.IdentifierLength + amountLength
)

// read the version and type header
func unpackHeader(record []byte) (Version, Type, error) {
	if len(record) < headerLength {
		return 0, 0, fault.ErrTruncatedRecord
	}
	version := Version(binary.LittleEndian.Uint16(record[0:2]))
	t, err := TypeFromUint16(binary.LittleEndian.Uint16(record[2:4]))
	if nil != err {
		return 0, 0, err
	}
	return version, t, nil
}

func checkVersion(actual Version, expected Version) error {
	if actual != expected {
		return fmt.Errorf("version: %d %w", actual, fault.ErrUnsupportedVersion)
	}
	return nil
}

// Unpack - turn a byte slice into a receipt
//
// returns the receipt and the number of bytes it occupied so that
// a sequence of receipts can be decoded
//
// must cast result to correct type
//
// e.g.
//
//	switch r := result.(type) {
//	case *receipt.BalanceChangeReceipt:
func (record Packed) Unpack() (Receipt, int, error) {
	version, t, err := unpackHeader(record)
	if nil != err {
		return nil, 0, err
	}

	n := headerLength

	switch {
	case BalanceChangeTypes.Contains(t):
		if err := checkVersion(version, BalanceChangeVersion); nil != err {
			return nil, 0, err
		}
		if len(record) < balanceChangeLength {
			return nil, 0, fault.ErrTruncatedRecord
		}
		mosaicId := identifier.MosaicId(binary.LittleEndian.Uint64(record[n:]))
		n += identifier.IdentifierLength
		amount := binary.LittleEndian.Uint64(record[n:])
		n += amountLength
		target, err := account.AddressFromBytes(record[n : n+account.AddressLength])
		if nil != err {
			return nil, 0, err
		}
		n += account.AddressLength

		r, err := NewBalanceChangeReceipt(t, target, mosaicId, amount)
		return r, n, err

	case BalanceTransferTypes.Contains(t):
		if err := checkVersion(version, BalanceTransferVersion); nil != err {
			return nil, 0, err
		}
		if len(record) < balanceTransferLength {
			return nil, 0, fault.ErrTruncatedRecord
		}
		mosaicId := identifier.MosaicId(binary.LittleEndian.Uint64(record[n:]))
		n += identifier.IdentifierLength
		amount := binary.LittleEndian.Uint64(record[n:])
		n += amountLength
		sender, err := account.AddressFromBytes(record[n : n+account.AddressLength])
		if nil != err {
			return nil, 0, err
		}
		n += account.AddressLength
		recipient, err := identifier.UnresolvedAddressFromBytes(record[n : n+account.AddressLength])
		if nil != err {
			return nil, 0, err
		}
		n += account.AddressLength

		r, err := NewBalanceTransferReceipt(t, sender, recipient, mosaicId, amount)
		return r, n, err

	case ArtifactExpiryTypes.Contains(t):
		if err := checkVersion(version, ArtifactExpiryVersion); nil != err {
			return nil, 0, err
		}
		if len(record) < artifactExpiryLength {
			return nil, 0, fault.ErrTruncatedRecord
		}
		id := binary.LittleEndian.Uint64(record[n:])
		n += identifier.IdentifierLength

		var artifact identifier.Artifact = identifier.NamespaceId(id)
		if MosaicExpired == t {
			artifact = identifier.MosaicId(id)
		}
		r, err := NewArtifactExpiryReceipt(t, artifact)
		return r, n, err

	case InflationTypes.Contains(t):
		if err := checkVersion(version, InflationVersion); nil != err {
			return nil, 0, err
		}
		if len(record) < inflationLength {
			return nil, 0, fault.ErrTruncatedRecord
		}
		mosaicId := identifier.MosaicId(binary.LittleEndian.Uint64(record[n:]))
		n += identifier.IdentifierLength
		amount := binary.LittleEndian.Uint64(record[n:])
		n += amountLength

		r, err := NewInflationReceipt(t, mosaicId, amount)
		return r, n, err

	default:
		return nil, 0, fmt.Errorf("receipt type: [%s] %w", t, fault.ErrInvalidReceiptType)
	}
}

// UnpackAddressResolutionEntry - decode one entry, returns bytes used
func UnpackAddressResolutionEntry(record []byte) (*AddressResolutionEntry, int, error) {
	source, err := SourceFromBytes(record)
	if nil != err {
		return nil, 0, err
	}
	n := SourceLength
	if len(record) < n+account.AddressLength {
		return nil, 0, fault.ErrTruncatedRecord
	}
	resolved, err := account.AddressFromBytes(record[n : n+account.AddressLength])
	if nil != err {
		return nil, 0, err
	}
	n += account.AddressLength

	e, err := NewAddressResolutionEntry(resolved, source, AddressAliasResolution)
	return e, n, err
}

// UnpackMosaicResolutionEntry - decode one entry, returns bytes used
func UnpackMosaicResolutionEntry(record []byte) (*MosaicResolutionEntry, int, error) {
	source, err := SourceFromBytes(record)
	if nil != err {
		return nil, 0, err
	}
	n := SourceLength
	if len(record) < n+identifier.IdentifierLength {
		return nil, 0, fault.ErrTruncatedRecord
	}
	resolved := identifier.MosaicId(binary.LittleEndian.Uint64(record[n:]))
	n += identifier.IdentifierLength

	e, err := NewMosaicResolutionEntry(resolved, source, MosaicAliasResolution)
	return e, n, err
}

// UnpackResolutionStatement - decode a packed resolution statement
//
// the encoding carries no entry count so entries are read until the
// record is exhausted, height and record id are not part of the encoding
func UnpackResolutionStatement(recordId string, height uint64, record []byte) (ResolutionStatement, error) {
	version, t, err := unpackHeader(record)
	if nil != err {
		return nil, err
	}
	if err := checkVersion(version, ResolutionStatementVersion); nil != err {
		return nil, err
	}
	n := headerLength

	switch t {
	case AddressAliasResolution:
		if len(record) < n+account.AddressLength {
			return nil, fault.ErrTruncatedRecord
		}
		unresolved, err := identifier.UnresolvedAddressFromBytes(record[n : n+account.AddressLength])
		if nil != err {
			return nil, err
		}
		n += account.AddressLength

		entries := make([]*AddressResolutionEntry, 0, 4)
		for n < len(record) {
			e, used, err := UnpackAddressResolutionEntry(record[n:])
			if nil != err {
				return nil, err
			}
			entries = append(entries, e)
			n += used
		}
		return NewAddressResolutionStatement(recordId, height, unresolved, entries)

	case MosaicAliasResolution:
		if len(record) < n+identifier.IdentifierLength {
			return nil, fault.ErrTruncatedRecord
		}
		unresolved, err := identifier.UnresolvedMosaicIdFromBytes(record[n : n+identifier.IdentifierLength])
		if nil != err {
			return nil, err
		}
		n += identifier.IdentifierLength

		entries := make([]*MosaicResolutionEntry, 0, 4)
		for n < len(record) {
			e, used, err := UnpackMosaicResolutionEntry(record[n:])
			if nil != err {
				return nil, err
			}
			entries = append(entries, e)
			n += used
		}
		return NewMosaicResolutionStatement(recordId, height, unresolved, entries)

	default:
		return nil, fmt.Errorf("receipt type: [%s] %w", t, fault.ErrInvalidReceiptType)
	}
}

// UnpackTransactionStatement - decode a packed transaction statement
//
// receipts are read until the record is exhausted
func UnpackTransactionStatement(recordId string, height uint64, record []byte) (*TransactionStatement, error) {
	version, t, err := unpackHeader(record)
	if nil != err {
		return nil, err
	}
	if TransactionGroup != t {
		return nil, fmt.Errorf("receipt type: [%s] %w", t, fault.ErrInvalidReceiptType)
	}
	if err := checkVersion(version, TransactionStatementVersion); nil != err {
		return nil, err
	}
	n := headerLength

	source, err := SourceFromBytes(record[n:])
	if nil != err {
		return nil, err
	}
	n += SourceLength

	receipts := make([]Receipt, 0, 4)
	for n < len(record) {
		r, used, err := Packed(record[n:]).Unpack()
		if nil != err {
			return nil, err
		}
		receipts = append(receipts, r)
		n += used
	}
	return NewTransactionStatement(recordId, height, source, receipts)
}
