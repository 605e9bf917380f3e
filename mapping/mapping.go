// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/identifier"
	"github.com/catapult-tools/statementd/receipt"
)

// StatementFromJSON - decode a receipts response body
func StatementFromJSON(buffer []byte, network account.NetworkType) (*receipt.Statement, *StatementsDTO, error) {
	dto := &StatementsDTO{}
	if err := json.Unmarshal(buffer, dto); nil != err {
		return nil, nil, err
	}
	statement, err := StatementFromDTO(dto, network)
	if nil != err {
		return nil, nil, err
	}
	return statement, dto, nil
}

// StatementFromDTO - build the block statement
//
// the network is needed to derive addresses from public keys
func StatementFromDTO(dto *StatementsDTO, network account.NetworkType) (*receipt.Statement, error) {
	transactions := make([]*receipt.TransactionStatement, 0, len(dto.TransactionStatements))
	for i, t := range dto.TransactionStatements {
		s, err := TransactionStatementFromDTO(t, network)
		if nil != err {
			return nil, fmt.Errorf("transaction statement: %d: %w", i, err)
		}
		transactions = append(transactions, s)
	}

	addresses := make([]*receipt.AddressResolutionStatement, 0, len(dto.AddressResolutionStatements))
	for i, a := range dto.AddressResolutionStatements {
		s, err := AddressResolutionStatementFromDTO(a)
		if nil != err {
			return nil, fmt.Errorf("address resolution statement: %d: %w", i, err)
		}
		addresses = append(addresses, s)
	}

	mosaics := make([]*receipt.MosaicResolutionStatement, 0, len(dto.MosaicResolutionStatements))
	for i, m := range dto.MosaicResolutionStatements {
		s, err := MosaicResolutionStatementFromDTO(m)
		if nil != err {
			return nil, fmt.Errorf("mosaic resolution statement: %d: %w", i, err)
		}
		mosaics = append(mosaics, s)
	}

	return receipt.NewStatement(transactions, addresses, mosaics), nil
}

// TransactionStatementFromDTO - convert one transaction statement
func TransactionStatementFromDTO(dto TransactionStatementDTO, network account.NetworkType) (*receipt.TransactionStatement, error) {
	receipts := make([]receipt.Receipt, 0, len(dto.Statement.Receipts))
	for i, r := range dto.Statement.Receipts {
		converted, err := ReceiptFromDTO(r, network)
		if nil != err {
			return nil, fmt.Errorf("receipt: %d: %w", i, err)
		}
		receipts = append(receipts, converted)
	}
	return receipt.NewTransactionStatement(
		dto.Meta.Id,
		uint64(dto.Statement.Height),
		sourceFromDTO(dto.Statement.Source),
		receipts,
	)
}

// AddressResolutionStatementFromDTO - convert one address resolution statement
func AddressResolutionStatementFromDTO(dto ResolutionStatementDTO) (*receipt.AddressResolutionStatement, error) {
	unresolved, err := identifier.UnresolvedAddressFromEncoded(dto.Statement.Unresolved)
	if nil != err {
		return nil, err
	}

	entries := make([]*receipt.AddressResolutionEntry, 0, len(dto.Statement.ResolutionEntries))
	for _, e := range dto.Statement.ResolutionEntries {
		var resolved account.Address
		if err := resolved.UnmarshalText([]byte(e.Resolved)); nil != err {
			return nil, err
		}
		entry, err := receipt.NewAddressResolutionEntry(resolved, sourceFromDTO(e.Source), receipt.AddressAliasResolution)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return receipt.NewAddressResolutionStatement(dto.Meta.Id, uint64(dto.Statement.Height), unresolved, entries)
}

// MosaicResolutionStatementFromDTO - convert one mosaic resolution statement
func MosaicResolutionStatementFromDTO(dto ResolutionStatementDTO) (*receipt.MosaicResolutionStatement, error) {
	unresolved, err := identifier.UnresolvedMosaicIdFromHex(dto.Statement.Unresolved)
	if nil != err {
		return nil, err
	}

	entries := make([]*receipt.MosaicResolutionEntry, 0, len(dto.Statement.ResolutionEntries))
	for _, e := range dto.Statement.ResolutionEntries {
		resolved, err := identifier.MosaicIdFromHex(e.Resolved)
		if nil != err {
			return nil, err
		}
		entry, err := receipt.NewMosaicResolutionEntry(resolved, sourceFromDTO(e.Source), receipt.MosaicAliasResolution)
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return receipt.NewMosaicResolutionStatement(dto.Meta.Id, uint64(dto.Statement.Height), unresolved, entries)
}

// ReceiptFromDTO - dispatch on the receipt type
func ReceiptFromDTO(dto ReceiptDTO, network account.NetworkType) (receipt.Receipt, error) {
	t, err := receipt.TypeFromUint16(dto.Type)
	if nil != err {
		return nil, err
	}
	if 0 != dto.Version && 1 != dto.Version {
		return nil, fmt.Errorf("version: %d %w", dto.Version, fault.ErrUnsupportedVersion)
	}

	options := make([]receipt.Option, 0, 1)
	if nil != dto.Size {
		options = append(options, receipt.WithSize(*dto.Size))
	}

	switch {
	case receipt.BalanceChangeTypes.Contains(t):
		target, err := accountAddress(dto.TargetAddress, dto.TargetPublicKey, network)
		if nil != err {
			return nil, err
		}
		mosaicId, err := identifier.MosaicIdFromHex(dto.MosaicId)
		if nil != err {
			return nil, err
		}
		return receipt.NewBalanceChangeReceipt(t, target, mosaicId, uint64(dto.Amount), options...)

	case receipt.BalanceTransferTypes.Contains(t):
		sender, err := accountAddress(dto.SenderAddress, dto.SenderPublicKey, network)
		if nil != err {
			return nil, err
		}
		recipient, err := identifier.UnresolvedAddressFromEncoded(dto.RecipientAddress)
		if nil != err {
			return nil, err
		}
		mosaicId, err := identifier.MosaicIdFromHex(dto.MosaicId)
		if nil != err {
			return nil, err
		}
		return receipt.NewBalanceTransferReceipt(t, sender, recipient, mosaicId, uint64(dto.Amount), options...)

	case receipt.ArtifactExpiryTypes.Contains(t):
		var artifact identifier.Artifact
		if receipt.MosaicExpired == t {
			artifact, err = identifier.MosaicIdFromHex(dto.ArtifactId)
		} else {
			artifact, err = identifier.NamespaceIdFromHex(dto.ArtifactId)
		}
		if nil != err {
			return nil, err
		}
		return receipt.NewArtifactExpiryReceipt(t, artifact, options...)

	case receipt.InflationTypes.Contains(t):
		mosaicId, err := identifier.MosaicIdFromHex(dto.MosaicId)
		if nil != err {
			return nil, err
		}
		return receipt.NewInflationReceipt(t, mosaicId, uint64(dto.Amount), options...)

	default:
		return nil, fmt.Errorf("receipt type: [%s] %w", t, fault.ErrInvalidReceiptType)
	}
}

// an address field takes priority over a public key
func accountAddress(address string, publicKey string, network account.NetworkType) (account.Address, error) {
	switch {
	case "" != address:
		var a account.Address
		err := a.UnmarshalText([]byte(address))
		return a, err
	case "" != publicKey:
		return account.AddressFromPublicKey(publicKey, network)
	default:
		return account.Address{}, fault.ErrInvalidAddress
	}
}

func sourceFromDTO(s SourceDTO) receipt.Source {
	return receipt.Source{
		PrimaryId:   s.PrimaryId,
		SecondaryId: s.SecondaryId,
	}
}

// ---

// DTOFromStatement - the inverse conversion, used for export
//
// addresses are always written as hex, never as public keys
func DTOFromStatement(statement *receipt.Statement, network account.NetworkType) *StatementsDTO {
	dto := &StatementsDTO{
		TransactionStatements:       make([]TransactionStatementDTO, 0, len(statement.TransactionStatements())),
		AddressResolutionStatements: make([]ResolutionStatementDTO, 0, len(statement.AddressResolutionStatements())),
		MosaicResolutionStatements:  make([]ResolutionStatementDTO, 0, len(statement.MosaicResolutionStatements())),
	}

	for _, t := range statement.TransactionStatements() {
		id, _ := t.RecordId()
		receipts := make([]ReceiptDTO, 0, len(t.Receipts()))
		for _, r := range t.Receipts() {
			receipts = append(receipts, ReceiptToDTO(r))
		}
		dto.TransactionStatements = append(dto.TransactionStatements, TransactionStatementDTO{
			Meta: MetaDTO{Id: id},
			Statement: TransactionStatementBodyDTO{
				Height:   Uint64String(t.Height()),
				Source:   sourceToDTO(t.Source()),
				Receipts: receipts,
			},
		})
	}

	for _, a := range statement.AddressResolutionStatements() {
		id, _ := a.RecordId()
		entries := make([]ResolutionEntryDTO, 0, len(a.Entries()))
		for _, e := range a.Entries() {
			entries = append(entries, ResolutionEntryDTO{
				Source:   sourceToDTO(e.Source()),
				Resolved: e.Resolved().Encoded(),
			})
		}
		dto.AddressResolutionStatements = append(dto.AddressResolutionStatements, ResolutionStatementDTO{
			Meta: MetaDTO{Id: id},
			Statement: ResolutionStatementBodyDTO{
				Height:            Uint64String(a.Height()),
				Unresolved:        toHex(a.Unresolved().UnresolvedAddressBytes(network)),
				ResolutionEntries: entries,
			},
		})
	}

	for _, m := range statement.MosaicResolutionStatements() {
		id, _ := m.RecordId()
		entries := make([]ResolutionEntryDTO, 0, len(m.Entries()))
		for _, e := range m.Entries() {
			entries = append(entries, ResolutionEntryDTO{
				Source:   sourceToDTO(e.Source()),
				Resolved: e.Resolved().String(),
			})
		}
		dto.MosaicResolutionStatements = append(dto.MosaicResolutionStatements, ResolutionStatementDTO{
			Meta: MetaDTO{Id: id},
			Statement: ResolutionStatementBodyDTO{
				Height:            Uint64String(m.Height()),
				Unresolved:        fmt.Sprintf("%016X", m.Unresolved().Id()),
				ResolutionEntries: entries,
			},
		})
	}

	return dto
}

// ReceiptToDTO - the JSON shape of one receipt
func ReceiptToDTO(r receipt.Receipt) ReceiptDTO {
	dto := ReceiptDTO{
		Version: uint16(r.Version()),
		Type:    uint16(r.Type()),
	}
	if size, ok := r.Size(); ok {
		dto.Size = &size
	}

	switch tx := r.(type) {
	case *receipt.BalanceChangeReceipt:
		dto.TargetAddress = tx.TargetAddress().Encoded()
		dto.MosaicId = tx.MosaicId().String()
		dto.Amount = Uint64String(tx.Amount())

	case *receipt.BalanceTransferReceipt:
		sender := tx.SenderAddress()
		dto.SenderAddress = sender.Encoded()
		dto.RecipientAddress = toHex(tx.RecipientAddress().UnresolvedAddressBytes(sender.NetworkType()))
		dto.MosaicId = tx.MosaicId().String()
		dto.Amount = Uint64String(tx.Amount())

	case *receipt.ArtifactExpiryReceipt:
		dto.ArtifactId = tx.ArtifactId().String()

	case *receipt.InflationReceipt:
		dto.MosaicId = tx.MosaicId().String()
		dto.Amount = Uint64String(tx.Amount())
	}
	return dto
}

func sourceToDTO(s receipt.Source) SourceDTO {
	return SourceDTO{
		PrimaryId:   s.PrimaryId,
		SecondaryId: s.SecondaryId,
	}
}

func toHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
