// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/identifier"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/receipt"
)

const network = account.MijinTest

const receiptsJSON = `{
  "transactionStatements": [
    {
      "meta": {"id": "5D8BEBBE80BD9D0001DC2D4E"},
      "statement": {
        "height": "10",
        "source": {"primaryId": 0, "secondaryId": 0},
        "receipts": [
          {
            "version": 1,
            "type": 8515,
            "targetPublicKey": "b4f12e7c9f6946091e2cb8b6d3a12b50d17ccbbf646386ea27ce2946a7423dcf",
            "mosaicId": "85BBEA6CC462B244",
            "amount": "10"
          },
          {
            "version": 1,
            "type": 4942,
            "senderAddress": "90CCB2D8723A173450E6404FDA1AFAAE0BDAB524508430C75E",
            "recipientAddress": "914BFA5F372D55B38400000000000000000000000000000000",
            "mosaicId": "85BBEA6CC462B244",
            "amount": "1000",
            "size": 78
          },
          {
            "version": 1,
            "type": 16974,
            "artifactId": "D747F3A2987A9B64"
          },
          {
            "version": 1,
            "type": 20803,
            "mosaicId": "85BBEA6CC462B244",
            "amount": 55
          }
        ]
      }
    }
  ],
  "addressResolutionStatements": [
    {
      "statement": {
        "height": "10",
        "unresolved": "90CCB2D8723A173450E6404FDA1AFAAE0BDAB524508430C75E",
        "resolutionEntries": [
          {
            "source": {"primaryId": 1, "secondaryId": 1},
            "resolved": "90CCB2D8723A173450E6404FDA1AFAAE0BDAB524508430C75E"
          }
        ]
      }
    }
  ],
  "mosaicResolutionStatements": [
    {
      "statement": {
        "height": "10",
        "unresolved": "85BBEA6CC462B244",
        "resolutionEntries": [
          {
            "source": {"primaryId": 1, "secondaryId": 1},
            "resolved": "85BBEA6CC462B244"
          }
        ]
      }
    }
  ]
}`

func TestStatementFromJSON(t *testing.T) {
	statement, dto, err := mapping.StatementFromJSON([]byte(receiptsJSON), network)
	require.NoError(t, err, "decode")
	require.NotNil(t, dto, "dto")

	transactions := statement.TransactionStatements()
	require.Equal(t, 1, len(transactions), "transaction statements")

	tx := transactions[0]
	id, ok := tx.RecordId()
	assert.True(t, ok, "record id missing")
	assert.Equal(t, "5D8BEBBE80BD9D0001DC2D4E", id, "record id")
	assert.Equal(t, uint64(10), tx.Height(), "height")

	receipts := tx.Receipts()
	require.Equal(t, 4, len(receipts), "receipts")

	fee, ok := receipts[0].(*receipt.BalanceChangeReceipt)
	require.True(t, ok, "fee type: %T", receipts[0])
	assert.Equal(t, "SARNASAS2BIAB6LMFA3FPMGBPGIJGK6IJETM3ZSP", fee.TargetAddress().Plain(), "target")
	assert.Equal(t, uint64(10), fee.Amount(), "fee amount")

	rental, ok := receipts[1].(*receipt.BalanceTransferReceipt)
	require.True(t, ok, "rental type: %T", receipts[1])
	assert.Equal(t, identifier.NamespaceId(9562080086528621131), rental.RecipientAddress(), "recipient alias")
	size, hasSize := rental.Size()
	assert.True(t, hasSize, "size missing")
	assert.Equal(t, uint32(78), size, "size")

	expiry, ok := receipts[2].(*receipt.ArtifactExpiryReceipt)
	require.True(t, ok, "expiry type: %T", receipts[2])
	assert.Equal(t, identifier.NamespaceId(0xD747F3A2987A9B64), expiry.ArtifactId(), "artifact")

	inflation, ok := receipts[3].(*receipt.InflationReceipt)
	require.True(t, ok, "inflation type: %T", receipts[3])
	assert.Equal(t, uint64(55), inflation.Amount(), "bare number amount")

	hashes := statement.Hashes(network)
	require.Equal(t, 3, len(hashes), "hashes")
	assert.Equal(t, "DD7E0D121A33C7133366F8FD36DD6CD5DE01D9008BA9369D2B7DA1BCCBB04A72", hashes[1].String(), "address statement")
	assert.Equal(t, "9BB7E01FAEA831E790E4A2DE8DBEDB32F73889493F6B1BC02031457CB655F6D0", hashes[2].String(), "mosaic statement")
}

func TestDTORoundTrip(t *testing.T) {
	statement, _, err := mapping.StatementFromJSON([]byte(receiptsJSON), network)
	require.NoError(t, err, "decode")

	dto := mapping.DTOFromStatement(statement, network)
	buffer, err := json.Marshal(dto)
	require.NoError(t, err, "encode")

	again, _, err := mapping.StatementFromJSON(buffer, network)
	require.NoError(t, err, "decode again")

	assert.Equal(t, statement.ReceiptsRoot(network), again.ReceiptsRoot(network), "root changed")
	assert.Equal(t, statement.Hashes(network), again.Hashes(network), "hashes changed")
}

func TestUnknownReceiptType(t *testing.T) {
	dto := mapping.ReceiptDTO{Version: 1, Type: 9999}
	_, err := mapping.ReceiptFromDTO(dto, network)
	assert.ErrorIs(t, err, fault.ErrUnknownReceiptType, "wrong error")
}

func TestGroupIsNotAReceipt(t *testing.T) {
	dto := mapping.ReceiptDTO{Version: 1, Type: uint16(receipt.TransactionGroup)}
	_, err := mapping.ReceiptFromDTO(dto, network)
	assert.ErrorIs(t, err, fault.ErrInvalidReceiptType, "wrong error")
}

func TestUnsupportedVersion(t *testing.T) {
	dto := mapping.ReceiptDTO{Version: 2, Type: uint16(receipt.Inflation), MosaicId: "85BBEA6CC462B244"}
	_, err := mapping.ReceiptFromDTO(dto, network)
	assert.ErrorIs(t, err, fault.ErrUnsupportedVersion, "wrong error")
}

func TestMissingAccount(t *testing.T) {
	dto := mapping.ReceiptDTO{Version: 1, Type: uint16(receipt.HarvestFee), MosaicId: "85BBEA6CC462B244"}
	_, err := mapping.ReceiptFromDTO(dto, network)
	assert.ErrorIs(t, err, fault.ErrInvalidAddress, "wrong error")
}

func TestBadEntryIsReported(t *testing.T) {
	body := `{"mosaicResolutionStatements": [{"statement": {"height": "1", "unresolved": "85BBEA6CC462B244",
	  "resolutionEntries": [{"source": {"primaryId": 1, "secondaryId": 0}, "resolved": "xyz"}]}}]}`
	_, _, err := mapping.StatementFromJSON([]byte(body), network)
	assert.Error(t, err, "bad entry accepted")
	assert.Contains(t, err.Error(), "mosaic resolution statement: 0", "context missing")
}

func TestUint64String(t *testing.T) {
	var u mapping.Uint64String
	require.NoError(t, json.Unmarshal([]byte(`"18446744073709551615"`), &u), "quoted")
	assert.Equal(t, mapping.Uint64String(18446744073709551615), u, "max")

	require.NoError(t, json.Unmarshal([]byte(`42`), &u), "bare")
	assert.Equal(t, mapping.Uint64String(42), u, "bare")

	for _, bad := range []string{`"-1"`, `"12a"`, `"18446744073709551616"`, `""`, `1.5`} {
		err := json.Unmarshal([]byte(bad), &u)
		assert.True(t, fault.IsErrInvalid(err), "%s: wrong error class: %v", bad, err)
		assert.ErrorIs(t, err, fault.ErrInvalidNumber, "%s: wrong error", bad)
		assert.NotErrorIs(t, err, fault.ErrInvalidCount, "%s: reported as a count", bad)
	}
	assert.Equal(t, mapping.Uint64String(42), u, "changed by a failed decode")

	buffer, err := json.Marshal(mapping.Uint64String(7))
	require.NoError(t, err)
	assert.Equal(t, `"7"`, string(buffer), "encoded")
}
