// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/catapult-tools/statementd/archive"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/merkle"
	"github.com/catapult-tools/statementd/storage"
	"github.com/catapult-tools/statementd/storage/mocks"
)

const (
	dir = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func sampleDTO() *mapping.StatementsDTO {
	size := uint32(78)
	return &mapping.StatementsDTO{
		TransactionStatements: []mapping.TransactionStatementDTO{
			{
				Meta: mapping.MetaDTO{Id: "5D8BEBBE80BD9D0001DC2D4E"},
				Statement: mapping.TransactionStatementBodyDTO{
					Height: 10,
					Source: mapping.SourceDTO{PrimaryId: 1, SecondaryId: 0},
					Receipts: []mapping.ReceiptDTO{
						{
							Version:  1,
							Type:     20803,
							Size:     &size,
							MosaicId: "85BBEA6CC462B244",
							Amount:   55,
						},
					},
				},
			},
		},
		MosaicResolutionStatements: []mapping.ResolutionStatementDTO{
			{
				Statement: mapping.ResolutionStatementBodyDTO{
					Height:     10,
					Unresolved: "85BBEA6CC462B244",
					ResolutionEntries: []mapping.ResolutionEntryDTO{
						{
							Source:   mapping.SourceDTO{PrimaryId: 1, SecondaryId: 1},
							Resolved: "85BBEA6CC462B244",
						},
					},
				},
			},
		},
	}
}

var sampleRoot = merkle.NewDigest([]byte("root"))

func TestPutStoresStatementAndRoot(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	statements := mocks.NewMockHandle(ctl)
	roots := mocks.NewMockHandle(ctl)

	key := storage.HeightKey(10)
	var stored []byte

	statements.EXPECT().Has(key).Return(false).Times(1)
	statements.EXPECT().Put(key, gomock.Any()).Do(func(k []byte, v []byte) {
		stored = v
	}).Times(1)
	roots.EXPECT().Put(key, sampleRoot[:]).Times(1)

	a, err := archive.New(statements, roots)
	require.NoError(t, err, "new")

	err = a.Put(10, sampleDTO(), sampleRoot)
	require.NoError(t, err, "put")

	decoded := &mapping.StatementsDTO{}
	require.NoError(t, cbor.Unmarshal(stored, decoded), "stored value is not cbor")
	assert.Equal(t, sampleDTO(), decoded, "stored value")
}

func TestPutRefusesOverwrite(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	statements := mocks.NewMockHandle(ctl)
	roots := mocks.NewMockHandle(ctl)

	statements.EXPECT().Has(storage.HeightKey(10)).Return(true).Times(1)

	a, err := archive.New(statements, roots)
	require.NoError(t, err, "new")

	err = a.Put(10, sampleDTO(), sampleRoot)
	assert.ErrorIs(t, err, fault.ErrStatementAlreadyArchived, "overwrite")
	assert.True(t, fault.IsErrExists(err), "wrong error class")
}

func TestGetMissing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	statements := mocks.NewMockHandle(ctl)
	roots := mocks.NewMockHandle(ctl)

	statements.EXPECT().Get(storage.HeightKey(11)).Return(nil).Times(1)
	roots.EXPECT().Get(storage.HeightKey(11)).Return(nil).Times(1)

	a, err := archive.New(statements, roots)
	require.NoError(t, err, "new")

	_, err = a.Get(11)
	assert.ErrorIs(t, err, fault.ErrStatementNotFound, "get")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class")

	_, err = a.Root(11)
	assert.ErrorIs(t, err, fault.ErrStatementNotFound, "root")
}

func TestGetCorrupt(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	statements := mocks.NewMockHandle(ctl)
	roots := mocks.NewMockHandle(ctl)

	statements.EXPECT().Get(storage.HeightKey(12)).Return([]byte{0xff, 0x00}).Times(1)
	roots.EXPECT().Get(storage.HeightKey(12)).Return([]byte{1, 2, 3}).Times(1)

	a, err := archive.New(statements, roots)
	require.NoError(t, err, "new")

	_, err = a.Get(12)
	assert.Error(t, err, "corrupt statement accepted")

	_, err = a.Root(12)
	assert.Equal(t, fault.ErrInvalidDigestLength, err, "short root")
}

func TestArchiveOnDatabase(t *testing.T) {
	database := filepath.Join(dir, "archive")
	require.NoError(t, storage.Initialise(database, storage.ReadWrite), "initialise")
	defer func() {
		storage.Finalise()
		_ = os.RemoveAll(database + ".leveldb")
	}()

	a, err := archive.New(storage.Pool.Statements, storage.Pool.Roots)
	require.NoError(t, err, "new")

	_, found := a.LastHeight()
	assert.False(t, found, "empty archive has a height")

	for _, h := range []uint64{300, 10, 257} {
		require.NoError(t, a.Put(h, sampleDTO(), sampleRoot), "put: %d", h)
	}

	last, found := a.LastHeight()
	assert.True(t, found, "no last height")
	assert.Equal(t, uint64(300), last, "last height")

	heights, err := a.Heights(0, 10)
	require.NoError(t, err, "heights")
	assert.Equal(t, []uint64{10, 257, 300}, heights, "all heights")

	heights, err = a.Heights(11, 1)
	require.NoError(t, err, "heights from 11")
	assert.Equal(t, []uint64{257}, heights, "heights from 11")

	dto, err := a.Get(257)
	require.NoError(t, err, "get")
	assert.Equal(t, sampleDTO(), dto, "round trip")

	root, err := a.Root(257)
	require.NoError(t, err, "root")
	assert.Equal(t, sampleRoot, root, "root")

	a.Delete(257)
	assert.False(t, a.Has(257), "deleted height remains")
	assert.True(t, a.Has(300), "other height removed")
}
