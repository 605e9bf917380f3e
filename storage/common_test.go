// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/catapult-tools/statementd/storage"
)

const (
	dir = "testing"
)

// test database file
var databaseFileName = filepath.Join(dir, "test")

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

// configure for testing
func setup(t *testing.T) {
	_ = os.RemoveAll(databaseFileName + ".leveldb")
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	_ = os.RemoveAll(databaseFileName + ".leveldb")
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

var (
	testKey        = []byte("key-three")
	testData       = "data-three"
	nonExistantKey = []byte("/nonexistant")
)
