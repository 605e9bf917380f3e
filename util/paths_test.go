// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catapult-tools/statementd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/x.log", util.EnsureAbsolute("/data", "x.log"), "relative")
	assert.Equal(t, "/data/log/x.log", util.EnsureAbsolute("/data", "log/../log/x.log"), "cleaned")
	assert.Equal(t, "/var/x.log", util.EnsureAbsolute("/data", "/var/x.log"), "absolute unchanged")
}

func TestEnsureDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "util-test")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(base)

	d, err := util.EnsureDirectory(base, "a/b")
	require.NoError(t, err, "ensure")
	assert.Equal(t, filepath.Join(base, "a", "b"), d, "path")

	info, err := os.Stat(d)
	require.NoError(t, err, "stat")
	assert.True(t, info.IsDir(), "not a directory")

	assert.False(t, util.EnsureFileExists(d), "directory counted as file")

	f := filepath.Join(d, "file")
	require.NoError(t, ioutil.WriteFile(f, []byte("x"), 0600), "write")
	assert.True(t, util.EnsureFileExists(f), "file missing")
	assert.False(t, util.EnsureFileExists(filepath.Join(d, "none")), "missing file found")
}
