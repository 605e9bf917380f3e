// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - path helpers shared by configuration and commands
package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - absolute form of the path, created if missing
func EnsureDirectory(directory string, path string) (string, error) {
	path = EnsureAbsolute(directory, path)
	if err := os.MkdirAll(path, 0700); nil != err {
		return "", err
	}
	return path, nil
}

// EnsureFileExists - check if a regular file exists
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}
