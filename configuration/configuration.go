// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/fault"
	"github.com/catapult-tools/statementd/resolver"
	"github.com/catapult-tools/statementd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultNetwork       = account.MijinTestName

	defaultLevelDBDirectory = "data"
	defaultDatabaseName     = "statements"

	defaultInboxDirectory = "inbox"
	defaultCacheExpiry    = "10m"

	defaultLogDirectory = "log"
	defaultLogFile      = "statementd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - leveldb location, the name gets a ".leveldb" suffix
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - everything the commands need
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Network       string               `gluamapper:"network" json:"network"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	CacheExpiry   string               `gluamapper:"cache_expiry" json:"cache_expiry"`
	RateLimit     float64              `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst     int                  `gluamapper:"rate_burst" json:"rate_burst"`
	Inbox         string               `gluamapper:"inbox" json:"inbox"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	networkType account.NetworkType
	expiry      time.Duration
}

// NetworkType - the parsed network name
func (c *Configuration) NetworkType() account.NetworkType {
	return c.networkType
}

// Expiry - the parsed cache expiry
func (c *Configuration) Expiry() time.Duration {
	return c.expiry
}

// DatabasePath - argument for storage.Initialise
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// Load - read decode and verify the configuration
func Load(configurationFileName string, variables map[string]string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Network:       defaultNetwork,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabaseName,
		},
		CacheExpiry: defaultCacheExpiry,
		RateLimit:   resolver.DefaultRateLimit,
		RateBurst:   resolver.DefaultRateBurst,
		Inbox:       defaultInboxDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	options.networkType, err = account.NetworkTypeFromName(options.Network)
	if nil != err {
		return nil, err
	}

	options.expiry, err = time.ParseDuration(options.CacheExpiry)
	if nil != err || options.expiry <= 0 {
		return nil, fmt.Errorf("cache expiry: %q %w", options.CacheExpiry, fault.ErrInvalidCount)
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("path: %q %w", options.DataDirectory, fault.ErrInvalidDirectory)
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q %w", options.DataDirectory, fault.ErrInvalidDirectory)
	}

	// the database name and log file must be plain names
	for _, name := range []string{options.Database.Name, options.Logging.File} {
		switch filepath.Dir(name) {
		case "", ".":
		default:
			return nil, fmt.Errorf("file: %q is not a plain name %w", name, fault.ErrInvalidDirectory)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
		&options.Inbox,
	} {
		*d, err = util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}

	return options, nil
}
