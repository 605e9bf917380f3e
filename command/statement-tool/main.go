// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/archive"
	"github.com/catapult-tools/statementd/cache"
	"github.com/catapult-tools/statementd/configuration"
	"github.com/catapult-tools/statementd/resolver"
	"github.com/catapult-tools/statementd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "network", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, account.MijinTest, []string{"version"})
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		processSetupCommand(program, account.MijinTest, []string{"help"})
		return
	}

	// the network for commands that run without a configuration
	network := account.MijinTest
	if n := options["network"]; len(n) > 0 {
		network, err = account.NetworkTypeFromName(n[len(n)-1])
		if nil != err {
			exitwithstatus.Message("%s: network error: %s", program, err)
		}
	}

	// these commands do not require the configuration and
	// only work on files or values given as arguments
	if processSetupCommand(program, network, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Load(configurationFile, map[string]string{
		"program": program,
	})
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}
	if len(options["network"]) > 0 && network != theConfiguration.NetworkType() {
		exitwithstatus.Message("%s: network option: %s does not match configuration: %s", program, network, theConfiguration.NetworkType())
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// open the archive, read only unless the command writes
	readOnly := storage.ReadOnly
	if isWriteCommand(arguments[0]) {
		readOnly = storage.ReadWrite
	}
	err = storage.Initialise(theConfiguration.DatabasePath(), readOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	err = cache.Initialise(theConfiguration.Expiry())
	if nil != err {
		log.Criticalf("cache initialise error: %s", err)
		exitwithstatus.Message("cache initialise error: %s", err)
	}
	defer cache.Finalise()

	theArchive, err := archive.New(storage.Pool.Statements, storage.Pool.Roots)
	if nil != err {
		log.Criticalf("archive error: %s", err)
		exitwithstatus.Message("archive error: %s", err)
	}

	r := resolver.New(
		logger.New("resolver"),
		theArchive,
		theConfiguration.NetworkType(),
		theConfiguration.RateLimit,
		theConfiguration.RateBurst,
	)

	if !processDataCommand(program, log, r, theConfiguration, arguments) {
		exitwithstatus.Message("%s: unknown command: %q  try: %s help", program, arguments[0], program)
	}
}
