// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/catapult-tools/statementd/background"
	"github.com/catapult-tools/statementd/configuration"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/merkle"
	"github.com/catapult-tools/statementd/resolver"
	"github.com/catapult-tools/statementd/watcher"
)

const defaultListCount = 20

type proofInfo struct {
	resolver.ProofReply
	Compact string `json:"compact"`
}

// commands that modify the archive
func isWriteCommand(command string) bool {
	switch command {
	case "import", "watch":
		return true
	default:
		return false
	}
}

// data command handler
//
// commands that need the archive opened from the configuration
func processDataCommand(program string, log *logger.L, r *resolver.Resolver, theConfiguration *configuration.Configuration, arguments []string) bool {
	command := arguments[0]
	arguments = arguments[1:]

	log.Infof("command: %s  arguments: %q", command, arguments)

	switch command {
	case "import":
		height := heightArgument(command, arguments, 0)
		fileName := requireArgument(command, arguments, 1, "file")
		buffer, err := ioutil.ReadFile(fileName)
		if nil != err {
			exitwithstatus.Message("%s: read file: %q  error: %s", command, fileName, err)
		}
		_, dto, err := mapping.StatementFromJSON(buffer, r.Network)
		if nil != err {
			exitwithstatus.Message("%s: file: %q  error: %s", command, fileName, err)
		}

		var reply resolver.ImportReply
		err = r.Import(&resolver.ImportArguments{Height: height, Statements: dto}, &reply)
		if nil != err {
			exitwithstatus.Message("%s: height: %d  error: %s", command, height, err)
		}
		printJson("", reply)

	case "resolve-address", "resolve-mosaic":
		resolveArguments := resolver.ResolveArguments{
			Height:      heightArgument(command, arguments, 0),
			Unresolved:  requireArgument(command, arguments, 1, "alias"),
			PrimaryId:   idArgument(command, arguments, 2, "primary id"),
			SecondaryId: idArgument(command, arguments, 3, "secondary id"),
		}

		var reply resolver.ResolveReply
		var err error
		if "resolve-address" == command {
			err = r.ResolveAddress(&resolveArguments, &reply)
		} else {
			err = r.ResolveMosaic(&resolveArguments, &reply)
		}
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", reply)

	case "hashes":
		var reply resolver.HashesReply
		err := r.Hashes(&resolver.HeightArguments{Height: heightArgument(command, arguments, 0)}, &reply)
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", reply)

	case "proof":
		var reply resolver.ProofReply
		err := r.Proof(&resolver.ProofArguments{
			Height: heightArgument(command, arguments, 0),
			Leaf:   digestArgument(command, arguments, 1, "leaf"),
		}, &reply)
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", proofInfo{
			ProofReply: reply,
			Compact:    merkle.PathString(reply.Path),
		})

	case "verify":
		path, err := merkle.PathFromString(requireArgument(command, arguments, 2, "path"))
		if nil != err {
			exitwithstatus.Message("%s: path error: %s", command, err)
		}

		var reply resolver.VerifyReply
		err = r.Verify(&resolver.VerifyArguments{
			Height: heightArgument(command, arguments, 0),
			Leaf:   digestArgument(command, arguments, 1, "leaf"),
			Path:   path,
		}, &reply)
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", reply)
		if !reply.Valid {
			exitwithstatus.Exit(2)
		}

	case "list":
		start := uint64(0)
		count := defaultListCount
		if len(arguments) > 0 {
			start = heightArgument(command, arguments, 0)
		}
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("%s: count: %q  error: %s", command, arguments[1], err)
			}
			count = n
		}

		var reply resolver.ListReply
		err := r.List(&resolver.ListArguments{Start: start, Count: count}, &reply)
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", reply)

	case "info":
		var reply resolver.InfoReply
		if err := r.Info(&resolver.InfoArguments{}, &reply); nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", reply)

	case "watch":
		directory := theConfiguration.Inbox
		if len(arguments) > 0 {
			directory = arguments[0]
		}
		watch(program, log, r, directory)

	default:
		return false
	}

	return true
}

// run the inbox watcher until a signal arrives
func watch(program string, log *logger.L, r *resolver.Resolver, directory string) {
	inbox, err := watcher.New(directory, r.Network, r)
	if nil != err {
		log.Criticalf("watcher: %q  error: %s", directory, err)
		exitwithstatus.Message("%s: watcher: %q  error: %s", program, directory, err)
	}

	processes := background.Processes{
		inbox,
	}
	p := background.Start(processes, nil)
	defer p.Stop()

	fmt.Printf("watching: %s\n", inbox.Directory())
	fmt.Printf("Waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	fmt.Printf("\nreceived signal: %v\n", sig)
	fmt.Printf("\nshutting down…\n")

	log.Info("shutting down…")
}

func heightArgument(command string, arguments []string, index int) uint64 {
	s := requireArgument(command, arguments, index, "height")
	height, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		exitwithstatus.Message("%s: height: %q  error: %s", command, s, err)
	}
	return height
}

func idArgument(command string, arguments []string, index int, name string) uint32 {
	s := requireArgument(command, arguments, index, name)
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		exitwithstatus.Message("%s: %s: %q  error: %s", command, name, s, err)
	}
	return uint32(n)
}

func digestArgument(command string, arguments []string, index int, name string) merkle.Digest {
	s := requireArgument(command, arguments, index, name)
	d, err := merkle.DigestFromHex(s)
	if nil != err {
		exitwithstatus.Message("%s: %s: %q  error: %s", command, name, s, err)
	}
	return d
}
