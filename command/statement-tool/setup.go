// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/catapult-tools/statementd/account"
	"github.com/catapult-tools/statementd/identifier"
	"github.com/catapult-tools/statementd/mapping"
	"github.com/catapult-tools/statementd/merkle"
	"github.com/catapult-tools/statementd/receipt"
	"github.com/catapult-tools/statementd/util"
)

type statementHash struct {
	Kind       string        `json:"kind"`
	Id         string        `json:"id,omitempty"`
	Position   string        `json:"position,omitempty"`
	Hash       merkle.Digest `json:"hash"`
	Unresolved string        `json:"unresolved,omitempty"`
}

type hashesInfo struct {
	Network    string          `json:"network"`
	Statements []statementHash `json:"statements"`
	Root       merkle.Digest   `json:"root"`
}

type namespaceLevel struct {
	Name    string `json:"name"`
	Id      string `json:"id"`
	Address string `json:"aliasAddress"`
}

type unpackedReceipt struct {
	Type     string             `json:"type"`
	Length   int                `json:"length"`
	Receipt  mapping.ReceiptDTO `json:"receipt"`
	Trailing int                `json:"trailing,omitempty"`
}

// setup command handler
//
// commands that work only on their arguments, these commands cannot
// access the archive or the configuration file
func processSetupCommand(program string, network account.NetworkType, arguments []string) bool {
	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "hash", "hashes-of":
		fileName := requireArgument(command, arguments, 0, "file")
		if !util.EnsureFileExists(fileName) {
			exitwithstatus.Message("%s: file: %q does not exist", command, fileName)
		}
		buffer, err := ioutil.ReadFile(fileName)
		if nil != err {
			exitwithstatus.Message("%s: read file: %q  error: %s", command, fileName, err)
		}
		statement, _, err := mapping.StatementFromJSON(buffer, network)
		if nil != err {
			exitwithstatus.Message("%s: file: %q  error: %s", command, fileName, err)
		}
		printJson("", statementHashes(statement, network))

	case "namespace", "ns":
		name := requireArgument(command, arguments, 0, "name")
		ids, err := identifier.GenerateNamespacePath(name)
		if nil != err {
			exitwithstatus.Message("%s: name: %q  error: %s", command, name, err)
		}
		parts := strings.Split(name, ".")
		levels := make([]namespaceLevel, len(ids))
		for i, id := range ids {
			levels[i] = namespaceLevel{
				Name:    strings.Join(parts[:i+1], "."),
				Id:      id.String(),
				Address: strings.ToUpper(hex.EncodeToString(id.UnresolvedAddressBytes(network))),
			}
		}
		printJson("", levels)

	case "unpack":
		s := requireArgument(command, arguments, 0, "hex")
		buffer, err := hex.DecodeString(s)
		if nil != err {
			exitwithstatus.Message("%s: hex: %q  error: %s", command, s, err)
		}
		r, n, err := receipt.Packed(buffer).Unpack()
		if nil != err {
			exitwithstatus.Message("%s: error: %s", command, err)
		}
		printJson("", unpackedReceipt{
			Type:     r.Type().String(),
			Length:   n,
			Receipt:  mapping.ReceiptToDTO(r),
			Trailing: len(buffer) - n,
		})

	case "help", "h", "?":
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--network=NAME] [--config-file=FILE] command [args…]\n"+
			"\n"+
			"commands without configuration:\n"+
			"  hash FILE                             - statement hashes and receipts root of a receipts JSON file\n"+
			"  namespace NAME                        - namespace ids of a dotted name and their alias addresses\n"+
			"  unpack HEX                            - decode one packed receipt\n"+
			"  version                               - show version\n"+
			"\n"+
			"commands using --config-file:\n"+
			"  import HEIGHT FILE                    - archive a receipts JSON file\n"+
			"  resolve-address HEIGHT ALIAS P S      - concrete address an alias pointed to at (P,S)\n"+
			"  resolve-mosaic HEIGHT ALIAS P S       - concrete mosaic id an alias pointed to at (P,S)\n"+
			"  hashes HEIGHT                         - statement hashes of an archived block\n"+
			"  proof HEIGHT LEAF                     - merkle path of a statement hash\n"+
			"  verify HEIGHT LEAF PATH               - check a path (L:hash,R:hash,…) against the archived root\n"+
			"  list [START [COUNT]]                  - archived heights\n"+
			"  info                                  - archive status\n"+
			"  watch [DIRECTORY]                     - import HEIGHT.json files as they appear (default: inbox)\n"+
			"\n"+
			"networks: %s %s %s %s",
			program,
			account.MainNetName, account.TestNetName, account.MijinName, account.MijinTestName,
		)

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		return false
	}

	return true
}

// hashes of all statements in merkle leaf order
func statementHashes(statement *receipt.Statement, network account.NetworkType) hashesInfo {
	info := hashesInfo{
		Network:    network.String(),
		Statements: []statementHash{},
	}

	for _, t := range statement.TransactionStatements() {
		id, _ := t.RecordId()
		info.Statements = append(info.Statements, statementHash{
			Kind:     "transaction",
			Id:       id,
			Position: t.Source().String(),
			Hash:     t.GenerateHash(),
		})
	}
	for _, a := range statement.AddressResolutionStatements() {
		id, _ := a.RecordId()
		info.Statements = append(info.Statements, statementHash{
			Kind:       "address",
			Id:         id,
			Hash:       a.GenerateHash(network),
			Unresolved: strings.ToUpper(hex.EncodeToString(a.Unresolved().UnresolvedAddressBytes(network))),
		})
	}
	for _, m := range statement.MosaicResolutionStatements() {
		id, _ := m.RecordId()
		info.Statements = append(info.Statements, statementHash{
			Kind:       "mosaic",
			Id:         id,
			Hash:       m.GenerateHash(network),
			Unresolved: m.Unresolved().String(),
		})
	}

	info.Root = statement.ReceiptsRoot(network)
	return info
}

// fetch a positional argument or exit with a message
func requireArgument(command string, arguments []string, index int, name string) string {
	if index >= len(arguments) {
		exitwithstatus.Message("%s: missing argument: %s", command, name)
	}
	return arguments[index]
}
