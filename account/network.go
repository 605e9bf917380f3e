// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"fmt"
	"strings"

	"github.com/catapult-tools/statementd/fault"
)

// NetworkType - first byte of every address
type NetworkType byte

// enumeration of supported networks
const (
	MainNet   NetworkType = 0x68
	TestNet   NetworkType = 0x98
	Mijin     NetworkType = 0x60
	MijinTest NetworkType = 0x90
)

// names as used in configuration files
const (
	MainNetName   = "public"
	TestNetName   = "public_test"
	MijinName     = "mijin"
	MijinTestName = "mijin_test"
)

// NetworkTypeFromByte - validate a raw network byte
func NetworkTypeFromByte(b byte) (NetworkType, error) {
	switch n := NetworkType(b); n {
	case MainNet, TestNet, Mijin, MijinTest:
		return n, nil
	default:
		return 0, fmt.Errorf("%d %w", b, fault.ErrUnknownNetworkType)
	}
}

// NetworkTypeFromName - accepts the configuration names and the
// upper case constant style names
func NetworkTypeFromName(name string) (NetworkType, error) {
	switch strings.ToLower(name) {
	case MainNetName, "main_net":
		return MainNet, nil
	case TestNetName, "test_net":
		return TestNet, nil
	case MijinName:
		return Mijin, nil
	case MijinTestName:
		return MijinTest, nil
	default:
		return 0, fmt.Errorf("%q %w", name, fault.ErrUnknownNetworkType)
	}
}

// networkTypeFromPrefix - the first character of a plain address
func networkTypeFromPrefix(c byte) (NetworkType, error) {
	switch c {
	case 'N':
		return MainNet, nil
	case 'T':
		return TestNet, nil
	case 'M':
		return Mijin, nil
	case 'S':
		return MijinTest, nil
	default:
		return 0, fault.ErrInvalidNetworkType
	}
}

// String - constant style name
func (n NetworkType) String() string {
	switch n {
	case MainNet:
		return "MAIN_NET"
	case TestNet:
		return "TEST_NET"
	case Mijin:
		return "MIJIN"
	case MijinTest:
		return "MIJIN_TEST"
	default:
		return fmt.Sprintf("NetworkType(%d)", byte(n))
	}
}
