// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// statement-tool - inspect, archive and query block receipt statements
//
// file commands (hash, namespace, unpack) need only --network, the
// archive commands read the Lua configuration given by --config-file,
// see statement-tool.conf.sample
package main
