// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// a change at (p,0) is not found from a later secondary of the same
// transaction, the previous group is used instead
func TestEntryIndexFallsBackPastOuterEntry(t *testing.T) {
	sources := []Source{{1, 0}, {2, 0}}

	i, ok := entryIndexById(sources, 2, 3)
	assert.True(t, ok, "not found")
	assert.Equal(t, 0, i, "index")

	i, ok = entryIndexById(sources, 2, 0)
	assert.True(t, ok, "exact not found")
	assert.Equal(t, 1, i, "exact index")
}

func TestEntryIndexEmpty(t *testing.T) {
	_, ok := entryIndexById(nil, 5, 5)
	assert.False(t, ok, "found in empty")

	_, ok = entryIndexById([]Source{{3, 1}}, 2, 9)
	assert.False(t, ok, "found before first")
}
