// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"math"
)

// find the index of the entry in effect at a position
//
// entries are only recorded when an alias changes, so the entry in
// effect is the latest one at or before the position:
//
//  1. the primary group is the largest entry primary id <= primaryId
//  2. a later transaction takes the last entry of that group
//  3. inside the group take the largest secondary id <= secondaryId,
//     if that is zero for a non-zero secondaryId the change happened
//     in an earlier transaction so take the last entry of the
//     previous non-empty group
//  4. otherwise the exact (primary, secondary) entry, if present
//
// a zero primary id is the "nothing found" marker throughout
func entryIndexById(sources []Source, primaryId uint32, secondaryId uint32) (int, bool) {
	resolvedPrimaryId := maxPrimaryId(sources, primaryId)
	if 0 == resolvedPrimaryId {
		return 0, false
	}

	if primaryId > resolvedPrimaryId {
		return lastInGroup(sources, resolvedPrimaryId)
	}

	resolvedSecondaryId := maxSecondaryId(sources, resolvedPrimaryId, secondaryId)
	if 0 == resolvedSecondaryId && 0 != secondaryId {
		lastPrimaryId := maxPrimaryId(sources, resolvedPrimaryId-1)
		if 0 == lastPrimaryId {
			return 0, false
		}
		return lastInGroup(sources, lastPrimaryId)
	}

	return indexOfSource(sources, Source{
		PrimaryId:   resolvedPrimaryId,
		SecondaryId: resolvedSecondaryId,
	})
}

// largest primary id not above the limit, zero if none
func maxPrimaryId(sources []Source, limit uint32) uint32 {
	max := uint32(0)
	for _, s := range sources {
		if s.PrimaryId <= limit && s.PrimaryId > max {
			max = s.PrimaryId
		}
	}
	return max
}

// largest secondary id of a primary group not above the limit, zero if none
func maxSecondaryId(sources []Source, primaryId uint32, limit uint32) uint32 {
	max := uint32(0)
	for _, s := range sources {
		if s.PrimaryId == primaryId && s.SecondaryId <= limit && s.SecondaryId > max {
			max = s.SecondaryId
		}
	}
	return max
}

func lastInGroup(sources []Source, primaryId uint32) (int, bool) {
	return indexOfSource(sources, Source{
		PrimaryId:   primaryId,
		SecondaryId: maxSecondaryId(sources, primaryId, math.MaxUint32),
	})
}

func indexOfSource(sources []Source, source Source) (int, bool) {
	for i, s := range sources {
		if s == source {
			return i, true
		}
	}
	return 0, false
}
