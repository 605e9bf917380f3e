// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package receipt

import (
	"fmt"
	"sort"

	"github.com/catapult-tools/statementd/fault"
)

// Type - wire code of a receipt or statement
type Type uint16

// enumerate the possible receipt types
const (
	MosaicRentalFee        = Type(0x124d) // 4685
	NamespaceRentalFee     = Type(0x134e) // 4942
	HarvestFee             = Type(0x2143) // 8515
	LockHashCompleted      = Type(0x2248) // 8776
	LockSecretCompleted    = Type(0x2252) // 8786
	LockHashExpired        = Type(0x2348) // 9032
	LockSecretExpired      = Type(0x2352) // 9042
	LockHashCreated        = Type(0x3148) // 12616
	LockSecretCreated      = Type(0x3152) // 12626
	MosaicExpired          = Type(0x414d) // 16717
	NamespaceExpired       = Type(0x414e) // 16718
	NamespaceDeleted       = Type(0x424e) // 16974
	Inflation              = Type(0x5143) // 20803
	TransactionGroup       = Type(0xe143) // 57667
	AddressAliasResolution = Type(0xf143) // 61763
	MosaicAliasResolution  = Type(0xf243) // 62019
)

var typeNames = map[Type]string{
	MosaicRentalFee:        "MOSAIC_RENTAL_FEE",
	NamespaceRentalFee:     "NAMESPACE_RENTAL_FEE",
	HarvestFee:             "HARVEST_FEE",
	LockHashCompleted:      "LOCK_HASH_COMPLETED",
	LockSecretCompleted:    "LOCK_SECRET_COMPLETED",
	LockHashExpired:        "LOCK_HASH_EXPIRED",
	LockSecretExpired:      "LOCK_SECRET_EXPIRED",
	LockHashCreated:        "LOCK_HASH_CREATED",
	LockSecretCreated:      "LOCK_SECRET_CREATED",
	MosaicExpired:          "MOSAIC_EXPIRED",
	NamespaceExpired:       "NAMESPACE_EXPIRED",
	NamespaceDeleted:       "NAMESPACE_DELETED",
	Inflation:              "INFLATION",
	TransactionGroup:       "TRANSACTION_GROUP",
	AddressAliasResolution: "ADDRESS_ALIAS_RESOLUTION",
	MosaicAliasResolution:  "MOSAIC_ALIAS_RESOLUTION",
}

// TypeSet - a fixed category of receipt types
type TypeSet uint8

// receipt categories
const (
	ArtifactExpiryTypes TypeSet = iota + 1
	BalanceChangeTypes
	BalanceTransferTypes
	InflationTypes
	ResolutionStatementTypes
)

// Contains - membership test
func (s TypeSet) Contains(t Type) bool {
	switch s {
	case ArtifactExpiryTypes:
		return MosaicExpired == t || NamespaceExpired == t || NamespaceDeleted == t
	case BalanceChangeTypes:
		switch t {
		case HarvestFee,
			LockHashCreated, LockHashCompleted, LockHashExpired,
			LockSecretCreated, LockSecretCompleted, LockSecretExpired:
			return true
		}
	case BalanceTransferTypes:
		return MosaicRentalFee == t || NamespaceRentalFee == t
	case InflationTypes:
		return Inflation == t
	case ResolutionStatementTypes:
		return AddressAliasResolution == t || MosaicAliasResolution == t
	}
	return false
}

// Types - members of the category in code order
//
// the result is a fresh slice
func (s TypeSet) Types() []Type {
	types := make([]Type, 0, 8)
	for t := range typeNames {
		if s.Contains(t) {
			types = append(types, t)
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// TypeFromUint16 - decode a wire code
func TypeFromUint16(code uint16) (Type, error) {
	t := Type(code)
	if _, ok := typeNames[t]; !ok {
		return 0, fmt.Errorf("%d %w", code, fault.ErrUnknownReceiptType)
	}
	return t, nil
}

// ValidateType - fail if t is not a member of the category
func ValidateType(t Type, category TypeSet) error {
	if !category.Contains(t) {
		return fmt.Errorf("receipt type: [%s] %w", t, fault.ErrInvalidReceiptType)
	}
	return nil
}

// String - constant style name
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("%d", uint16(t))
}

// Version - wire version of a receipt or statement
type Version uint16

// current versions
const (
	BalanceTransferVersion      = Version(1)
	BalanceChangeVersion        = Version(1)
	ArtifactExpiryVersion       = Version(1)
	TransactionStatementVersion = Version(1)
	ResolutionStatementVersion  = Version(1)
	InflationVersion            = Version(1)
)
