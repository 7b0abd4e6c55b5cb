// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/fvm/consts"
)

// PoolID identifies a pool. It is always written as 4 bytes.
type PoolID uint32

// PairID identifies a trading pair. It is written as 3 bytes, so only
// values up to 2^24-1 are valid; use [NewPairID] to construct one from
// wider input.
type PairID uint32

const MaxPairID PairID = consts.MaxUint24

func NewPairID(v uint64) (PairID, error) {
	if v > uint64(MaxPairID) {
		return 0, fmt.Errorf("%w: %d", ErrPairIDOverflow, v)
	}
	return PairID(v), nil
}

// String renders the id as exactly 8 hex digits.
func (id PoolID) String() string {
	return fmt.Sprintf("%08x", uint32(id))
}

// String renders the id as exactly 6 hex digits.
func (id PairID) String() string {
	return fmt.Sprintf("%06x", uint32(id))
}
