// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Wire widths, in bytes.
const (
	ByteLen    = 1
	Uint16Len  = 2
	PairIDLen  = 3
	PoolIDLen  = 4
	AddressLen = 20

	// OpcodeLen and PointerLen are single bytes; LengthLen prefixes each
	// member of an instruction batch.
	OpcodeLen  = ByteLen
	PointerLen = ByteLen
	LengthLen  = ByteLen
)

const (
	MaxUint8  = ^uint8(0)
	MaxUint16 = ^uint16(0)
	MaxUint24 = 1<<24 - 1
	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)
)

// MinPackedAmountLen is the exponent byte plus a single mantissa byte.
const MinPackedAmountLen = 2

const HexPrefix = "0x"
