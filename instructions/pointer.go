// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

// packAmountPair writes pointer || packed(a0) || packed(a1). The pointer is
// the offset of packed(a1) from [start], the first byte of the
// instruction, derived from what has already been written.
func packAmountPair(p *codec.Packer, start int, a0, a1 *big.Int) {
	first, err := codec.PackAmount(a0)
	if err != nil {
		p.AddErr(err)
		return
	}
	p.PackPointer(p.Offset() - start + consts.PointerLen + len(first))
	p.PackFixedBytes(first)
	p.PackAmount(a1)
}

// unpackAmountPair reads the output of [packAmountPair]. Both amounts
// must be at least [consts.MinPackedAmountLen] bytes, so the pointer has
// to land strictly inside the remaining payload.
func unpackAmountPair(p *codec.Packer, start int) (*big.Int, *big.Int) {
	pointer := int(p.UnpackByte())
	if p.Err() != nil {
		return nil, nil
	}
	var (
		split = start + pointer
		first = split - p.Offset()
		rest  = p.Remaining() - first
	)
	if first < consts.MinPackedAmountLen || rest < consts.MinPackedAmountLen {
		p.AddErr(fmt.Errorf("%w: %d", codec.ErrPointerOutOfBounds, pointer))
		return nil, nil
	}
	a0 := p.UnpackAmount(first)
	a1 := p.UnpackAmount(rest)
	return a0, a1
}
