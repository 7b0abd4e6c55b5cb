// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"math/big"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

var _ Instruction = (*Swap)(nil)

// Swap trades against a pool. SellAsset selects the SwapAsset opcode
// (asset in, quote out) over SwapQuote; the layout is the same for both.
type Swap struct {
	UseMax    bool         `json:"useMax" wire:"mode"`
	PoolID    codec.PoolID `json:"poolId" wire:"uint32"`
	Amount0   *big.Int     `json:"amount0" wire:"amount"`
	Amount1   *big.Int     `json:"amount1" wire:"amount"`
	SellAsset bool         `json:"sellAsset" wire:"mode"`
}

func (s *Swap) opcode() Opcode {
	if s.SellAsset {
		return OpcodeSwapAsset
	}
	return OpcodeSwapQuote
}

func (s *Swap) GetTypeID() uint8 {
	return uint8(s.opcode())
}

func (s *Swap) Size() int {
	return consts.OpcodeLen + consts.PoolIDLen + consts.PointerLen + codec.AmountLen(s.Amount0) + codec.AmountLen(s.Amount1)
}

func (s *Swap) Marshal(p *codec.Packer) {
	start := p.Offset()
	p.PackByte(byte(NewMode(s.opcode(), s.UseMax)))
	p.PackPoolID(s.PoolID)
	packAmountPair(p, start, s.Amount0, s.Amount1)
}

func UnmarshalSwap(p *codec.Packer) (Instruction, error) {
	var swap Swap
	start := p.Offset()
	mode := unpackMode(p, OpcodeSwapQuote, OpcodeSwapAsset)
	swap.UseMax = mode.UseMax()
	swap.SellAsset = mode.Opcode() == OpcodeSwapAsset
	swap.PoolID = p.UnpackPoolID()
	swap.Amount0, swap.Amount1 = unpackAmountPair(p, start)
	return &swap, p.Err()
}
