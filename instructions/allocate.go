// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"math/big"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

var _ Instruction = (*AllocateOrDeallocate)(nil)

// AllocateOrDeallocate adds liquidity to (or removes it from) a pool.
// When UseMax is set the VM uses the whole balance, but Amount is still
// encoded and must be a valid (possibly zero) amount.
type AllocateOrDeallocate struct {
	ShouldAllocate bool         `json:"shouldAllocate" wire:"mode"`
	UseMax         bool         `json:"useMax" wire:"mode"`
	PoolID         codec.PoolID `json:"poolId" wire:"uint32"`
	Amount         *big.Int     `json:"amount" wire:"amount"`
}

func NewAllocate(useMax bool, poolID codec.PoolID, amount *big.Int) *AllocateOrDeallocate {
	return &AllocateOrDeallocate{
		ShouldAllocate: true,
		UseMax:         useMax,
		PoolID:         poolID,
		Amount:         amount,
	}
}

func NewDeallocate(useMax bool, poolID codec.PoolID, amount *big.Int) *AllocateOrDeallocate {
	return &AllocateOrDeallocate{
		UseMax: useMax,
		PoolID: poolID,
		Amount: amount,
	}
}

func (a *AllocateOrDeallocate) opcode() Opcode {
	if a.ShouldAllocate {
		return OpcodeAllocate
	}
	return OpcodeDeallocate
}

func (a *AllocateOrDeallocate) GetTypeID() uint8 {
	return uint8(a.opcode())
}

func (a *AllocateOrDeallocate) Size() int {
	return consts.OpcodeLen + consts.PoolIDLen + codec.AmountLen(a.Amount)
}

func (a *AllocateOrDeallocate) Marshal(p *codec.Packer) {
	p.PackByte(byte(NewMode(a.opcode(), a.UseMax)))
	p.PackPoolID(a.PoolID)
	p.PackAmount(a.Amount)
}

// UnmarshalAllocateOrDeallocate treats every byte after the pool id as
// the amount.
func UnmarshalAllocateOrDeallocate(p *codec.Packer) (Instruction, error) {
	var a AllocateOrDeallocate
	mode := unpackMode(p, OpcodeAllocate, OpcodeDeallocate)
	a.ShouldAllocate = mode.Opcode() == OpcodeAllocate
	a.UseMax = mode.UseMax()
	a.PoolID = p.UnpackPoolID()
	a.Amount = p.UnpackAmount(p.Remaining())
	return &a, p.Err()
}
