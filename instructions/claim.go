// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"math/big"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

var _ Instruction = (*Claim)(nil)

// Claim collects the fees owed by a pool.
type Claim struct {
	PoolID codec.PoolID `json:"poolId" wire:"uint32"`
	Fee0   *big.Int     `json:"fee0" wire:"amount"`
	Fee1   *big.Int     `json:"fee1" wire:"amount"`
}

func (*Claim) GetTypeID() uint8 {
	return uint8(OpcodeClaim)
}

func (c *Claim) Size() int {
	return consts.OpcodeLen + consts.PoolIDLen + consts.PointerLen + codec.AmountLen(c.Fee0) + codec.AmountLen(c.Fee1)
}

func (c *Claim) Marshal(p *codec.Packer) {
	start := p.Offset()
	p.PackByte(byte(OpcodeClaim))
	p.PackPoolID(c.PoolID)
	packAmountPair(p, start, c.Fee0, c.Fee1)
}

func UnmarshalClaim(p *codec.Packer) (Instruction, error) {
	var claim Claim
	start := p.Offset()
	unpackOpcode(p, OpcodeClaim)
	claim.PoolID = p.UnpackPoolID()
	claim.Fee0, claim.Fee1 = unpackAmountPair(p, start)
	return &claim, p.Err()
}
