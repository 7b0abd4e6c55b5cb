// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

var _ Instruction = (*CreatePool)(nil)

// CreatePoolPrefixLen covers the opcode, pair id, controller and the five
// 2 byte pool parameters.
const CreatePoolPrefixLen = consts.OpcodeLen +
	consts.PairIDLen +
	codec.AddressLen +
	5*consts.Uint16Len

type CreatePool struct {
	PairID      codec.PairID  `json:"pairId" wire:"uint24"`
	Controller  codec.Address `json:"controller" wire:"address"`
	PriorityFee uint16        `json:"priorityFee" wire:"uint16"`
	Fee         uint16        `json:"fee" wire:"uint16"`
	Volatility  uint16        `json:"vol" wire:"uint16"`
	Duration    uint16        `json:"dur" wire:"uint16"`
	JIT         uint16        `json:"jit" wire:"uint16"`

	// Price is located through a pointer written after JIT.
	MaxPrice *big.Int `json:"maxPrice" wire:"amount"`
	Price    *big.Int `json:"price" wire:"amount"`
}

// NewCreatePool validates the pair id width and the controller address.
func NewCreatePool(
	pairID uint64,
	controller string,
	priorityFee uint16,
	fee uint16,
	vol uint16,
	dur uint16,
	jit uint16,
	maxPrice *big.Int,
	price *big.Int,
) (*CreatePool, error) {
	id, err := codec.NewPairID(pairID)
	if err != nil {
		return nil, err
	}
	c, err := codec.ParseAddress(controller)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	return &CreatePool{
		PairID:      id,
		Controller:  c,
		PriorityFee: priorityFee,
		Fee:         fee,
		Volatility:  vol,
		Duration:    dur,
		JIT:         jit,
		MaxPrice:    maxPrice,
		Price:       price,
	}, nil
}

func (*CreatePool) GetTypeID() uint8 {
	return uint8(OpcodeCreatePool)
}

func (c *CreatePool) Size() int {
	return CreatePoolPrefixLen + consts.PointerLen + codec.AmountLen(c.MaxPrice) + codec.AmountLen(c.Price)
}

func (c *CreatePool) Marshal(p *codec.Packer) {
	start := p.Offset()
	p.PackByte(byte(OpcodeCreatePool))
	p.PackPairID(c.PairID)
	p.PackAddress(c.Controller)
	p.PackUint16(c.PriorityFee)
	p.PackUint16(c.Fee)
	p.PackUint16(c.Volatility)
	p.PackUint16(c.Duration)
	p.PackUint16(c.JIT)
	packAmountPair(p, start, c.MaxPrice, c.Price)
}

func UnmarshalCreatePool(p *codec.Packer) (Instruction, error) {
	var createPool CreatePool
	start := p.Offset()
	unpackOpcode(p, OpcodeCreatePool)
	createPool.PairID = p.UnpackPairID()
	p.UnpackAddress(&createPool.Controller)
	createPool.PriorityFee = p.UnpackUint16()
	createPool.Fee = p.UnpackUint16()
	createPool.Volatility = p.UnpackUint16()
	createPool.Duration = p.UnpackUint16()
	createPool.JIT = p.UnpackUint16()
	createPool.MaxPrice, createPool.Price = unpackAmountPair(p, start)
	return &createPool, p.Err()
}
