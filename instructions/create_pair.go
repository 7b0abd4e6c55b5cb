// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"fmt"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

var _ Instruction = (*CreatePair)(nil)

const CreatePairSize = consts.OpcodeLen + 2*codec.AddressLen

// CreatePair registers a trading pair. Token order is kept exactly as
// given.
type CreatePair struct {
	Token0 codec.Address `json:"token0" wire:"address"`
	Token1 codec.Address `json:"token1" wire:"address"`
}

// NewCreatePair parses both token addresses from their textual form.
func NewCreatePair(token0, token1 string) (*CreatePair, error) {
	t0, err := codec.ParseAddress(token0)
	if err != nil {
		return nil, fmt.Errorf("token0: %w", err)
	}
	t1, err := codec.ParseAddress(token1)
	if err != nil {
		return nil, fmt.Errorf("token1: %w", err)
	}
	return &CreatePair{Token0: t0, Token1: t1}, nil
}

func (*CreatePair) GetTypeID() uint8 {
	return uint8(OpcodeCreatePair)
}

func (*CreatePair) Size() int {
	return CreatePairSize
}

func (c *CreatePair) Marshal(p *codec.Packer) {
	p.PackByte(byte(OpcodeCreatePair))
	p.PackAddress(c.Token0)
	p.PackAddress(c.Token1)
}

func UnmarshalCreatePair(p *codec.Packer) (Instruction, error) {
	var createPair CreatePair
	unpackOpcode(p, OpcodeCreatePair)
	p.UnpackAddress(&createPair.Token0)
	p.UnpackAddress(&createPair.Token1)
	return &createPair, p.Err()
}
