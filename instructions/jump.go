// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"fmt"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

var _ Instruction = (*Jump)(nil)

const (
	MaxInstructions   = int(consts.MaxUint8)
	MaxInstructionLen = int(consts.MaxUint8)
)

// PackInstructions batches already encoded instructions as
// AA || count || {len || instruction}*, preserving order.
func PackInstructions(ixns ...[]byte) ([]byte, error) {
	size := consts.OpcodeLen + consts.LengthLen
	for _, ixn := range ixns {
		size += consts.LengthLen + len(ixn)
	}
	p := codec.NewWriter(size, consts.MaxInt)
	packInstructions(p, ixns)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// UnpackInstructions splits a batch back into its encoded instructions.
// The returned slices alias [b].
func UnpackInstructions(b []byte) ([][]byte, error) {
	p := codec.NewReader(b, len(b))
	ixns := unpackInstructions(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %d after batch", codec.ErrTrailingBytes, p.Remaining())
	}
	return ixns, nil
}

func packInstructions(p *codec.Packer, ixns [][]byte) {
	if len(ixns) > MaxInstructions {
		p.AddErr(fmt.Errorf("%w: %d", ErrTooManyInstructions, len(ixns)))
		return
	}
	p.PackByte(byte(OpcodeInstructionJump))
	p.PackByte(byte(len(ixns)))
	for i, ixn := range ixns {
		if len(ixn) > MaxInstructionLen {
			p.AddErr(fmt.Errorf("%w: instruction %d is %d bytes", ErrInstructionTooLarge, i, len(ixn)))
			return
		}
		p.PackByte(byte(len(ixn)))
		p.PackFixedBytes(ixn)
	}
}

func unpackInstructions(p *codec.Packer) [][]byte {
	unpackOpcode(p, OpcodeInstructionJump)
	count := int(p.UnpackByte())
	ixns := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		length := int(p.UnpackByte())
		ixn := p.UnpackFixedBytes(length)
		if p.Err() != nil {
			return nil
		}
		ixns = append(ixns, ixn)
	}
	return ixns
}

// Jump is a decoded instruction batch.
type Jump struct {
	Instructions []Instruction `json:"instructions" wire:"instruction"`
}

func NewJump(ixns ...Instruction) *Jump {
	return &Jump{Instructions: ixns}
}

func (*Jump) GetTypeID() uint8 {
	return uint8(OpcodeInstructionJump)
}

func (j *Jump) Size() int {
	size := consts.OpcodeLen + consts.LengthLen
	for _, ix := range j.Instructions {
		size += consts.LengthLen + ix.Size()
	}
	return size
}

func (j *Jump) Marshal(p *codec.Packer) {
	encoded := make([][]byte, 0, len(j.Instructions))
	for i, ix := range j.Instructions {
		b, err := Marshal(ix)
		if err != nil {
			p.AddErr(fmt.Errorf("instruction %d: %w", i, err))
			return
		}
		encoded = append(encoded, b)
	}
	packInstructions(p, encoded)
}

func UnmarshalJump(p *codec.Packer) (Instruction, error) {
	var jump Jump
	encoded := unpackInstructions(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	jump.Instructions = make([]Instruction, 0, len(encoded))
	for i, b := range encoded {
		ix, err := Unmarshal(b)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		jump.Instructions = append(jump.Instructions, ix)
	}
	return &jump, nil
}
