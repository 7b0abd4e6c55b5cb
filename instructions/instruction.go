// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"fmt"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
)

// Instruction is a single FVM operation.
type Instruction interface {
	// GetTypeID is the opcode of the instruction. For instructions that
	// lead with a [Mode] byte it is the opcode nibble only.
	GetTypeID() uint8

	// Size is the encoded length in bytes. It is only a capacity hint when
	// the instruction cannot be encoded.
	Size() int

	// Marshal writes the instruction into [p]. Invalid values are recorded
	// as an error on [p].
	Marshal(p *codec.Packer)
}

// Marshal encodes [ix].
func Marshal(ix Instruction) ([]byte, error) {
	p := codec.NewWriter(ix.Size(), consts.MaxInt)
	ix.Marshal(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// Unmarshal decodes a single instruction, which must span all of [b].
func Unmarshal(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, codec.ErrInsufficientLength
	}
	op := OpcodeOf(b[0])
	unmarshal, ok := Parser.LookupIndex(uint8(op))
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", codec.ErrUnknownOpcode, b[0])
	}

	p := codec.NewReader(b, len(b))
	ix, err := unmarshal(p)
	if err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %d after %s", codec.ErrTrailingBytes, p.Remaining(), op)
	}
	return ix, nil
}

func decode[T Instruction](b []byte) (T, error) {
	var zero T
	ix, err := Unmarshal(b)
	if err != nil {
		return zero, err
	}
	typed, ok := ix.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %s", ErrUnexpectedOpcode, Opcode(ix.GetTypeID()))
	}
	return typed, nil
}

func DecodeCreatePair(b []byte) (*CreatePair, error) {
	return decode[*CreatePair](b)
}

func DecodeCreatePool(b []byte) (*CreatePool, error) {
	return decode[*CreatePool](b)
}

func DecodeAllocateOrDeallocate(b []byte) (*AllocateOrDeallocate, error) {
	return decode[*AllocateOrDeallocate](b)
}

func DecodeClaim(b []byte) (*Claim, error) {
	return decode[*Claim](b)
}

func DecodeSwap(b []byte) (*Swap, error) {
	return decode[*Swap](b)
}

func DecodeJump(b []byte) (*Jump, error) {
	return decode[*Jump](b)
}
