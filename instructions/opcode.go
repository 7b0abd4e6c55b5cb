// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"fmt"

	"github.com/ava-labs/fvm/codec"
)

type Opcode uint8

const (
	OpcodeAllocate        Opcode = 0x01
	OpcodeDeallocate      Opcode = 0x03
	OpcodeClaim           Opcode = 0x04
	OpcodeSwapQuote       Opcode = 0x05
	OpcodeSwapAsset       Opcode = 0x06
	OpcodeCreatePool      Opcode = 0x0B
	OpcodeCreatePair      Opcode = 0x0C
	OpcodeInstructionJump Opcode = 0xAA
)

func (o Opcode) String() string {
	switch o {
	case OpcodeAllocate:
		return "Allocate"
	case OpcodeDeallocate:
		return "Deallocate"
	case OpcodeClaim:
		return "Claim"
	case OpcodeSwapQuote:
		return "SwapQuote"
	case OpcodeSwapAsset:
		return "SwapAsset"
	case OpcodeCreatePool:
		return "CreatePool"
	case OpcodeCreatePair:
		return "CreatePair"
	case OpcodeInstructionJump:
		return "InstructionJump"
	default:
		return fmt.Sprintf("Opcode(0x%02x)", uint8(o))
	}
}

// moded reports whether [o] shares its leading byte with a use-max flag.
func (o Opcode) moded() bool {
	switch o {
	case OpcodeAllocate, OpcodeDeallocate, OpcodeSwapQuote, OpcodeSwapAsset:
		return true
	default:
		return false
	}
}

// Mode is the leading byte of Allocate, Deallocate, SwapQuote and
// SwapAsset instructions. The high nibble is the use-max flag (0 or 1)
// and the low nibble is the opcode.
type Mode uint8

func NewMode(op Opcode, useMax bool) Mode {
	m := Mode(op & 0x0f)
	if useMax {
		m |= 1 << 4
	}
	return m
}

func (m Mode) Opcode() Opcode {
	return Opcode(m & 0x0f)
}

func (m Mode) UseMax() bool {
	return m>>4 == 1
}

func (m Mode) valid() bool {
	return m>>4 <= 1 && m.Opcode().moded()
}

// OpcodeOf returns the opcode carried by the leading byte [b] of an
// encoded instruction.
func OpcodeOf(b byte) Opcode {
	if m := Mode(b); m.valid() {
		return m.Opcode()
	}
	return Opcode(b)
}

func unpackOpcode(p *codec.Packer, want Opcode) {
	b := p.UnpackByte()
	if p.Err() != nil {
		return
	}
	if got := Opcode(b); got != want {
		p.AddErr(fmt.Errorf("%w: want %s, got %s", ErrUnexpectedOpcode, want, got))
	}
}

// unpackMode reads a mode byte whose opcode must be one of [allowed].
func unpackMode(p *codec.Packer, allowed ...Opcode) Mode {
	m := Mode(p.UnpackByte())
	if p.Err() != nil {
		return 0
	}
	if !m.valid() {
		p.AddErr(fmt.Errorf("%w: 0x%02x", ErrInvalidMode, uint8(m)))
		return 0
	}
	for _, op := range allowed {
		if m.Opcode() == op {
			return m
		}
	}
	p.AddErr(fmt.Errorf("%w: want %v, got %s", ErrUnexpectedOpcode, allowed, m.Opcode()))
	return 0
}
