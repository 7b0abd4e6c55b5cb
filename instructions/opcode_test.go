// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		op     Opcode
		useMax bool
		mode   Mode
	}{
		{name: "allocate", op: OpcodeAllocate, mode: 0x01},
		{name: "allocate max", op: OpcodeAllocate, useMax: true, mode: 0x11},
		{name: "deallocate max", op: OpcodeDeallocate, useMax: true, mode: 0x13},
		{name: "swap quote", op: OpcodeSwapQuote, mode: 0x05},
		{name: "swap asset max", op: OpcodeSwapAsset, useMax: true, mode: 0x16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			mode := NewMode(tt.op, tt.useMax)
			require.Equal(tt.mode, mode)
			require.True(mode.valid())
			require.Equal(tt.op, mode.Opcode())
			require.Equal(tt.useMax, mode.UseMax())
			require.Equal(tt.op, OpcodeOf(byte(mode)))
		})
	}
}

func TestOpcodeOf(t *testing.T) {
	require := require.New(t)

	require.Equal(OpcodeCreatePool, OpcodeOf(0x0b))
	require.Equal(OpcodeInstructionJump, OpcodeOf(0xaa))
	require.Equal(Opcode(0x1b), OpcodeOf(0x1b))
	require.Equal(Opcode(0x21), OpcodeOf(0x21))
	require.Equal("Opcode(0x21)", Opcode(0x21).String())
	require.Equal("SwapAsset", OpcodeOf(0x16).String())
}

func TestRegistry(t *testing.T) {
	require := require.New(t)

	require.Equal(
		[]uint8{0x01, 0x03, 0x04, 0x05, 0x06, 0x0b, 0x0c, 0xaa},
		Parser.Indices(),
	)
	for _, index := range Parser.Indices() {
		name, ok := Parser.Name(index)
		require.True(ok)
		require.Equal(Opcode(index).String(), name)
	}
}
