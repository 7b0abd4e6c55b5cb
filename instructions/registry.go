// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/fvm/codec"
)

// Parser maps every opcode to its decoder.
var Parser *codec.TypeParser[Instruction]

func init() {
	Parser = codec.NewTypeParser[Instruction]()

	errs := &wrappers.Errs{}
	errs.Add(
		register(OpcodeAllocate, &AllocateOrDeallocate{ShouldAllocate: true}, UnmarshalAllocateOrDeallocate),
		register(OpcodeDeallocate, &AllocateOrDeallocate{}, UnmarshalAllocateOrDeallocate),
		register(OpcodeClaim, &Claim{}, UnmarshalClaim),
		register(OpcodeSwapQuote, &Swap{}, UnmarshalSwap),
		register(OpcodeSwapAsset, &Swap{SellAsset: true}, UnmarshalSwap),
		register(OpcodeCreatePool, &CreatePool{}, UnmarshalCreatePool),
		register(OpcodeCreatePair, &CreatePair{}, UnmarshalCreatePair),
		register(OpcodeInstructionJump, &Jump{}, UnmarshalJump),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func register(op Opcode, o Instruction, f func(*codec.Packer) (Instruction, error)) error {
	return Parser.Register(uint8(op), op.String(), o, f)
}

// ABI describes every instruction as JSON.
func ABI() ([]byte, error) {
	return Parser.ABI()
}
