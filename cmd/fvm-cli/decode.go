// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/instructions"
	"github.com/ava-labs/fvm/utils"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex|file>",
	Short: "Decode an instruction or an instruction batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := decodeFileOrHex(args[0])
		if err != nil {
			return err
		}
		ix, err := instructions.Unmarshal(b)
		if err != nil {
			if codec.IsDecodeError(err) {
				logger.Warn("malformed payload",
					zap.Int("size", len(b)),
					zap.Error(err),
				)
			}
			return fmt.Errorf("failed to decode: %w", err)
		}
		logger.Info("decoded instruction",
			zap.Stringer("opcode", instructions.Opcode(ix.GetTypeID())),
		)
		return printValue(cmd, decodedInstruction{
			Opcode:      instructions.Opcode(ix.GetTypeID()).String(),
			Instruction: ix,
		})
	},
}

type decodedInstruction struct {
	Opcode      string                   `json:"opcode"`
	Instruction instructions.Instruction `json:"instruction"`
}

func (d decodedInstruction) String() string {
	return strings.TrimSuffix(describe(d.Instruction, ""), "\n")
}

// Amounts with at least this many trailing zeros are shown as mantissa
// and exponent.
const amountMinZeros = 6

// describe renders [ix] one field per line; batch members are indented.
func describe(ix instructions.Instruction, indent string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", indent, instructions.Opcode(ix.GetTypeID()))
	field := func(name string, v any) {
		fmt.Fprintf(&b, "%s  %s: %v\n", indent, name, v)
	}
	address := func(name string, a codec.Address) {
		field(name, a.Checksum())
	}
	amount := func(name string, n *big.Int) {
		field(name, utils.FormatAmount(n, amountMinZeros))
	}
	switch ix := ix.(type) {
	case *instructions.CreatePair:
		address("token0", ix.Token0)
		address("token1", ix.Token1)
	case *instructions.CreatePool:
		field("pairId", ix.PairID)
		address("controller", ix.Controller)
		field("priorityFee", ix.PriorityFee)
		field("fee", ix.Fee)
		field("vol", ix.Volatility)
		field("dur", ix.Duration)
		field("jit", ix.JIT)
		amount("maxPrice", ix.MaxPrice)
		amount("price", ix.Price)
	case *instructions.AllocateOrDeallocate:
		field("useMax", ix.UseMax)
		field("poolId", ix.PoolID)
		amount("amount", ix.Amount)
	case *instructions.Claim:
		field("poolId", ix.PoolID)
		amount("fee0", ix.Fee0)
		amount("fee1", ix.Fee1)
	case *instructions.Swap:
		field("useMax", ix.UseMax)
		field("poolId", ix.PoolID)
		amount("amount0", ix.Amount0)
		amount("amount1", ix.Amount1)
	case *instructions.Jump:
		for i, member := range ix.Instructions {
			fmt.Fprintf(&b, "%s  [%d]\n", indent, i)
			b.WriteString(describe(member, indent+"    "))
		}
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
