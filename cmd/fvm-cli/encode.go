// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/fvm/cli/prompt"
	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/consts"
	"github.com/ava-labs/fvm/instructions"
	"github.com/ava-labs/fvm/plan"
	"github.com/ava-labs/fvm/utils"
)

type paramKind int

const (
	kindAddress paramKind = iota + 1
	kindAmount
	kindBool
	kindUint16
	kindUint24
	kindUint32
	kindHex
)

var paramKinds = map[string]paramKind{
	plan.Token0:      kindAddress,
	plan.Token1:      kindAddress,
	plan.Controller:  kindAddress,
	plan.PairID:      kindUint24,
	plan.PoolID:      kindUint32,
	plan.PriorityFee: kindUint16,
	plan.Fee:         kindUint16,
	plan.Vol:         kindUint16,
	plan.Dur:         kindUint16,
	plan.JIT:         kindUint16,
	plan.UseMax:      kindBool,
	plan.SellAsset:   kindBool,
	plan.Amount:      kindAmount,
	plan.Amount0:     kindAmount,
	plan.Amount1:     kindAmount,
	plan.Fee0:        kindAmount,
	plan.Fee1:        kindAmount,
	plan.MaxPrice:    kindAmount,
	plan.Price:       kindAmount,
	plan.Hex:         kindHex,
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a single instruction",
	Long:  "Encode a single instruction. Without a subcommand the op and its params are prompted for.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		isJSONOutput, err := isJSONOutputRequested(cmd)
		if err != nil {
			return fmt.Errorf("failed to get output format: %w", err)
		}
		if isJSONOutput {
			return cmd.Help()
		}

		ops := encodeOps()
		for i, op := range ops {
			utils.Outf("{{cyan}}%d:{{/}} %s\n", i, op)
		}
		index, err := prompt.Choice("op", len(ops))
		if err != nil {
			return fmt.Errorf("failed to choose op: %w", err)
		}
		op := ops[index]
		names, _ := plan.Params(op)
		params, err := askForParams(names)
		if err != nil {
			return fmt.Errorf("failed to ask for params: %w", err)
		}
		return encodeStep(cmd, plan.Step{Op: op, Params: params})
	},
}

// encodeOps lists the ops that build a typed instruction.
func encodeOps() []plan.Op {
	ops := make([]plan.Op, 0, len(plan.Ops()))
	for _, op := range plan.Ops() {
		if op != plan.OpRaw {
			ops = append(ops, op)
		}
	}
	return ops
}

func encodeStep(cmd *cobra.Command, step plan.Step) error {
	ix, err := step.Instruction()
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", step.Op, err)
	}
	b, err := instructions.Marshal(ix)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", step.Op, err)
	}

	logger.Info("encoded instruction",
		zap.Stringer("opcode", instructions.Opcode(ix.GetTypeID())),
		zap.Int("size", len(b)),
	)
	return printEncoded(cmd, instructions.Opcode(ix.GetTypeID()), b)
}

func newEncodeOpCmd(op plan.Op) *cobra.Command {
	names, _ := plan.Params(op)
	cmd := &cobra.Command{
		Use:   strings.ReplaceAll(string(op), "_", "-"),
		Short: fmt.Sprintf("Encode a %s instruction", op),
		Long:  fmt.Sprintf("Encode a %s instruction. Params: %s", op, strings.Join(names, ", ")),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := fillParams(cmd, names)
			if err != nil {
				return err
			}
			return encodeStep(cmd, plan.Step{Op: op, Params: params})
		},
	}
	cmd.Flags().StringToString("data", nil, "Instruction params as key=value pairs")
	return cmd
}

// fillParams reads params from --data, or prompts for each of [names]
// when no data was given and the output is not JSON.
func fillParams(cmd *cobra.Command, names []string) (map[string]string, error) {
	inputData, err := cmd.Flags().GetStringToString("data")
	if err != nil {
		return nil, fmt.Errorf("failed to get data key-value pairs: %w", err)
	}

	isJSONOutput, err := isJSONOutputRequested(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to get output format: %w", err)
	}

	isInteractive := len(inputData) == 0 && !isJSONOutput
	if !isInteractive {
		return inputData, nil
	}
	params, err := askForParams(names)
	if err != nil {
		return nil, fmt.Errorf("failed to ask for params: %w", err)
	}
	return params, nil
}

func askForParams(names []string) (map[string]string, error) {
	params := make(map[string]string, len(names))
	for _, name := range names {
		var (
			value string
			err   error
		)
		switch paramKinds[name] {
		case kindAddress:
			var addr codec.Address
			addr, err = prompt.Address(name)
			value = addr.String()
		case kindAmount:
			var amount *big.Int
			amount, err = prompt.Amount(name)
			if err == nil {
				value = amount.String()
			}
		case kindBool:
			var b bool
			b, err = prompt.Bool(name)
			value = strconv.FormatBool(b)
		case kindUint16:
			value, err = promptUint(name, uint64(consts.MaxUint16))
		case kindUint24:
			value, err = promptUint(name, consts.MaxUint24)
		case kindUint32:
			value, err = promptUint(name, math.MaxUint32)
		case kindHex:
			var b []byte
			b, err = prompt.Bytes(name)
			value = codec.ToHex(b)
		default:
			return nil, fmt.Errorf("unsupported param: %s", name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", name, err)
		}
		params[name] = value
	}
	return params, nil
}

func promptUint(name string, maxValue uint64) (string, error) {
	n, err := prompt.Uint(name, maxValue)
	return strconv.FormatUint(n, 10), err
}

type encodedInstruction struct {
	Opcode string `json:"opcode"`
	Hex    string `json:"hex"`
}

func (e encodedInstruction) String() string {
	return e.Hex
}

func printEncoded(cmd *cobra.Command, op instructions.Opcode, b []byte) error {
	format, err := hexFormat(cmd)
	if err != nil {
		return err
	}
	return printValue(cmd, encodedInstruction{
		Opcode: op.String(),
		Hex:    format.Encode(b),
	})
}

func init() {
	for _, op := range encodeOps() {
		encodeCmd.AddCommand(newEncodeOpCmd(op))
	}
	rootCmd.AddCommand(encodeCmd)
}
