// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/fvm/instructions"
)

var batchCmd = &cobra.Command{
	Use:   "batch <hex|file>...",
	Short: "Pack encoded instructions into one instruction batch",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verify, err := cmd.Flags().GetBool("verify")
		if err != nil {
			return err
		}

		ixns := make([][]byte, 0, len(args))
		for i, arg := range args {
			b, err := decodeFileOrHex(arg)
			if err != nil {
				return fmt.Errorf("instruction %d: %w", i, err)
			}
			if verify {
				if _, err := instructions.Unmarshal(b); err != nil {
					return fmt.Errorf("instruction %d: %w", i, err)
				}
			}
			ixns = append(ixns, b)
		}

		batch, err := instructions.PackInstructions(ixns...)
		if err != nil {
			return err
		}
		logger.Info("packed instructions",
			zap.Int("count", len(ixns)),
			zap.Int("size", len(batch)),
		)
		return printEncoded(cmd, instructions.OpcodeInstructionJump, batch)
	},
}

func init() {
	batchCmd.Flags().Bool("verify", true, "Decode every instruction before packing it")
	rootCmd.AddCommand(batchCmd)
}
