// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/instructions"
)

var abiCmd = &cobra.Command{
	Use:   "abi",
	Short: "Print every instruction and its wire fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		b, err := instructions.ABI()
		if err != nil {
			return fmt.Errorf("failed to get ABI: %w", err)
		}
		var abi []codec.SingleTypeABI
		if err := json.Unmarshal(b, &abi); err != nil {
			return fmt.Errorf("failed to parse ABI: %w", err)
		}
		return printValue(cmd, abiWrapper{ABI: abi})
	},
}

type abiWrapper struct {
	ABI []codec.SingleTypeABI
}

func (a abiWrapper) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ABI)
}

func (a abiWrapper) String() string {
	result := ""
	for _, typ := range a.ABI {
		result += fmt.Sprintf("---\n%s (0x%02x)\n\n", typ.Name, typ.ID)
		names := maps.Keys(typ.Types)
		slices.Sort(names)
		for _, name := range names {
			result += name + ":\n"
			for _, field := range typ.Types[name] {
				result += fmt.Sprintf("  %s: %s\n", field.Name, field.Type)
			}
		}
	}
	return result
}

func init() {
	rootCmd.AddCommand(abiCmd)
}
