// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fvm-cli",
	Short: "FVM CLI for building and inspecting instruction payloads",
	Long:  `A CLI application for encoding, decoding and batching FVM instructions.`,

	SilenceUsage:      true,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(*cobra.Command, []string) {
		closeLogger()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text or json)")
	rootCmd.PersistentFlags().Bool("hex-prefix", false, "Prefix hex output with 0x")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().Bool("verbose", false, "Also write logs to stderr")
}

func main() {
	Execute()
}
