// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/plan"
	"github.com/ava-labs/fvm/utils"
)

var runCmd = &cobra.Command{
	Use:   "run <path|->",
	Short: "Encode every step of a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planBytes, err := readPlan(cmd, args[0])
		if err != nil {
			return err
		}
		p, err := plan.Parse(planBytes)
		if err != nil {
			return err
		}

		logger.Info("running plan",
			zap.String("name", p.Name),
			zap.String("description", p.Description),
			zap.Int("steps", len(p.Steps)),
			zap.Bool("batch", p.Batch),
		)
		for i, step := range p.Steps {
			logger.Debug("step",
				zap.Int("step", i),
				zap.String("description", step.Description),
				zap.String("op", string(step.Op)),
				zap.Any("params", step.Params),
			)
		}

		result, err := p.Run(cmd.Context())
		if err != nil {
			return err
		}
		format, err := hexFormat(cmd)
		if err != nil {
			return err
		}
		return printValue(cmd, newPlanOutput(p.Name, result, format))
	},
}

// readPlan reads from stdin when [path] is "-".
func readPlan(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

type planOutput struct {
	Name         string   `json:"name,omitempty"`
	Instructions []string `json:"instructions"`
	Batch        string   `json:"batch,omitempty"`
}

func newPlanOutput(name string, result *plan.Result, format codec.Format) planOutput {
	out := planOutput{
		Name: name,
		Instructions: utils.Map(func(b codec.Bytes) string {
			return format.Encode(b)
		}, result.Instructions),
	}
	if result.Batch != nil {
		out.Batch = format.Encode(result.Batch)
	}
	return out
}

func (o planOutput) String() string {
	var b strings.Builder
	for i, ixn := range o.Instructions {
		fmt.Fprintf(&b, "step %d: %s\n", i, ixn)
	}
	if o.Batch != "" {
		fmt.Fprintf(&b, "batch: %s\n", o.Batch)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func init() {
	rootCmd.AddCommand(runCmd)
}
