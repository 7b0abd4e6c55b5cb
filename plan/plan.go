// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/instructions"
)

// Plan is a list of instructions to encode, read from YAML (or JSON).
type Plan struct {
	// The name of the plan.
	Name string `yaml:"name" json:"name"`
	// A description of the plan.
	Description string `yaml:"description" json:"description"`
	// Pack every step into a single instruction batch.
	Batch bool `yaml:"batch" json:"batch"`
	// Steps to encode, in order.
	Steps []Step `yaml:"steps" json:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `yaml:"description" json:"description"`
	// The instruction to build. (required)
	Op Op `yaml:"op" json:"op"`
	// Op specific parameters. Values are kept as written so amounts like
	// 1.5e18 are never rounded through a float.
	Params map[string]string `yaml:"params" json:"params"`
}

// Result holds the encoded steps and, when batching, the batch.
type Result struct {
	Instructions []codec.Bytes `json:"instructions"`
	Batch        codec.Bytes   `json:"batch,omitempty"`
}

// Parse reads a plan. JSON is accepted as well since it is valid YAML.
func Parse(b []byte) (*Plan, error) {
	var p Plan
	if err := yaml.UnmarshalStrict(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if err := p.Verify(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Verify checks that every step names a known op and carries only the
// params that op understands. Param values are checked by [Plan.Encode].
func (p *Plan) Verify() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: no steps found", ErrInvalidPlan)
	}
	for i, step := range p.Steps {
		if err := step.verify(); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
	}
	return nil
}

// Encode builds and encodes every step. Steps are independent, so they
// are encoded concurrently; the output keeps the plan order.
func (p *Plan) Encode(ctx context.Context) ([][]byte, error) {
	encoded := make([][]byte, len(p.Steps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, step := range p.Steps {
		i, step := i, step
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ix, err := step.Instruction()
			if err != nil {
				return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
			}
			b, err := instructions.Marshal(ix)
			if err != nil {
				return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
			}
			encoded[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}

// Run encodes the plan and batches the result when [Plan.Batch] is set. A
// plan with several steps must be batched.
func (p *Plan) Run(ctx context.Context) (*Result, error) {
	if !p.Batch && len(p.Steps) > 1 {
		return nil, ErrBatchRequired
	}
	encoded, err := p.Encode(ctx)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Instructions: make([]codec.Bytes, len(encoded)),
	}
	for i, b := range encoded {
		result.Instructions[i] = b
	}
	if p.Batch {
		result.Batch, err = instructions.PackInstructions(encoded...)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
