// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import "errors"

var (
	ErrInvalidPlan   = errors.New("invalid plan")
	ErrInvalidStep   = errors.New("invalid step")
	ErrUnknownOp     = errors.New("unknown op")
	ErrMissingParam  = errors.New("missing param")
	ErrInvalidParam  = errors.New("invalid param")
	ErrUnknownParam  = errors.New("unknown param")
	ErrBatchRequired = errors.New("plan has more than one step and batching is disabled")
)
