// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"fmt"

	"github.com/ava-labs/fvm/codec"
)

var (
	ErrTooManyInstructions = fmt.Errorf("%w: more than 255 instructions", codec.ErrRange)
	ErrInstructionTooLarge = fmt.Errorf("%w: instruction longer than 255 bytes", codec.ErrRange)

	ErrUnexpectedOpcode = fmt.Errorf("%w: unexpected opcode", codec.ErrMalformed)
	ErrInvalidMode      = fmt.Errorf("%w: invalid mode byte", codec.ErrMalformed)
)
