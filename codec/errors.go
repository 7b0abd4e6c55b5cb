// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"fmt"
)

// Error kinds. Every encoding and decoding error returned by this package
// (and by instructions) wraps exactly one of these, so callers can use
// errors.Is to tell invalid input (ErrFormat, ErrRange, ErrOverflow) from
// malformed wire data (ErrMalformed). Registration errors wrap none.
var (
	ErrFormat    = errors.New("format error")
	ErrRange     = errors.New("range error")
	ErrOverflow  = errors.New("overflow error")
	ErrMalformed = errors.New("malformed payload")
)

// Encoding errors
var (
	ErrInvalidHex       = fmt.Errorf("%w: invalid hex", ErrFormat)
	ErrInvalidSize      = fmt.Errorf("%w: invalid size", ErrFormat)
	ErrInvalidAddress   = fmt.Errorf("%w: address must be exactly 40 hex digits", ErrFormat)
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be a non-negative integer", ErrRange)
	ErrUint8OutOfRange  = fmt.Errorf("%w: value does not fit in one byte", ErrRange)
	ErrPointerTooLarge  = fmt.Errorf("%w: pointer too large", ErrRange)
	ErrExponentOverflow = fmt.Errorf("%w: amount exponent exceeds one byte", ErrOverflow)
	ErrPairIDOverflow   = fmt.Errorf("%w: pair id exceeds 3 bytes", ErrOverflow)
)

// Registration errors
var ErrDuplicateItem = errors.New("duplicate item")

// Decoding errors
var (
	ErrInsufficientLength = fmt.Errorf("%w: insufficient length", ErrMalformed)
	ErrNonCanonicalAmount = fmt.Errorf("%w: non-canonical amount", ErrMalformed)
	ErrPointerOutOfBounds = fmt.Errorf("%w: pointer outside payload", ErrMalformed)
	ErrTrailingBytes      = fmt.Errorf("%w: trailing bytes", ErrMalformed)
	ErrUnknownOpcode      = fmt.Errorf("%w: unknown opcode", ErrMalformed)
)

// IsDecodeError reports whether [err] was caused by malformed wire data
// rather than by invalid input.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrMalformed)
}
