// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path"
	"strings"

	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/holiman/uint256"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrAmountTooLarge = errors.New("amount exceeds 256 bits")
)

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, perms.ReadWriteExecute)
}

// Outputs to stdout.
//
// e.g.,
//
//	Out("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Out("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	Fprintf(formatter.ColorableStdOut, format, args...)
}

// Fprintf is [Outf] for an arbitrary writer.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(w, s)
}

// ParseAmount parses a non-negative integer amount in base units. Besides
// plain decimals it accepts scientific notation ("1.7e9", "1.5e18") and
// 0x prefixed hex, as long as the value is a whole number that fits in an
// EVM word.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if r.Sign() < 0 || !r.IsInt() {
		return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidAmount, s)
	}
	amount := new(big.Int).Set(r.Num())
	if _, overflow := uint256.FromBig(amount); overflow {
		return nil, fmt.Errorf("%w: %q", ErrAmountTooLarge, s)
	}
	return amount, nil
}

// FormatAmount renders [amount] in decimal, switching to mantissa and
// exponent once it has at least [minZeros] trailing zeros.
func FormatAmount(amount *big.Int, minZeros int) string {
	if amount == nil {
		return "<nil>"
	}
	s := amount.String()
	if amount.Sign() == 0 {
		return s
	}
	trimmed := strings.TrimRight(s, "0")
	zeros := len(s) - len(trimmed)
	if zeros < minZeros {
		return s
	}
	return fmt.Sprintf("%se%d", trimmed, zeros)
}
