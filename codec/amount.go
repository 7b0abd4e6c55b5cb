// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"math/big"

	"github.com/ava-labs/fvm/consts"
)

var bigTen = big.NewInt(10)

// PackAmount compresses [amount] into exponent || mantissa where
// amount = mantissa * 10^exponent. All trailing decimal zeros are moved
// into the one byte exponent, so every value has exactly one packed form.
// The mantissa is written as its minimal big-endian bytes.
//
// Zero packs as 00 00.
func PackAmount(amount *big.Int) ([]byte, error) {
	if amount == nil || amount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	// zero is divisible by ten forever
	if amount.Sign() == 0 {
		return []byte{0, 0}, nil
	}

	var (
		mantissa = new(big.Int).Set(amount)
		q        = new(big.Int)
		r        = new(big.Int)
		exponent int
	)
	for {
		q.QuoRem(mantissa, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		mantissa, q = q, mantissa
		exponent++
	}
	if exponent > int(consts.MaxUint8) {
		return nil, fmt.Errorf("%w: 10^%d", ErrExponentOverflow, exponent)
	}

	m := mantissa.Bytes()
	b := make([]byte, 1+len(m))
	b[0] = byte(exponent)
	copy(b[1:], m)
	return b, nil
}

// UnpackAmount is the inverse of [PackAmount]. It only accepts the
// canonical form: the mantissa has no leading zero byte, is not divisible
// by ten, and a zero mantissa has a zero exponent.
func UnpackAmount(b []byte) (*big.Int, error) {
	if len(b) < consts.MinPackedAmountLen {
		return nil, ErrInsufficientLength
	}
	exponent, m := b[0], b[1:]
	if len(m) > 1 && m[0] == 0 {
		return nil, fmt.Errorf("%w: leading zero byte", ErrNonCanonicalAmount)
	}

	mantissa := new(big.Int).SetBytes(m)
	if mantissa.Sign() == 0 {
		if exponent != 0 {
			return nil, fmt.Errorf("%w: zero with exponent %d", ErrNonCanonicalAmount, exponent)
		}
		return mantissa, nil
	}
	if new(big.Int).Mod(mantissa, bigTen).Sign() == 0 {
		return nil, fmt.Errorf("%w: mantissa divisible by 10", ErrNonCanonicalAmount)
	}

	scale := new(big.Int).Exp(bigTen, big.NewInt(int64(exponent)), nil)
	return mantissa.Mul(mantissa, scale), nil
}

// AmountLen is the packed length of [amount], or 0 if it cannot be packed.
func AmountLen(amount *big.Int) int {
	b, err := PackAmount(amount)
	if err != nil {
		return 0
	}
	return len(b)
}
