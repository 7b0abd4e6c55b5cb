// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"crypto/rand"
	"math/big"

	"github.com/ava-labs/fvm/codec"
)

// NewRandomAddress fills an address from crypto/rand.
func NewRandomAddress() (codec.Address, error) {
	var addr codec.Address
	_, err := rand.Read(addr[:])
	return addr, err
}

// NewRandomAmount returns a random amount below 2^[bits] scaled by a
// random power of ten below 10^[maxExponent], so packing exercises both
// the mantissa and the exponent.
func NewRandomAmount(bits uint, maxExponent int64) (*big.Int, error) {
	mantissa, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), bits))
	if err != nil {
		return nil, err
	}
	exponent, err := rand.Int(rand.Reader, big.NewInt(maxExponent))
	if err != nil {
		return nil, err
	}
	scale := new(big.Int).Exp(big.NewInt(10), exponent, nil)
	return mantissa.Mul(mantissa, scale), nil
}
