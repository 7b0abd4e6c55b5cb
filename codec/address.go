// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/fvm/consts"
)

const AddressLen = consts.AddressLen

// Address is the 20 byte body of an EVM account address. Only the body is
// ever written to the wire; the 0x display prefix belongs to the textual
// form.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// ToAddress returns an Address if [b] is exactly [AddressLen] bytes.
func ToAddress(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return EmptyAddress, ErrInvalidAddress
	}
	return Address(b), nil
}

// ParseAddress parses the fixed-length textual form: exactly 40 hex
// digits, with or without a 0x prefix. Checksums are not validated.
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return EmptyAddress, ErrInvalidAddress
	}
	return Address(common.HexToAddress(s)), nil
}

// MustParseAddress is [ParseAddress] for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Common converts [a] to a go-ethereum address.
func (a Address) Common() common.Address {
	return common.Address(a)
}

// Checksum returns the mixed-case EIP-55 form.
func (a Address) Checksum() string {
	return a.Common().Hex()
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return PrefixedFormat.Encode(a[:])
}

// MarshalText returns the 0x prefixed hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
