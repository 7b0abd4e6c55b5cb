// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ava-labs/fvm/consts"
)

// ToHex converts bytes to a lower-case hex string without the 0x prefix.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// LoadHex Converts hex encoded string into bytes. Returns
// an error if the string is not hex or, when [expectedSize] is not -1,
// does not decode to exactly [expectedSize] bytes.
func LoadHex(s string, expectedSize int) ([]byte, error) {
	s = trimHexPrefix(s)

	bytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	if expectedSize != -1 && len(bytes) != expectedSize {
		return nil, ErrInvalidSize
	}
	return bytes, nil
}

// Uint8ToHex renders [n] as exactly two hex digits.
func Uint8ToHex(n int) (string, error) {
	if n < 0 || n > int(consts.MaxUint8) {
		return "", fmt.Errorf("%w: %d", ErrUint8OutOfRange, n)
	}
	return ToHex([]byte{byte(n)}), nil
}

// BigToHex renders [n] as its minimal big-endian bytes. Zero is a single
// zero byte ("00"), so the output always has an even number of digits.
func BigToHex(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", ErrInvalidAmount
	}
	return ToHex(bigBytes(n)), nil
}

// HexToBig parses a big-endian hex string (optionally 0x prefixed, either
// case, odd digit counts allowed).
func HexToBig(s string) (*big.Int, error) {
	s = trimHexPrefix(s)
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidHex)
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidHex, s[i])
		}
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, ErrInvalidHex
	}
	return n, nil
}

// bigBytes is [n.Bytes] except that zero is one byte long.
func bigBytes(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}
	return n.Bytes()
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

type Bytes []byte

func (b Bytes) String() string {
	return ToHex(b)
}

// MarshalText returns the hex representation of b.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText sets b to the bytes represented by text.
func (b *Bytes) UnmarshalText(text []byte) error {
	bytes, err := LoadHex(string(text), -1)
	if err != nil {
		return err
	}
	*b = bytes
	return nil
}
