// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint8ToHex(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
		err      error
	}{
		{name: "zero", n: 0, expected: "00"},
		{name: "pointer", n: 37, expected: "25"},
		{name: "max", n: 255, expected: "ff"},
		{name: "too large", n: 256, err: ErrUint8OutOfRange},
		{name: "negative", n: -1, err: ErrUint8OutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			s, err := Uint8ToHex(tt.n)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				require.ErrorIs(err, ErrRange)
				return
			}
			require.Equal(tt.expected, s)
		})
	}
}

func TestBigToHex(t *testing.T) {
	tests := []struct {
		name     string
		n        *big.Int
		expected string
		err      error
	}{
		{name: "zero", n: big.NewInt(0), expected: "00"},
		{name: "one byte", n: big.NewInt(42), expected: "2a"},
		{name: "even padding", n: big.NewInt(0xabc), expected: "0abc"},
		{name: "two bytes", n: big.NewInt(256), expected: "0100"},
		{name: "nil", n: nil, err: ErrInvalidAmount},
		{name: "negative", n: big.NewInt(-5), err: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			s, err := BigToHex(tt.n)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				return
			}
			require.Equal(tt.expected, s)
			require.Zero(len(s) % 2)
		})
	}
}

func TestHexToBig(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		expected int64
		err      error
	}{
		{name: "lower case", s: "2a", expected: 42},
		{name: "upper case with prefix", s: "0X2A", expected: 42},
		{name: "odd length", s: "abc", expected: 0xabc},
		{name: "zero", s: "0x00", expected: 0},
		{name: "empty", s: "", err: ErrInvalidHex},
		{name: "prefix only", s: "0x", err: ErrInvalidHex},
		{name: "not hex", s: "0xzz", err: ErrInvalidHex},
		{name: "sign", s: "-1", err: ErrInvalidHex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			n, err := HexToBig(tt.s)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				require.ErrorIs(err, ErrFormat)
				return
			}
			require.Equal(tt.expected, n.Int64())
		})
	}
}

func TestLoadHex(t *testing.T) {
	require := require.New(t)

	b, err := LoadHex("0xABcd", 2)
	require.NoError(err)
	require.Equal([]byte{0xab, 0xcd}, b)

	_, err = LoadHex("abc", -1)
	require.ErrorIs(err, ErrInvalidHex)

	_, err = LoadHex("abcd", 3)
	require.ErrorIs(err, ErrInvalidSize)
	require.ErrorIs(err, ErrFormat)
}

func TestFormat(t *testing.T) {
	require := require.New(t)

	b := []byte{0x0c, 0xa0, 0xb8}
	require.Equal("0ca0b8", RawFormat.Encode(b))
	require.Equal("0x0ca0b8", PrefixedFormat.Encode(b))

	for _, s := range []string{"0ca0b8", "0x0ca0b8", "0x0CA0B8"} {
		decoded, err := RawFormat.Decode(s)
		require.NoError(err)
		require.Equal(b, decoded)
	}
}

func TestBytesJSON(t *testing.T) {
	require := require.New(t)

	want := Bytes{0x01, 0x00, 0x2a}
	b, err := json.Marshal(want)
	require.NoError(err)
	require.Equal(`"01002a"`, string(b))

	var parsed Bytes
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(want, parsed)
}
