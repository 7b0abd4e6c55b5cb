// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/fvm/consts"
	"github.com/ava-labs/fvm/utils"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      uint64
		expected uint64
		err      error
	}{
		{name: "decimal", input: "42", max: uint64(consts.MaxUint16), expected: 42},
		{name: "hex", input: " 0x2a ", max: uint64(consts.MaxUint16), expected: 42},
		{name: "at max", input: "65535", max: uint64(consts.MaxUint16), expected: 65535},
		{name: "empty", input: "  ", max: 1, err: ErrInputEmpty},
		{name: "not a number", input: "abc", max: 1, err: strconv.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			n, err := parseUint(tt.input, tt.max)
			require.ErrorIs(err, tt.err)
			if tt.err == nil {
				require.Equal(tt.expected, n)
			}
		})
	}

	_, err := parseUint("65536", uint64(consts.MaxUint16))
	require.ErrorContains(t, err, "must be <=")
}

func TestParseAmount(t *testing.T) {
	require := require.New(t)

	amount, err := parseAmount("1.5e18")
	require.NoError(err)
	require.Equal("1500000000000000000", amount.String())

	_, err = parseAmount("")
	require.ErrorIs(err, ErrInputEmpty)

	_, err = parseAmount("-3")
	require.ErrorIs(err, utils.ErrInvalidAmount)
}

func TestParseChoiceAndBool(t *testing.T) {
	require := require.New(t)

	index, err := parseChoice("2", 3)
	require.NoError(err)
	require.Equal(2, index)

	_, err = parseChoice("3", 3)
	require.ErrorIs(err, ErrIndexOutOfRange)

	b, err := parseBool("Y")
	require.NoError(err)
	require.True(b)

	_, err = parseBool("yes")
	require.ErrorIs(err, ErrInvalidChoice)
}
