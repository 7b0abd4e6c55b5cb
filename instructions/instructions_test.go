// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/instructions"
)

const (
	usdc = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	dai  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
)

var (
	oneEther        = mustBig("1000000000000000000")
	oneAndHalfEther = mustBig("1500000000000000000")
	tenthEther      = mustBig("100000000000000000")
)

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid decimal " + s)
	}
	return n
}

func body(addr string) string {
	return strings.ToLower(strings.TrimPrefix(addr, "0x"))
}

// hugeAmount packs to 252 bytes.
func hugeAmount() *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), 2000)
	return n.Add(n, big.NewInt(1))
}

func mustCreatePair(t *testing.T, token0, token1 string) *instructions.CreatePair {
	ix, err := instructions.NewCreatePair(token0, token1)
	require.NoError(t, err)
	return ix
}

func mustCreatePool(t *testing.T) *instructions.CreatePool {
	ix, err := instructions.NewCreatePool(42, usdc, 0, 10, 100, 30, 0, oneEther, oneAndHalfEther)
	require.NoError(t, err)
	return ix
}

func TestMarshalVectors(t *testing.T) {
	tests := []struct {
		name     string
		ix       instructions.Instruction
		expected string
	}{
		{
			name:     "create pair",
			ix:       mustCreatePair(t, usdc, dai),
			expected: "0c" + body(usdc) + body(dai),
		},
		{
			name:     "create pair keeps token order",
			ix:       mustCreatePair(t, dai, usdc),
			expected: "0c" + body(dai) + body(usdc),
		},
		{
			name: "create pool",
			ix:   mustCreatePool(t),
			expected: "0b" + "00002a" + body(usdc) +
				"0000" + "000a" + "0064" + "001e" + "0000" +
				"25" + "1201" + "110f",
		},
		{
			name:     "allocate",
			ix:       instructions.NewAllocate(false, 42, oneEther),
			expected: "010000002a1201",
		},
		{
			name:     "allocate max",
			ix:       instructions.NewAllocate(true, 42, big.NewInt(0)),
			expected: "110000002a0000",
		},
		{
			name:     "deallocate",
			ix:       instructions.NewDeallocate(false, 42, oneEther),
			expected: "030000002a1201",
		},
		{
			name:     "claim",
			ix:       &instructions.Claim{PoolID: 42, Fee0: big.NewInt(500_000_000), Fee1: big.NewInt(750)},
			expected: "040000002a080805014b",
		},
		{
			name:     "swap asset",
			ix:       &instructions.Swap{PoolID: 42, Amount0: oneEther, Amount1: big.NewInt(1_700_000_000), SellAsset: true},
			expected: "060000002a0812010811",
		},
		{
			name:     "swap quote max",
			ix:       &instructions.Swap{UseMax: true, PoolID: 42, Amount0: oneEther, Amount1: big.NewInt(1_700_000_000)},
			expected: "150000002a0812010811",
		},
		{
			name: "jump",
			ix: instructions.NewJump(
				&instructions.Swap{PoolID: 42, Amount0: oneEther, Amount1: big.NewInt(1_700_000_000), SellAsset: true},
				&instructions.Swap{PoolID: 40, Amount0: big.NewInt(1_700_000_000), Amount1: tenthEther, SellAsset: true},
			),
			expected: "aa02" + "0a" + "060000002a0812010811" + "0a" + "06000000280808111101",
		},
		{
			name:     "empty jump",
			ix:       instructions.NewJump(),
			expected: "aa00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			b, err := instructions.Marshal(tt.ix)
			require.NoError(err)
			require.Equal(tt.expected, codec.ToHex(b))
			require.Len(b, tt.ix.Size())

			decoded, err := instructions.Unmarshal(b)
			require.NoError(err)
			require.Equal(tt.ix.GetTypeID(), decoded.GetTypeID())

			reencoded, err := instructions.Marshal(decoded)
			require.NoError(err)
			require.Equal(b, reencoded)
		})
	}
}

func TestDecodeFields(t *testing.T) {
	require := require.New(t)

	createPool, err := instructions.DecodeCreatePool(mustMarshal(t, mustCreatePool(t)))
	require.NoError(err)
	require.Equal(codec.PairID(42), createPool.PairID)
	require.Equal(codec.MustParseAddress(usdc), createPool.Controller)
	require.Equal(uint16(10), createPool.Fee)
	require.Equal(uint16(100), createPool.Volatility)
	require.Equal(uint16(30), createPool.Duration)
	require.Zero(oneEther.Cmp(createPool.MaxPrice))
	require.Zero(oneAndHalfEther.Cmp(createPool.Price))

	dealloc, err := instructions.DecodeAllocateOrDeallocate(mustHex(t, "130000002a1201"))
	require.NoError(err)
	require.False(dealloc.ShouldAllocate)
	require.True(dealloc.UseMax)
	require.Equal(codec.PoolID(42), dealloc.PoolID)
	require.Zero(oneEther.Cmp(dealloc.Amount))

	claim, err := instructions.DecodeClaim(mustHex(t, "0x040000002A080805014B"))
	require.NoError(err)
	require.Equal(int64(500_000_000), claim.Fee0.Int64())
	require.Equal(int64(750), claim.Fee1.Int64())

	swap, err := instructions.DecodeSwap(mustHex(t, "160000002a0812010811"))
	require.NoError(err)
	require.True(swap.UseMax)
	require.True(swap.SellAsset)
	require.Zero(oneEther.Cmp(swap.Amount0))
	require.Equal(int64(1_700_000_000), swap.Amount1.Int64())

	pair, err := instructions.DecodeCreatePair(mustHex(t, "0c"+body(usdc)+body(dai)))
	require.NoError(err)
	require.Equal(codec.MustParseAddress(usdc), pair.Token0)
	require.Equal(codec.MustParseAddress(dai), pair.Token1)

	jump, err := instructions.DecodeJump(mustHex(t, "aa01"+"07"+"010000002a1201"))
	require.NoError(err)
	require.Len(jump.Instructions, 1)
	require.Equal(uint8(instructions.OpcodeAllocate), jump.Instructions[0].GetTypeID())
}

func TestNestedJump(t *testing.T) {
	require := require.New(t)

	inner := instructions.NewJump(instructions.NewAllocate(false, 1, big.NewInt(1)))
	outer := instructions.NewJump(inner, instructions.NewDeallocate(false, 1, big.NewInt(1)))

	b, err := instructions.Marshal(outer)
	require.NoError(err)
	require.Equal("aa02"+"0a"+"aa01"+"07"+"01000000010001"+"07"+"03000000010001", codec.ToHex(b))

	decoded, err := instructions.DecodeJump(b)
	require.NoError(err)
	require.Len(decoded.Instructions, 2)
	nested, ok := decoded.Instructions[0].(*instructions.Jump)
	require.True(ok)
	require.Len(nested.Instructions, 1)
}

func TestMarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		ix   instructions.Instruction
		kind error
		err  error
	}{
		{
			name: "negative amount",
			ix:   instructions.NewAllocate(false, 1, big.NewInt(-1)),
			kind: codec.ErrRange,
			err:  codec.ErrInvalidAmount,
		},
		{
			name: "missing fee",
			ix:   &instructions.Claim{PoolID: 1, Fee0: big.NewInt(1)},
			kind: codec.ErrRange,
			err:  codec.ErrInvalidAmount,
		},
		{
			name: "pointer too large",
			ix:   &instructions.Swap{PoolID: 1, Amount0: hugeAmount(), Amount1: big.NewInt(1)},
			kind: codec.ErrRange,
			err:  codec.ErrPointerTooLarge,
		},
		{
			name: "pair id overflow",
			ix:   &instructions.CreatePool{PairID: codec.MaxPairID + 1, MaxPrice: big.NewInt(1), Price: big.NewInt(1)},
			kind: codec.ErrOverflow,
			err:  codec.ErrPairIDOverflow,
		},
		{
			name: "batch member too large",
			ix:   instructions.NewJump(&instructions.Claim{PoolID: 1, Fee0: big.NewInt(1), Fee1: hugeAmount()}),
			kind: codec.ErrRange,
			err:  instructions.ErrInstructionTooLarge,
		},
		{
			name: "batch member invalid",
			ix:   instructions.NewJump(instructions.NewDeallocate(false, 1, nil)),
			kind: codec.ErrRange,
			err:  codec.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			_, err := instructions.Marshal(tt.ix)
			require.ErrorIs(err, tt.err)
			require.ErrorIs(err, tt.kind)
			require.False(codec.IsDecodeError(err))
		})
	}
}

func TestConstructorErrors(t *testing.T) {
	require := require.New(t)

	_, err := instructions.NewCreatePair(usdc[:40], dai)
	require.ErrorIs(err, codec.ErrInvalidAddress)
	require.ErrorIs(err, codec.ErrFormat)

	_, err = instructions.NewCreatePair(usdc, "0xnothex")
	require.ErrorIs(err, codec.ErrInvalidAddress)

	_, err = instructions.NewCreatePool(1<<24, usdc, 0, 0, 0, 0, 0, big.NewInt(1), big.NewInt(1))
	require.ErrorIs(err, codec.ErrPairIDOverflow)

	_, err = instructions.NewCreatePool(1, "usdc", 0, 0, 0, 0, 0, big.NewInt(1), big.NewInt(1))
	require.ErrorIs(err, codec.ErrInvalidAddress)
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
	}{
		{name: "empty", payload: "", err: codec.ErrInsufficientLength},
		{name: "unknown opcode", payload: "02000000", err: codec.ErrUnknownOpcode},
		{name: "invalid mode nibble", payload: "210000002a1201", err: codec.ErrUnknownOpcode},
		{name: "mode flag on unmoded opcode", payload: "140000002a080805014b", err: codec.ErrUnknownOpcode},
		{name: "truncated pair", payload: "0c" + body(usdc), err: codec.ErrInsufficientLength},
		{name: "trailing bytes", payload: "0c" + body(usdc) + body(dai) + "00", err: codec.ErrTrailingBytes},
		{name: "missing amount", payload: "010000002a", err: codec.ErrInsufficientLength},
		{name: "non-canonical amount", payload: "010000002a000a", err: codec.ErrNonCanonicalAmount},
		{name: "pointer past end", payload: "040000002a090805014b", err: codec.ErrPointerOutOfBounds},
		{name: "pointer at end", payload: "040000002a0a0805014b", err: codec.ErrPointerOutOfBounds},
		{name: "pointer before amounts", payload: "040000002a000805014b", err: codec.ErrPointerOutOfBounds},
		{name: "pointer splits badly", payload: "040000002a07" + "0805014b", err: codec.ErrPointerOutOfBounds},
		{name: "truncated pool", payload: "0b00002a" + body(usdc) + "0000", err: codec.ErrInsufficientLength},
		{name: "batch count too high", payload: "aa02" + "07" + "010000002a1201", err: codec.ErrInsufficientLength},
		{name: "batch length too high", payload: "aa01" + "08" + "010000002a1201", err: codec.ErrInsufficientLength},
		{name: "batch trailing bytes", payload: "aa01" + "07" + "010000002a1201" + "ff", err: codec.ErrTrailingBytes},
		{name: "batch bad member", payload: "aa01" + "02" + "ffff", err: codec.ErrUnknownOpcode},
		{name: "batch empty member", payload: "aa01" + "00", err: codec.ErrInsufficientLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			_, err := instructions.Unmarshal(mustHex(t, tt.payload))
			require.ErrorIs(err, tt.err)
			require.True(codec.IsDecodeError(err))
		})
	}
}

func TestDecodeWrongType(t *testing.T) {
	require := require.New(t)

	_, err := instructions.DecodeClaim(mustHex(t, "060000002a0812010811"))
	require.ErrorIs(err, instructions.ErrUnexpectedOpcode)
	require.True(codec.IsDecodeError(err))
}

func TestPointerLocatesSecondAmount(t *testing.T) {
	require := require.New(t)

	for _, fee0 := range []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(256), hugeAmount().Rsh(hugeAmount(), 1100)} {
		fee1 := big.NewInt(77)
		b := mustMarshal(t, &instructions.Claim{PoolID: 7, Fee0: fee0, Fee1: fee1})

		packed0, err := codec.PackAmount(fee0)
		require.NoError(err)
		pointer := int(b[5])
		require.Equal(6+len(packed0), pointer)

		second, err := codec.UnpackAmount(b[pointer:])
		require.NoError(err)
		require.Zero(fee1.Cmp(second))
	}
}

func mustHex(t *testing.T, s string) []byte {
	b, err := codec.RawFormat.Decode(s)
	require.NoError(t, err)
	return b
}

func mustMarshal(t *testing.T, ix instructions.Instruction) []byte {
	b, err := instructions.Marshal(ix)
	require.NoError(t, err)
	return b
}
