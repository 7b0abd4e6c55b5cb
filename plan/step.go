// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"

	"github.com/ava-labs/fvm/codec"
	"github.com/ava-labs/fvm/instructions"
	"github.com/ava-labs/fvm/utils"
)

type Op string

const (
	OpCreatePair Op = "create_pair"
	OpCreatePool Op = "create_pool"
	OpAllocate   Op = "allocate"
	OpDeallocate Op = "deallocate"
	OpClaim      Op = "claim"
	OpSwap       Op = "swap"
	// OpRaw embeds an already encoded instruction given as hex.
	OpRaw Op = "raw"
)

// Param names.
const (
	Token0      = "token0"
	Token1      = "token1"
	PairID      = "pair_id"
	Controller  = "controller"
	PriorityFee = "priority_fee"
	Fee         = "fee"
	Vol         = "vol"
	Dur         = "dur"
	JIT         = "jit"
	MaxPrice    = "max_price"
	Price       = "price"
	UseMax      = "use_max"
	PoolID      = "pool_id"
	Amount      = "amount"
	Fee0        = "fee0"
	Fee1        = "fee1"
	Amount0     = "amount0"
	Amount1     = "amount1"
	SellAsset   = "sell_asset"
	Hex         = "hex"
)

var opParams = map[Op][]string{
	OpCreatePair: {Token0, Token1},
	OpCreatePool: {PairID, Controller, PriorityFee, Fee, Vol, Dur, JIT, MaxPrice, Price},
	OpAllocate:   {UseMax, PoolID, Amount},
	OpDeallocate: {UseMax, PoolID, Amount},
	OpClaim:      {PoolID, Fee0, Fee1},
	OpSwap:       {UseMax, PoolID, Amount0, Amount1, SellAsset},
	OpRaw:        {Hex},
}

// Ops returns every supported op, sorted.
func Ops() []Op {
	ops := maps.Keys(opParams)
	slices.Sort(ops)
	return ops
}

// Params returns the param names [op] accepts, in instruction order.
func Params(op Op) ([]string, bool) {
	params, ok := opParams[op]
	return params, ok
}

func (s *Step) verify() error {
	known, ok := opParams[s.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
	for name := range s.Params {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: %q for %s", ErrUnknownParam, name, s.Op)
		}
	}
	return nil
}

// Instruction builds the instruction described by the step.
func (s *Step) Instruction() (instructions.Instruction, error) {
	if err := s.verify(); err != nil {
		return nil, err
	}
	p := params(s.Params)
	switch s.Op {
	case OpCreatePair:
		token0, err := p.str(Token0)
		if err != nil {
			return nil, err
		}
		token1, err := p.str(Token1)
		if err != nil {
			return nil, err
		}
		return instructions.NewCreatePair(token0, token1)
	case OpCreatePool:
		return p.createPool()
	case OpAllocate, OpDeallocate:
		useMax, err := p.boolean(UseMax)
		if err != nil {
			return nil, err
		}
		poolID, err := p.poolID()
		if err != nil {
			return nil, err
		}
		amount, err := p.amount(Amount)
		if err != nil {
			return nil, err
		}
		if s.Op == OpAllocate {
			return instructions.NewAllocate(useMax, poolID, amount), nil
		}
		return instructions.NewDeallocate(useMax, poolID, amount), nil
	case OpClaim:
		poolID, err := p.poolID()
		if err != nil {
			return nil, err
		}
		fee0, err := p.amount(Fee0)
		if err != nil {
			return nil, err
		}
		fee1, err := p.amount(Fee1)
		if err != nil {
			return nil, err
		}
		return &instructions.Claim{PoolID: poolID, Fee0: fee0, Fee1: fee1}, nil
	case OpSwap:
		return p.swap()
	case OpRaw:
		raw, err := p.str(Hex)
		if err != nil {
			return nil, err
		}
		b, err := codec.RawFormat.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidParam, Hex, err)
		}
		return instructions.Unmarshal(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)
	}
}

type params map[string]string

func (p params) str(name string) (string, error) {
	v, ok := p[name]
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	return v, nil
}

func (p params) uint(name string, bits int) (uint64, error) {
	v, err := p.str(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrInvalidParam, name, err)
	}
	return n, nil
}

// boolean params default to false.
func (p params) boolean(name string) (bool, error) {
	v, ok := p[name]
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrInvalidParam, name, err)
	}
	return b, nil
}

func (p params) amount(name string) (*big.Int, error) {
	v, err := p.str(name)
	if err != nil {
		return nil, err
	}
	amount, err := utils.ParseAmount(v)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidParam, name, err)
	}
	return amount, nil
}

func (p params) poolID() (codec.PoolID, error) {
	n, err := p.uint(PoolID, 32)
	return codec.PoolID(n), err
}

func (p params) createPool() (*instructions.CreatePool, error) {
	pairID, err := p.uint(PairID, 64)
	if err != nil {
		return nil, err
	}
	controller, err := p.str(Controller)
	if err != nil {
		return nil, err
	}
	var fees [5]uint16
	for i, name := range []string{PriorityFee, Fee, Vol, Dur, JIT} {
		n, err := p.uint(name, 16)
		if err != nil {
			return nil, err
		}
		fees[i] = uint16(n)
	}
	maxPrice, err := p.amount(MaxPrice)
	if err != nil {
		return nil, err
	}
	price, err := p.amount(Price)
	if err != nil {
		return nil, err
	}
	return instructions.NewCreatePool(pairID, controller, fees[0], fees[1], fees[2], fees[3], fees[4], maxPrice, price)
}

func (p params) swap() (*instructions.Swap, error) {
	useMax, err := p.boolean(UseMax)
	if err != nil {
		return nil, err
	}
	poolID, err := p.poolID()
	if err != nil {
		return nil, err
	}
	amount0, err := p.amount(Amount0)
	if err != nil {
		return nil, err
	}
	amount1, err := p.amount(Amount1)
	if err != nil {
		return nil, err
	}
	sellAsset, err := p.boolean(SellAsset)
	if err != nil {
		return nil, err
	}
	return &instructions.Swap{
		UseMax:    useMax,
		PoolID:    poolID,
		Amount0:   amount0,
		Amount1:   amount1,
		SellAsset: sellAsset,
	}, nil
}
