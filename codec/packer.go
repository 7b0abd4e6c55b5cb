// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"errors"
	"math/big"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/fvm/consts"
)

// Packer is a wrapper struct for the Packer struct
// from avalanchego/utils/wrappers/packing.go. All multi-byte integers are
// big-endian. The first error encountered is kept and every later call
// becomes a no-op, so callers check [Err] once at the end.
type Packer struct {
	p *wrappers.Packer
}

// NewReader returns a Packer that reads from [src].
func NewReader(src []byte, limit int) *Packer {
	return &Packer{
		p: &wrappers.Packer{Bytes: src, MaxSize: limit},
	}
}

// NewWriter returns a Packer that writes into a buffer with [initial]
// capacity and errors if more than [limit] bytes are written.
func NewWriter(initial, limit int) *Packer {
	return &Packer{
		p: &wrappers.Packer{Bytes: make([]byte, 0, initial), MaxSize: limit},
	}
}

func (p *Packer) PackByte(b byte) {
	p.p.PackByte(b)
}

func (p *Packer) UnpackByte() byte {
	return p.p.UnpackByte()
}

func (p *Packer) PackUint16(v uint16) {
	p.p.PackShort(v)
}

func (p *Packer) UnpackUint16() uint16 {
	return p.p.UnpackShort()
}

func (p *Packer) PackFixedBytes(b []byte) {
	p.p.PackFixedBytes(b)
}

func (p *Packer) UnpackFixedBytes(size int) []byte {
	return p.p.UnpackFixedBytes(size)
}

func (p *Packer) PackAddress(a Address) {
	p.p.PackFixedBytes(a[:])
}

func (p *Packer) UnpackAddress(dest *Address) {
	copy((*dest)[:], p.p.UnpackFixedBytes(AddressLen))
}

func (p *Packer) PackPoolID(id PoolID) {
	p.p.PackInt(uint32(id))
}

func (p *Packer) UnpackPoolID() PoolID {
	return PoolID(p.p.UnpackInt())
}

// PackPairID writes [id] as a 3 byte big-endian integer.
func (p *Packer) PackPairID(id PairID) {
	if id > consts.MaxUint24 {
		p.addErr(ErrPairIDOverflow)
		return
	}
	p.p.PackFixedBytes([]byte{byte(id >> 16), byte(id >> 8), byte(id)})
}

func (p *Packer) UnpackPairID() PairID {
	b := p.p.UnpackFixedBytes(consts.PairIDLen)
	if len(b) != consts.PairIDLen {
		return 0
	}
	return PairID(b[0])<<16 | PairID(b[1])<<8 | PairID(b[2])
}

// PackPointer writes a single byte offset. Offsets above 255 are
// rejected rather than truncated.
func (p *Packer) PackPointer(offset int) {
	if offset < 0 || offset > int(consts.MaxUint8) {
		p.addErr(ErrPointerTooLarge)
		return
	}
	p.p.PackByte(byte(offset))
}

// PackAmount writes the packed form of [amount].
func (p *Packer) PackAmount(amount *big.Int) {
	b, err := PackAmount(amount)
	if err != nil {
		p.addErr(err)
		return
	}
	p.p.PackFixedBytes(b)
}

// UnpackAmount reads a packed amount occupying exactly [size] bytes.
func (p *Packer) UnpackAmount(size int) *big.Int {
	b := p.p.UnpackFixedBytes(size)
	if p.p.Errored() {
		return nil
	}
	amount, err := UnpackAmount(b)
	if err != nil {
		p.addErr(err)
		return nil
	}
	return amount
}

// Bytes returns everything written so far (writer) or the full source
// (reader).
func (p *Packer) Bytes() []byte {
	return p.p.Bytes
}

func (p *Packer) Offset() int {
	return p.p.Offset
}

// Remaining is the number of unread bytes.
func (p *Packer) Remaining() int {
	return len(p.p.Bytes) - p.p.Offset
}

func (p *Packer) Empty() bool {
	return p.p.Offset == len(p.p.Bytes)
}

// Err returns the first error encountered. Short reads are reported as
// [ErrInsufficientLength].
func (p *Packer) Err() error {
	err := p.p.Err
	if err != nil && errors.Is(err, wrappers.ErrInsufficientLength) {
		return ErrInsufficientLength
	}
	return err
}

// AddErr records [err] unless an earlier error is already held.
func (p *Packer) AddErr(err error) {
	p.addErr(err)
}

func (p *Packer) addErr(err error) {
	p.p.Add(err)
}
