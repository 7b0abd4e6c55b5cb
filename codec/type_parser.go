// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"slices"

	"golang.org/x/exp/maps"
)

type typeEntry[T any] struct {
	name    string
	zero    T
	decoder func(*Packer) (T, error)
}

// TypeParser maps a one byte type id (an opcode) to the function that
// decodes it. Ids are fixed by the wire format rather than assigned in
// registration order, and one type may be registered under several ids.
type TypeParser[T any] struct {
	indexToEntry map[uint8]typeEntry[T]
}

func NewTypeParser[T any]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToEntry: map[uint8]typeEntry[T]{},
	}
}

func (p *TypeParser[T]) Register(index uint8, name string, o T, f func(*Packer) (T, error)) error {
	if _, ok := p.indexToEntry[index]; ok {
		return ErrDuplicateItem
	}
	p.indexToEntry[index] = typeEntry[T]{
		name:    name,
		zero:    o,
		decoder: f,
	}
	return nil
}

func (p *TypeParser[T]) LookupIndex(index uint8) (func(*Packer) (T, error), bool) {
	e, ok := p.indexToEntry[index]
	return e.decoder, ok
}

// Name returns the name [index] was registered with.
func (p *TypeParser[T]) Name(index uint8) (string, bool) {
	e, ok := p.indexToEntry[index]
	return e.name, ok
}

// Indices returns every registered id in ascending order.
func (p *TypeParser[T]) Indices() []uint8 {
	indices := maps.Keys(p.indexToEntry)
	slices.Sort(indices)
	return indices
}
