// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "github.com/ava-labs/fvm/consts"

// Format controls how encoded payloads are rendered as text. Some callers
// submit payloads with the 0x display prefix and others without it, so the
// choice is always explicit.
type Format struct {
	Prefix bool
}

var (
	RawFormat      = Format{}
	PrefixedFormat = Format{Prefix: true}
)

// Encode renders [b] as lower-case hex.
func (f Format) Encode(b []byte) string {
	if f.Prefix {
		return consts.HexPrefix + ToHex(b)
	}
	return ToHex(b)
}

// Decode accepts [s] with or without the prefix, in either case.
func (Format) Decode(s string) ([]byte, error) {
	return LoadHex(s, -1)
}
