// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type bark interface {
	Bark() string
}

type blah1 struct{}

func (*blah1) Bark() string { return "blah1" }

type blah2 struct{}

func (*blah2) Bark() string { return "blah2" }

func unmarshalBlah1(*Packer) (bark, error) { return &blah1{}, nil }

func unmarshalBlah2(*Packer) (bark, error) { return &blah2{}, nil }

func TestTypeParser(t *testing.T) {
	tp := NewTypeParser[bark]()

	t.Run("empty parser", func(t *testing.T) {
		require := require.New(t)
		f, ok := tp.LookupIndex(0)
		require.Nil(f)
		require.False(ok)
		require.Empty(tp.Indices())
	})

	t.Run("populated parser", func(t *testing.T) {
		require := require.New(t)

		require.NoError(tp.Register(0x0c, "blah1", &blah1{}, unmarshalBlah1))
		require.NoError(tp.Register(0x01, "blah2", &blah2{}, unmarshalBlah2))
		require.NoError(tp.Register(0x03, "blah2Again", &blah2{}, unmarshalBlah2))
		require.Equal([]uint8{0x01, 0x03, 0x0c}, tp.Indices())

		f, ok := tp.LookupIndex(0x0c)
		require.True(ok)
		res, err := f(nil)
		require.NoError(err)
		require.Equal("blah1", res.Bark())

		name, ok := tp.Name(0x03)
		require.True(ok)
		require.Equal("blah2Again", name)

		_, ok = tp.Name(0x02)
		require.False(ok)
	})

	t.Run("duplicate index", func(t *testing.T) {
		require := require.New(t)
		err := tp.Register(0x01, "blah1", &blah1{}, unmarshalBlah1)
		require.ErrorIs(err, ErrDuplicateItem)
		require.False(IsDecodeError(err))
		for _, kind := range []error{ErrFormat, ErrRange, ErrOverflow} {
			require.NotErrorIs(err, kind)
		}
	})
}
