// Copyright 2026 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitset(t *testing.T) {
	b := New(128)

	require.Equal(t, 2, len(b.v.Words()))
	require.Equal(t, 128, b.Len())

	// should do nothing
	b.Set(132)
	b.Set(-1)

	zero := []uint64{0, 0}
	require.Equal(t, zero, b.v.Words())

	require.False(t, b.IsSet(7))
	b.Set(7)
	require.True(t, b.IsSet(7))
	b.Set(8)
	require.True(t, b.IsSet(8))
	b.Clear(7)
	require.False(t, b.IsSet(7))
	require.True(t, b.IsSet(8))
	b.Clear(8)
	require.Equal(t, zero, b.v.Words())

	for i := 0; i < 128; i++ {
		b.Set(i)
	}

	full := []uint64{^uint64(0), ^uint64(0)}
	require.Equal(t, full, b.v.Words())
	require.Equal(t, 128, b.Count())

	// should do nothing
	b.Clear(137)
	require.Equal(t, full, b.v.Words())
	require.False(t, b.IsSet(137))

	b.Reset()
	require.Equal(t, zero, b.v.Words())
	require.Equal(t, 128, b.Len())
}

func TestNewEmpty(t *testing.T) {
	for _, length := range []int{0, -5} {
		b := New(length)
		require.Equal(t, 0, b.Len())
		require.False(t, b.IsSet(0))
		b.Set(0)
		require.Equal(t, 0, b.Count())
	}
}

func TestUnionIntersect(t *testing.T) {
	a := New(70)
	b := New(70)
	a.Set(1)
	a.Set(69)
	b.Set(69)
	b.Set(3)

	u := New(70)
	require.NoError(t, u.Union(a))
	require.NoError(t, u.Union(b))
	for _, off := range []int{1, 3, 69} {
		require.True(t, u.IsSet(off))
	}
	require.Equal(t, 3, u.Count())

	require.NoError(t, a.Intersect(b))
	require.Equal(t, 1, a.Count())
	require.True(t, a.IsSet(69))

	require.ErrorIs(t, a.Union(New(71)), ErrSizeMismatch)
	require.ErrorIs(t, a.Intersect(New(64)), ErrSizeMismatch)

	c := New(3)
	c.Set(2)
	require.Equal(t, "[0, 0, 1]", c.Vector().String())
}
