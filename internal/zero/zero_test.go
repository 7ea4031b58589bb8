// Copyright 2026 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package zero

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU64(t *testing.T) {
	for _, input := range [][]uint64{
		nil,
		{},
		{1, 2, 3},
		{^uint64(0), 0, 1 << 63},
	} {
		initialLen := len(input)
		initialCap := cap(input)
		expected := make([]uint64, len(input))
		U64(input)
		if input == nil {
			require.Nil(t, input)
			continue
		}
		require.Equal(t, expected, input)
		// len and cap should be unchanged
		require.Equal(t, initialLen, len(input))
		require.Equal(t, initialCap, cap(input))
	}
}

func TestU64SubSlice(t *testing.T) {
	w := []uint64{7, 8, 9, 10}
	U64(w[1:3])
	require.Equal(t, []uint64{7, 0, 0, 10}, w)
	require.Zero(t, testing.AllocsPerRun(10, func() {
		U64(w)
	}))
}
