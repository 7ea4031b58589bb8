// Copyright 2026 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package zero provides functions to zero word slices in place.
package zero

// U64 clears every element of w without changing its length or capacity.
func U64(w []uint64) {
	for i := range w {
		w[i] = 0
	}
}
