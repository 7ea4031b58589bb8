// Copyright 2026 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitset provides a fixed-length bitmap on top of bitvec.Vector.
// Unlike Vector, out of range offsets are ignored rather than panicking.
package bitset

import (
	"errors"

	"github.com/bpowers/bitvec"
)

// ErrSizeMismatch is returned when combining bitsets of different lengths.
var ErrSizeMismatch = errors.New("bitsets must be the same length")

// Bitset is an in-memory bitmap that is conceptually similar to []bool, but more memory efficient.
type Bitset struct {
	v *bitvec.Vector
}

// New returns a new in-memory bitset where you can set, clear and test for individual bits.
func New(length int) *Bitset {
	v := bitvec.New()
	if length > 0 {
		v.Grow(length)
	}
	return &Bitset{v: v}
}

func (b *Bitset) inRange(off int) bool {
	return off >= 0 && off < b.v.Len()
}

// Set sets the bit at position `off` to 1.
func (b *Bitset) Set(off int) {
	if !b.inRange(off) {
		return
	}
	b.v.Set(off, true)
}

// Clear sets the bit at position `off` to 0.
func (b *Bitset) Clear(off int) {
	if !b.inRange(off) {
		return
	}
	b.v.Set(off, false)
}

// IsSet returns true if the bit at position `off` is 1.
func (b *Bitset) IsSet(off int) bool {
	if !b.inRange(off) {
		return false
	}
	return b.v.Get(off)
}

// Len returns the number of bits in b.
func (b *Bitset) Len() int {
	return b.v.Len()
}

// Count returns the number of bits set to 1.
func (b *Bitset) Count() int {
	return b.v.Count()
}

// Reset sets every bit to 0.
func (b *Bitset) Reset() {
	b.v.Reset()
}

// Vector returns the Vector backing b.
func (b *Bitset) Vector() *bitvec.Vector {
	return b.v
}

// Union sets b to b OR other.
func (b *Bitset) Union(other *Bitset) error {
	if b.Len() != other.Len() {
		return ErrSizeMismatch
	}
	b.v.OrWith(other.v)
	return nil
}

// Intersect sets b to b AND other.
func (b *Bitset) Intersect(other *Bitset) error {
	if b.Len() != other.Len() {
		return ErrSizeMismatch
	}
	b.v.AndWith(other.v)
	return nil
}
