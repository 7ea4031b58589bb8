// Copyright 2026 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitvec provides Vector, a growable array of bools packed into
// 64-bit words.
//
// A Vector is not safe for concurrent use; callers sharing one between
// goroutines must provide their own locking.
package bitvec

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/bpowers/bitvec/internal/zero"
)

const wordSize = 64

var (
	// ErrOutOfRange is the panic value (wrapped) for Get and Set with an
	// index outside [0, Len()).
	ErrOutOfRange = errors.New("out of range")
	// ErrLengthMismatch is the panic value (wrapped) for bitwise operations
	// between vectors of different lengths.
	ErrLengthMismatch = errors.New("invalid input")
)

// Vector is conceptually similar to []bool, but more memory efficient.  Bit i
// lives in words[i/64] at position i%64, so the least significant bit of
// words[0] is index 0.  The zero value is an empty Vector ready to use.
type Vector struct {
	words  []uint64
	length int
}

// New returns an empty Vector.
func New() *Vector {
	return &Vector{}
}

// logicalWords is the number of words covering [0, Len()).  It can be less
// than len(v.words) after Pop.
func (v *Vector) logicalWords() int {
	return (v.length + wordSize - 1) / wordSize
}

func getOffsets(off int) (wordOff int, bitOff uint) {
	wordOff = off / wordSize
	bitOff = uint(off) % wordSize
	return
}

// Len returns the number of bits stored in v.
func (v *Vector) Len() int {
	return v.length
}

// Cap returns the number of bits v can hold before Push allocates another word.
func (v *Vector) Cap() int {
	return len(v.words) * wordSize
}

// Words returns the backing words of v.  The slice aliases v's storage and
// must not be written to.  Bits at positions >= Len() are unspecified: Pop
// clears them, NotInPlace sets them.  Because Pop never releases storage, the
// slice may also hold whole words past (Len()+63)/64.
func (v *Vector) Words() []uint64 {
	return v.words
}

// Push appends value to the end of v.
func (v *Vector) Push(value bool) {
	if len(v.words)*wordSize <= v.length {
		v.words = append(v.words, 0)
	}
	v.length++
	v.Set(v.length-1, value)
}

// Pop removes the last bit of v and returns it.  ok is false if v is empty.
// The backing words are never released.
func (v *Vector) Pop() (value bool, ok bool) {
	if v.length == 0 {
		return false, false
	}
	last := v.length - 1
	value = v.Get(last)
	v.Set(last, false)
	v.length--
	return value, true
}

// Grow appends n false bits to v.
func (v *Vector) Grow(n int) {
	if n < 0 {
		panic(fmt.Errorf("bitvec: negative Grow count %d: %w", n, ErrOutOfRange))
	}
	need := (v.length + n + wordSize - 1) / wordSize
	// bits past length in storage we already hold may have been set by
	// NotInPlace; they must read as false once they become logical.
	if rem := uint(v.length) % wordSize; rem != 0 {
		v.words[v.length/wordSize] &= (1 << rem) - 1
	}
	for i := v.logicalWords(); i < min(len(v.words), need); i++ {
		v.words[i] = 0
	}
	for len(v.words) < need {
		v.words = append(v.words, 0)
	}
	v.length += n
}

func (v *Vector) checkIndex(off int) {
	if off < 0 || off >= v.length {
		panic(fmt.Errorf("bitvec: index %d with length %d: %w", off, v.length, ErrOutOfRange))
	}
}

// Get returns the bit at position off.  It panics if off is not in [0, Len()).
func (v *Vector) Get(off int) bool {
	v.checkIndex(off)
	wordOff, bitOff := getOffsets(off)
	return v.words[wordOff]&(1<<bitOff) != 0
}

// Set sets the bit at position off to value.  It panics if off is not in
// [0, Len()).
func (v *Vector) Set(off int, value bool) {
	v.checkIndex(off)
	wordOff, bitOff := getOffsets(off)
	w := &v.words[wordOff]
	if value {
		*w |= 1 << bitOff
	} else {
		*w &= ^(1 << bitOff)
	}
}

// Reset clears every bit in v, keeping its length.
func (v *Vector) Reset() {
	zero.U64(v.words)
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	words := make([]uint64, len(v.words))
	copy(words, v.words)
	return &Vector{
		words:  words,
		length: v.length,
	}
}

// tailMask covers the logical bits of the last word.
func (v *Vector) tailMask() uint64 {
	if rem := uint(v.length) % wordSize; rem != 0 {
		return (1 << rem) - 1
	}
	return ^uint64(0)
}

// Count returns the number of set bits in v.
func (v *Vector) Count() int {
	if v.length == 0 {
		return 0
	}
	n := 0
	last := v.logicalWords() - 1
	for _, w := range v.words[:last] {
		n += bits.OnesCount64(w)
	}
	return n + bits.OnesCount64(v.words[last]&v.tailMask())
}

// Equal reports whether v and other have the same length and the same bits.
func (v *Vector) Equal(other *Vector) bool {
	if v.length != other.length {
		return false
	}
	if v.length == 0 {
		return true
	}
	last := v.logicalWords() - 1
	for i := 0; i < last; i++ {
		if v.words[i] != other.words[i] {
			return false
		}
	}
	mask := v.tailMask()
	return v.words[last]&mask == other.words[last]&mask
}

func (v *Vector) checkLen(other *Vector) {
	if v.length != other.length {
		panic(fmt.Errorf("bitvec: lengths %d and %d: %w", v.length, other.length, ErrLengthMismatch))
	}
}

// AndWith sets v to v AND other.  It panics if the lengths differ.
func (v *Vector) AndWith(other *Vector) {
	v.checkLen(other)
	for i := 0; i < v.logicalWords(); i++ {
		v.words[i] &= other.words[i]
	}
}

// OrWith sets v to v OR other.  It panics if the lengths differ.
func (v *Vector) OrWith(other *Vector) {
	v.checkLen(other)
	for i := 0; i < v.logicalWords(); i++ {
		v.words[i] |= other.words[i]
	}
}

// XorWith sets v to v XOR other.  It panics if the lengths differ.
func (v *Vector) XorWith(other *Vector) {
	v.checkLen(other)
	for i := 0; i < v.logicalWords(); i++ {
		v.words[i] ^= other.words[i]
	}
}

// NotInPlace complements every word of v, including the unused bits past
// Len() and any words Pop left behind.
func (v *Vector) NotInPlace() {
	for i := range v.words {
		v.words[i] = ^v.words[i]
	}
}

// And returns a new Vector holding v AND other.
func (v *Vector) And(other *Vector) *Vector {
	// checked here too so a mismatch fails before Clone allocates
	v.checkLen(other)
	result := v.Clone()
	result.AndWith(other)
	return result
}

// Or returns a new Vector holding v OR other.
func (v *Vector) Or(other *Vector) *Vector {
	// checked here too so a mismatch fails before Clone allocates
	v.checkLen(other)
	result := v.Clone()
	result.OrWith(other)
	return result
}

// Xor returns a new Vector holding v XOR other.
func (v *Vector) Xor(other *Vector) *Vector {
	// checked here too so a mismatch fails before Clone allocates
	v.checkLen(other)
	result := v.Clone()
	result.XorWith(other)
	return result
}

// Not returns a new Vector holding the complement of v.
func (v *Vector) Not() *Vector {
	result := v.Clone()
	result.NotInPlace()
	return result
}

// String renders v as a list of 0s and 1s, e.g. "[1, 0, 1]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(2 + 3*v.length)
	sb.WriteByte('[')
	for i := 0; i < v.length; i++ {
		if i != 0 {
			sb.WriteString(", ")
		}
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
