// Copyright 2026 The bitvec Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bloom implements a Bloom filter over a bitset.Bitset, using
// farmhash double hashing to pick probe positions.
package bloom

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/bitvec/bitset"
	"github.com/bpowers/bitvec/internal/unsafestring"
)

var (
	errBadSize        = errors.New("bloom: m and k must both be positive")
	errBadProbability = errors.New("bloom: false positive rate must be in (0, 1)")
	errIncompatible   = errors.New("bloom: filters differ in size or hash count")
)

// Option configures a Filter.
type Option func(*options)

type options struct {
	logger *slog.Logger
	k      int
}

// WithLogger sets an optional logger for sizing and merge events.
// If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithHashCount overrides the number of probes NewWithEstimates would pick.
func WithHashCount(k int) Option {
	return func(opts *options) {
		opts.k = k
	}
}

func newOptions(opts []Option) options {
	var o options
	o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Filter is a Bloom filter with m bits and k probes per key.  Test never
// returns false for a key that was added.
type Filter struct {
	m      int
	k      int
	bits   *bitset.Bitset
	logger *slog.Logger
}

// New returns a Filter with m bits and k probes per key.  WithHashCount, if
// given, takes precedence over k.
func New(m, k int, opts ...Option) (*Filter, error) {
	o := newOptions(opts)
	if o.k != 0 {
		k = o.k
	}
	if m <= 0 || k <= 0 {
		return nil, fmt.Errorf("%w (m=%d, k=%d)", errBadSize, m, k)
	}
	o.logger.Debug("bloom: new filter", "m", m, "k", k)
	return &Filter{
		m:      m,
		k:      k,
		bits:   bitset.New(m),
		logger: o.logger,
	}, nil
}

// NewWithEstimates returns a Filter sized to hold n keys with a false
// positive rate of about p.
func NewWithEstimates(n int, p float64, opts ...Option) (*Filter, error) {
	if !(p > 0 && p < 1) {
		return nil, fmt.Errorf("%w (p=%g)", errBadProbability, p)
	}
	m, k := EstimateParameters(n, p)
	return New(m, k, opts...)
}

// EstimateParameters returns the bit count m and probe count k for n keys at
// false positive rate p.
func EstimateParameters(n int, p float64) (m, k int) {
	if n < 1 {
		n = 1
	}
	m = int(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if m < 1 {
		m = 1
	}
	k = int(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}
	return m, k
}

func baseHashes(key []byte) (h1, h2 uint64) {
	h1 = farm.Hash64WithSeed(key, 0)
	// odd, so successive probes don't collapse onto one position
	h2 = farm.Hash64WithSeed(key, 1) | 1
	return
}

func (f *Filter) location(h1, h2 uint64, i int) int {
	return int((h1 + uint64(i)*h2) % uint64(f.m))
}

// Add inserts key into f.
func (f *Filter) Add(key []byte) {
	h1, h2 := baseHashes(key)
	for i := 0; i < f.k; i++ {
		f.bits.Set(f.location(h1, h2, i))
	}
}

// AddString inserts key into f without copying it.
func (f *Filter) AddString(key string) {
	f.Add(unsafestring.ToBytes(key))
}

// Test returns true if key may be in f, and false if it definitely is not.
func (f *Filter) Test(key []byte) bool {
	h1, h2 := baseHashes(key)
	for i := 0; i < f.k; i++ {
		if !f.bits.IsSet(f.location(h1, h2, i)) {
			return false
		}
	}
	return true
}

// TestString is Test for string keys.
func (f *Filter) TestString(key string) bool {
	return f.Test(unsafestring.ToBytes(key))
}

// TestAndAdd reports whether key may already have been in f, then adds it.
func (f *Filter) TestAndAdd(key []byte) bool {
	h1, h2 := baseHashes(key)
	present := true
	for i := 0; i < f.k; i++ {
		loc := f.location(h1, h2, i)
		if !f.bits.IsSet(loc) {
			present = false
			f.bits.Set(loc)
		}
	}
	return present
}

// Merge adds every key in other to f.  Both filters must have been created
// with the same m and k.
func (f *Filter) Merge(other *Filter) error {
	if f.m != other.m || f.k != other.k {
		return fmt.Errorf("%w: (m=%d, k=%d) vs (m=%d, k=%d)", errIncompatible, f.m, f.k, other.m, other.k)
	}
	if err := f.bits.Union(other.bits); err != nil {
		return fmt.Errorf("bits.Union: %w", err)
	}
	f.logger.Debug("bloom: merged filter", "bitsSet", f.bits.Count())
	return nil
}

// Reset removes every key from f.
func (f *Filter) Reset() {
	f.bits.Reset()
}

// Cap returns the number of bits in f.
func (f *Filter) Cap() int {
	return f.m
}

// K returns the number of probes per key.
func (f *Filter) K() int {
	return f.k
}

// Count returns the number of bits set in f.
func (f *Filter) Count() int {
	return f.bits.Count()
}

// ApproximatedSize estimates how many distinct keys have been added to f.
// It returns +Inf once every bit is set.
func (f *Filter) ApproximatedSize() float64 {
	x := float64(f.bits.Count())
	m := float64(f.m)
	return -m / float64(f.k) * math.Log(1-x/m)
}
