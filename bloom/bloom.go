// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bloom implements a Bloom filter on top of bitset.Bits.
//
// Bit locations are derived from the two halves of a 128-bit murmur3 hash
// with double hashing: location(i) = h1 + i*h2 mod m.
package bloom

import (
	"fmt"
	"math"

	"github.com/grailbio/collections/bitset"
	"github.com/grailbio/collections/errors"
	"github.com/grailbio/collections/must"
	"github.com/twmb/murmur3"
)

// Filter is a Bloom filter with m bits and k hash functions.
type Filter struct {
	m, k int
	b    *bitset.Bits
}

// New creates a filter with m bits and k hash functions.
func New(m, k int) (*Filter, error) {
	if m <= 0 || k <= 0 {
		return nil, errors.E(errors.InvalidSize, fmt.Sprintf("bloom: m=%d k=%d", m, k))
	}
	b, err := bitset.WithSize(m)
	if err != nil {
		return nil, err
	}
	return &Filter{m: m, k: k, b: b}, nil
}

// EstimateParameters returns the number of bits and hash functions for a
// filter expected to hold n > 0 items with false positive rate fp,
// 0 < fp < 1.
func EstimateParameters(n int, fp float64) (m, k int, err error) {
	if n <= 0 {
		return 0, 0, errors.E(errors.InvalidSize, fmt.Sprintf("bloom: n=%d", n))
	}
	if !(fp > 0 && fp < 1) {
		return 0, 0, errors.E(errors.Invalid, fmt.Sprintf("bloom: false positive rate %v", fp))
	}
	m = int(math.Ceil(-1 * float64(n) * math.Log(fp) / (math.Ln2 * math.Ln2)))
	k = int(math.Ceil(math.Ln2 * float64(m) / float64(n)))
	return max(m, 1), max(k, 1), nil
}

// NewWithEstimates creates a filter sized for n items at false positive
// rate fp.
func NewWithEstimates(n int, fp float64) (*Filter, error) {
	m, k, err := EstimateParameters(n, fp)
	if err != nil {
		return nil, err
	}
	return New(m, k)
}

// Cap returns the number of bits in the filter.
func (f *Filter) Cap() int { return f.m }

// K returns the number of hash functions.
func (f *Filter) K() int { return f.k }

// Bits returns a copy of the filter's bit set.
func (f *Filter) Bits() *bitset.Bits { return f.b.Clone() }

func (f *Filter) location(h1, h2 uint64, i int) int {
	return int((h1 + uint64(i)*h2) % uint64(f.m))
}

// Add inserts data into the filter.
func (f *Filter) Add(data []byte) *Filter {
	h1, h2 := murmur3.Sum128(data)
	for i := 0; i < f.k; i++ {
		must.Nil(f.b.Set(f.location(h1, h2, i)))
	}
	return f
}

// AddString inserts s into the filter.
func (f *Filter) AddString(s string) *Filter {
	return f.Add([]byte(s))
}

func (f *Filter) test(i int) bool {
	v, err := f.b.Get(i)
	must.Nil(err)
	return v
}

// Test reports whether data may be in the filter. A false result is
// definite.
func (f *Filter) Test(data []byte) bool {
	h1, h2 := murmur3.Sum128(data)
	for i := 0; i < f.k; i++ {
		if !f.test(f.location(h1, h2, i)) {
			return false
		}
	}
	return true
}

// TestString is Test for strings.
func (f *Filter) TestString(s string) bool {
	return f.Test([]byte(s))
}

// TestAndAdd reports whether data may have been in the filter, then adds
// it.
func (f *Filter) TestAndAdd(data []byte) bool {
	present := true
	h1, h2 := murmur3.Sum128(data)
	for i := 0; i < f.k; i++ {
		l := f.location(h1, h2, i)
		if !f.test(l) {
			present = false
			must.Nil(f.b.Set(l))
		}
	}
	return present
}

// ClearAll empties the filter.
func (f *Filter) ClearAll() *Filter {
	f.b.ClearAll()
	return f
}

// Merge adds every item of g to f. Both filters must have the same
// parameters.
func (f *Filter) Merge(g *Filter) error {
	if f.m != g.m || f.k != g.k {
		return errors.E(errors.Invalid, fmt.Sprintf("bloom: merge m=%d k=%d with m=%d k=%d", f.m, f.k, g.m, g.k))
	}
	f.b.Or(g.b)
	return nil
}

// ApproximatedSize estimates the number of distinct items added. A
// saturated filter, with every bit set, reports math.MaxInt.
func (f *Filter) ApproximatedSize() int {
	x := float64(f.b.Cardinality())
	m, k := float64(f.m), float64(f.k)
	if x >= m {
		return math.MaxInt
	}
	n := math.Round(-m / k * math.Log(1-x/m))
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
