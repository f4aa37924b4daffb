// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bloom_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/grailbio/collections/bloom"
	"github.com/grailbio/collections/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestNoFalseNegatives(t *testing.T) {
	f, err := bloom.NewWithEstimates(1000, 0.01)
	assert.NoError(t, err)
	for i := 0; i < 1000; i++ {
		f.AddString(fmt.Sprint("key", i))
	}
	for i := 0; i < 1000; i++ {
		expect.True(t, f.TestString(fmt.Sprint("key", i)))
	}
	fp := 0
	for i := 0; i < 10000; i++ {
		if f.TestString(fmt.Sprint("other", i)) {
			fp++
		}
	}
	// 1% expected; allow generous slack.
	expect.True(t, fp < 500)

	n := f.ApproximatedSize()
	expect.True(t, n > 900 && n < 1100)

	f.ClearAll()
	expect.True(t, f.Bits().IsClean())
	expect.False(t, f.TestString("key1"))
}

func TestTestAndAdd(t *testing.T) {
	f, err := bloom.New(1000, 4)
	assert.NoError(t, err)
	expect.False(t, f.TestAndAdd([]byte("a")))
	expect.True(t, f.TestAndAdd([]byte("a")))
	expect.True(t, f.Test([]byte("a")))
	expect.EQ(t, f.Cap(), 1000)
	expect.EQ(t, f.K(), 4)
	expect.True(t, f.Bits().Cardinality() <= 4)
}

func TestMerge(t *testing.T) {
	f, err := bloom.New(512, 3)
	assert.NoError(t, err)
	g, err := bloom.New(512, 3)
	assert.NoError(t, err)
	f.AddString("x")
	g.AddString("y")
	assert.NoError(t, f.Merge(g))
	expect.True(t, f.TestString("x"))
	expect.True(t, f.TestString("y"))

	h, err := bloom.New(513, 3)
	assert.NoError(t, err)
	expect.True(t, errors.Is(errors.Invalid, f.Merge(h)))
}

func TestParameters(t *testing.T) {
	m, k, err := bloom.EstimateParameters(1000, 0.01)
	assert.NoError(t, err)
	expect.EQ(t, m, 9586)
	expect.EQ(t, k, 7)
	for _, c := range []struct {
		n    int
		fp   float64
		kind errors.Kind
	}{
		{0, 0.01, errors.InvalidSize},
		{-5, 0.01, errors.InvalidSize},
		{10, 0, errors.Invalid},
		{10, 1, errors.Invalid},
		{10, math.NaN(), errors.Invalid},
	} {
		_, _, err := bloom.EstimateParameters(c.n, c.fp)
		expect.True(t, errors.Is(c.kind, err))
	}

	_, err = bloom.New(0, 1)
	expect.True(t, errors.Is(errors.InvalidSize, err))
	_, err = bloom.New(10, 0)
	expect.True(t, errors.Is(errors.InvalidSize, err))
	_, err = bloom.NewWithEstimates(0, 0.1)
	expect.True(t, errors.Is(errors.InvalidSize, err))
	_, err = bloom.NewWithEstimates(10, 1)
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestApproximatedSizeSaturated(t *testing.T) {
	f, err := bloom.New(8, 2)
	assert.NoError(t, err)
	expect.EQ(t, f.ApproximatedSize(), 0)
	for i := 0; i < 1000; i++ {
		f.AddString(fmt.Sprint("key", i))
	}
	expect.True(t, f.Bits().All())
	expect.EQ(t, f.ApproximatedSize(), math.MaxInt)
}
