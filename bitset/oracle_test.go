// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset_test

import (
	"math/rand"
	"testing"

	gbitset "github.com/grailbio/collections/bitset"
	"github.com/grailbio/testutil/expect"
	"github.com/willf/bitset"
)

// The tests in this file check Bits against github.com/willf/bitset, which
// implements the same word-packed representation with different size rules.
// Only size-independent observations (set positions, counts) are compared.

func toWillf(b *gbitset.Bits) *bitset.BitSet {
	w := bitset.New(uint(b.Size()))
	for _, i := range b.Indices() {
		w.Set(uint(i))
	}
	return w
}

func willfIndices(w *bitset.BitSet) []int {
	indices := []int{}
	for i, e := w.NextSet(0); e; i, e = w.NextSet(i + 1) {
		indices = append(indices, int(i))
	}
	return indices
}

func nextSetIndices(t *testing.T, b *gbitset.Bits) []int {
	indices := []int{}
	for i, err := b.NextSetBit(0); i != -1; i, err = b.NextSetBit(i + 1) {
		expect.NoError(t, err)
		indices = append(indices, i)
	}
	return indices
}

func TestAgainstWillf(t *testing.T) {
	fz := newFuzzer(5)
	const N = 500
	for iter := 0; iter < N; iter++ {
		a, b := fuzzBits(fz), fuzzBits(fz)
		wa, wb := toWillf(a), toWillf(b)

		expect.EQ(t, a.Cardinality(), int(wa.Count()))
		expect.EQ(t, nextSetIndices(t, a), willfIndices(wa))

		and := wa.Clone()
		and.InPlaceIntersection(wb)
		expect.EQ(t, a.Clone().And(b).Indices(), willfIndices(and))

		or := wa.Clone()
		or.InPlaceUnion(wb)
		expect.EQ(t, a.Clone().Or(b).Indices(), willfIndices(or))

		xor := wa.Clone()
		xor.InPlaceSymmetricDifference(wb)
		expect.EQ(t, a.Clone().Xor(b).Indices(), willfIndices(xor))

		diff := wa.Clone()
		diff.InPlaceDifference(wb)
		expect.EQ(t, a.Clone().AndNot(b).Indices(), willfIndices(diff))
	}
}

func naiveBitScanAdder(dst []uint64) int {
	nBits := len(dst) * gbitset.BitsPerWord
	tot := 0
	for i := 0; i != nBits; i++ {
		if gbitset.Test(dst, i) {
			tot += i
		}
	}
	return tot
}

func TestNonzeroWord(t *testing.T) {
	maxSize := 500
	nIter := 200
	srcArr := make([]uint64, maxSize)
	dstArr := make([]uint64, maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := rand.Intn(maxSize)
		sliceEnd := sliceStart + rand.Intn(maxSize-sliceStart)
		srcSlice := srcArr[sliceStart:sliceEnd]
		dstSlice := dstArr[sliceStart:sliceEnd]

		for i := range srcSlice {
			srcSlice[i] = rand.Uint64()
		}
		copy(dstSlice, srcSlice)
		nzwPop := 0
		for _, bitWord := range dstSlice {
			if bitWord != 0 {
				nzwPop++
			}
		}
		if nzwPop == 0 {
			continue
		}

		tot1 := 0
		for s, i := gbitset.NewNonzeroWordScanner(dstSlice, nzwPop); i != -1; i = s.Next() {
			tot1 += i
		}
		tot2 := naiveBitScanAdder(srcSlice)
		if tot1 != tot2 {
			t.Fatal("Mismatched bit-index sums.")
		}
		for _, bitWord := range dstSlice {
			if bitWord != 0 {
				t.Fatal("NonzeroWordScanner failed to clear all words.")
			}
		}
	}
}

func TestWordHelpers(t *testing.T) {
	expect.EQ(t, gbitset.WordsFor(0), 0)
	expect.EQ(t, gbitset.WordsFor(1), 1)
	expect.EQ(t, gbitset.WordsFor(64), 1)
	expect.EQ(t, gbitset.WordsFor(65), 2)

	data := make([]uint64, 2)
	gbitset.Set(data, 0)
	gbitset.Set(data, 127)
	expect.EQ(t, data, []uint64{1, 1 << 63})
	expect.True(t, gbitset.Test(data, 127))
	gbitset.Clear(data, 127)
	expect.False(t, gbitset.Test(data, 127))
}

var benchSink int

func BenchmarkScanner(b *testing.B) {
	bits, err := gbitset.WithSize(1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < bits.Size(); i += 369 {
		_ = bits.Set(i)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		tot := 0
		for s, i := bits.Scanner(); i != -1; i = s.Next() {
			tot += i
		}
		benchSink = tot
	}
}

func BenchmarkNextSetBit(b *testing.B) {
	bits, err := gbitset.WithSize(1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < bits.Size(); i += 369 {
		_ = bits.Set(i)
	}
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		tot := 0
		for i, _ := bits.NextSetBit(0); i != -1; i, _ = bits.NextSetBit(i + 1) {
			tot += i
		}
		benchSink = tot
	}
}
