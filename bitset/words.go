// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

// BitsPerWord is the number of bits in a backing word.
const BitsPerWord = 64

const allOnes = ^uint64(0)

// WordsFor returns the number of words needed to hold nbits bits.
// nbits must be nonnegative.
func WordsFor(nbits int) int {
	return int((uint(nbits) + BitsPerWord - 1) / BitsPerWord)
}

// Set sets the given bit in a []uint64 bitset.
func Set(data []uint64, bitIdx int) {
	// Unsigned division by a power-of-2 constant compiles to a right-shift,
	// while signed does not due to negative nastiness.
	data[uint(bitIdx)/BitsPerWord] |= 1 << (uint(bitIdx) % BitsPerWord)
}

// Clear clears the given bit in a []uint64 bitset.
func Clear(data []uint64, bitIdx int) {
	wordIdx := uint(bitIdx) / BitsPerWord
	data[wordIdx] = data[wordIdx] &^ (1 << (uint(bitIdx) % BitsPerWord))
}

// Test returns true iff the given bit is set.
func Test(data []uint64, bitIdx int) bool {
	return (data[uint(bitIdx)/BitsPerWord] & (1 << (uint(bitIdx) % BitsPerWord))) != 0
}

// lowMask returns a word with the low n bits set, 0 <= n <= 64.
func lowMask(n uint) uint64 {
	if n >= BitsPerWord {
		return allOnes
	}
	return (1 << n) - 1
}

// rangeMask returns a word with bits [lo, hi) set, 0 <= lo <= hi <= 64.
func rangeMask(lo, hi uint) uint64 {
	return lowMask(hi) &^ lowMask(lo)
}

// tailMask returns the mask of bits that are addressable in the last word of
// a bitset with nbits > 0 bits.
func tailMask(nbits int) uint64 {
	return lowMask(uint(nbits-1)%BitsPerWord + 1)
}

// forRange calls fn for every word overlapping [from, to), along with the
// mask of bits of that word inside the range. from < to.
func forRange(from, to int, fn func(wordIdx int, mask uint64)) {
	first, last := from/BitsPerWord, (to-1)/BitsPerWord
	lo, hi := uint(from)%BitsPerWord, uint(to-1)%BitsPerWord+1
	if first == last {
		fn(first, rangeMask(lo, hi))
		return
	}
	fn(first, rangeMask(lo, BitsPerWord))
	for w := first + 1; w < last; w++ {
		fn(w, allOnes)
	}
	fn(last, lowMask(hi))
}

// extract returns count bits of data starting at bit pos, right-aligned.
// 1 <= count <= 64, and [pos, pos+count) must lie within data.
func extract(data []uint64, pos int, count uint) uint64 {
	w, off := pos/BitsPerWord, uint(pos)%BitsPerWord
	v := data[w] >> off
	if off != 0 && off+count > BitsPerWord {
		v |= data[w+1] << (BitsPerWord - off)
	}
	return v & lowMask(count)
}

// deposit overwrites count bits of data starting at bit pos with the low
// count bits of v. 1 <= count <= 64, and [pos, pos+count) must lie within
// data.
func deposit(data []uint64, pos int, count uint, v uint64) {
	w, off := pos/BitsPerWord, uint(pos)%BitsPerWord
	m := lowMask(count)
	v &= m
	data[w] = data[w]&^(m<<off) | v<<off
	if off+count > BitsPerWord {
		spill := lowMask(off + count - BitsPerWord)
		data[w+1] = data[w+1]&^spill | (v>>(BitsPerWord-off))&spill
	}
}
