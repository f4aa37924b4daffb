// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"math/bits"
)

// NonzeroWordScanner iterates over and clears the set bits in a []uint64
// bitset, with the somewhat unusual precondition that the number of nonzero
// words is known in advance. It is cheaper than repeated NextSetBit calls
// when the caller owns a scratch copy of the words anyway; Bits.Scanner
// sets that up.
type NonzeroWordScanner struct {
	// data is the bitset being consumed.
	data []uint64
	// bitIdxOffset is BitsPerWord times the current data[] array index.
	bitIdxOffset int
	// bitWord is data[bitIdxOffset / BitsPerWord], with already-iterated-over
	// bits cleared.
	bitWord uint64
	// nNonzeroWord is the number of nonzero words remaining in data[].
	nNonzeroWord int
}

// NewNonzeroWordScanner returns a NonzeroWordScanner for the given bitset,
// along with the position of the first bit.  (This interface has been chosen
// to make for loops with properly-scoped variables easy to write.)
//
// The bitset is expected to be nonempty; otherwise this will crash the program
// with an out-of-bounds slice access.  Similarly, if nNonzeroWord is larger
// than the actual number of nonzero words, or initially <= 0, the standard for
// loop will crash the program.  (If nNonzeroWord is smaller but >0, the last
// nonzero words will be ignored.)
func NewNonzeroWordScanner(data []uint64, nNonzeroWord int) (NonzeroWordScanner, int) {
	for wordIdx := 0; ; wordIdx++ {
		bitWord := data[wordIdx]
		if bitWord != 0 {
			bitIdxOffset := wordIdx * BitsPerWord
			return NonzeroWordScanner{
				data:         data,
				bitIdxOffset: bitIdxOffset,
				bitWord:      bitWord & (bitWord - 1),
				nNonzeroWord: nNonzeroWord,
			}, bits.TrailingZeros64(bitWord) + bitIdxOffset
		}
	}
}

// Next returns the position of the next set bit, or -1 if there aren't any.
func (s *NonzeroWordScanner) Next() int {
	bitWord := s.bitWord
	if bitWord == 0 {
		wordIdx := int(uint(s.bitIdxOffset) / BitsPerWord)
		s.data[wordIdx] = 0
		s.nNonzeroWord--
		if s.nNonzeroWord == 0 {
			// All words with set bits are accounted for, we can exit early.
			// This is deliberately == 0 instead of <= 0 since it'll only be less
			// than zero if there's a bug in the caller.  We want to crash with an
			// out-of-bounds access in that case.
			return -1
		}
		for {
			wordIdx++
			bitWord = s.data[wordIdx]
			if bitWord != 0 {
				break
			}
		}
		s.bitIdxOffset = wordIdx * BitsPerWord
	}
	s.bitWord = bitWord & (bitWord - 1)
	return bits.TrailingZeros64(bitWord) + s.bitIdxOffset
}

// Scanner returns a NonzeroWordScanner over a private copy of b's words,
// along with the first set position. If b is clean the returned position is
// -1 and the scanner must not be used.
func (b *Bits) Scanner() (NonzeroWordScanner, int) {
	nNonzero := 0
	for _, w := range b.words {
		if w != 0 {
			nNonzero++
		}
	}
	if nNonzero == 0 {
		return NonzeroWordScanner{}, -1
	}
	data := make([]uint64, len(b.words))
	copy(data, b.words)
	return NewNonzeroWordScanner(data, nNonzero)
}
