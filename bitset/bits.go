// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/grailbio/collections/errors"
	"github.com/grailbio/collections/log"
)

// Bits is a bit vector of Size() addressable positions, packed into 64-bit
// words: word i holds positions [64i, 64i+64). The zero value is an empty
// set of size 0.
//
// len(words) is always WordsFor(size). Storage retained past len(words) by
// an earlier shrink is zeroed before it is exposed again.
type Bits struct {
	size  int
	words []uint64
}

// New returns an empty Bits of size 0.
func New() *Bits {
	return &Bits{}
}

// WithSize returns a Bits of size n with every bit clear.
func WithSize(n int) (*Bits, error) {
	if n < 0 {
		return nil, errors.E(errors.InvalidSize, fmt.Sprintf("bitset: size %d", n))
	}
	return &Bits{size: n, words: make([]uint64, WordsFor(n))}, nil
}

// Filled returns a Bits of size n with every bit set.
func Filled(n int) (*Bits, error) {
	b, err := WithSize(n)
	if err != nil {
		return nil, err
	}
	b.SetAll()
	return b, nil
}

// Of returns a Bits of size n with exactly the given indices set. It fails
// with IndexOutOfRange if any index lies outside [0, n).
func Of(n int, indices ...int) (*Bits, error) {
	b, err := WithSize(n)
	if err != nil {
		return nil, err
	}
	if err := b.SetIndices(indices...); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns a deep copy of b.
func (b *Bits) Clone() *Bits {
	c := &Bits{size: b.size, words: make([]uint64, len(b.words))}
	copy(c.words, b.words)
	return c
}

// Size returns the number of addressable bit positions.
func (b *Bits) Size() int { return b.size }

// WordLen returns the number of backing words in use.
func (b *Bits) WordLen() int { return len(b.words) }

func (b *Bits) checkIndex(i int) error {
	if i < 0 || i >= b.size {
		return errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: index %d, size %d", i, b.size))
	}
	return nil
}

func (b *Bits) checkRange(from, to int) error {
	if from < 0 || from > to || to > b.size {
		return errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: range [%d, %d), size %d", from, to, b.size))
	}
	return nil
}

// Get reports whether bit i is set.
func (b *Bits) Get(i int) (bool, error) {
	if err := b.checkIndex(i); err != nil {
		return false, err
	}
	return Test(b.words, i), nil
}

// Set sets bit i.
func (b *Bits) Set(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	Set(b.words, i)
	return nil
}

// Clear clears bit i.
func (b *Bits) Clear(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	Clear(b.words, i)
	return nil
}

// Flip inverts bit i.
func (b *Bits) Flip(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.words[i/BitsPerWord] ^= 1 << (uint(i) % BitsPerWord)
	return nil
}

func (b *Bits) checkIndices(indices []int) error {
	for _, i := range indices {
		if err := b.checkIndex(i); err != nil {
			return err
		}
	}
	return nil
}

// SetIndices sets every given bit. All indices are validated first; if any
// is out of range the set is left unchanged and the error names the first
// offending index.
func (b *Bits) SetIndices(indices ...int) error {
	if err := b.checkIndices(indices); err != nil {
		return err
	}
	for _, i := range indices {
		Set(b.words, i)
	}
	return nil
}

// ClearIndices clears every given bit, with the same all-or-nothing
// validation as SetIndices.
func (b *Bits) ClearIndices(indices ...int) error {
	if err := b.checkIndices(indices); err != nil {
		return err
	}
	for _, i := range indices {
		Clear(b.words, i)
	}
	return nil
}

// SetRange sets bits [from, to).
func (b *Bits) SetRange(from, to int) error {
	if err := b.checkRange(from, to); err != nil || from == to {
		return err
	}
	forRange(from, to, func(w int, mask uint64) { b.words[w] |= mask })
	return nil
}

// ClearRange clears bits [from, to).
func (b *Bits) ClearRange(from, to int) error {
	if err := b.checkRange(from, to); err != nil || from == to {
		return err
	}
	forRange(from, to, func(w int, mask uint64) { b.words[w] &^= mask })
	return nil
}

// FlipRange inverts bits [from, to).
func (b *Bits) FlipRange(from, to int) error {
	if err := b.checkRange(from, to); err != nil || from == to {
		return err
	}
	forRange(from, to, func(w int, mask uint64) { b.words[w] ^= mask })
	return nil
}

// SetAll sets every bit in [0, Size()).
func (b *Bits) SetAll() {
	for i := range b.words {
		b.words[i] = allOnes
	}
	b.cleanTail()
}

// ClearAll clears every bit. Storage is kept.
func (b *Bits) ClearAll() {
	clear(b.words)
}

// cleanTail zeroes the bits of the last word at or beyond size.
func (b *Bits) cleanTail() {
	if n := len(b.words); n > 0 {
		b.words[n-1] &= tailMask(b.size)
	}
}

// GrowToIndex makes i addressable, extending the size to i+1 if needed.
// Newly exposed bits are clear. Storage is never shrunk. i must be less
// than math.MaxInt.
func (b *Bits) GrowToIndex(i int) error {
	if i < 0 || i == math.MaxInt {
		return errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: grow to index %d", i))
	}
	if i >= b.size {
		b.growTo(i + 1)
	}
	return nil
}

// ExpandTo extends the size to n if it is currently smaller, and reports
// whether it did.
func (b *Bits) ExpandTo(n int) (bool, error) {
	if n < 0 {
		return false, errors.E(errors.InvalidSize, fmt.Sprintf("bitset: expand to %d", n))
	}
	if n <= b.size {
		return false, nil
	}
	b.growTo(n)
	return true, nil
}

func (b *Bits) growTo(n int) {
	nw := WordsFor(n)
	if old := len(b.words); nw <= cap(b.words) {
		b.words = b.words[:nw]
		clear(b.words[old:])
	} else {
		newCap := cap(b.words) + cap(b.words)/2
		if newCap < nw {
			newCap = nw
		}
		words := make([]uint64, nw, newCap)
		copy(words, b.words)
		b.words = words
		if log.At(log.Debug) {
			log.Debug.Printf("bitset: reallocated %d -> %d words", old, newCap)
		}
	}
	b.size = n
}

// TruncateToSize shrinks the size to n if it is currently larger, and
// reports whether it did. Bits at or beyond n are cleared, so growing again
// later exposes zeros.
func (b *Bits) TruncateToSize(n int) (bool, error) {
	if n < 0 {
		return false, errors.E(errors.InvalidSize, fmt.Sprintf("bitset: truncate to %d", n))
	}
	if n >= b.size {
		return false, nil
	}
	b.shrinkTo(n)
	return true, nil
}

// CompressTo is TruncateToSize for callers that only care whether the set
// shrank: it returns false for a negative n.
func (b *Bits) CompressTo(n int) bool {
	ok, err := b.TruncateToSize(n)
	return ok && err == nil
}

// Compact shrinks the size to one past the highest set bit.
func (b *Bits) Compact() {
	b.CompressTo(b.HighBitIndex() + 1)
}

func (b *Bits) shrinkTo(n int) {
	nw := WordsFor(n)
	clear(b.words[nw:])
	b.words = b.words[:nw]
	b.size = n
	b.cleanTail()
}

// Cardinality returns the number of set bits.
func (b *Bits) Cardinality() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// HighBitIndex returns the index of the highest set bit, or -1 if there is
// none.
func (b *Bits) HighBitIndex() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return i*BitsPerWord + BitsPerWord - 1 - bits.LeadingZeros64(w)
		}
	}
	return -1
}

// IsClean reports whether no bit is set.
func (b *Bits) IsClean() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// All reports whether every bit in [0, Size()) is set. It is vacuously true
// for an empty set.
func (b *Bits) All() bool {
	return b.Cardinality() == b.size
}

// NextSetBit returns the smallest set index >= from, or -1 if there is none.
func (b *Bits) NextSetBit(from int) (int, error) {
	if from < 0 {
		return -1, errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: next set bit from %d", from))
	}
	if from >= b.size {
		return -1, nil
	}
	w := from / BitsPerWord
	word := b.words[w] &^ lowMask(uint(from)%BitsPerWord)
	for {
		if word != 0 {
			return w*BitsPerWord + bits.TrailingZeros64(word), nil
		}
		if w++; w == len(b.words) {
			return -1, nil
		}
		word = b.words[w]
	}
}

// NextClearBit returns the smallest clear index >= from, or -1 if there is
// none below Size().
func (b *Bits) NextClearBit(from int) (int, error) {
	if from < 0 {
		return -1, errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: next clear bit from %d", from))
	}
	if from >= b.size {
		return -1, nil
	}
	w := from / BitsPerWord
	word := ^b.words[w] &^ lowMask(uint(from)%BitsPerWord)
	for {
		if word != 0 {
			// Tail bits are clean, so their complement shows up here.
			if i := w*BitsPerWord + bits.TrailingZeros64(word); i < b.size {
				return i, nil
			}
			return -1, nil
		}
		if w++; w == len(b.words) {
			return -1, nil
		}
		word = ^b.words[w]
	}
}

// PrevSetBit returns the largest set index <= from, or -1 if there is none.
// from values at or beyond Size() search from the last position; negative
// values return -1, so a descending loop can stop at PrevSetBit(i-1) == -1.
func (b *Bits) PrevSetBit(from int) int {
	if from < 0 || b.size == 0 {
		return -1
	}
	if from >= b.size {
		from = b.size - 1
	}
	w := from / BitsPerWord
	word := b.words[w] & lowMask(uint(from)%BitsPerWord+1)
	for {
		if word != 0 {
			return w*BitsPerWord + BitsPerWord - 1 - bits.LeadingZeros64(word)
		}
		if w--; w < 0 {
			return -1
		}
		word = b.words[w]
	}
}

// Indices returns the set positions in ascending order.
func (b *Bits) Indices() []int {
	indices := make([]int, 0, b.Cardinality())
	for w, word := range b.words {
		for word != 0 {
			indices = append(indices, w*BitsPerWord+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
	return indices
}

// BinaryString renders the set as Size() '0'/'1' characters, most
// significant (highest index) first.
func (b *Bits) BinaryString() string {
	var s strings.Builder
	s.Grow(b.size)
	for i := b.size - 1; i >= 0; i-- {
		if Test(b.words, i) {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}

// String renders the set positions, e.g. "{1,5,64}".
func (b *Bits) String() string {
	var s strings.Builder
	s.WriteByte('{')
	for i, idx := range b.Indices() {
		if i > 0 {
			s.WriteByte(',')
		}
		fmt.Fprint(&s, idx)
	}
	s.WriteByte('}')
	return s.String()
}
