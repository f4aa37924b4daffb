// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"github.com/grailbio/collections/must"
)

// The combinators below mutate and return the receiver. An operand shorter
// than the receiver behaves as if zero-padded.

// And intersects b with o. b keeps its size.
func (b *Bits) And(o *Bits) *Bits {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		b.words[i] &= o.words[i]
	}
	clear(b.words[n:])
	return b
}

// Or merges o into b, first growing b to o's size if o is larger.
func (b *Bits) Or(o *Bits) *Bits {
	b.growFor(o)
	for i, w := range o.words {
		b.words[i] |= w
	}
	return b
}

// Xor sets b to the symmetric difference of b and o, first growing b to o's
// size if o is larger.
func (b *Bits) Xor(o *Bits) *Bits {
	b.growFor(o)
	for i, w := range o.words {
		b.words[i] ^= w
	}
	return b
}

// AndNot clears every bit of b that is set in o. b keeps its size.
func (b *Bits) AndNot(o *Bits) *Bits {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		b.words[i] &^= o.words[i]
	}
	return b
}

// Not complements every bit in [0, Size()).
func (b *Bits) Not() *Bits {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.cleanTail()
	return b
}

func (b *Bits) growFor(o *Bits) {
	if o.size > b.size {
		must.Nil(b.GrowToIndex(o.size - 1))
	}
}

// Contains reports whether every bit set in o is also set in b. Sizes are
// ignored: positions beyond either operand's size count as clear.
func (b *Bits) Contains(o *Bits) bool {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		if o.words[i]&^b.words[i] != 0 {
			return false
		}
	}
	for _, w := range o.words[n:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// StrictContains reports whether b contains o and b has at least one set
// bit that o lacks.
func (b *Bits) StrictContains(o *Bits) bool {
	return b.Contains(o) && !b.EqualsIgnoreSize(o)
}

// Intersects reports whether b and o have a set bit in common.
func (b *Bits) Intersects(o *Bits) bool {
	n := min(len(b.words), len(o.words))
	for i := 0; i < n; i++ {
		if b.words[i]&o.words[i] != 0 {
			return true
		}
	}
	return false
}
