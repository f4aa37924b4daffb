// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Bits supports two families of equality and ordering. Equals and Compare
// take the size into account; EqualsIgnoreSize and CompareIgnoreSize treat
// a set as the unsigned integer spelled by its bits.

// Equals reports whether b and o have the same size and the same bits.
func (b *Bits) Equals(o *Bits) bool {
	if b.size != o.size {
		return false
	}
	for i, w := range b.words {
		if o.words[i] != w {
			return false
		}
	}
	return true
}

// EqualsIgnoreSize reports whether b and o have the same set bits.
func (b *Bits) EqualsIgnoreSize(o *Bits) bool {
	return b.CompareIgnoreSize(o) == 0
}

// Compare orders first by size, then by value as an unsigned integer. It
// returns -1, 0 or +1.
func (b *Bits) Compare(o *Bits) int {
	switch {
	case b.size < o.size:
		return -1
	case b.size > o.size:
		return 1
	}
	return b.CompareIgnoreSize(o)
}

// CompareIgnoreSize orders b and o as unsigned integers, most significant
// word first. It returns -1, 0 or +1.
func (b *Bits) CompareIgnoreSize(o *Bits) int {
	for i := max(len(b.words), len(o.words)) - 1; i >= 0; i-- {
		var x, y uint64
		if i < len(b.words) {
			x = b.words[i]
		}
		if i < len(o.words) {
			y = o.words[i]
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Hash returns a 64-bit hash of b's size and bits. Sets that are Equal hash
// equally.
func (b *Bits) Hash() uint64 {
	buf := make([]byte, 8*(len(b.words)+1))
	binary.LittleEndian.PutUint64(buf, uint64(b.size))
	for i, w := range b.words {
		binary.LittleEndian.PutUint64(buf[8*(i+1):], w)
	}
	return xxh3.Hash(buf)
}
