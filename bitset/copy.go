// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"

	"github.com/grailbio/collections/errors"
)

// CopyFullStateFrom makes b an exact copy of src, size included.
func (b *Bits) CopyFullStateFrom(src *Bits) {
	if src == b {
		return
	}
	if cap(b.words) < len(src.words) {
		b.words = make([]uint64, len(src.words))
	} else {
		if len(b.words) > len(src.words) {
			clear(b.words[len(src.words):])
		}
		b.words = b.words[:len(src.words)]
	}
	copy(b.words, src.words)
	b.size = src.size
}

// CopyRangeFrom copies up to length bits of src starting at srcPos into b
// starting at destPos, and returns the number of bits copied. The count is
// clamped so that neither range runs past its set's size; b's size does not
// change.
//
// src may be b itself. Overlapping ranges are handled like memmove: the copy
// runs upward when srcPos >= destPos and downward otherwise.
func (b *Bits) CopyRangeFrom(src *Bits, srcPos, destPos, length int) (int, error) {
	if src == nil {
		return 0, errors.E(errors.Invalid, "bitset: nil copy source")
	}
	if srcPos < 0 || srcPos >= src.size {
		return 0, errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: copy source position %d, size %d", srcPos, src.size))
	}
	if destPos < 0 || destPos >= b.size {
		return 0, errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: copy destination position %d, size %d", destPos, b.size))
	}
	if length < 0 {
		return 0, errors.E(errors.InvalidSize, fmt.Sprintf("bitset: copy length %d", length))
	}
	n := min(length, src.size-srcPos, b.size-destPos)
	if n == 0 {
		return 0, nil
	}
	if srcPos >= destPos {
		for done := 0; done < n; {
			c := min(BitsPerWord, n-done)
			deposit(b.words, destPos+done, uint(c), extract(src.words, srcPos+done, uint(c)))
			done += c
		}
	} else {
		for left := n; left > 0; {
			c := min(BitsPerWord, left)
			left -= c
			deposit(b.words, destPos+left, uint(c), extract(src.words, srcPos+left, uint(c)))
		}
	}
	return n, nil
}
