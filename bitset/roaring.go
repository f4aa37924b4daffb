// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitset

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/grailbio/collections/errors"
)

// ToRoaring returns a compressed bitmap holding b's set positions. It fails
// with IndexOutOfRange if a set position does not fit in 32 bits.
func (b *Bits) ToRoaring() (*roaring.Bitmap, error) {
	if hi := b.HighBitIndex(); hi >= 0 && uint64(hi) > math.MaxUint32 {
		return nil, errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: position %d exceeds roaring range", hi))
	}
	bm := roaring.New()
	for w, word := range b.words {
		for word != 0 {
			bm.Add(uint32(w*BitsPerWord + bits.TrailingZeros64(word)))
			word &= word - 1
		}
	}
	return bm, nil
}

// FromRoaring returns a Bits of size n holding bm's values. It fails with
// IndexOutOfRange if bm holds a value >= n.
func FromRoaring(n int, bm *roaring.Bitmap) (*Bits, error) {
	b, err := WithSize(n)
	if err != nil {
		return nil, err
	}
	if !bm.IsEmpty() && uint64(bm.Maximum()) >= uint64(n) {
		return nil, errors.E(errors.IndexOutOfRange, fmt.Sprintf("bitset: roaring value %d, size %d", bm.Maximum(), n))
	}
	for it := bm.Iterator(); it.HasNext(); {
		Set(b.words, int(it.Next()))
	}
	return b, nil
}
