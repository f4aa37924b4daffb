// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitset provides Bits, a growable bit vector packed into 64-bit
// words, together with the word-level helpers it is built from.
//
// Bits addresses positions [0, Size()). Bits at or beyond Size() in the
// last backing word are always zero; every mutating operation preserves
// this, which is what makes Cardinality and the numeric comparisons
// (EqualsIgnoreSize, CompareIgnoreSize) correct without masking.
//
// Bounds violations are reported as errors of kind
// errors.IndexOutOfRange, negative sizes as errors.InvalidSize. Bulk
// operations over index lists validate every index before touching any
// word, so a failed call leaves the set unchanged.
//
// Iteration over set bits uses NextSetBit:
//
//	for i, _ := b.NextSetBit(0); i >= 0; i, _ = b.NextSetBit(i + 1) {
//		...
//	}
//
// Bits is not safe for concurrent mutation.
package bitset
