// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl

import (
	"fmt"
	"sort"

	"github.com/grailbio/collections/errors"
)

// Array is a growable sequence with indexed access. The zero value is an
// empty array that uses the default growth policy.
type Array[T any] struct {
	r ring[T]
}

// NewArray creates an empty array configured by opts.
func NewArray[T any](opts ...Option) (*Array[T], error) {
	r, err := newRing[T](opts)
	if err != nil {
		return nil, err
	}
	return &Array[T]{r: r}, nil
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.r.n }

// Cap returns the number of elements the array can hold without growing.
func (a *Array[T]) Cap() int { return len(a.r.buf) }

// Append adds values to the end of the array.
func (a *Array[T]) Append(values ...T) {
	a.r.reserve(a.r.n + len(values))
	for _, v := range values {
		a.r.pushBack(v)
	}
}

// Get returns the i'th element.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.r.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.r.at(i), nil
}

// Set replaces the i'th element. Set is not a structural change, so it does
// not invalidate iterators.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.r.checkIndex(i); err != nil {
		return err
	}
	a.r.buf[a.r.phys(i)] = v
	return nil
}

// Insert places v at index i, 0 <= i <= Len, shifting later elements up.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.r.n {
		return errors.E(errors.IndexOutOfRange, fmt.Sprintf("gtl: insert at %d, length %d", i, a.r.n))
	}
	a.r.insert(i, v)
	return nil
}

// Remove deletes and returns the i'th element, preserving the order of the
// remaining elements.
func (a *Array[T]) Remove(i int) (T, error) {
	if err := a.r.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.r.remove(i), nil
}

// SwapRemove deletes and returns the i'th element in constant time by
// moving the last element into its slot.
func (a *Array[T]) SwapRemove(i int) (T, error) {
	if err := a.r.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.r.swapRemove(i), nil
}

// IndexOf returns the index of the first element e with eq(e, v), or -1.
func (a *Array[T]) IndexOf(v T, eq func(x, y T) bool) int {
	for i := 0; i < a.r.n; i++ {
		if eq(a.r.at(i), v) {
			return i
		}
	}
	return -1
}

// Index returns the index of the first element of a equal to v, or -1.
func Index[T comparable](a *Array[T], v T) int {
	return a.IndexOf(v, func(x, y T) bool { return x == y })
}

// BinarySearch searches a sorted array for v. cmp(x, v) must return a
// negative number, zero or a positive number when x sorts before, equal to,
// or after v. It returns the position where v is or would be inserted, and
// whether it was found.
func (a *Array[T]) BinarySearch(v T, cmp func(x, y T) int) (int, bool) {
	i := sort.Search(a.r.n, func(i int) bool { return cmp(a.r.at(i), v) >= 0 })
	return i, i < a.r.n && cmp(a.r.at(i), v) == 0
}

// Reserve ensures room for at least n more elements.
func (a *Array[T]) Reserve(n int) error {
	if n < 0 {
		return errors.E(errors.InvalidSize, fmt.Sprintf("gtl: reserve %d", n))
	}
	if a.r.n+n > len(a.r.buf) {
		a.r.realloc(a.r.n + n)
	}
	return nil
}

// Trim releases unused capacity. Containers never shrink otherwise.
func (a *Array[T]) Trim() { a.r.trim() }

// Clear removes all elements, keeping capacity.
func (a *Array[T]) Clear() { a.r.clear() }

// Slice returns a copy of the elements in order.
func (a *Array[T]) Slice() []T { return a.r.slice() }

// Iterator returns an iterator over the elements in index order.
func (a *Array[T]) Iterator() *Iterator[T] { return a.r.iterator(false) }
