// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl

import (
	"fmt"

	"github.com/grailbio/collections/errors"
	"github.com/grailbio/collections/log"
	"github.com/grailbio/collections/must"
)

var defaultOptions = options{minCapacity: DefaultMinCapacity, growthFactor: DefaultGrowthFactor}

// ring is the circular buffer behind every container. Logical element i
// lives at buf[(head+i) % len(buf)]. Unused slots hold the zero value so
// that removed elements can be collected.
type ring[T any] struct {
	buf  []T
	head int
	n    int
	// version counts structural modifications; see Iterator.
	version uint64
	opts    options
}

func newRing[T any](opts []Option) (ring[T], error) {
	o, err := makeOptions(opts)
	if err != nil {
		return ring[T]{}, err
	}
	r := ring[T]{opts: o}
	if o.capacity > 0 {
		r.buf = make([]T, o.capacity)
	}
	return r, nil
}

func (r *ring[T]) policy() options {
	if r.opts.growthFactor == 0 {
		return defaultOptions
	}
	return r.opts
}

func (r *ring[T]) phys(i int) int {
	j := r.head + i
	if j >= len(r.buf) {
		j -= len(r.buf)
	}
	return j
}

func (r *ring[T]) at(i int) T {
	return r.buf[r.phys(i)]
}

func (r *ring[T]) checkIndex(i int) error {
	if i < 0 || i >= r.n {
		return errors.E(errors.IndexOutOfRange, fmt.Sprintf("gtl: index %d, length %d", i, r.n))
	}
	return nil
}

// reserve makes room for at least want elements, growing geometrically.
func (r *ring[T]) reserve(want int) {
	if want <= len(r.buf) {
		return
	}
	p := r.policy()
	c := max(int(float64(len(r.buf))*p.growthFactor), want, p.minCapacity)
	r.realloc(c)
}

// realloc moves the elements into a fresh buffer of capacity c, starting at
// index 0.
func (r *ring[T]) realloc(c int) {
	must.Truef(c >= r.n, "gtl: resize to %d below length %d", c, r.n)
	if log.At(log.Debug) {
		log.Debug.Printf("gtl: resize %d -> %d (length %d)", len(r.buf), c, r.n)
	}
	buf := make([]T, c)
	r.copyTo(buf)
	r.buf, r.head = buf, 0
}

// copyTo copies the elements in logical order to dst, which must hold at
// least r.n elements.
func (r *ring[T]) copyTo(dst []T) {
	if r.head+r.n <= len(r.buf) {
		copy(dst, r.buf[r.head:r.head+r.n])
		return
	}
	k := copy(dst, r.buf[r.head:])
	copy(dst[k:], r.buf[:r.n-k])
}

func (r *ring[T]) pushBack(v T) {
	r.reserve(r.n + 1)
	r.buf[r.phys(r.n)] = v
	r.n++
	r.version++
}

func (r *ring[T]) pushFront(v T) {
	r.reserve(r.n + 1)
	if r.head == 0 {
		r.head = len(r.buf)
	}
	r.head--
	r.buf[r.head] = v
	r.n++
	r.version++
}

func (r *ring[T]) popFront() T {
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = r.phys(1)
	r.n--
	if r.n == 0 {
		r.head = 0
	}
	r.version++
	return v
}

func (r *ring[T]) popBack() T {
	var zero T
	i := r.phys(r.n - 1)
	v := r.buf[i]
	r.buf[i] = zero
	r.n--
	if r.n == 0 {
		r.head = 0
	}
	r.version++
	return v
}

// insert places v at logical index i, 0 <= i <= r.n, shifting later
// elements up by one.
func (r *ring[T]) insert(i int, v T) {
	r.reserve(r.n + 1)
	for j := r.n; j > i; j-- {
		r.buf[r.phys(j)] = r.buf[r.phys(j-1)]
	}
	r.buf[r.phys(i)] = v
	r.n++
	r.version++
}

// remove deletes logical index i, shifting later elements down by one.
func (r *ring[T]) remove(i int) T {
	v := r.at(i)
	for j := i; j < r.n-1; j++ {
		r.buf[r.phys(j)] = r.buf[r.phys(j+1)]
	}
	return r.popBackAfterMove(v)
}

// swapRemove deletes logical index i by moving the last element into its
// place.
func (r *ring[T]) swapRemove(i int) T {
	v := r.at(i)
	r.buf[r.phys(i)] = r.at(r.n - 1)
	return r.popBackAfterMove(v)
}

// popBackAfterMove drops the (already relocated) last slot and returns v.
func (r *ring[T]) popBackAfterMove(v T) T {
	r.popBack()
	return v
}

func (r *ring[T]) clear() {
	clear(r.buf)
	r.head, r.n = 0, 0
	r.version++
}

// trim releases capacity beyond the current length.
func (r *ring[T]) trim() {
	if len(r.buf) == r.n {
		return
	}
	if r.n == 0 {
		r.buf, r.head = nil, 0
	} else {
		r.realloc(r.n)
	}
	r.version++
}

func (r *ring[T]) slice() []T {
	s := make([]T, r.n)
	r.copyTo(s)
	return s
}

func (r *ring[T]) iterator(reverse bool) *Iterator[T] {
	return &Iterator[T]{r: r, version: r.version, reverse: reverse}
}
