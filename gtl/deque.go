// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl

import "github.com/grailbio/collections/errors"

// Deque supports pushes and pops at both ends. The zero value is ready to
// use.
type Deque[T any] struct {
	r ring[T]
}

// NewDeque creates an empty deque configured by opts.
func NewDeque[T any](opts ...Option) (*Deque[T], error) {
	r, err := newRing[T](opts)
	if err != nil {
		return nil, err
	}
	return &Deque[T]{r: r}, nil
}

// PushFront adds v at the front.
func (d *Deque[T]) PushFront(v T) { d.r.pushFront(v) }

// PushBack adds v at the back.
func (d *Deque[T]) PushBack(v T) { d.r.pushBack(v) }

// PopFront removes and returns the front element. It returns false if the
// deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.r.n == 0 {
		var zero T
		return zero, false
	}
	return d.r.popFront(), true
}

// PopBack removes and returns the back element. It returns false if the
// deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.r.n == 0 {
		var zero T
		return zero, false
	}
	return d.r.popBack(), true
}

// TryPopFront is like PopFront, but returns an EmptyStructure error on an
// empty deque.
func (d *Deque[T]) TryPopFront() (T, error) {
	v, ok := d.PopFront()
	if !ok {
		return v, errors.E(errors.EmptyStructure, "gtl: pop from empty deque")
	}
	return v, nil
}

// TryPopBack is like PopBack, but returns an EmptyStructure error on an
// empty deque.
func (d *Deque[T]) TryPopBack() (T, error) {
	v, ok := d.PopBack()
	if !ok {
		return v, errors.E(errors.EmptyStructure, "gtl: pop from empty deque")
	}
	return v, nil
}

// PeekFront returns the front element without removing it.
func (d *Deque[T]) PeekFront() (T, bool) {
	if d.r.n == 0 {
		var zero T
		return zero, false
	}
	return d.r.at(0), true
}

// PeekBack returns the back element without removing it.
func (d *Deque[T]) PeekBack() (T, bool) {
	if d.r.n == 0 {
		var zero T
		return zero, false
	}
	return d.r.at(d.r.n - 1), true
}

// Get returns the i'th element counting from the front.
func (d *Deque[T]) Get(i int) (T, error) {
	if err := d.r.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return d.r.at(i), nil
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.r.n }

// Trim releases unused capacity.
func (d *Deque[T]) Trim() { d.r.trim() }

// Iterator returns an iterator from front to back.
func (d *Deque[T]) Iterator() *Iterator[T] { return d.r.iterator(false) }
