// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl

import "github.com/grailbio/collections/errors"

// Queue is a FIFO container on a circular buffer. The zero value is ready to
// use.
type Queue[T any] struct {
	r ring[T]
}

// NewQueue creates an empty queue configured by opts.
func NewQueue[T any](opts ...Option) (*Queue[T], error) {
	r, err := newRing[T](opts)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{r: r}, nil
}

// Enqueue adds v at the tail.
func (q *Queue[T]) Enqueue(v T) { q.r.pushBack(v) }

// Dequeue removes and returns the head element. It returns false if the
// queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.r.n == 0 {
		var zero T
		return zero, false
	}
	return q.r.popFront(), true
}

// TryDequeue is like Dequeue, but returns an EmptyStructure error on an
// empty queue.
func (q *Queue[T]) TryDequeue() (T, error) {
	v, ok := q.Dequeue()
	if !ok {
		return v, errors.E(errors.EmptyStructure, "gtl: dequeue from empty queue")
	}
	return v, nil
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.r.n == 0 {
		var zero T
		return zero, false
	}
	return q.r.at(0), true
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.r.n }

// Trim releases unused capacity.
func (q *Queue[T]) Trim() { q.r.trim() }

// Iterator returns an iterator from head to tail.
func (q *Queue[T]) Iterator() *Iterator[T] { return q.r.iterator(false) }
