// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl

import "github.com/grailbio/collections/errors"

// Stack is a LIFO container. The zero value is ready to use.
type Stack[T any] struct {
	r ring[T]
}

// NewStack creates an empty stack configured by opts.
func NewStack[T any](opts ...Option) (*Stack[T], error) {
	r, err := newRing[T](opts)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{r: r}, nil
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) { s.r.pushBack(v) }

// Pop removes and returns the top element. It returns false if the stack is
// empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.r.n == 0 {
		var zero T
		return zero, false
	}
	return s.r.popBack(), true
}

// TryPop is like Pop, but returns an EmptyStructure error on an empty stack.
func (s *Stack[T]) TryPop() (T, error) {
	v, ok := s.Pop()
	if !ok {
		return v, errors.E(errors.EmptyStructure, "gtl: pop from empty stack")
	}
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.r.n == 0 {
		var zero T
		return zero, false
	}
	return s.r.at(s.r.n - 1), true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.r.n }

// Trim releases unused capacity.
func (s *Stack[T]) Trim() { s.r.trim() }

// Iterator returns an iterator from the top of the stack down.
func (s *Stack[T]) Iterator() *Iterator[T] { return s.r.iterator(true) }
