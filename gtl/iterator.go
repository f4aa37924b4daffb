// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl

import (
	"github.com/grailbio/collections/errors"
)

// Iterator walks a container in the container's natural order. It is
// fail-fast: once the container is structurally modified by anything other
// than the iterator, Next returns false and Err reports a
// ConcurrentMutation error.
type Iterator[T any] struct {
	r       *ring[T]
	version uint64
	reverse bool
	pos     int
	cur     T
	err     error
}

// Next advances the iterator and reports whether a value is available.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.r.version != it.version {
		it.err = errors.E(errors.ConcurrentMutation, "gtl: container modified during iteration")
		var zero T
		it.cur = zero
		return false
	}
	if it.pos >= it.r.n {
		return false
	}
	i := it.pos
	if it.reverse {
		i = it.r.n - 1 - it.pos
	}
	it.cur = it.r.at(i)
	it.pos++
	return true
}

// Value returns the value produced by the last successful call to Next.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}
