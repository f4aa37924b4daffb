// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl

import (
	"fmt"
	"math"

	"github.com/grailbio/collections/errors"
)

const (
	// DefaultMinCapacity is the smallest capacity allocated on first growth.
	DefaultMinCapacity = 8
	// DefaultGrowthFactor is the factor by which a full container grows.
	DefaultGrowthFactor = 1.5
)

type options struct {
	capacity     int
	minCapacity  int
	growthFactor float64
}

// Option configures a container's growth policy.
type Option func(*options)

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithMinCapacity sets the smallest capacity allocated once the container
// needs storage at all.
func WithMinCapacity(n int) Option {
	return func(o *options) { o.minCapacity = n }
}

// WithGrowthFactor sets the factor by which capacity grows when a container
// is full. It must be greater than 1.
func WithGrowthFactor(f float64) Option {
	return func(o *options) { o.growthFactor = f }
}

func makeOptions(opts []Option) (options, error) {
	o := options{minCapacity: DefaultMinCapacity, growthFactor: DefaultGrowthFactor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 0 {
		return o, errors.E(errors.InvalidSize, fmt.Sprintf("gtl: capacity %d", o.capacity))
	}
	if o.minCapacity < 0 {
		return o, errors.E(errors.InvalidSize, fmt.Sprintf("gtl: min capacity %d", o.minCapacity))
	}
	if !(o.growthFactor > 1) || math.IsInf(o.growthFactor, 0) {
		return o, errors.E(errors.Invalid, fmt.Sprintf("gtl: growth factor %v", o.growthFactor))
	}
	return o, nil
}
