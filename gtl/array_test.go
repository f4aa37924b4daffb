// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gtl_test

import (
	"math/rand"
	"testing"

	"github.com/go-test/deep"
	"github.com/grailbio/collections/errors"
	"github.com/grailbio/collections/gtl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, it *gtl.Iterator[T]) []T {
	t.Helper()
	got := []T{}
	for it.Next() {
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	return got
}

func TestArrayBasic(t *testing.T) {
	var a gtl.Array[string]
	assert.Equal(t, 0, a.Len())
	a.Append("a", "b", "c")
	assert.Equal(t, 3, a.Len())
	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	require.NoError(t, a.Set(1, "x"))
	assert.Equal(t, []string{"a", "x", "c"}, a.Slice())

	_, err = a.Get(3)
	assert.True(t, errors.Is(errors.IndexOutOfRange, err))
	_, err = a.Get(-1)
	assert.True(t, errors.Is(errors.IndexOutOfRange, err))
	assert.True(t, errors.Is(errors.IndexOutOfRange, a.Set(5, "z")))
}

func TestArrayInsertRemove(t *testing.T) {
	a, err := gtl.NewArray[int]()
	require.NoError(t, err)
	a.Append(0, 1, 2, 3, 4)
	require.NoError(t, a.Insert(0, -1))
	require.NoError(t, a.Insert(6, 5))
	require.NoError(t, a.Insert(3, 100))
	assert.Equal(t, []int{-1, 0, 1, 100, 2, 3, 4, 5}, a.Slice())
	assert.True(t, errors.Is(errors.IndexOutOfRange, a.Insert(9, 0)))

	v, err := a.Remove(3)
	require.NoError(t, err)
	assert.Equal(t, 100, v)
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5}, a.Slice())

	v, err = a.SwapRemove(0)
	require.NoError(t, err)
	assert.Equal(t, -1, v)
	assert.Equal(t, []int{5, 0, 1, 2, 3, 4}, a.Slice())

	v, err = a.SwapRemove(a.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	_, err = a.Remove(a.Len())
	assert.True(t, errors.Is(errors.IndexOutOfRange, err))
}

func TestArraySearch(t *testing.T) {
	var a gtl.Array[int]
	for i := 0; i < 20; i++ {
		a.Append(i * 3)
	}
	cmp := func(x, y int) int { return x - y }
	i, ok := a.BinarySearch(27, cmp)
	assert.True(t, ok)
	assert.Equal(t, 9, i)
	i, ok = a.BinarySearch(28, cmp)
	assert.False(t, ok)
	assert.Equal(t, 10, i)
	i, ok = a.BinarySearch(1000, cmp)
	assert.False(t, ok)
	assert.Equal(t, 20, i)

	assert.Equal(t, 4, gtl.Index(&a, 12))
	assert.Equal(t, -1, gtl.Index(&a, 13))
	assert.Equal(t, 5, a.IndexOf(14, func(x, y int) bool { return x > y }))
}

func TestArrayGrowth(t *testing.T) {
	var a gtl.Array[int]
	assert.Equal(t, 0, a.Cap())
	a.Append(1)
	assert.Equal(t, gtl.DefaultMinCapacity, a.Cap())
	var caps []int
	for i := 0; i < 100; i++ {
		a.Append(i)
		if len(caps) == 0 || caps[len(caps)-1] != a.Cap() {
			caps = append(caps, a.Cap())
		}
	}
	if diff := deep.Equal(caps, []int{8, 12, 18, 27, 40, 60, 90, 135}); diff != nil {
		t.Error(diff)
	}

	// Removal never shrinks.
	for a.Len() > 0 {
		_, err := a.Remove(a.Len() - 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 135, a.Cap())
	a.Trim()
	assert.Equal(t, 0, a.Cap())

	a.Append(1, 2, 3)
	require.NoError(t, a.Reserve(10))
	assert.Equal(t, 13, a.Cap())
	require.NoError(t, a.Reserve(1))
	assert.Equal(t, 13, a.Cap())
	a.Trim()
	assert.Equal(t, 3, a.Cap())
	assert.Equal(t, []int{1, 2, 3}, a.Slice())
	assert.True(t, errors.Is(errors.InvalidSize, a.Reserve(-1)))

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 3, a.Cap())
}

func TestOptions(t *testing.T) {
	a, err := gtl.NewArray[int](gtl.WithCapacity(5), gtl.WithGrowthFactor(2), gtl.WithMinCapacity(2))
	require.NoError(t, err)
	assert.Equal(t, 5, a.Cap())
	a.Append(1, 2, 3, 4, 5, 6)
	assert.Equal(t, 10, a.Cap())

	_, err = gtl.NewArray[int](gtl.WithCapacity(-1))
	assert.True(t, errors.Is(errors.InvalidSize, err))
	_, err = gtl.NewStack[int](gtl.WithMinCapacity(-1))
	assert.True(t, errors.Is(errors.InvalidSize, err))
	_, err = gtl.NewQueue[int](gtl.WithGrowthFactor(1))
	assert.True(t, errors.Is(errors.Invalid, err))
	_, err = gtl.NewDeque[int](gtl.WithGrowthFactor(0.5))
	assert.True(t, errors.Is(errors.Invalid, err))
}

func TestArrayRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var a gtl.Array[int]
	var model []int
	for iter := 0; iter < 5000; iter++ {
		switch op := r.Intn(4); {
		case op == 0 || len(model) == 0:
			v := r.Int()
			a.Append(v)
			model = append(model, v)
		case op == 1:
			i, v := r.Intn(len(model)+1), r.Int()
			require.NoError(t, a.Insert(i, v))
			model = append(model[:i], append([]int{v}, model[i:]...)...)
		case op == 2:
			i := r.Intn(len(model))
			v, err := a.Remove(i)
			require.NoError(t, err)
			require.Equal(t, model[i], v)
			model = append(model[:i], model[i+1:]...)
		default:
			i := r.Intn(len(model))
			v, err := a.SwapRemove(i)
			require.NoError(t, err)
			require.Equal(t, model[i], v)
			model[i] = model[len(model)-1]
			model = model[:len(model)-1]
		}
	}
	if diff := deep.Equal(a.Slice(), model); diff != nil {
		t.Error(diff)
	}
}
