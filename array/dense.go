// SPDX-License-Identifier: MIT

// Package array - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with explicit strides.
//   - Guarantee safety at the public surface: At/SetAt return errors instead of panicking.
//   - Serve as a view store: bounds, unchecked Get/Set, optimized sub-interval cursors.
//
// Complexity quicksheet:
//   - NewDense: O(N) zero-init; At/SetAt/Get/Set: O(n); Clone: O(N); SubIntervalCursor: O(n).
package array

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndview/cursor"
	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/position"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSetAt = "SetAt" // method tag used in error wrappers
	ctxGet   = "Get"   // method tag used in contract panics
	ctxSet   = "Set"   // method tag used in contract panics
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
	_fmtRow   = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite position.
func denseErrorf(method string, pos []int64, err error) error {
	return fmt.Errorf("Dense.%s%s: %w", method, position.FormatInts(pos), err)
}

// Dense is a row-major n-dimensional array of T.
//   - dims holds the size of each dimension (all > 0).
//   - strides[d] is the element distance between neighbours along d.
//   - data is the flat backing slice, len == Π dims.
type Dense[T any] struct {
	dims    []int64
	strides []int64
	bounds  interval.Interval
	data    []T
}

// NewDense allocates a zero-valued array with the given dimension sizes.
//
// Errors: ErrInvalidDimensions when no size is given or any size is <= 0.
func NewDense[T any](dims ...int64) (*Dense[T], error) {
	n, err := elementCount(dims)
	if err != nil {
		return nil, err
	}

	return newDense(dims, make([]T, n)), nil
}

// Wrap adopts data (no copy) as an array with the given dimension sizes.
// Mutations through the array are visible in data and vice versa.
//
// Errors: ErrInvalidDimensions, ErrDataLength.
func Wrap[T any](data []T, dims ...int64) (*Dense[T], error) {
	n, err := elementCount(dims)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != n {
		return nil, fmt.Errorf("Wrap: len %d, want %d: %w", len(data), n, ErrDataLength)
	}

	return newDense(dims, data), nil
}

// elementCount validates dims and returns their product.
func elementCount(dims []int64) (int64, error) {
	if len(dims) == 0 {
		return 0, ErrInvalidDimensions
	}
	n := int64(1)
	for _, s := range dims {
		if s <= 0 {
			return 0, ErrInvalidDimensions
		}
		n *= s
	}

	return n, nil
}

func newDense[T any](dims []int64, data []T) *Dense[T] {
	own := make([]int64, len(dims))
	copy(own, dims)
	strides := make([]int64, len(dims))
	s := int64(1)
	for d := len(dims) - 1; d >= 0; d-- {
		strides[d] = s
		s *= dims[d]
	}

	return &Dense[T]{
		dims:    own,
		strides: strides,
		bounds:  interval.Must(interval.FromSize(own...)),
		data:    data,
	}
}

// NumDimensions returns n.
func (a *Dense[T]) NumDimensions() int { return len(a.dims) }

// Dimensions returns a copy of the dimension sizes.
func (a *Dense[T]) Dimensions() []int64 {
	out := make([]int64, len(a.dims))
	copy(out, a.dims)

	return out
}

// Strides returns a copy of the strides.
func (a *Dense[T]) Strides() []int64 {
	out := make([]int64, len(a.strides))
	copy(out, a.strides)

	return out
}

// Bounds returns [0, dims-1].
func (a *Dense[T]) Bounds() interval.Interval { return a.bounds }

// Len returns the number of elements.
func (a *Dense[T]) Len() int { return len(a.data) }

// Data exposes the flat backing slice (no copy).
func (a *Dense[T]) Data() []T { return a.data }

// indexOf computes the flat offset of pos or returns a wrapped error.
func (a *Dense[T]) indexOf(method string, pos []int64) (int64, error) {
	if len(pos) != len(a.dims) {
		return 0, denseErrorf(method, pos, ErrDimensionMismatch)
	}
	var off int64
	for d, p := range pos {
		if p < 0 || p >= a.dims[d] {
			return 0, denseErrorf(method, pos, ErrOutOfRange)
		}
		off += p * a.strides[d]
	}

	return off, nil
}

// At returns the element at pos.
//
// Errors: ErrDimensionMismatch, ErrOutOfRange (wrapped with context).
func (a *Dense[T]) At(pos ...int64) (T, error) {
	off, err := a.indexOf(ctxAt, pos)
	if err != nil {
		var zero T

		return zero, err
	}

	return a.data[off], nil
}

// SetAt stores v at pos.
//
// Errors: ErrDimensionMismatch, ErrOutOfRange (wrapped with context).
func (a *Dense[T]) SetAt(v T, pos ...int64) error {
	off, err := a.indexOf(ctxSetAt, pos)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Get returns the element at pos. Contract: pos lies within Bounds();
// violations panic with the wrapped sentinel.
func (a *Dense[T]) Get(pos []int64) T {
	off, err := a.indexOf(ctxGet, pos)
	if err != nil {
		panic(err)
	}

	return a.data[off]
}

// Set stores v at pos. Same contract as Get.
func (a *Dense[T]) Set(pos []int64, v T) {
	off, err := a.indexOf(ctxSet, pos)
	if err != nil {
		panic(err)
	}
	a.data[off] = v
}

// Fill sets every element to v.
func (a *Dense[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Apply replaces every element with f(pos, old), visiting in raster order.
// The pos slice is reused between calls.
func (a *Dense[T]) Apply(f func(pos []int64, v T) T) {
	pos := make([]int64, len(a.dims))
	for i := range a.data {
		a.data[i] = f(pos, a.data[i])
		a.bounds.Raster(pos)
	}
}

// Clone returns a deep copy.
func (a *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)

	return newDense(a.dims, data)
}

// SupportsOptimizedCursor reports whether SubIntervalCursor can serve iv:
// any interval inside Bounds(), and any empty interval.
func (a *Dense[T]) SupportsOptimizedCursor(iv interval.Interval) bool {
	if iv.NumDimensions() != len(a.dims) {
		return false
	}

	return a.bounds.ContainsInterval(iv)
}

// SubIntervalIterationOrder returns the raster order of iv.
func (a *Dense[T]) SubIntervalIterationOrder(iv interval.Interval) interval.IterationOrder {
	return interval.FlatOrder(iv)
}

// SubIntervalCursor returns a flat cursor over iv. Contract: SupportsOptimizedCursor(iv).
func (a *Dense[T]) SubIntervalCursor(iv interval.Interval, localizing bool) cursor.Cursor[T] {
	return cursor.NewFlat(a.data, a.strides, iv, localizing)
}

// String renders the array as nested brackets, one innermost row per line.
func (a *Dense[T]) String() string {
	var sb strings.Builder
	pos := make([]int64, len(a.dims))
	last := len(a.dims) - 1
	for i, v := range a.data {
		// open one bracket per dimension whose coordinate just wrapped to zero
		for d := last; d >= 0 && pos[d] == 0; d-- {
			sb.WriteString(_fmtOpen)
		}
		if pos[last] > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%v", v)
		closed := 0
		for d := last; d >= 0 && pos[d] == a.dims[d]-1; d-- {
			sb.WriteString(_fmtClose)
			closed++
		}
		if closed > 0 && i < len(a.data)-1 {
			sb.WriteString(_fmtRow)
		}
		a.bounds.Raster(pos)
	}

	return sb.String()
}
