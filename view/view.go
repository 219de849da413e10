// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/transform"
)

// View is a lazily transformed, random-accessible n-dimensional source.
// It is a small value; copying it copies the handle, not data.
type View[T any] struct {
	arena *Arena[T]
	id    NodeID
	n     int
}

// NumDimensions returns the dimensionality of the view's coordinates.
func (v View[T]) NumDimensions() int { return v.n }

// ID returns the node index of v in its arena.
func (v View[T]) ID() NodeID { return v.id }

// Arena returns the arena v lives in.
func (v View[T]) Arena() *Arena[T] { return v.arena }

func (v View[T]) check() {
	if v.arena == nil {
		panic(fmt.Errorf("zero View: %w", ErrInvalidView))
	}
}

// Transform returns the view reading v at t(x) for every coordinate x.
// t must have v.NumDimensions() source dimensions.
func (v View[T]) Transform(t transform.Transform) View[T] {
	v.check()
	if !t.Valid() {
		panic(fmt.Errorf("View.Transform(zero transform): %w", ErrInvalidView))
	}

	return v.arena.wrap(v, t)
}

// derive applies the transform produced by a constructor, panicking with
// context when the constructor rejects its arguments.
func (v View[T]) derive(op string, t transform.Transform, err error) View[T] {
	if err != nil {
		panic(fmt.Errorf("View.%s: %w", op, err))
	}

	return v.Transform(t)
}

// Translate moves the content by t: the new view at x reads v at x - t.
func (v View[T]) Translate(t ...int64) View[T] {
	v.checkLen("Translate", len(t))
	neg := make([]int64, len(t))
	for d, o := range t {
		neg[d] = -o
	}
	tr, err := transform.Translate(neg...)

	return v.derive("Translate", tr, err)
}

// Offset shifts the origin: the new view at x reads v at x + offset.
func (v View[T]) Offset(offset ...int64) View[T] {
	v.checkLen("Offset", len(offset))
	tr, err := transform.Translate(offset...)

	return v.derive("Offset", tr, err)
}

// ZeroMin returns a view in which iv's min corner is the origin, together
// with the interval of the same shape starting at zero.
func (v View[T]) ZeroMin(iv interval.Interval) (View[T], interval.Interval) {
	v.checkLen("ZeroMin", iv.NumDimensions())
	zero := interval.Must(interval.FromSize(iv.Dimensions()...))

	return v.Offset(iv.Mins()...), zero
}

// HyperSlice drops dimension d, fixing it at pos.
func (v View[T]) HyperSlice(d int, pos int64) View[T] {
	tr, err := transform.HyperSlice(v.n, d, pos)

	return v.derive("HyperSlice", tr, err)
}

// AddDimension appends a dimension along which v repeats.
func (v View[T]) AddDimension() View[T] {
	tr, err := transform.AddDimension(v.n)

	return v.derive("AddDimension", tr, err)
}

// Permute swaps dimensions a and b.
func (v View[T]) Permute(a, b int) View[T] {
	tr, err := transform.Permute(v.n, a, b)

	return v.derive("Permute", tr, err)
}

// MoveAxis moves dimension from to index to; the others keep their order.
func (v View[T]) MoveAxis(from, to int) View[T] {
	tr, err := transform.MoveAxis(v.n, from, to)

	return v.derive("MoveAxis", tr, err)
}

// Rotate rotates by 90 degrees from axis from towards axis to.
func (v View[T]) Rotate(from, to int) View[T] {
	tr, err := transform.Rotate(v.n, from, to)

	return v.derive("Rotate", tr, err)
}

// InvertAxis mirrors dimension d around zero.
func (v View[T]) InvertAxis(d int) View[T] {
	tr, err := transform.InvertAxis(v.n, d)

	return v.derive("InvertAxis", tr, err)
}

// RandomAccess returns a random access through the merged chain of v.
func (v View[T]) RandomAccess() *RandomAccess[T] {
	v.check()

	return BuildChain(v).RandomAccess()
}

// Get reads a single element. Each call walks the chain; use RandomAccess or
// a cursor for repeated access.
func (v View[T]) Get(pos ...int64) T {
	v.checkLen("Get", len(pos))
	ra := v.RandomAccess()
	ra.SetPositions(pos)

	return ra.Get()
}

// Interval returns the iterable restriction of v to iv.
func (v View[T]) Interval(iv interval.Interval, opts ...Option) *IterableInterval[T] {
	return BuildIterable(v, iv, opts...)
}

func (v View[T]) checkLen(op string, got int) {
	v.check()
	if got != v.n {
		panic(fmt.Errorf("View.%s: %d coordinates for %d dims: %w", op, got, v.n, ErrDimensionMismatch))
	}
}
