// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/cursor"
	"github.com/katalvlaran/ndview/position"
)

// ZipCursor walks two iterables of equal shape together. When both share an
// iteration order the two native cursors advance in lock-step; otherwise a
// drives and b is random-accessed at the matching position.
type ZipCursor[A, B any] struct {
	a  cursor.Cursor[A]
	b  cursor.Cursor[B] // lock-step only
	rb *RandomAccess[B] // otherwise

	delta []int64 // b.min - a.min
	pos   []int64
}

// Zip returns a cursor over pairs of a and b.
// Panics with ErrShapeMismatch if the intervals differ in shape.
func Zip[A, B any](a *IterableInterval[A], b *IterableInterval[B]) *ZipCursor[A, B] {
	if !a.iv.SameShape(b.iv) {
		panic(fmt.Errorf("Zip(%v, %v): %w", a.iv, b.iv, ErrShapeMismatch))
	}
	if a.EqualIterationOrder(b) {
		return &ZipCursor[A, B]{a: a.Cursor(), b: b.Cursor()}
	}
	n := a.iv.NumDimensions()
	z := &ZipCursor[A, B]{
		a:     a.LocalizingCursor(),
		rb:    b.RandomAccess(),
		delta: make([]int64, n),
		pos:   make([]int64, n),
	}
	for d := 0; d < n; d++ {
		z.delta[d] = b.iv.Min(d) - a.iv.Min(d)
	}

	return z
}

// Lockstep reports whether both sides advance natively.
func (z *ZipCursor[A, B]) Lockstep() bool { return z.rb == nil }

// Next advances both sides. It returns false when the pair is exhausted.
func (z *ZipCursor[A, B]) Next() bool {
	if z.rb == nil {
		okA, okB := z.a.Next(), z.b.Next()
		if okA != okB {
			panic(fmt.Errorf("Zip: cursors disagree on length: %w", ErrShapeMismatch))
		}

		return okA
	}
	if !z.a.Next() {
		return false
	}
	z.a.Localize(z.pos)
	for d := range z.pos {
		z.pos[d] += z.delta[d]
	}
	z.rb.SetPositions(z.pos)

	return true
}

// A returns the current value of the first side.
func (z *ZipCursor[A, B]) A() A { return z.a.Get() }

// B returns the current value of the second side.
func (z *ZipCursor[A, B]) B() B {
	if z.rb == nil {
		return z.b.Get()
	}
	z.checkPositioned()

	return z.rb.Get()
}

// SetA writes the current element of the first side.
func (z *ZipCursor[A, B]) SetA(v A) { z.a.Set(v) }

// SetB writes the current element of the second side.
func (z *ZipCursor[A, B]) SetB(v B) {
	if z.rb == nil {
		z.b.Set(v)

		return
	}
	z.checkPositioned()
	z.rb.Set(v)
}

func (z *ZipCursor[A, B]) checkPositioned() {
	switch z.a.State() {
	case cursor.Fresh:
		panic(fmt.Errorf("Zip.B: %w", cursor.ErrNotPositioned))
	case cursor.Exhausted:
		panic(fmt.Errorf("Zip.B: %w", cursor.ErrExhausted))
	}
}

// NumDimensions returns the dimensionality of the first side.
func (z *ZipCursor[A, B]) NumDimensions() int { return z.a.NumDimensions() }

// Position returns the first side's coordinate along d.
func (z *ZipCursor[A, B]) Position(d int) int64 { return z.a.Position(d) }

// Localize writes the first side's position into dst.
func (z *ZipCursor[A, B]) Localize(dst []int64) { z.a.Localize(dst) }

func (z *ZipCursor[A, B]) RealPosition(d int) float64 { return float64(z.Position(d)) }

func (z *ZipCursor[A, B]) RealLocalize(dst []float64) { position.RealLocalizeInts(z, dst) }

var _ position.Localizable = (*ZipCursor[int, int])(nil)

// ZipWith calls fn for every pair of elements of a and b.
// Iteration stops early when fn returns false.
func ZipWith[A, B any](a *IterableInterval[A], b *IterableInterval[B], fn func(A, B) bool) {
	z := Zip(a, b)
	for z.Next() {
		if !fn(z.A(), z.B()) {
			return
		}
	}
}

// Copy writes every element of src into the matching element of dst.
// Panics with ErrShapeMismatch if the intervals differ in shape.
func Copy[T any](dst, src *IterableInterval[T]) {
	z := Zip(dst, src)
	for z.Next() {
		z.SetA(z.B())
	}
}

// BiConverted is a read-only cursor whose values combine the elements of two
// iterables. Get returns a copy of the owned scratch; Ref exposes the scratch
// itself, which the next call to Next overwrites.
type BiConverted[A, B, C any] struct {
	z       *ZipCursor[A, B]
	conv    func(a A, b B, dst *C)
	scratch C
	fresh   bool
}

var _ cursor.Cursor[int] = (*BiConverted[int, int, int])(nil)

// BiConvert returns a cursor producing conv(a, b) for every pair.
func BiConvert[A, B, C any](a *IterableInterval[A], b *IterableInterval[B], conv func(a A, b B, dst *C)) *BiConverted[A, B, C] {
	return &BiConverted[A, B, C]{z: Zip(a, b), conv: conv}
}

func (c *BiConverted[A, B, C]) State() cursor.State { return c.z.a.State() }
func (c *BiConverted[A, B, C]) HasNext() bool { return c.z.a.HasNext() }

func (c *BiConverted[A, B, C]) Next() bool {
	c.fresh = false

	return c.z.Next()
}

// Ref returns the scratch value for the current pair.
func (c *BiConverted[A, B, C]) Ref() *C {
	if !c.fresh {
		c.conv(c.z.A(), c.z.B(), &c.scratch)
		c.fresh = true
	}

	return &c.scratch
}

func (c *BiConverted[A, B, C]) Get() C { return *c.Ref() }

// Set panics: a combined value has no single backing element.
func (c *BiConverted[A, B, C]) Set(C) {
	panic(fmt.Errorf("BiConverted.Set: %w", cursor.ErrReadOnly))
}

func (c *BiConverted[A, B, C]) NumDimensions() int         { return c.z.NumDimensions() }
func (c *BiConverted[A, B, C]) Position(d int) int64       { return c.z.Position(d) }
func (c *BiConverted[A, B, C]) Localize(dst []int64)       { c.z.Localize(dst) }
func (c *BiConverted[A, B, C]) RealPosition(d int) float64 { return c.z.RealPosition(d) }
func (c *BiConverted[A, B, C]) RealLocalize(dst []float64) { c.z.RealLocalize(dst) }
