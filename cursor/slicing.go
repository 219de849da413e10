// SPDX-License-Identifier: MIT

package cursor

import (
	"fmt"

	"github.com/katalvlaran/ndview/position"
	"github.com/katalvlaran/ndview/transform"
)

// Slicing iterates a source cursor and reports each position in the target
// space of a slicing transform. Values come straight from the source; fixed
// source dimensions are simply not reported.
type Slicing[T any] struct {
	src      Cursor[T]
	sourceOf []int   // target dim -> source dim feeding it
	offsetOf []int64 // target dim -> offset of that source dim
	scratch  []int64 // source position buffer
}

var _ Cursor[int] = (*Slicing[int])(nil)

// NewSlicing wraps src, whose positions live in the source space of t.
func NewSlicing[T any](src Cursor[T], t transform.Transform) *Slicing[T] {
	if !t.IsSlicing() {
		panic(fmt.Errorf("NewSlicing(%v): %w", t, ErrNotSlicing))
	}
	m := t.NumSourceDimensions()
	if src.NumDimensions() != m {
		panic(fmt.Errorf("NewSlicing: source cursor %d dims, transform source %d dims: %w",
			src.NumDimensions(), m, ErrDimensionMismatch))
	}
	n := t.NumTargetDimensions()
	c := &Slicing[T]{
		src:      src,
		sourceOf: make([]int, n),
		offsetOf: make([]int64, n),
		scratch:  make([]int64, m),
	}
	for d := 0; d < m; d++ {
		if t.Fixed(d) {
			continue
		}
		k := t.Mapping(d)
		c.sourceOf[k] = d
		c.offsetOf[k] = t.Offset(d)
	}

	return c
}

func (c *Slicing[T]) State() State  { return c.src.State() }
func (c *Slicing[T]) HasNext() bool { return c.src.HasNext() }
func (c *Slicing[T]) Next() bool    { return c.src.Next() }
func (c *Slicing[T]) Get() T        { return c.src.Get() }
func (c *Slicing[T]) Set(v T)       { c.src.Set(v) }

func (c *Slicing[T]) NumDimensions() int { return len(c.sourceOf) }

func (c *Slicing[T]) Position(d int) int64 {
	position.CheckDimension(d, len(c.sourceOf))

	return c.src.Position(c.sourceOf[d]) - c.offsetOf[d]
}

func (c *Slicing[T]) Localize(dst []int64) {
	position.CheckLength(len(dst), len(c.sourceOf))
	c.src.Localize(c.scratch)
	for d := range dst {
		dst[d] = c.scratch[c.sourceOf[d]] - c.offsetOf[d]
	}
}

func (c *Slicing[T]) RealPosition(d int) float64 { return float64(c.Position(d)) }

func (c *Slicing[T]) RealLocalize(dst []float64) { position.RealLocalizeInts(c, dst) }
