// SPDX-License-Identifier: MIT

package cursor

import (
	"fmt"

	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/position"
)

// Flat traverses a region of a row-major flat buffer in raster order.
//
// Two modes, picked at construction:
//   - contiguous: the region occupies one unbroken run of the buffer, so the
//     offset is base+index and, unless localizing was requested, positions are
//     only recomputed from the index when asked for;
//   - strided: the position odometer is kept and the offset is carried per
//     dimension using the buffer strides.
type Flat[T any] struct {
	data    []T
	strides []int64
	iv      interval.Interval

	contiguous bool
	localizing bool
	pos        []int64 // valid when !contiguous || localizing
	scratch    []int64 // lazily decoded position in contiguous mode

	base   int64
	offset int64
	index  int64 // -1 while Fresh
	size   int64
	state  State
}

var _ Cursor[int] = (*Flat[int])(nil)

// NewFlat returns a Fresh cursor over iv within data laid out with strides
// (strides[d] = distance in elements between neighbours along d). The caller
// guarantees every position of iv addresses an element of data.
func NewFlat[T any](data []T, strides []int64, iv interval.Interval, localizing bool) *Flat[T] {
	n := iv.NumDimensions()
	if len(strides) != n {
		panic(fmt.Errorf("NewFlat: %d strides for %d dims: %w", len(strides), n, ErrDimensionMismatch))
	}
	c := &Flat[T]{
		data:       data,
		strides:    strides,
		iv:         iv,
		contiguous: IsContiguous(strides, iv),
		localizing: localizing,
		pos:        iv.Mins(),
		scratch:    make([]int64, n),
		index:      -1,
		size:       iv.NumElements(),
		state:      Fresh,
	}
	if c.size == 0 {
		c.state = Exhausted
	}
	for d := 0; d < n; d++ {
		c.base += c.pos[d] * strides[d]
	}
	c.offset = c.base

	return c
}

// IsContiguous reports whether the raster traversal of iv visits consecutive
// buffer offsets, i.e. every dimension longer than one element has the stride
// equal to the element count of the dimensions after it.
func IsContiguous(strides []int64, iv interval.Interval) bool {
	expected := int64(1)
	for d := iv.NumDimensions() - 1; d >= 0; d-- {
		s := iv.Size(d)
		if s > 1 && strides[d] != expected {
			return false
		}
		expected *= s
	}

	return true
}

// Contiguous reports whether the cursor runs in contiguous mode.
func (c *Flat[T]) Contiguous() bool { return c.contiguous }

func (c *Flat[T]) State() State { return c.state }

func (c *Flat[T]) HasNext() bool {
	return c.state != Exhausted && c.index+1 < c.size
}

func (c *Flat[T]) Next() bool {
	if !c.HasNext() {
		c.state = Exhausted

		return false
	}
	c.index++
	if c.state == Fresh {
		c.state = InProgress

		return true
	}
	if c.contiguous {
		c.offset++
		if c.localizing {
			c.iv.Raster(c.pos)
		}

		return true
	}
	// strided: carry the odometer and the offset together
	for d := len(c.pos) - 1; d >= 0; d-- {
		if c.pos[d] < c.iv.Max(d) {
			c.pos[d]++
			c.offset += c.strides[d]

			break
		}
		c.offset -= (c.pos[d] - c.iv.Min(d)) * c.strides[d]
		c.pos[d] = c.iv.Min(d)
	}

	return true
}

func (c *Flat[T]) Get() T {
	checkPositioned(c.state)

	return c.data[c.offset]
}

func (c *Flat[T]) Set(v T) {
	checkPositioned(c.state)
	c.data[c.offset] = v
}

// current returns the position slice, decoding it from the index when the
// cursor skipped bookkeeping.
func (c *Flat[T]) current() []int64 {
	if c.contiguous && !c.localizing {
		c.iv.PositionAt(c.index, c.scratch)

		return c.scratch
	}

	return c.pos
}

func (c *Flat[T]) NumDimensions() int { return len(c.pos) }

func (c *Flat[T]) Position(d int) int64 {
	checkPositioned(c.state)
	position.CheckDimension(d, len(c.pos))

	return c.current()[d]
}

func (c *Flat[T]) Localize(dst []int64) {
	checkPositioned(c.state)
	position.CheckLength(len(dst), len(c.pos))
	copy(dst, c.current())
}

func (c *Flat[T]) RealPosition(d int) float64 { return float64(c.Position(d)) }

func (c *Flat[T]) RealLocalize(dst []float64) { position.RealLocalizeInts(c, dst) }
