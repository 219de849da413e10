// SPDX-License-Identifier: MIT

package cursor

import (
	"fmt"

	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/position"
)

// Generic visits every position of an interval in raster order and reads
// each element through a random access. Always correct, one positioning per
// element.
type Generic[T any] struct {
	iv     interval.Interval
	access Accessor[T]
	pos    []int64
	index  int64 // raster index of pos; -1 while Fresh
	size   int64
	state  State
}

var _ Cursor[int] = (*Generic[int])(nil)

// NewGeneric returns a Fresh cursor over iv reading through access.
// An empty iv yields a cursor that is Exhausted on construction.
func NewGeneric[T any](iv interval.Interval, access Accessor[T]) *Generic[T] {
	if access.NumDimensions() != iv.NumDimensions() {
		panic(fmt.Errorf("NewGeneric: interval %d dims, access %d dims: %w",
			iv.NumDimensions(), access.NumDimensions(), ErrDimensionMismatch))
	}

	c := &Generic[T]{
		iv:     iv,
		access: access,
		pos:    iv.Mins(),
		index:  -1,
		size:   iv.NumElements(),
		state:  Fresh,
	}
	if c.size == 0 {
		c.state = Exhausted
	}

	return c
}

func (c *Generic[T]) State() State { return c.state }

func (c *Generic[T]) HasNext() bool {
	return c.state != Exhausted && c.index+1 < c.size
}

// Next increments the last dimension, carrying into higher ones.
func (c *Generic[T]) Next() bool {
	if !c.HasNext() {
		c.state = Exhausted

		return false
	}
	if c.state == InProgress {
		c.iv.Raster(c.pos)
	}
	c.index++
	c.state = InProgress
	c.access.SetPositions(c.pos)

	return true
}

func (c *Generic[T]) Get() T {
	checkPositioned(c.state)

	return c.access.Get()
}

func (c *Generic[T]) Set(v T) {
	checkPositioned(c.state)
	c.access.Set(v)
}

func (c *Generic[T]) NumDimensions() int { return len(c.pos) }

func (c *Generic[T]) Position(d int) int64 {
	checkPositioned(c.state)
	position.CheckDimension(d, len(c.pos))

	return c.pos[d]
}

func (c *Generic[T]) Localize(dst []int64) {
	checkPositioned(c.state)
	position.CheckLength(len(dst), len(c.pos))
	copy(dst, c.pos)
}

func (c *Generic[T]) RealPosition(d int) float64 { return float64(c.Position(d)) }

func (c *Generic[T]) RealLocalize(dst []float64) { position.RealLocalizeInts(c, dst) }
