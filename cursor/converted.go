// SPDX-License-Identifier: MIT

package cursor

import (
	"fmt"

	"github.com/katalvlaran/ndview/position"
)

// Converted reads another cursor through conv. The converted value lives in
// a scratch owned by this cursor and is overwritten on every Next; Ref
// exposes it without copying and must not be retained past the next Next.
type Converted[A, B any] struct {
	src     Cursor[A]
	conv    func(src A, dst *B)
	scratch B
	fresh   bool // scratch holds the value of the current element
}

var _ Cursor[int] = (*Converted[string, int])(nil)

// NewConverted wraps src with conv.
func NewConverted[A, B any](src Cursor[A], conv func(src A, dst *B)) *Converted[A, B] {
	return &Converted[A, B]{src: src, conv: conv}
}

func (c *Converted[A, B]) State() State  { return c.src.State() }
func (c *Converted[A, B]) HasNext() bool { return c.src.HasNext() }

func (c *Converted[A, B]) Next() bool {
	c.fresh = false

	return c.src.Next()
}

// Ref converts the current element into the scratch and returns it.
func (c *Converted[A, B]) Ref() *B {
	if !c.fresh {
		c.conv(c.src.Get(), &c.scratch)
		c.fresh = true
	}

	return &c.scratch
}

func (c *Converted[A, B]) Get() B { return *c.Ref() }

// Set always panics: a conversion cannot be written back.
func (c *Converted[A, B]) Set(B) {
	panic(fmt.Errorf("Converted.Set: %w", ErrReadOnly))
}

func (c *Converted[A, B]) NumDimensions() int         { return c.src.NumDimensions() }
func (c *Converted[A, B]) Position(d int) int64       { return c.src.Position(d) }
func (c *Converted[A, B]) Localize(dst []int64)       { c.src.Localize(dst) }
func (c *Converted[A, B]) RealPosition(d int) float64 { return c.src.RealPosition(d) }
func (c *Converted[A, B]) RealLocalize(dst []float64) { position.RealLocalizeInts(c, dst) }
