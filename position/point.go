// SPDX-License-Identifier: MIT

package position

import (
	"fmt"
	"strings"
)

// Point is a mutable discrete position with fixed dimensionality.
// It implements Localizable and Positionable.
type Point struct {
	pos []int64 // len == n, never resized
}

// Compile-time conformance.
var (
	_ Localizable  = (*Point)(nil)
	_ Positionable = (*Point)(nil)
	_ fmt.Stringer = (*Point)(nil)
)

// NewPoint returns the origin of an n-dimensional space.
// Panics with ErrDimensionOutOfRange when n < 0.
func NewPoint(n int) *Point {
	if n < 0 {
		panic(fmt.Errorf("NewPoint(%d): %w", n, ErrDimensionOutOfRange))
	}

	return &Point{pos: make([]int64, n)}
}

// PointOf returns a point at the given coordinates (copied).
func PointOf(coords ...int64) *Point {
	p := &Point{pos: make([]int64, len(coords))}
	copy(p.pos, coords)

	return p
}

// PointFrom returns a point at the current position of l.
func PointFrom(l Localizable) *Point {
	return &Point{pos: AsSlice(l)}
}

// NumDimensions returns n.
func (p *Point) NumDimensions() int { return len(p.pos) }

// Position returns the coordinate in dimension d.
func (p *Point) Position(d int) int64 {
	CheckDimension(d, len(p.pos))

	return p.pos[d]
}

// Localize copies the coordinates into dst.
func (p *Point) Localize(dst []int64) {
	CheckLength(len(dst), len(p.pos))
	copy(dst, p.pos)
}

// RealPosition returns the coordinate in dimension d as float64.
func (p *Point) RealPosition(d int) float64 { return float64(p.Position(d)) }

// RealLocalize copies the coordinates into dst as float64.
func (p *Point) RealLocalize(dst []float64) { RealLocalizeInts(p, dst) }

// Fwd moves one step forward in dimension d.
func (p *Point) Fwd(d int) { p.Move(1, d) }

// Bck moves one step backward in dimension d.
func (p *Point) Bck(d int) { p.Move(-1, d) }

// Move moves by dist in dimension d.
func (p *Point) Move(dist int64, d int) {
	CheckDimension(d, len(p.pos))
	p.pos[d] += dist
}

// MoveBy moves by dist[d] in every dimension.
func (p *Point) MoveBy(dist []int64) {
	CheckLength(len(dist), len(p.pos))
	for d := range p.pos {
		p.pos[d] += dist[d]
	}
}

// SetPosition sets the coordinate in dimension d.
func (p *Point) SetPosition(pos int64, d int) {
	CheckDimension(d, len(p.pos))
	p.pos[d] = pos
}

// SetPositions sets all coordinates.
func (p *Point) SetPositions(pos []int64) {
	CheckLength(len(pos), len(p.pos))
	copy(p.pos, pos)
}

// Coords returns a copy of the coordinates.
func (p *Point) Coords() []int64 {
	out := make([]int64, len(p.pos))
	copy(out, p.pos)

	return out
}

// Equal reports whether l has the same dimensionality and coordinates as p.
func (p *Point) Equal(l Localizable) bool {
	if l == nil || l.NumDimensions() != len(p.pos) {
		return false
	}
	for d, v := range p.pos {
		if l.Position(d) != v {
			return false
		}
	}

	return true
}

// String formats the point as "(x0, x1, ...)".
func (p *Point) String() string {
	return FormatInts(p.pos)
}

// FormatInts formats coordinates as "(x0, x1, ...)".
func FormatInts(coords []int64) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for d, v := range coords {
		if d > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(')')

	return sb.String()
}
