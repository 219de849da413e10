// SPDX-License-Identifier: MIT

package position

import (
	"fmt"
	"strings"
)

// RealPoint is a mutable real-valued position with fixed dimensionality.
type RealPoint struct {
	pos []float64
}

var (
	_ RealLocalizable  = (*RealPoint)(nil)
	_ RealPositionable = (*RealPoint)(nil)
)

// NewRealPoint returns the origin of an n-dimensional real space.
func NewRealPoint(n int) *RealPoint {
	if n < 0 {
		panic(fmt.Errorf("NewRealPoint(%d): %w", n, ErrDimensionOutOfRange))
	}

	return &RealPoint{pos: make([]float64, n)}
}

// RealPointOf returns a real point at the given coordinates (copied).
func RealPointOf(coords ...float64) *RealPoint {
	p := &RealPoint{pos: make([]float64, len(coords))}
	copy(p.pos, coords)

	return p
}

// RealPointFrom returns a real point at the current position of l.
func RealPointFrom(l RealLocalizable) *RealPoint {
	return &RealPoint{pos: AsRealSlice(l)}
}

func (p *RealPoint) NumDimensions() int { return len(p.pos) }

func (p *RealPoint) RealPosition(d int) float64 {
	CheckDimension(d, len(p.pos))

	return p.pos[d]
}

func (p *RealPoint) RealLocalize(dst []float64) {
	CheckLength(len(dst), len(p.pos))
	copy(dst, p.pos)
}

func (p *RealPoint) MoveReal(dist float64, d int) {
	CheckDimension(d, len(p.pos))
	p.pos[d] += dist
}

func (p *RealPoint) MoveRealBy(dist []float64) {
	CheckLength(len(dist), len(p.pos))
	for d := range p.pos {
		p.pos[d] += dist[d]
	}
}

func (p *RealPoint) SetRealPosition(pos float64, d int) {
	CheckDimension(d, len(p.pos))
	p.pos[d] = pos
}

func (p *RealPoint) SetRealPositions(pos []float64) {
	CheckLength(len(pos), len(p.pos))
	copy(p.pos, pos)
}

// SetFromLocalizable moves p to the discrete position of l.
func (p *RealPoint) SetFromLocalizable(l Localizable) {
	CheckLength(l.NumDimensions(), len(p.pos))
	for d := range p.pos {
		p.pos[d] = float64(l.Position(d))
	}
}

func (p *RealPoint) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for d, v := range p.pos {
		if d > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(')')

	return sb.String()
}
