// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/ndview/position"
	"github.com/katalvlaran/ndview/transform"
)

// RandomAccess reads and writes a view at an arbitrary position by applying
// the residual transforms of its chain in order and addressing the store.
// It carries mutable position state: one per goroutine.
type RandomAccess[T any] struct {
	store Store[T]
	segs  []transform.Transform // view side first
	bufs  [][]int64             // bufs[0] = view position, bufs[i+1] = segs[i](bufs[i])
}

var (
	_ position.Localizable  = (*RandomAccess[int])(nil)
	_ position.Positionable = (*RandomAccess[int])(nil)
)

func newRandomAccess[T any](store Store[T], segs []transform.Transform, n int) *RandomAccess[T] {
	bufs := make([][]int64, len(segs)+1)
	bufs[0] = make([]int64, n)
	for i, s := range segs {
		bufs[i+1] = make([]int64, s.NumSourceDimensions())
	}

	return &RandomAccess[T]{store: store, segs: segs, bufs: bufs}
}

// sourcePosition maps the current position down to store coordinates.
func (r *RandomAccess[T]) sourcePosition() []int64 {
	for i, s := range r.segs {
		s.Apply(r.bufs[i], r.bufs[i+1])
	}

	return r.bufs[len(r.segs)]
}

// SourcePosition returns a copy of the store position the current position reads.
func (r *RandomAccess[T]) SourcePosition() []int64 {
	src := r.sourcePosition()
	out := make([]int64, len(src))
	copy(out, src)

	return out
}

// Get returns the element at the current position.
func (r *RandomAccess[T]) Get() T { return r.store.Get(r.sourcePosition()) }

// Set stores v at the current position.
func (r *RandomAccess[T]) Set(v T) { r.store.Set(r.sourcePosition(), v) }

func (r *RandomAccess[T]) NumDimensions() int { return len(r.bufs[0]) }

func (r *RandomAccess[T]) Position(d int) int64 {
	position.CheckDimension(d, len(r.bufs[0]))

	return r.bufs[0][d]
}

func (r *RandomAccess[T]) Localize(dst []int64) {
	position.CheckLength(len(dst), len(r.bufs[0]))
	copy(dst, r.bufs[0])
}

func (r *RandomAccess[T]) RealPosition(d int) float64 { return float64(r.Position(d)) }

func (r *RandomAccess[T]) RealLocalize(dst []float64) { position.RealLocalizeInts(r, dst) }

func (r *RandomAccess[T]) Fwd(d int) { r.Move(1, d) }

func (r *RandomAccess[T]) Bck(d int) { r.Move(-1, d) }

func (r *RandomAccess[T]) Move(dist int64, d int) {
	position.CheckDimension(d, len(r.bufs[0]))
	r.bufs[0][d] += dist
}

func (r *RandomAccess[T]) MoveBy(dist []int64) {
	position.CheckLength(len(dist), len(r.bufs[0]))
	for d, v := range dist {
		r.bufs[0][d] += v
	}
}

func (r *RandomAccess[T]) SetPosition(pos int64, d int) {
	position.CheckDimension(d, len(r.bufs[0]))
	r.bufs[0][d] = pos
}

func (r *RandomAccess[T]) SetPositions(pos []int64) {
	position.CheckLength(len(pos), len(r.bufs[0]))
	copy(r.bufs[0], pos)
}
