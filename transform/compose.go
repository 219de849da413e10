// SPDX-License-Identifier: MIT

package transform

import "fmt"

// Compose returns the transform equivalent to applying inner first and then
// t, i.e. t∘inner, mapping inner's target space to t's source space.
//
// Implementation:
//   - Stage 1: check inner.NumSourceDimensions() == t.NumTargetDimensions()
//     (panic with ErrDimensionMismatch otherwise: a malformed chain).
//   - Stage 2: refuse (ok=false) if either side is KindGeneral.
//   - Stage 3: substitute inner's component formula into t's, per source dim.
//
// Behavior highlights:
//   - Fixed in t stays fixed; fixed in inner turns t's forwarded component into
//     a constant; otherwise the mapping is followed through and signs multiply.
//   - The result Kind is re-derived, so e.g. a slice followed by its inverse
//     permutation collapses back to KindSlicing or KindTranslation.
//   - Associative: a.Compose(b.Compose(c)) equals a.Compose(b).Compose(c).
//
// Complexity:
//   - Time O(m + n), Space O(m).
func (t Transform) Compose(inner Transform) (Transform, bool) {
	if inner.NumSourceDimensions() != t.NumTargetDimensions() {
		panic(fmt.Errorf("Compose: inner source %d dims, outer target %d dims: %w",
			inner.NumSourceDimensions(), t.NumTargetDimensions(), ErrDimensionMismatch))
	}
	if !t.IsAffine() || !inner.IsAffine() {
		return Transform{}, false
	}

	m := len(t.offset)
	out := Transform{
		n:        inner.n,
		offset:   make([]int64, m),
		fixed:    make([]bool, m),
		mapping:  make([]int, m),
		inverted: make([]bool, m),
	}
	for d := 0; d < m; d++ {
		if t.fixed[d] {
			out.fixed[d] = true
			out.mapping[d] = unmapped
			out.offset[d] = t.offset[d]
			continue
		}
		k := t.mapping[d]
		innerOffset := inner.offset[k]
		if t.inverted[d] {
			innerOffset = -innerOffset
		}
		out.offset[d] = t.offset[d] + innerOffset
		if inner.fixed[k] {
			out.fixed[d] = true
			out.mapping[d] = unmapped
			continue
		}
		out.mapping[d] = inner.mapping[k]
		out.inverted[d] = t.inverted[d] != inner.inverted[k]
	}
	out.kind = out.classify()

	return out, true
}

// Then returns the transform equivalent to applying t first and then next.
// Shorthand for next.Compose(t).
func (t Transform) Then(next Transform) (Transform, bool) {
	return next.Compose(t)
}
