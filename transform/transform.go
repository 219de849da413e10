// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/ndview/interval"
)

// Kind tags the variant held by a Transform.
type Kind uint8

const (
	kindInvalid Kind = iota

	// KindTranslation adds an offset; n == m and the mapping is the identity.
	KindTranslation

	// KindSlicing fixes, inserts or permutes dimensions and adds an offset.
	KindSlicing

	// KindMixed is any other integer-affine component mapping.
	KindMixed

	// KindGeneral wraps an opaque Mapper.
	KindGeneral
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindTranslation:
		return "Translation"
	case KindSlicing:
		return "Slicing"
	case KindMixed:
		return "Mixed"
	case KindGeneral:
		return "General"
	default:
		return "Invalid"
	}
}

// unmapped marks Mapping(d) of a fixed source dimension.
const unmapped = -1

// Transform maps n target dimensions to m source dimensions.
// The zero value is invalid; obtain transforms from the constructors.
type Transform struct {
	kind Kind
	n    int // target dimensions

	// affine components, len == m (nil for KindGeneral)
	offset   []int64
	fixed    []bool
	mapping  []int
	inverted []bool

	mapper Mapper // KindGeneral only
}

// Components describes an affine transform for New. Offset determines m.
// A nil Fixed or Inverted means "none"; a nil Mapping means identity and
// requires n == m.
type Components struct {
	Offset   []int64
	Fixed    []bool
	Mapping  []int
	Inverted []bool
}

// New validates c and returns the affine transform it describes, with its
// Kind derived from the components.
//
// Errors: ErrNoDimensions, ErrDimensionMismatch, ErrComponentOutOfRange.
func New(n int, c Components) (Transform, error) {
	m := len(c.Offset)
	if n <= 0 || m == 0 {
		return Transform{}, ErrNoDimensions
	}
	if (c.Fixed != nil && len(c.Fixed) != m) ||
		(c.Mapping != nil && len(c.Mapping) != m) ||
		(c.Inverted != nil && len(c.Inverted) != m) {
		return Transform{}, fmt.Errorf("New: component lengths differ from %d: %w", m, ErrDimensionMismatch)
	}
	if c.Mapping == nil && n != m {
		return Transform{}, fmt.Errorf("New: identity mapping with n=%d, m=%d: %w", n, m, ErrDimensionMismatch)
	}

	t := Transform{
		n:        n,
		offset:   make([]int64, m),
		fixed:    make([]bool, m),
		mapping:  make([]int, m),
		inverted: make([]bool, m),
	}
	copy(t.offset, c.Offset)
	for d := 0; d < m; d++ {
		if c.Fixed != nil && c.Fixed[d] {
			t.fixed[d] = true
			t.mapping[d] = unmapped
			continue
		}
		k := d
		if c.Mapping != nil {
			k = c.Mapping[d]
		}
		if k < 0 || k >= n {
			return Transform{}, fmt.Errorf("New: mapping[%d]=%d not in [0,%d): %w", d, k, n, ErrComponentOutOfRange)
		}
		t.mapping[d] = k
		t.inverted[d] = c.Inverted != nil && c.Inverted[d]
	}
	t.kind = t.classify()

	return t, nil
}

// Must panics if err is non-nil and returns t otherwise.
func Must(t Transform, err error) Transform {
	if err != nil {
		panic(err)
	}

	return t
}

// classify derives the Kind of an affine transform from its components.
func (t Transform) classify() Kind {
	m := len(t.offset)
	uses := make([]int, t.n)
	identity := t.n == m
	for d := 0; d < m; d++ {
		if t.inverted[d] {
			return KindMixed
		}
		if t.fixed[d] {
			identity = false
			continue
		}
		uses[t.mapping[d]]++
		if t.mapping[d] != d {
			identity = false
		}
	}
	if identity {
		return KindTranslation
	}
	for _, u := range uses {
		if u != 1 {
			return KindMixed
		}
	}

	return KindSlicing
}

// Kind returns the variant tag.
func (t Transform) Kind() Kind { return t.kind }

// Valid reports whether t came from a constructor.
func (t Transform) Valid() bool { return t.kind != kindInvalid }

// NumTargetDimensions returns n, the dimensionality of the view side.
func (t Transform) NumTargetDimensions() int {
	if t.kind == KindGeneral {
		return t.mapper.NumTargetDimensions()
	}

	return t.n
}

// NumSourceDimensions returns m, the dimensionality of the source side.
func (t Transform) NumSourceDimensions() int {
	if t.kind == KindGeneral {
		return t.mapper.NumSourceDimensions()
	}

	return len(t.offset)
}

// IsAffine reports whether t is one of the mergeable component kinds.
func (t Transform) IsAffine() bool {
	return t.kind == KindTranslation || t.kind == KindSlicing || t.kind == KindMixed
}

// IsSlicing reports whether t only drops, inserts, permutes and translates.
// A translation is the degenerate slice that does none of the first three.
func (t Transform) IsSlicing() bool {
	return t.kind == KindTranslation || t.kind == KindSlicing
}

// IsIdentity reports whether t maps every point onto itself.
func (t Transform) IsIdentity() bool {
	if t.kind != KindTranslation {
		return false
	}
	for _, o := range t.offset {
		if o != 0 {
			return false
		}
	}

	return true
}

// Fixed reports whether source dimension d is pinned to Offset(d).
func (t Transform) Fixed(d int) bool {
	t.checkSourceDim(d)

	return t.fixed[d]
}

// Mapping returns the target dimension feeding source dimension d,
// or -1 when d is fixed.
func (t Transform) Mapping(d int) int {
	t.checkSourceDim(d)

	return t.mapping[d]
}

// Offset returns the translation component of source dimension d.
func (t Transform) Offset(d int) int64 {
	t.checkSourceDim(d)

	return t.offset[d]
}

// Inverted reports whether source dimension d negates its target coordinate.
func (t Transform) Inverted(d int) bool {
	t.checkSourceDim(d)

	return t.inverted[d]
}

// Mapper returns the wrapped Mapper of a KindGeneral transform (nil otherwise).
func (t Transform) Mapper() Mapper { return t.mapper }

// FirstFixed returns the first fixed source dimension, or m when none is fixed.
func (t Transform) FirstFixed() int {
	m := len(t.offset)
	for d := 0; d < m; d++ {
		if t.fixed[d] {
			return d
		}
	}

	return m
}

// SingleFixedBlock reports whether the fixed source dimensions form at most
// one contiguous run starting at FirstFixed.
func (t Transform) SingleFixedBlock() bool {
	m := len(t.offset)
	d := t.FirstFixed()
	for d < m && t.fixed[d] {
		d++
	}
	for ; d < m; d++ {
		if t.fixed[d] {
			return false
		}
	}

	return true
}

// Apply maps target (len n) to source (len m). source is overwritten.
func (t Transform) Apply(target, source []int64) {
	if t.kind == KindGeneral {
		t.mapper.Apply(target, source)

		return
	}
	t.checkLengths(len(target), len(source))
	for d := range t.offset {
		switch {
		case t.fixed[d]:
			source[d] = t.offset[d]
		case t.inverted[d]:
			source[d] = t.offset[d] - target[t.mapping[d]]
		default:
			source[d] = t.offset[d] + target[t.mapping[d]]
		}
	}
}

// BoundingBox returns the smallest source interval containing the image of
// every point of the target interval iv (exact for affine kinds).
func (t Transform) BoundingBox(iv interval.Interval) interval.Interval {
	if t.kind == KindGeneral {
		return t.mapper.BoundingBox(iv)
	}
	if iv.NumDimensions() != t.n {
		panic(fmt.Errorf("BoundingBox: interval has %d dims, want %d: %w", iv.NumDimensions(), t.n, ErrDimensionMismatch))
	}
	m := len(t.offset)
	min := make([]int64, m)
	max := make([]int64, m)
	for d := 0; d < m; d++ {
		switch {
		case t.fixed[d]:
			min[d], max[d] = t.offset[d], t.offset[d]
		case t.inverted[d]:
			k := t.mapping[d]
			min[d], max[d] = t.offset[d]-iv.Max(k), t.offset[d]-iv.Min(k)
		default:
			k := t.mapping[d]
			min[d], max[d] = t.offset[d]+iv.Min(k), t.offset[d]+iv.Max(k)
		}
	}

	return interval.Adopt(min, max)
}

// Equal reports whether t and o are the same affine transform, or wrap the
// same Mapper value. Mappers of a non-comparable type (e.g. structs holding
// slices) are equal only when both wrap the same pointer; wrap them by
// pointer to compare by identity.
func (t Transform) Equal(o Transform) bool {
	if t.kind != o.kind {
		return false
	}
	if t.kind == KindGeneral {
		return sameMapper(t.mapper, o.mapper)
	}
	if t.n != o.n || len(t.offset) != len(o.offset) {
		return false
	}
	for d := range t.offset {
		if t.offset[d] != o.offset[d] || t.fixed[d] != o.fixed[d] ||
			t.mapping[d] != o.mapping[d] || t.inverted[d] != o.inverted[d] {
			return false
		}
	}

	return true
}

// sameMapper compares a and b with == only when that cannot panic.
func sameMapper(a, b Mapper) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}

// String renders e.g. "Slicing(2->3: t0, 4, t1+1)".
func (t Transform) String() string {
	if t.kind == KindGeneral {
		return fmt.Sprintf("General(%d->%d: %v)", t.NumTargetDimensions(), t.NumSourceDimensions(), t.mapper)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%d->%d:", t.kind, t.n, len(t.offset))
	for d := range t.offset {
		if d > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		if t.fixed[d] {
			fmt.Fprintf(&sb, "%d", t.offset[d])
			continue
		}
		if t.inverted[d] {
			sb.WriteByte('-')
		}
		fmt.Fprintf(&sb, "t%d", t.mapping[d])
		if t.offset[d] != 0 {
			fmt.Fprintf(&sb, "%+d", t.offset[d])
		}
	}
	sb.WriteByte(')')

	return sb.String()
}

func (t Transform) checkSourceDim(d int) {
	if d < 0 || d >= len(t.offset) {
		panic(fmt.Errorf("source dimension %d of %d: %w", d, len(t.offset), ErrComponentOutOfRange))
	}
}

func (t Transform) checkLengths(target, source int) {
	if target != t.n || source != len(t.offset) {
		panic(fmt.Errorf("Apply(len %d, len %d) on %d->%d: %w", target, source, t.n, len(t.offset), ErrDimensionMismatch))
	}
}
