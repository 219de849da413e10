// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"strings"

	"github.com/katalvlaran/ndview/position"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtRange = " -> "
)

// Interval is an immutable n-dimensional box [min, max] (inclusive).
// The zero value has no dimensions and is not a valid interval.
type Interval struct {
	min []int64 // len == n
	max []int64 // len == n
}

var _ fmt.Stringer = Interval{}

// New returns the interval [min, max]. Inputs are copied.
// Dimensions with max < min are allowed and make the interval empty.
//
// Errors: ErrNoDimensions, ErrDimensionMismatch.
func New(min, max []int64) (Interval, error) {
	if len(min) == 0 {
		return Interval{}, ErrNoDimensions
	}
	if len(min) != len(max) {
		return Interval{}, fmt.Errorf("New(len %d, len %d): %w", len(min), len(max), ErrDimensionMismatch)
	}

	return newUnchecked(cloneInts(min), cloneInts(max)), nil
}

// FromSize returns the interval [0, dims-1]. A zero size yields an empty dimension.
//
// Errors: ErrNoDimensions, ErrNegativeSize.
func FromSize(dims ...int64) (Interval, error) {
	if len(dims) == 0 {
		return Interval{}, ErrNoDimensions
	}
	min := make([]int64, len(dims))
	max := make([]int64, len(dims))
	for d, s := range dims {
		if s < 0 {
			return Interval{}, fmt.Errorf("FromSize dim %d = %d: %w", d, s, ErrNegativeSize)
		}
		max[d] = s - 1
	}

	return newUnchecked(min, max), nil
}

// Must panics if err is non-nil and returns iv otherwise.
// Intended for literals in tests and examples.
func Must(iv Interval, err error) Interval {
	if err != nil {
		panic(err)
	}

	return iv
}

// newUnchecked adopts min and max without copying.
func newUnchecked(min, max []int64) Interval {
	return Interval{min: min, max: max}
}

// Adopt builds an interval from slices the caller hands over and will not
// mutate again. Used by transforms that allocate fresh bounds.
func Adopt(min, max []int64) Interval {
	position.CheckLength(len(max), len(min))

	return newUnchecked(min, max)
}

// NumDimensions returns n.
func (iv Interval) NumDimensions() int { return len(iv.min) }

// Valid reports whether iv was produced by a constructor (n > 0).
func (iv Interval) Valid() bool { return len(iv.min) > 0 }

// Min returns the lower bound in dimension d.
func (iv Interval) Min(d int) int64 {
	position.CheckDimension(d, len(iv.min))

	return iv.min[d]
}

// Max returns the upper bound in dimension d.
func (iv Interval) Max(d int) int64 {
	position.CheckDimension(d, len(iv.max))

	return iv.max[d]
}

// Size returns max[d]-min[d]+1, or 0 when the dimension is empty.
// Panics with ErrTooLarge if the size does not fit in an int64.
func (iv Interval) Size(d int) int64 {
	position.CheckDimension(d, len(iv.min))
	if iv.max[d] < iv.min[d] {
		return 0
	}
	span := uint64(iv.max[d]) - uint64(iv.min[d])
	if span >= math.MaxInt64 {
		panic(fmt.Errorf("Size(%d) of %v: %w", d, iv, ErrTooLarge))
	}

	return int64(span) + 1
}

// Mins returns a copy of the lower bounds.
func (iv Interval) Mins() []int64 { return cloneInts(iv.min) }

// Maxs returns a copy of the upper bounds.
func (iv Interval) Maxs() []int64 { return cloneInts(iv.max) }

// Dimensions returns the per-dimension sizes.
func (iv Interval) Dimensions() []int64 {
	out := make([]int64, len(iv.min))
	for d := range out {
		out[d] = iv.Size(d)
	}

	return out
}

// NumElements returns the product of sizes (0 if any dimension is empty).
// Panics with ErrTooLarge if the product does not fit in an int64.
func (iv Interval) NumElements() int64 {
	if iv.IsEmpty() {
		return 0
	}
	n := uint64(1)
	for _, s := range iv.Dimensions() {
		hi, lo := bits.Mul64(n, uint64(s))
		if hi != 0 || lo > math.MaxInt64 {
			panic(fmt.Errorf("NumElements of %v: %w", iv, ErrTooLarge))
		}
		n = lo
	}

	return int64(n)
}

// IsEmpty reports whether the interval contains no element.
func (iv Interval) IsEmpty() bool {
	for d := range iv.min {
		if iv.max[d] < iv.min[d] {
			return true
		}
	}

	return len(iv.min) == 0
}

// Contains reports whether pos lies inside iv.
func (iv Interval) Contains(pos []int64) bool {
	position.CheckLength(len(pos), len(iv.min))
	for d, p := range pos {
		if p < iv.min[d] || p > iv.max[d] {
			return false
		}
	}

	return true
}

// ContainsInterval reports whether every element of o lies inside iv.
// An empty o is contained in anything of equal dimensionality.
func (iv Interval) ContainsInterval(o Interval) bool {
	position.CheckLength(o.NumDimensions(), len(iv.min))
	if o.IsEmpty() {
		return true
	}
	for d := range iv.min {
		if o.min[d] < iv.min[d] || o.max[d] > iv.max[d] {
			return false
		}
	}

	return true
}

// Intersect returns the common region of iv and o (possibly empty).
func (iv Interval) Intersect(o Interval) Interval {
	position.CheckLength(o.NumDimensions(), len(iv.min))
	min := make([]int64, len(iv.min))
	max := make([]int64, len(iv.min))
	for d := range min {
		min[d] = maxInt(iv.min[d], o.min[d])
		max[d] = minInt(iv.max[d], o.max[d])
	}

	return newUnchecked(min, max)
}

// Translate returns iv shifted by offset.
func (iv Interval) Translate(offset []int64) Interval {
	position.CheckLength(len(offset), len(iv.min))
	min := make([]int64, len(iv.min))
	max := make([]int64, len(iv.min))
	for d := range min {
		min[d] = iv.min[d] + offset[d]
		max[d] = iv.max[d] + offset[d]
	}

	return newUnchecked(min, max)
}

// Equal reports whether iv and o have identical bounds.
func (iv Interval) Equal(o Interval) bool {
	if len(iv.min) != len(o.min) {
		return false
	}
	for d := range iv.min {
		if iv.min[d] != o.min[d] || iv.max[d] != o.max[d] {
			return false
		}
	}

	return true
}

// SameShape reports whether iv and o have identical sizes in every dimension.
func (iv Interval) SameShape(o Interval) bool {
	if len(iv.min) != len(o.min) {
		return false
	}
	for d := range iv.min {
		if iv.Size(d) != o.Size(d) {
			return false
		}
	}

	return true
}

// Raster advances pos to the next position of iv in raster order (last
// dimension fastest) and reports whether one exists. On false pos is left
// at min. pos must lie in iv.
func (iv Interval) Raster(pos []int64) bool {
	for d := len(pos) - 1; d >= 0; d-- {
		if pos[d] < iv.max[d] {
			pos[d]++

			return true
		}
		pos[d] = iv.min[d]
	}

	return false
}

// Index returns the raster index of pos relative to min.
func (iv Interval) Index(pos []int64) int64 {
	position.CheckLength(len(pos), len(iv.min))
	var idx int64
	for d := range pos {
		idx = idx*iv.Size(d) + (pos[d] - iv.min[d])
	}

	return idx
}

// PositionAt writes into dst the position with raster index idx.
func (iv Interval) PositionAt(idx int64, dst []int64) {
	position.CheckLength(len(dst), len(iv.min))
	for d := len(dst) - 1; d >= 0; d-- {
		s := iv.Size(d)
		dst[d] = iv.min[d] + idx%s
		idx /= s
	}
}

// All yields every position of iv in raster order. The yielded slice is
// reused between iterations; copy it to retain.
func (iv Interval) All() iter.Seq[[]int64] {
	return func(yield func([]int64) bool) {
		if iv.IsEmpty() {
			return
		}
		pos := cloneInts(iv.min)
		for {
			if !yield(pos) {
				return
			}
			if !iv.Raster(pos) {
				return
			}
		}
	}
}

// String formats the interval as "[min -> max]".
func (iv Interval) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	sb.WriteString(position.FormatInts(iv.min))
	sb.WriteString(_fmtRange)
	sb.WriteString(position.FormatInts(iv.max))
	sb.WriteString(_fmtClose)

	return sb.String()
}

func cloneInts(in []int64) []int64 {
	out := make([]int64, len(in))
	copy(out, in)

	return out
}

func minInt(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
