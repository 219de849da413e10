// SPDX-License-Identifier: MIT

package interval

// IterationOrder is an opaque token describing the sequence in which an
// iterable region produces its elements. If a.Equal(b), iterating both regions
// in lock-step visits corresponding coordinates pairwise.
type IterationOrder interface {
	Equal(o IterationOrder) bool
}

// flatOrder is raster order over a box of the given sizes. Two flat orders
// correspond when their shapes match; the offsets of the boxes do not matter.
type flatOrder struct {
	dims []int64
}

// FlatOrder returns the raster iteration order of iv.
func FlatOrder(iv Interval) IterationOrder {
	return flatOrder{dims: iv.Dimensions()}
}

func (o flatOrder) Equal(other IterationOrder) bool {
	f, ok := other.(flatOrder)
	if !ok || len(f.dims) != len(o.dims) {
		return false
	}
	for d := range o.dims {
		if o.dims[d] != f.dims[d] {
			return false
		}
	}

	return true
}

// IsFlat reports whether o is a raster iteration order.
func IsFlat(o IterationOrder) bool {
	_, ok := o.(flatOrder)

	return ok
}

// identityOrder is equal only to itself. Not zero-sized: distinct
// allocations must compare unequal.
type identityOrder struct{ _ byte }

func (o *identityOrder) Equal(other IterationOrder) bool {
	p, ok := other.(*identityOrder)

	return ok && p == o
}

// IdentityOrder returns a fresh token equal to nothing but itself.
func IdentityOrder() IterationOrder {
	return &identityOrder{}
}
