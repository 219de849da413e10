// Package position defines the coordinate model shared by every other package:
// discrete and real positions, and the capabilities to read (localize) and
// write (position) them.
//
// What & Why:
//
//	Cursors, random accesses and points all expose the same small capability
//	set, so a consumer can ask "where am I?" without knowing which concrete
//	accessor it holds. Discrete positions use int64 coordinates; a discrete
//	position reports its real coordinates as the integer value.
//
// Contract:
//
//	Dimensionality is fixed at construction. A dimension index outside [0,n)
//	or a coordinate slice of the wrong length is a programmer error and panics
//	with a wrapped ErrDimensionOutOfRange / ErrDimensionMismatch.
//
// Complexity:
//
//	All per-dimension accessors are O(1); slice forms are O(n).
package position
