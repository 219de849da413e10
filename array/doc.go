// Package array provides Dense, a row-major n-dimensional array over a flat
// slice. It is the reference terminal backing store for views: it answers
// random access by position and hands out store-native flat cursors over any
// sub-interval it contains.
//
// Layout:
//
//	offset(pos) = Σ pos[d] * strides[d], strides[n-1] = 1 (last dimension fastest).
//
// Safety:
//
//	At/SetAt validate and return ErrOutOfRange. Get/Set are the unchecked
//	store-boundary accessors used by views: an out-of-bounds position there is
//	a programmer error and panics.
//
// Concurrency:
//
//	Concurrent reads are safe; writes need external synchronization.
package array
