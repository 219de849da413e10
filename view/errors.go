// SPDX-License-Identifier: MIT

// Package view: sentinel error set. Views report contract violations by
// panicking with these sentinels (or the transform sentinels they wrap);
// nothing in the iteration decision procedure returns an error.
package view

import "errors"

var (
	// ErrDimensionMismatch indicates a transform or interval whose dimensionality
	// does not match the view it is applied to.
	ErrDimensionMismatch = errors.New("view: dimension mismatch")

	// ErrNilStore indicates Source was given a nil Store.
	ErrNilStore = errors.New("view: nil store")

	// ErrShapeMismatch indicates zipped iterables whose intervals differ in shape.
	ErrShapeMismatch = errors.New("view: shape mismatch")

	// ErrEmpty indicates FirstElement on an empty iterable.
	ErrEmpty = errors.New("view: empty interval")

	// ErrInvalidView indicates the zero View value or a View from another arena.
	ErrInvalidView = errors.New("view: invalid view")
)
