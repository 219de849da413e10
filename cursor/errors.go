// SPDX-License-Identifier: MIT

// Package cursor: sentinel error set. All of these are contract violations
// and are raised as panics carrying the sentinel.
package cursor

import "errors"

var (
	// ErrNotPositioned indicates value/position access before the first Next.
	ErrNotPositioned = errors.New("cursor: not positioned, call Next first")

	// ErrExhausted indicates value/position access after Next returned false.
	ErrExhausted = errors.New("cursor: exhausted")

	// ErrNotSlicing indicates NewSlicing was given a transform that is not a slicing transform.
	ErrNotSlicing = errors.New("cursor: transform is not a slicing transform")

	// ErrReadOnly indicates Set on a cursor that cannot write back.
	ErrReadOnly = errors.New("cursor: read-only")

	// ErrDimensionMismatch indicates inconsistent dimensionality between a
	// cursor's inputs (interval, strides, transform, source cursor).
	ErrDimensionMismatch = errors.New("cursor: dimension mismatch")
)
