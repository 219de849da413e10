// SPDX-License-Identifier: MIT

// Package interval: sentinel error set. Constructors return these; accessors
// given an invalid dimension panic with ErrDimensionOutOfRange (programmer error).
package interval

import "errors"

var (
	// ErrDimensionMismatch indicates min/max (or operands) of different dimensionality.
	ErrDimensionMismatch = errors.New("interval: dimension mismatch")

	// ErrNoDimensions indicates a zero-dimensional interval was requested.
	ErrNoDimensions = errors.New("interval: at least one dimension required")

	// ErrNegativeSize indicates a negative size passed to FromSize.
	ErrNegativeSize = errors.New("interval: negative size")

	// ErrTooLarge indicates a size or element count that overflows int64.
	ErrTooLarge = errors.New("interval: too many elements")
)
