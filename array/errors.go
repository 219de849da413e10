// SPDX-License-Identifier: MIT

// Package array: sentinel error set, matched with errors.Is. Public indexers
// return ErrOutOfRange wrapped with method context instead of panicking.
package array

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive or missing dimension size.
	ErrInvalidDimensions = errors.New("array: dimensions must be > 0")

	// ErrOutOfRange indicates a position outside the array bounds.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrDimensionMismatch indicates a position with the wrong number of coordinates.
	ErrDimensionMismatch = errors.New("array: dimension mismatch")

	// ErrDataLength indicates a wrapped slice whose length differs from the element count.
	ErrDataLength = errors.New("array: data length does not match dimensions")
)
