// SPDX-License-Identifier: MIT

// Package position: sentinel error set.
// Coordinates are programmer-supplied, so every violation below is raised as a
// panic carrying the sentinel; callers recover and match with errors.Is.
package position

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionOutOfRange indicates a dimension index outside [0, NumDimensions()).
	ErrDimensionOutOfRange = errors.New("position: dimension index out of range")

	// ErrDimensionMismatch indicates a coordinate slice whose length differs
	// from the dimensionality of the receiver.
	ErrDimensionMismatch = errors.New("position: dimension mismatch")
)

// CheckDimension panics with ErrDimensionOutOfRange unless 0 <= d < n.
// Exported so accessors in other packages report the same sentinel.
func CheckDimension(d, n int) {
	if d < 0 || d >= n {
		panic(fmt.Errorf("dimension %d of %d: %w", d, n, ErrDimensionOutOfRange))
	}
}

// CheckLength panics with ErrDimensionMismatch unless got == want.
func CheckLength(got, want int) {
	if got != want {
		panic(fmt.Errorf("length %d, want %d: %w", got, want, ErrDimensionMismatch))
	}
}
