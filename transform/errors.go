// SPDX-License-Identifier: MIT

// Package transform: sentinel error set.
// New reports invalid components through these; contract violations in
// Apply/BoundingBox/Compose panic with a wrapped ErrDimensionMismatch.
package transform

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensionality (component slices,
	// composed transforms, coordinate buffers, intervals).
	ErrDimensionMismatch = errors.New("transform: dimension mismatch")

	// ErrNoDimensions indicates a transform with zero target or source dimensions.
	ErrNoDimensions = errors.New("transform: at least one dimension required")

	// ErrComponentOutOfRange indicates a mapping entry outside [0, n) or a
	// dimension argument outside its valid range.
	ErrComponentOutOfRange = errors.New("transform: component out of range")

	// ErrNilMapper indicates FromMapper was given a nil Mapper.
	ErrNilMapper = errors.New("transform: nil mapper")
)
