// SPDX-License-Identifier: MIT

package view

import (
	"github.com/katalvlaran/ndview/cursor"
	"github.com/katalvlaran/ndview/interval"
)

// Store is the terminal backing array a view chain ends in. Views never look
// inside it; they only use random access and the optional native cursor.
//
// Implementations must be safe for concurrent Get calls if views over them are
// iterated from several goroutines.
type Store[T any] interface {
	// NumDimensions returns the dimensionality of the store's coordinates.
	NumDimensions() int

	// Get returns the element at pos (a contract violation if unaddressable).
	Get(pos []int64) T

	// Set stores v at pos.
	Set(pos []int64, v T)

	// SupportsOptimizedCursor reports whether SubIntervalCursor can serve iv.
	SupportsOptimizedCursor(iv interval.Interval) bool

	// SubIntervalIterationOrder identifies the order SubIntervalCursor(iv) visits elements in.
	SubIntervalIterationOrder(iv interval.Interval) interval.IterationOrder

	// SubIntervalCursor returns a native cursor over iv.
	SubIntervalCursor(iv interval.Interval, localizing bool) cursor.Cursor[T]
}
