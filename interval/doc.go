// Package interval provides the axis-aligned integer bounding region used to
// describe what a view exposes, what a cursor visits and what a transform
// chain must touch on its backing store.
//
// What & Why:
//
//	An Interval is a pair of discrete positions (min, max), inclusive in every
//	dimension. It is immutable: constructors copy their inputs and accessors
//	return copies, so an Interval value may be shared freely between views,
//	builders and goroutines.
//
//	A dimension with max < min is empty; the whole interval then has zero
//	elements. This is a valid input everywhere and iterates nothing.
//
// Iteration order:
//
//	Raster order is row-major: the LAST dimension varies fastest. Two iterable
//	regions whose IterationOrder values are Equal visit corresponding
//	coordinates when advanced in lock-step.
//
// Complexity:
//
//	Per-dimension accessors O(1); slice copies and algebra O(n).
package interval
