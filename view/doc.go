// Package view builds lazy, composable coordinate views over n-dimensional
// stores and decides how to iterate them cheaply.
//
// What & Why:
//
//	A View is a handle into an Arena: an append-only list of nodes, each either
//	a terminal Store or a (source node, transform) pair. Translating, slicing,
//	permuting or rotating a view appends one node and copies no data; many
//	views may share the same source node.
//
//	Reading a view goes through the chain builder (BuildChain): it walks the
//	nodes from the view down to the store, propagates the requested interval
//	backward through every transform to the minimal store interval, and merges
//	adjacent transforms into as few residual transforms as possible. Only an
//	opaque (general) transform stops a merge; the walk itself always reaches the
//	store.
//
//	BuildIterable then picks, in priority order:
//
//	  1. StrategySubInterval: no residual transform and the store can iterate
//	     the interval natively: iterate with the store's own cursor.
//	  2. StrategySlice: exactly one residual slicing transform whose fixed
//	     dimensions form a single block, and the store can iterate the
//	     propagated interval: iterate the store and remap positions. Flat()
//	     reports whether the result is still plain raster order.
//	  3. StrategyGeneric: raster over the interval with one random access per
//	     element through the full chain. Always correct, slowest.
//
//	Falling to 3 is never an error; it only costs time.
//
// Contracts:
//
//	Mismatched dimensionality or invalid dimension indices when deriving views
//	are programmer errors and panic with a wrapped sentinel.
//
// Concurrency:
//
//	Arenas may be extended and read concurrently; nodes never change once
//	appended. Iterables are immutable. Cursors and RandomAccess values are
//	single-goroutine state: create one per goroutine.
package view
