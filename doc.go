// Package ndview is a library of lazily transformed, n-dimensional integer
// grid views with cheap sequential iteration.
//
// What is ndview?
//
//	A view wraps a source with one coordinate transform and copies no data:
//		• Coordinates: points, real points, positionable accessors
//		• Intervals: inclusive boxes, raster order, iteration-order tokens
//		• Transforms: translation, slicing, mixed affine and opaque mappings
//		• Cursors: generic raster, flat strided, slicing remap, converted
//		• Stores: a row-major dense array with native sub-interval cursors
//		• Views: an append-only arena of (source, transform) nodes
//		• Metrics: prometheus counters for iteration strategy decisions
//
// How iteration is chosen
//
// For a view restricted to an interval, the chain builder walks the arena
// from the view down to its store, merging adjacent transforms into one
// composite wherever they compose and propagating the interval to the
// minimal store interval it reads. Then:
//
//  1. no residual transform and a store that iterates the required
//     interval natively: the store's own cursor is used;
//  2. exactly one slicing residual whose fixed source dimensions form one
//     block: the store's cursor is used and each position is remapped;
//  3. otherwise every position of the interval is visited in raster order
//     through random access.
//
// Cases 1 and 2 report whether their order is still plain raster order.
// Two iterables with equal iteration orders can be zipped in lock-step.
//
// Packages:
//
//	position/     Localizable, Positionable, Point, RealPoint
//	interval/     Interval, raster helpers, IterationOrder
//	transform/    Transform variants, Compose, constructors
//	cursor/       Cursor state machine and its variants
//	array/        Dense row-major store
//	view/         Arena, View, Chain, IterableInterval, Zip
//	viewmetrics/  prometheus view.Observer
//
// Quick example: iterate the y = 2 plane of a 3-D array.
//
//	a, _ := array.NewDense[int](3, 3, 3)
//	plane := view.Of[int](a).HyperSlice(1, 2)
//	it := plane.Interval(interval.Must(interval.FromSize(3, 3)))
//	for pos, v := range it.All() {
//		fmt.Println(pos, v)
//	}
//
//	go get github.com/katalvlaran/ndview
package ndview
