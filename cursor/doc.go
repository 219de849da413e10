// Package cursor implements the forward-only sequential accessors used to
// iterate views.
//
// One interface, a closed set of variants chosen once at construction:
//
//	Generic  : odometer over an interval, random access per element.
//	Flat     : store-native raster traversal of a flat buffer; skips coordinate
//	            bookkeeping when the region is contiguous and only values are read.
//	Slicing  : wraps a source cursor and reports positions remapped through a
//	            slicing transform (fixed source dimensions are dropped).
//	Converted: read-only view of another cursor through a conversion function,
//	            writing into a per-cursor scratch value.
//
// State machine (all variants):
//
//	Fresh --Next()--> InProgress   (first element)
//	Exhausted on construction      (empty interval)
//	InProgress --Next(), more--> InProgress
//	InProgress --Next(), none--> Exhausted (terminal)
//
// Get/Set/Position before the first Next or after exhaustion is a programmer
// error and panics with ErrNotPositioned / ErrExhausted. A cursor is not
// restartable and must not be shared between goroutines; create a new one
// from the view instead.
package cursor
