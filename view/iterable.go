// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ndview/cursor"
	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/position"
	"github.com/katalvlaran/ndview/transform"
)

// Strategy names the iterator construction chosen for an IterableInterval.
type Strategy uint8

const (
	// StrategyGeneric rasters the interval and random-accesses every element.
	StrategyGeneric Strategy = iota
	// StrategySubInterval defers to the store's native cursor.
	StrategySubInterval
	// StrategySlice iterates the store natively and remaps through one slicing transform.
	StrategySlice
)

func (s Strategy) String() string {
	switch s {
	case StrategyGeneric:
		return "generic"
	case StrategySubInterval:
		return "sub-interval"
	case StrategySlice:
		return "slice"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// Ordered is anything that reports an iteration order.
type Ordered interface {
	IterationOrder() interval.IterationOrder
}

// IterableInterval is a view restricted to an interval, with its iteration
// strategy fixed at construction. It is immutable and may be shared; every
// Cursor call returns a new, independent cursor.
type IterableInterval[T any] struct {
	iv       interval.Interval
	size     int64
	strategy Strategy
	flat     bool
	order    interval.IterationOrder

	chain Chain[T]

	// StrategySubInterval / StrategySlice
	store    Store[T]
	required interval.Interval
	slice    transform.Transform // StrategySlice only
}

// BuildIterable restricts v to iv and selects the cheapest correct strategy.
//
// Implementation:
//   - Stage 1: BuildChainFor(v, iv): store, required interval, residual transforms.
//   - Stage 2: no residual and the store iterates iv natively => StrategySubInterval
//     with the store's own order for iv.
//   - Stage 3: one residual slicing transform whose fixed source dimensions form
//     a single block starting at d0 = FirstFixed(), and the store iterates the
//     required interval natively => StrategySlice. Flat when the store order is
//     flat and the transform keeps the relative order of the dimensions.
//   - Stage 4: otherwise StrategyGeneric (raster order of iv).
//
// Behavior highlights:
//   - Never fails: non-optimizable chains silently take the generic path.
//   - An empty iv iterates zero elements under every strategy.
//
// Complexity: O(L * n) to build, L = view layers.
func BuildIterable[T any](v View[T], iv interval.Interval, opts ...Option) *IterableInterval[T] {
	o := gatherOptions(opts...)
	ch := BuildChainFor(v, iv)
	it := &IterableInterval[T]{
		iv:       iv,
		size:     iv.NumElements(),
		strategy: StrategyGeneric,
		flat:     true,
		order:    interval.FlatOrder(iv),
		chain:    ch,
	}
	if o.optimize {
		it.optimize()
	}
	o.observer.ObserveBuild(BuildInfo{
		Strategy: it.strategy,
		Layers:   ch.Layers,
		Residual: len(ch.Transforms),
		Flat:     it.flat,
		Elements: it.size,
	})

	return it
}

// optimize applies the fast-path rules; it leaves it untouched when none applies.
func (it *IterableInterval[T]) optimize() {
	ch := it.chain
	switch len(ch.Transforms) {
	case 0:
		if !ch.Store.SupportsOptimizedCursor(ch.Required) {
			return
		}
		it.strategy = StrategySubInterval
		it.store = ch.Store
		it.required = ch.Required
		it.order = ch.Store.SubIntervalIterationOrder(ch.Required)
		it.flat = interval.IsFlat(it.order)
	case 1:
		t := ch.Transforms[0]
		if !t.IsSlicing() || !t.SingleFixedBlock() {
			return
		}
		if !ch.Store.SupportsOptimizedCursor(ch.Required) {
			return
		}
		it.strategy = StrategySlice
		it.store = ch.Store
		it.required = ch.Required
		it.slice = t
		it.flat = interval.IsFlat(ch.Store.SubIntervalIterationOrder(ch.Required)) && preservesOrder(t)
		if it.flat {
			it.order = interval.FlatOrder(it.iv)
		} else {
			it.order = interval.IdentityOrder()
		}
	}
}

// preservesOrder reports whether the forwarded source dimensions, taken in
// increasing order, read target dimensions 0, 1, 2, ... . Then a raster walk
// of the source box is a raster walk of the target box.
func preservesOrder(t transform.Transform) bool {
	next := 0
	for d := 0; d < t.NumSourceDimensions(); d++ {
		if t.Fixed(d) {
			continue
		}
		if t.Mapping(d) != next {
			return false
		}
		next++
	}

	return true
}

// Interval returns the interval being iterated.
func (it *IterableInterval[T]) Interval() interval.Interval { return it.iv }

// NumDimensions returns the dimensionality of the interval.
func (it *IterableInterval[T]) NumDimensions() int { return it.iv.NumDimensions() }

// Size returns the number of elements.
func (it *IterableInterval[T]) Size() int64 { return it.size }

// Strategy returns the chosen construction.
func (it *IterableInterval[T]) Strategy() Strategy { return it.strategy }

// Flat reports whether cursors visit the interval in raster order.
//
// A non-flat StrategySlice iterable visits the same elements as the generic
// path, but in the raster order of the store's required interval, which is
// not the raster order of the view's interval (e.g. transposed for a
// permutation). Its IterationOrder equals only itself, so Zip pairs it with
// anything else through random access.
func (it *IterableInterval[T]) Flat() bool { return it.flat }

// Chain returns the chain built for the interval.
func (it *IterableInterval[T]) Chain() Chain[T] { return it.chain }

// RequiredInterval returns the store interval the iteration touches.
func (it *IterableInterval[T]) RequiredInterval() interval.Interval { return it.chain.Required }

// IterationOrder returns the order token of this iterable.
func (it *IterableInterval[T]) IterationOrder() interval.IterationOrder { return it.order }

// EqualIterationOrder reports whether it and o can be iterated in lock-step.
func (it *IterableInterval[T]) EqualIterationOrder(o Ordered) bool {
	return it.order.Equal(o.IterationOrder())
}

// Cursor returns a new cursor. Positions may be computed lazily.
func (it *IterableInterval[T]) Cursor() cursor.Cursor[T] { return it.newCursor(false) }

// LocalizingCursor returns a new cursor that tracks its position eagerly.
func (it *IterableInterval[T]) LocalizingCursor() cursor.Cursor[T] { return it.newCursor(true) }

func (it *IterableInterval[T]) newCursor(localizing bool) cursor.Cursor[T] {
	switch it.strategy {
	case StrategySubInterval:
		return it.store.SubIntervalCursor(it.required, localizing)
	case StrategySlice:
		return cursor.NewSlicing(it.store.SubIntervalCursor(it.required, localizing), it.slice)
	default:
		return cursor.NewGeneric[T](it.iv, it.chain.RandomAccess())
	}
}

// RandomAccess returns a random access into the underlying view.
func (it *IterableInterval[T]) RandomAccess() *RandomAccess[T] { return it.chain.RandomAccess() }

// FirstElement returns the first value a cursor would produce.
// Panics with ErrEmpty on an empty interval.
func (it *IterableInterval[T]) FirstElement() T {
	c := it.Cursor()
	if !c.Next() {
		panic(fmt.Errorf("FirstElement on %v: %w", it.iv, ErrEmpty))
	}

	return c.Get()
}

// All yields (position, value) pairs in iteration order. The position slice
// is reused between iterations. Iteration order is raster order of the
// interval only when Flat reports true; otherwise it follows the store.
func (it *IterableInterval[T]) All() iter.Seq2[[]int64, T] {
	return func(yield func([]int64, T) bool) {
		c := it.LocalizingCursor()
		pos := make([]int64, it.iv.NumDimensions())
		for c.Next() {
			c.Localize(pos)
			if !yield(pos, c.Get()) {
				return
			}
		}
	}
}

// Values yields values in iteration order.
func (it *IterableInterval[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := it.Cursor()
		for c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// String summarizes the iterable for diagnostics.
func (it *IterableInterval[T]) String() string {
	return fmt.Sprintf("IterableInterval{%v, %s, flat=%t, residual=%d}",
		it.iv, it.strategy, it.flat, len(it.chain.Transforms))
}

var _ position.Dimensional = (*IterableInterval[int])(nil)
