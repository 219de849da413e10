// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/transform"
)

// Chain is the result of walking a view down to its store.
type Chain[T any] struct {
	// Store is the terminal backing store.
	Store Store[T]

	// Required is the minimal store interval the requested interval depends
	// on. Valid only when Bounded.
	Required interval.Interval
	Bounded  bool

	// Transforms are the residual transforms, view side first. Each is a
	// maximal run of mergeable layers; identity runs are dropped.
	Transforms []transform.Transform

	// Layers counts the transform nodes walked.
	Layers int

	n int // dimensionality of the view the chain was built for
}

// BuildChain walks v without a target interval (unbounded access).
func BuildChain[T any](v View[T]) Chain[T] {
	return buildChain(v, interval.Interval{}, false)
}

// BuildChainFor walks v and propagates iv down to the store.
func BuildChainFor[T any](v View[T], iv interval.Interval) Chain[T] {
	if iv.NumDimensions() != v.NumDimensions() {
		panic(fmt.Errorf("BuildChainFor: interval %d dims, view %d dims: %w",
			iv.NumDimensions(), v.NumDimensions(), ErrDimensionMismatch))
	}

	return buildChain(v, iv, true)
}

// buildChain performs the backward walk.
//
// Implementation:
//   - Stage 1: from v's node, follow source links until a terminal node.
//   - Stage 2: at every transform node, replace the running box by its
//     bounding box through that transform (bounded walks only).
//   - Stage 3: merge the node's transform into the running composite with
//     xf.Compose(running); when that is refused, close the run and start a
//     new one at xf. Nothing is approximated: a refused merge only leaves one
//     more residual transform.
//   - Stage 4: drop identity runs.
//
// Complexity: O(L * (n + m)) for L layers.
func buildChain[T any](v View[T], iv interval.Interval, bounded bool) Chain[T] {
	v.check()
	ch := Chain[T]{Required: iv, Bounded: bounded, n: v.n}

	var runs []transform.Transform
	var running transform.Transform
	open := false

	cur := v.id
	for {
		nd := v.arena.node(cur)
		if nd.store != nil {
			ch.Store = nd.store
			break
		}
		ch.Layers++
		if bounded {
			ch.Required = nd.xf.BoundingBox(ch.Required)
		}
		if !open {
			running, open = nd.xf, true
		} else if merged, ok := nd.xf.Compose(running); ok {
			running = merged
		} else {
			runs = append(runs, running)
			running = nd.xf
		}
		cur = nd.source
	}
	if open {
		runs = append(runs, running)
	}

	for _, r := range runs {
		if !r.IsIdentity() {
			ch.Transforms = append(ch.Transforms, r)
		}
	}

	return ch
}

// Composite returns the single transform from view to store coordinates, or
// false when an unmergeable transform left more than one residual.
func (c Chain[T]) Composite() (transform.Transform, bool) {
	switch len(c.Transforms) {
	case 0:
		return transform.Must(transform.Identity(c.n)), true
	case 1:
		return c.Transforms[0], true
	default:
		return transform.Transform{}, false
	}
}

// RandomAccess returns a random access applying the residual transforms.
func (c Chain[T]) RandomAccess() *RandomAccess[T] {
	return newRandomAccess(c.Store, c.Transforms, c.n)
}
