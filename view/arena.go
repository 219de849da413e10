// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/ndview/transform"
)

// NodeID indexes a node in its Arena.
type NodeID int

// node is either terminal (store != nil) or a transform over source.
// Nodes are immutable once appended.
type node[T any] struct {
	store  Store[T]
	source NodeID
	xf     transform.Transform
	n      int // dimensions exposed by this node
}

// Arena owns the nodes of a family of views. Views are handles (arena, id),
// so a chain is walked by following integer source indices.
type Arena[T any] struct {
	mu    sync.RWMutex
	nodes []node[T]
}

// NewArena returns an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Of returns a view of s in a fresh arena.
func Of[T any](s Store[T]) View[T] {
	return NewArena[T]().Source(s)
}

// Source registers s as a terminal node and returns the identity view of it.
func (a *Arena[T]) Source(s Store[T]) View[T] {
	if s == nil {
		panic(fmt.Errorf("Arena.Source: %w", ErrNilStore))
	}

	return a.push(node[T]{store: s, n: s.NumDimensions()})
}

// Len returns the number of nodes.
func (a *Arena[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.nodes)
}

// wrap appends (src, xf); xf must map into src's coordinates.
func (a *Arena[T]) wrap(src View[T], xf transform.Transform) View[T] {
	if xf.NumSourceDimensions() != src.n {
		panic(fmt.Errorf("transform %v onto %d-dimensional view: %w", xf, src.n, ErrDimensionMismatch))
	}

	return a.push(node[T]{source: src.id, xf: xf, n: xf.NumTargetDimensions()})
}

func (a *Arena[T]) push(nd node[T]) View[T] {
	a.mu.Lock()
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, nd)
	a.mu.Unlock()

	return View[T]{arena: a, id: id, n: nd.n}
}

// node returns a copy of node id.
func (a *Arena[T]) node(id NodeID) node[T] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.nodes[id]
}
