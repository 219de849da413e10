// SPDX-License-Identifier: MIT

package cursor

import (
	"fmt"

	"github.com/katalvlaran/ndview/position"
)

// State is the lifecycle phase of a cursor.
type State uint8

const (
	// Fresh: created, not yet advanced.
	Fresh State = iota
	// InProgress: positioned on an element.
	InProgress
	// Exhausted: past the last element (terminal).
	Exhausted
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case InProgress:
		return "InProgress"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Cursor is a stateful forward-only accessor over an interval.
// The value type T is opaque; cursors only forward it.
type Cursor[T any] interface {
	position.Localizable

	// State returns the current lifecycle phase.
	State() State

	// HasNext reports whether Next would move onto an element.
	HasNext() bool

	// Next advances to the next element and reports whether one exists.
	// After it returns false the cursor is Exhausted.
	Next() bool

	// Get returns the value at the current element.
	Get() T

	// Set writes the value at the current element.
	Set(v T)
}

// Accessor is the random access a Generic cursor positions per element.
type Accessor[T any] interface {
	NumDimensions() int
	SetPositions(pos []int64)
	Get() T
	Set(v T)
}

// checkPositioned panics unless s is InProgress.
func checkPositioned(s State) {
	switch s {
	case Fresh:
		panic(fmt.Errorf("access in state %s: %w", s, ErrNotPositioned))
	case Exhausted:
		panic(fmt.Errorf("access in state %s: %w", s, ErrExhausted))
	}
}

// Collect drains c and returns every value in iteration order.
func Collect[T any](c Cursor[T]) []T {
	var out []T
	for c.Next() {
		out = append(out, c.Get())
	}

	return out
}

// CollectPositions drains c and returns every position in iteration order.
func CollectPositions[T any](c Cursor[T]) [][]int64 {
	var out [][]int64
	for c.Next() {
		out = append(out, position.AsSlice(c))
	}

	return out
}

// Count drains c and returns the number of elements visited.
func Count[T any](c Cursor[T]) int64 {
	var n int64
	for c.Next() {
		n++
	}

	return n
}
