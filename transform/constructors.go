// SPDX-License-Identifier: MIT

package transform

import "fmt"

// Identity returns the n-dimensional identity (a zero translation).
func Identity(n int) (Transform, error) {
	if n <= 0 {
		return Transform{}, ErrNoDimensions
	}

	return New(n, Components{Offset: make([]int64, n)})
}

// Translate returns source = target + offset.
func Translate(offset ...int64) (Transform, error) {
	return New(len(offset), Components{Offset: offset})
}

// HyperSlice returns the m -> m-1 slicing transform that pins source
// dimension d at pos; remaining dimensions keep their order.
func HyperSlice(m, d int, pos int64) (Transform, error) {
	if m < 2 {
		return Transform{}, fmt.Errorf("HyperSlice(%d): %w", m, ErrNoDimensions)
	}
	if err := checkDim("HyperSlice", d, m); err != nil {
		return Transform{}, err
	}
	c := Components{
		Offset:  make([]int64, m),
		Fixed:   make([]bool, m),
		Mapping: make([]int, m),
	}
	for e := 0; e < m; e++ {
		switch {
		case e < d:
			c.Mapping[e] = e
		case e == d:
			c.Fixed[e] = true
			c.Offset[e] = pos
		default:
			c.Mapping[e] = e - 1
		}
	}

	return New(m-1, c)
}

// AddDimension returns the (m+1) -> m transform that ignores a new last
// target dimension, so the source repeats along it.
func AddDimension(m int) (Transform, error) {
	if m <= 0 {
		return Transform{}, ErrNoDimensions
	}
	c := Components{Offset: make([]int64, m), Mapping: make([]int, m)}
	for e := range c.Mapping {
		c.Mapping[e] = e
	}

	return New(m+1, c)
}

// Permute returns the n-dimensional transform swapping dimensions a and b.
func Permute(n, a, b int) (Transform, error) {
	if err := checkDim("Permute", a, n); err != nil {
		return Transform{}, err
	}
	if err := checkDim("Permute", b, n); err != nil {
		return Transform{}, err
	}
	c := Components{Offset: make([]int64, n), Mapping: identityMapping(n)}
	c.Mapping[a], c.Mapping[b] = b, a

	return New(n, c)
}

// MoveAxis returns the n-dimensional transform under which target dimension
// to reads source dimension from; the other dimensions keep their order.
func MoveAxis(n, from, to int) (Transform, error) {
	if err := checkDim("MoveAxis", from, n); err != nil {
		return Transform{}, err
	}
	if err := checkDim("MoveAxis", to, n); err != nil {
		return Transform{}, err
	}
	order := make([]int, 0, n) // order[i] = source dim shown at target dim i
	for e := 0; e < n; e++ {
		if e != from {
			order = append(order, e)
		}
	}
	order = append(order[:to], append([]int{from}, order[to:]...)...)
	c := Components{Offset: make([]int64, n), Mapping: make([]int, n)}
	for i, s := range order {
		c.Mapping[s] = i
	}

	return New(n, c)
}

// Rotate returns the 90 degree rotation from axis from towards axis to:
// source[from] = target[to] and source[to] = -target[from].
func Rotate(n, from, to int) (Transform, error) {
	if err := checkDim("Rotate", from, n); err != nil {
		return Transform{}, err
	}
	if err := checkDim("Rotate", to, n); err != nil {
		return Transform{}, err
	}
	if from == to {
		return Identity(n)
	}
	c := Components{Offset: make([]int64, n), Mapping: identityMapping(n), Inverted: make([]bool, n)}
	c.Mapping[from] = to
	c.Mapping[to] = from
	c.Inverted[to] = true

	return New(n, c)
}

// InvertAxis returns source[d] = -target[d], other dimensions unchanged.
func InvertAxis(n, d int) (Transform, error) {
	if err := checkDim("InvertAxis", d, n); err != nil {
		return Transform{}, err
	}
	c := Components{Offset: make([]int64, n), Inverted: make([]bool, n)}
	c.Inverted[d] = true

	return New(n, c)
}

func identityMapping(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func checkDim(op string, d, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: %w", op, ErrNoDimensions)
	}
	if d < 0 || d >= n {
		return fmt.Errorf("%s: dimension %d not in [0,%d): %w", op, d, n, ErrComponentOutOfRange)
	}

	return nil
}
