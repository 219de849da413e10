// SPDX-License-Identifier: MIT

package position

// Dimensional is anything with a fixed number of dimensions.
type Dimensional interface {
	// NumDimensions returns the dimensionality n (constant for the object's lifetime).
	NumDimensions() int
}

// RealLocalizable reports a real-valued position.
type RealLocalizable interface {
	Dimensional

	// RealPosition returns the coordinate in dimension d.
	RealPosition(d int) float64

	// RealLocalize writes all n coordinates into dst (len(dst) == n).
	RealLocalize(dst []float64)
}

// Localizable reports a discrete position. Its real accessors return the
// integer coordinate converted to float64.
type Localizable interface {
	RealLocalizable

	// Position returns the coordinate in dimension d.
	Position(d int) int64

	// Localize writes all n coordinates into dst (len(dst) == n).
	Localize(dst []int64)
}

// Positionable moves a discrete position.
type Positionable interface {
	Dimensional

	// Fwd moves one step forward in dimension d.
	Fwd(d int)

	// Bck moves one step backward in dimension d.
	Bck(d int)

	// Move moves by dist in dimension d.
	Move(dist int64, d int)

	// MoveBy moves by dist[d] in every dimension.
	MoveBy(dist []int64)

	// SetPosition sets the coordinate in dimension d.
	SetPosition(pos int64, d int)

	// SetPositions sets all coordinates.
	SetPositions(pos []int64)
}

// RealPositionable moves a real-valued position.
type RealPositionable interface {
	Dimensional

	// MoveReal moves by dist in dimension d.
	MoveReal(dist float64, d int)

	// MoveRealBy moves by dist[d] in every dimension.
	MoveRealBy(dist []float64)

	// SetRealPosition sets the coordinate in dimension d.
	SetRealPosition(pos float64, d int)

	// SetRealPositions sets all coordinates.
	SetRealPositions(pos []float64)
}

// AsSlice allocates and returns the position of l.
func AsSlice(l Localizable) []int64 {
	out := make([]int64, l.NumDimensions())
	l.Localize(out)

	return out
}

// AsRealSlice allocates and returns the real position of l.
func AsRealSlice(l RealLocalizable) []float64 {
	out := make([]float64, l.NumDimensions())
	l.RealLocalize(out)

	return out
}

// RealLocalizeInts fills dst with the integer coordinates of l as float64.
// Implementations of Localizable use it to satisfy RealLocalize.
func RealLocalizeInts(l Localizable, dst []float64) {
	n := l.NumDimensions()
	CheckLength(len(dst), n)
	for d := 0; d < n; d++ {
		dst[d] = float64(l.Position(d))
	}
}
