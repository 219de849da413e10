package transform_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/transform"
)

// requirePanicsWith asserts that fn panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}

// apply is a test shorthand for Transform.Apply with a fresh buffer.
func apply(t transform.Transform, target ...int64) []int64 {
	out := make([]int64, t.NumSourceDimensions())
	t.Apply(target, out)

	return out
}

// shiftMapper is an opaque 1:1 mapper used to exercise KindGeneral.
type shiftMapper struct {
	n     int
	shift int64
}

func (s shiftMapper) NumTargetDimensions() int { return s.n }
func (s shiftMapper) NumSourceDimensions() int { return s.n }
func (s shiftMapper) Apply(target, source []int64) {
	for d := range target {
		source[d] = target[d] + s.shift
	}
}
func (s shiftMapper) BoundingBox(iv interval.Interval) interval.Interval {
	off := make([]int64, s.n)
	for d := range off {
		off[d] = s.shift
	}

	return iv.Translate(off)
}

// tableMapper holds a slice, so its values are not comparable with ==.
type tableMapper struct {
	off []int64
}

func (m tableMapper) NumTargetDimensions() int { return len(m.off) }
func (m tableMapper) NumSourceDimensions() int { return len(m.off) }
func (m tableMapper) Apply(target, source []int64) {
	for d := range target {
		source[d] = target[d] + m.off[d]
	}
}
func (m tableMapper) BoundingBox(iv interval.Interval) interval.Interval { return iv.Translate(m.off) }

func TestEqualGeneral(t *testing.T) {
	a := transform.Must(transform.FromMapper(shiftMapper{n: 2, shift: 1}))
	b := transform.Must(transform.FromMapper(shiftMapper{n: 2, shift: 1}))
	c := transform.Must(transform.FromMapper(shiftMapper{n: 2, shift: 2}))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	tm := tableMapper{off: []int64{1, 1}}
	byValue := transform.Must(transform.FromMapper(tm))
	require.NotPanics(t, func() { byValue.Equal(byValue) })
	require.False(t, byValue.Equal(transform.Must(transform.FromMapper(tm))))
	require.False(t, byValue.Equal(a))

	ptr := &tableMapper{off: []int64{1, 1}}
	byPointer := transform.Must(transform.FromMapper(ptr))
	require.True(t, byPointer.Equal(transform.Must(transform.FromMapper(ptr))))
	require.False(t, byPointer.Equal(transform.Must(transform.FromMapper(&tableMapper{off: []int64{1, 1}}))))
}

func TestNewValidation(t *testing.T) {
	_, err := transform.New(0, transform.Components{Offset: []int64{0}})
	require.ErrorIs(t, err, transform.ErrNoDimensions)

	_, err = transform.New(2, transform.Components{Offset: []int64{0, 0}, Fixed: []bool{true}})
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)

	_, err = transform.New(2, transform.Components{Offset: []int64{0, 0, 0}})
	require.ErrorIs(t, err, transform.ErrDimensionMismatch)

	_, err = transform.New(2, transform.Components{Offset: []int64{0}, Mapping: []int{2}})
	require.ErrorIs(t, err, transform.ErrComponentOutOfRange)

	_, err = transform.HyperSlice(3, 3, 0)
	require.ErrorIs(t, err, transform.ErrComponentOutOfRange)

	_, err = transform.HyperSlice(1, 0, 0)
	require.ErrorIs(t, err, transform.ErrNoDimensions)

	_, err = transform.FromMapper(nil)
	require.ErrorIs(t, err, transform.ErrNilMapper)
}

func TestKinds(t *testing.T) {
	cases := []struct {
		name string
		tr   transform.Transform
		kind transform.Kind
	}{
		{"identity", transform.Must(transform.Identity(3)), transform.KindTranslation},
		{"translate", transform.Must(transform.Translate(1, -2)), transform.KindTranslation},
		{"hyperslice", transform.Must(transform.HyperSlice(3, 1, 4)), transform.KindSlicing},
		{"permute", transform.Must(transform.Permute(3, 0, 2)), transform.KindSlicing},
		{"moveaxis", transform.Must(transform.MoveAxis(3, 2, 0)), transform.KindSlicing},
		{"adddim", transform.Must(transform.AddDimension(2)), transform.KindMixed},
		{"rotate", transform.Must(transform.Rotate(2, 0, 1)), transform.KindMixed},
		{"invert", transform.Must(transform.InvertAxis(2, 1)), transform.KindMixed},
		{"general", transform.Must(transform.FromMapper(shiftMapper{n: 2, shift: 1})), transform.KindGeneral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.tr.Kind(), tc.tr.String())
			require.True(t, tc.tr.Valid())
		})
	}

	require.True(t, transform.Must(transform.Identity(2)).IsIdentity())
	require.False(t, transform.Must(transform.Translate(0, 1)).IsIdentity())
	require.True(t, transform.Must(transform.Translate(0, 1)).IsSlicing())
	require.False(t, transform.Must(transform.Rotate(2, 0, 1)).IsSlicing())
	require.False(t, transform.Transform{}.Valid())
	require.Equal(t, "Invalid", transform.Transform{}.Kind().String())
}

func TestHyperSliceComponents(t *testing.T) {
	s := transform.Must(transform.HyperSlice(3, 1, 4))
	require.Equal(t, 2, s.NumTargetDimensions())
	require.Equal(t, 3, s.NumSourceDimensions())
	require.True(t, s.Fixed(1))
	require.Equal(t, -1, s.Mapping(1))
	require.Equal(t, int64(4), s.Offset(1))
	require.Equal(t, 0, s.Mapping(0))
	require.Equal(t, 1, s.Mapping(2))
	require.Equal(t, 1, s.FirstFixed())
	require.True(t, s.SingleFixedBlock())
	require.Equal(t, []int64{7, 4, 9}, apply(s, 7, 9))
	require.Equal(t, "Slicing(2->3: t0, 4, t1)", s.String())
}

func TestFixedBlocks(t *testing.T) {
	contiguous := transform.Must(transform.New(2, transform.Components{
		Offset:  []int64{0, 1, 2, 0},
		Fixed:   []bool{false, true, true, false},
		Mapping: []int{0, 0, 0, 1},
	}))
	require.Equal(t, 1, contiguous.FirstFixed())
	require.True(t, contiguous.SingleFixedBlock())

	interior := transform.Must(transform.New(2, transform.Components{
		Offset:  []int64{3, 0, 2, 0},
		Fixed:   []bool{true, false, true, false},
		Mapping: []int{0, 0, 0, 1},
	}))
	require.Equal(t, 0, interior.FirstFixed())
	require.False(t, interior.SingleFixedBlock())

	none := transform.Must(transform.Permute(2, 0, 1))
	require.Equal(t, 2, none.FirstFixed())
	require.True(t, none.SingleFixedBlock())
}

func TestApplyVariants(t *testing.T) {
	require.Equal(t, []int64{3, -1}, apply(transform.Must(transform.Translate(1, -2)), 2, 1))
	require.Equal(t, []int64{5, 6, 4}, apply(transform.Must(transform.Permute(3, 0, 2)), 4, 6, 5))
	// target dim 0 shows source dim 2
	require.Equal(t, []int64{20, 30, 10}, apply(transform.Must(transform.MoveAxis(3, 2, 0)), 10, 20, 30))
	require.Equal(t, []int64{7, -3}, apply(transform.Must(transform.Rotate(2, 0, 1)), 3, 7))
	require.Equal(t, []int64{3, -7}, apply(transform.Must(transform.InvertAxis(2, 1)), 3, 7))
	require.Equal(t, []int64{1, 2}, apply(transform.Must(transform.AddDimension(2)), 1, 2, 99))
	require.Equal(t, []int64{2, 3}, apply(transform.Must(transform.FromMapper(shiftMapper{n: 2, shift: 1})), 1, 2))
}

func TestComposeRules(t *testing.T) {
	slice := transform.Must(transform.HyperSlice(3, 1, 4)) // 2 -> 3
	shift := transform.Must(transform.Translate(1, 2, 3))  // 3 -> 3

	c, ok := shift.Compose(slice)
	require.True(t, ok)
	require.Equal(t, transform.KindSlicing, c.Kind())
	require.Equal(t, []int64{1, 6, 3}, apply(c, 0, 0))

	// permuting twice cancels out
	p := transform.Must(transform.Permute(3, 0, 1))
	pp, ok := p.Compose(p)
	require.True(t, ok)
	require.True(t, pp.IsIdentity())

	// inverting twice cancels out
	inv := transform.Must(transform.InvertAxis(2, 0))
	ii, ok := inv.Compose(inv)
	require.True(t, ok)
	require.True(t, ii.IsIdentity())

	// four quarter rotations are the identity
	r := transform.Must(transform.Rotate(2, 0, 1))
	acc := r
	for i := 0; i < 3; i++ {
		acc, ok = r.Compose(acc)
		require.True(t, ok)
	}
	require.True(t, acc.IsIdentity(), acc.String())

	g := transform.Must(transform.FromMapper(shiftMapper{n: 3, shift: 1}))
	_, ok = g.Compose(shift)
	require.False(t, ok)
	_, ok = shift.Compose(g)
	require.False(t, ok)

	requirePanicsWith(t, transform.ErrDimensionMismatch, func() { slice.Compose(shift) })
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 300; trial++ {
		a := randomAffine(rng, 1+rng.Intn(4), 1+rng.Intn(4))
		b := randomAffine(rng, 1+rng.Intn(4), a.NumTargetDimensions())
		ab, ok := a.Compose(b)
		require.True(t, ok)

		y := randomPoint(rng, b.NumTargetDimensions())
		x := apply(b, y...)
		require.Equal(t, apply(a, x...), apply(ab, y...), "a=%v b=%v", a, b)
	}
}

func TestComposeAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 300; trial++ {
		a := randomAffine(rng, 1+rng.Intn(4), 1+rng.Intn(4))
		b := randomAffine(rng, 1+rng.Intn(4), a.NumTargetDimensions())
		c := randomAffine(rng, 1+rng.Intn(4), b.NumTargetDimensions())

		bc, _ := b.Compose(c)
		left, _ := a.Compose(bc)
		ab, _ := a.Compose(b)
		right, _ := ab.Compose(c)
		require.True(t, left.Equal(right), "left=%v right=%v", left, right)

		y := randomPoint(rng, c.NumTargetDimensions())
		require.Equal(t, apply(left, y...), apply(right, y...))
	}
}

func TestThenIsReversedCompose(t *testing.T) {
	slice := transform.Must(transform.HyperSlice(3, 0, 2))
	shift := transform.Must(transform.Translate(5, 5, 5))
	a, _ := slice.Then(shift)
	b, _ := shift.Compose(slice)
	require.True(t, a.Equal(b))
}

func TestBoundingBoxTightAndSound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		tr := randomAffine(rng, 1+rng.Intn(3), 1+rng.Intn(3))
		n := tr.NumTargetDimensions()
		min := randomPoint(rng, n)
		max := make([]int64, n)
		for d := range max {
			max[d] = min[d] + int64(rng.Intn(3))
		}
		iv := interval.Must(interval.New(min, max))
		box := tr.BoundingBox(iv)

		// sound: every image point is inside; tight: every face is touched
		lo := box.Maxs()
		hi := box.Mins()
		for p := range iv.All() {
			s := apply(tr, p...)
			require.True(t, box.Contains(s), "tr=%v iv=%v box=%v s=%v", tr, iv, box, s)
			for d, v := range s {
				lo[d] = min64(lo[d], v)
				hi[d] = max64(hi[d], v)
			}
		}
		require.Equal(t, box.Mins(), lo)
		require.Equal(t, box.Maxs(), hi)
	}
}

func TestBoundingBoxScenario(t *testing.T) {
	s := transform.Must(transform.HyperSlice(3, 1, 4))
	box := s.BoundingBox(interval.Must(interval.FromSize(10, 10)))
	require.Equal(t, []int64{0, 4, 0}, box.Mins())
	require.Equal(t, []int64{9, 4, 9}, box.Maxs())

	requirePanicsWith(t, transform.ErrDimensionMismatch, func() {
		s.BoundingBox(interval.Must(interval.FromSize(10, 10, 10)))
	})
}

func TestApplyLengthViolation(t *testing.T) {
	s := transform.Must(transform.HyperSlice(3, 1, 4))
	requirePanicsWith(t, transform.ErrDimensionMismatch, func() { s.Apply(make([]int64, 3), make([]int64, 3)) })
	requirePanicsWith(t, transform.ErrComponentOutOfRange, func() { s.Fixed(3) })
}

// randomAffine draws an n -> m affine transform with random fixed dims,
// mappings, inversions and offsets.
func randomAffine(rng *rand.Rand, n, m int) transform.Transform {
	c := transform.Components{
		Offset:   make([]int64, m),
		Fixed:    make([]bool, m),
		Mapping:  make([]int, m),
		Inverted: make([]bool, m),
	}
	for d := 0; d < m; d++ {
		c.Offset[d] = int64(rng.Intn(11) - 5)
		c.Fixed[d] = rng.Intn(4) == 0
		c.Mapping[d] = rng.Intn(n)
		c.Inverted[d] = rng.Intn(4) == 0
	}

	return transform.Must(transform.New(n, c))
}

func randomPoint(rng *rand.Rand, n int) []int64 {
	p := make([]int64, n)
	for d := range p {
		p[d] = int64(rng.Intn(21) - 10)
	}

	return p
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
