package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/transform"
	"github.com/katalvlaran/ndview/view"
)

func TestView_Ops(t *testing.T) {
	a := indexed(t, 4, 5, 6) // value = 30*x + 6*y + z
	base := view.Of[int](a)
	val := func(x, y, z int64) int { return int(30*x + 6*y + z) }

	cases := []struct {
		name string
		v    view.View[int]
		at   []int64
		want int
	}{
		{"identity", base, []int64{1, 2, 3}, val(1, 2, 3)},
		{"translate", base.Translate(1, 1, 1), []int64{2, 3, 4}, val(1, 2, 3)},
		{"offset", base.Offset(1, 1, 1), []int64{1, 2, 3}, val(2, 3, 4)},
		{"hyperslice", base.HyperSlice(1, 4), []int64{2, 5}, val(2, 4, 5)},
		{"add dimension", base.AddDimension(), []int64{1, 2, 3, 99}, val(1, 2, 3)},
		{"permute", base.Permute(0, 2), []int64{5, 1, 3}, val(3, 1, 5)},
		{"move axis", base.MoveAxis(2, 0), []int64{5, 3, 1}, val(3, 1, 5)},
		{"rotate", base.Rotate(0, 1), []int64{-2, 3, 4}, val(3, 2, 4)},
		{"invert", base.InvertAxis(2), []int64{0, 0, -5}, val(0, 0, 5)},
		{"stacked", base.HyperSlice(0, 3).Permute(0, 1).Offset(1, 1), []int64{2, 0}, val(3, 1, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, len(tc.at), tc.v.NumDimensions())
			require.Equal(t, tc.want, tc.v.Get(tc.at...))

			ra := tc.v.RandomAccess()
			ra.SetPositions(tc.at)
			require.Equal(t, tc.want, ra.Get())
		})
	}
}

func TestView_ZeroMin(t *testing.T) {
	a := indexed(t, 4, 5)
	iv := box([]int64{1, 2}, []int64{3, 4})
	v, zero := view.Of[int](a).ZeroMin(iv)

	require.True(t, zero.Equal(size(3, 3)))
	require.Equal(t, a.Get([]int64{1, 2}), v.Get(0, 0))
	require.Equal(t, a.Get([]int64{3, 4}), v.Get(2, 2))
}

func TestView_RandomAccessWrites(t *testing.T) {
	a := indexed(t, 3, 3)
	v := view.Of[int](a).Permute(0, 1).Offset(1, 0)

	ra := v.RandomAccess()
	ra.SetPositions([]int64{0, 2})
	ra.Set(-1)
	got, err := a.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, -1, got)

	ra.Fwd(0)
	require.Equal(t, []int64{1, 2}, []int64{ra.Position(0), ra.Position(1)})
	require.Equal(t, []int64{2, 2}, ra.SourcePosition())
	require.Equal(t, a.Get([]int64{2, 2}), ra.Get())

	ra.Move(-1, 1)
	ra.Bck(0)
	require.Equal(t, a.Get([]int64{1, 1}), ra.Get())
}

func TestView_ArenaSharing(t *testing.T) {
	a := indexed(t, 4, 4)
	ar := view.NewArena[int]()
	src := ar.Source(a)
	left := src.Offset(1, 0)
	right := src.Offset(0, 1)
	require.Equal(t, 3, ar.Len())
	require.NotEqual(t, left.ID(), right.ID())
	require.Same(t, ar, left.Arena())

	require.Equal(t, a.Get([]int64{1, 0}), left.Get(0, 0))
	require.Equal(t, a.Get([]int64{0, 1}), right.Get(0, 0))
}

func TestView_Contracts(t *testing.T) {
	a := indexed(t, 4, 4)
	v := view.Of[int](a)

	requirePanicsWith(t, view.ErrNilStore, func() { view.NewArena[int]().Source(nil) })
	requirePanicsWith(t, view.ErrInvalidView, func() { view.View[int]{}.Offset(1) })
	requirePanicsWith(t, view.ErrInvalidView, func() { v.Transform(transform.Transform{}) })
	requirePanicsWith(t, view.ErrDimensionMismatch, func() { v.Offset(1, 2, 3) })
	requirePanicsWith(t, view.ErrDimensionMismatch, func() { v.Get(1) })
	requirePanicsWith(t, view.ErrDimensionMismatch, func() {
		v.Transform(transform.Must(transform.Identity(3)))
	})
	requirePanicsWith(t, transform.ErrComponentOutOfRange, func() { v.HyperSlice(2, 0) })
	requirePanicsWith(t, transform.ErrComponentOutOfRange, func() { v.Permute(0, 5) })
	requirePanicsWith(t, view.ErrDimensionMismatch, func() { v.Interval(size(4)) })
	requirePanicsWith(t, view.ErrDimensionMismatch, func() { view.BuildChainFor(v, size(4, 4, 4)) })
	require.Panics(t, func() { view.WithObserver(nil) })
}

func TestChain_Merging(t *testing.T) {
	a := indexed(t, 5, 5, 5)
	base := view.Of[int](a)

	t.Run("identity dropped", func(t *testing.T) {
		ch := view.BuildChain(base.Permute(0, 1).Permute(0, 1))
		require.Equal(t, 2, ch.Layers)
		require.Empty(t, ch.Transforms)
		xf, ok := ch.Composite()
		require.True(t, ok)
		require.True(t, xf.IsIdentity())
		require.False(t, ch.Bounded)
	})

	t.Run("merged run", func(t *testing.T) {
		ch := view.BuildChainFor(base.HyperSlice(0, 1).Offset(1, 2), size(2, 2))
		require.Equal(t, 2, ch.Layers)
		require.Len(t, ch.Transforms, 1)
		require.Equal(t, transform.KindSlicing, ch.Transforms[0].Kind())
		require.True(t, ch.Required.Equal(box([]int64{1, 1, 2}, []int64{1, 2, 3})))
	})

	t.Run("general splits runs", func(t *testing.T) {
		g := transform.Must(transform.FromMapper(mirror{n: 3, hi: 4}))
		v := base.Offset(-1, 0, 0).Transform(g).Permute(0, 1).InvertAxis(2)
		ch := view.BuildChainFor(v, box([]int64{0, 0, -3}, []int64{1, 1, 0}))
		require.Equal(t, 4, ch.Layers)
		require.Len(t, ch.Transforms, 3)
		require.Equal(t, transform.KindMixed, ch.Transforms[0].Kind())
		require.Equal(t, transform.KindGeneral, ch.Transforms[1].Kind())
		require.Equal(t, transform.KindTranslation, ch.Transforms[2].Kind())
		require.True(t, ch.Required.Equal(box([]int64{2, 3, 1}, []int64{3, 4, 4})))

		_, ok := ch.Composite()
		require.False(t, ok)
		require.Equal(t, a.Get([]int64{3, 4, 2}), v.Get(0, 0, -2))
	})
}

// TestChain_Soundness: every store position read while iterating lies inside
// the required interval.
func TestChain_Soundness(t *testing.T) {
	a := indexed(t, 6, 6, 6)
	g := transform.Must(transform.FromMapper(mirror{n: 3, hi: 5}))

	build := func(s view.Store[int]) []view.View[int] {
		b := view.Of[int](s)

		return []view.View[int]{
			b.Offset(1, 0, 2),
			b.HyperSlice(1, 3).Permute(0, 1),
			b.Rotate(0, 2).Offset(0, 0, 2),
			b.Transform(g).HyperSlice(0, 1).InvertAxis(1),
			b.AddDimension().MoveAxis(3, 0),
		}
	}
	ivs := []interval.Interval{
		size(4, 5, 3),
		box([]int64{1, 0}, []int64{4, 5}),
		box([]int64{-3, 1, -1}, []int64{0, 4, 2}),
		box([]int64{0, -5}, []int64{5, -1}),
		box([]int64{-2, 0, 1, 2}, []int64{2, 5, 4, 3}),
	}

	rec := &recording[int]{Store: a}
	for i, v := range build(rec) {
		rec.seen = nil
		it := v.Interval(ivs[i])
		require.Equal(t, view.StrategyGeneric, it.Strategy())
		n := 0
		for range it.Values() {
			n++
		}
		require.EqualValues(t, ivs[i].NumElements(), n)
		require.Len(t, rec.seen, n)
		for _, p := range rec.seen {
			require.True(t, it.RequiredInterval().Contains(p), "view %d: %v outside %v", i, p, it.RequiredInterval())
		}
	}
}
