package view_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/array"
	"github.com/katalvlaran/ndview/interval"
	"github.com/katalvlaran/ndview/position"
	"github.com/katalvlaran/ndview/view"
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

// indexed returns a dense array whose elements hold their own flat index.
func indexed(t testing.TB, dims ...int64) *array.Dense[int] {
	t.Helper()
	a, err := array.NewDense[int](dims...)
	require.NoError(t, err)
	for i := range a.Data() {
		a.Data()[i] = i
	}

	return a
}

func box(min, max []int64) interval.Interval {
	return interval.Must(interval.New(min, max))
}

func size(dims ...int64) interval.Interval {
	return interval.Must(interval.FromSize(dims...))
}

// hide forwards everything but refuses native cursors, so views over it take
// the generic path.
type hide[T any] struct {
	view.Store[T]
}

func (hide[T]) SupportsOptimizedCursor(interval.Interval) bool { return false }

// recording remembers every position read through Get.
type recording[T any] struct {
	view.Store[T]

	mu   sync.Mutex
	seen [][]int64
}

func (r *recording[T]) Get(pos []int64) T {
	r.mu.Lock()
	r.seen = append(r.seen, append([]int64(nil), pos...))
	r.mu.Unlock()

	return r.Store.Get(pos)
}

func (*recording[T]) SupportsOptimizedCursor(interval.Interval) bool { return false }

// mirror is an opaque mapper: source[d] = hi - target[d].
type mirror struct {
	n  int
	hi int64
}

func (m mirror) NumTargetDimensions() int { return m.n }
func (m mirror) NumSourceDimensions() int { return m.n }

func (m mirror) Apply(target, source []int64) {
	for d := range target {
		source[d] = m.hi - target[d]
	}
}

func (m mirror) BoundingBox(iv interval.Interval) interval.Interval {
	min := make([]int64, m.n)
	max := make([]int64, m.n)
	for d := 0; d < m.n; d++ {
		min[d], max[d] = m.hi-iv.Max(d), m.hi-iv.Min(d)
	}

	return interval.Adopt(min, max)
}

// pair is one visited element.
type pair struct {
	pos   string
	value int
}

// visit collects (position, value) pairs in iteration order.
func visit(it *view.IterableInterval[int]) []pair {
	var out []pair
	for pos, v := range it.All() {
		out = append(out, pair{pos: position.FormatInts(pos), value: v})
	}

	return out
}
