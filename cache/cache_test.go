package cache_test

import (
	"iter"
	"testing"

	"github.com/katalvlaran/lvlmath/cache"
	"github.com/katalvlaran/lvlmath/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource yields 0..n-1 (or forever when n < 0) and records how many
// elements were pulled, how many traversals started, and whether the last
// traversal was released.
type countingSource struct {
	n         int
	pulled    int
	traversal int
	released  bool
}

func (s *countingSource) seq() iter.Seq[int] {
	return func(yield func(int) bool) {
		s.traversal++
		defer func() { s.released = true }()
		for i := 0; s.n < 0 || i < s.n; i++ {
			s.pulled++
			if !yield(i) {
				return
			}
		}
	}
}

// TestCache_GetFinite covers in-range, out-of-range and negative indices.
func TestCache_GetFinite(t *testing.T) {
	c := cache.New(seq.Of("a", "b", "c"))
	defer c.Close()

	x, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", x)

	x, ok = c.Get(0)
	require.True(t, ok, "buffered indices stay reachable")
	assert.Equal(t, "a", x)

	_, ok = c.Get(3)
	assert.False(t, ok, "index past the end is absent")
	_, ok = c.Get(-1)
	assert.False(t, ok, "negative index is absent")
	assert.True(t, c.Exhausted())
	assert.Equal(t, 3, c.Size())
}

// TestCache_PullsLazily verifies the cache pulls only what it needs plus one
// element of lookahead, and never restarts the source.
func TestCache_PullsLazily(t *testing.T) {
	src := &countingSource{n: -1}
	c := cache.New(src.seq())
	defer c.Close()

	assert.Equal(t, 0, src.pulled, "construction pulls nothing")

	x, ok := c.Get(4)
	require.True(t, ok)
	assert.Equal(t, 4, x)
	assert.Equal(t, 6, src.pulled, "indices 0..4 plus one lookahead")

	_, _ = c.Get(2)
	_, _ = c.Get(0)
	assert.Equal(t, 6, src.pulled, "buffered reads do not pull")

	_, _ = c.Get(10)
	assert.Equal(t, 12, src.pulled)
	assert.Equal(t, 1, src.traversal, "the source is traversed once")
	assert.False(t, c.Exhausted(), "an infinite source never exhausts")
}

// TestCache_NonMonotoneAccess interleaves indices the way a Z-curve walk does.
func TestCache_NonMonotoneAccess(t *testing.T) {
	c := cache.New(seq.Map(seq.Range(0, 100), func(i int) int { return i * i }))
	defer c.Close()

	for _, i := range []int{7, 0, 3, 15, 1, 99, 42, 2} {
		x, ok := c.Get(i)
		require.True(t, ok, "index %d", i)
		assert.Equal(t, i*i, x)
	}
	_, ok := c.Get(100)
	assert.False(t, ok)
}

// TestCache_IsLast walks the NOT_EXHAUSTED → EXHAUSTED transition.
func TestCache_IsLast(t *testing.T) {
	c := cache.New(seq.Of(10, 20, 30))
	defer c.Close()

	_, known := c.IsLast(0)
	assert.False(t, known, "unknown before anything is pulled")

	_, _ = c.Get(0)
	_, known = c.IsLast(0)
	assert.False(t, known, "still unknown: lookahead found element 1")

	_, _ = c.Get(2)
	last, known := c.IsLast(2)
	assert.True(t, known, "fetching the final element exhausts via lookahead")
	assert.True(t, last)

	last, known = c.IsLast(1)
	assert.True(t, known)
	assert.False(t, last)
}

// TestCache_IsLastEmpty: an empty source is exhausted on first probe.
func TestCache_IsLastEmpty(t *testing.T) {
	c := cache.New(seq.Empty[int])
	defer c.Close()

	assert.False(t, c.Has(0))
	assert.True(t, c.Exhausted())
	last, known := c.IsLast(0)
	assert.True(t, known)
	assert.False(t, last)
}

// TestCache_GetAll resolves unordered and repeated indices.
func TestCache_GetAll(t *testing.T) {
	c := cache.New(seq.Of('a', 'b', 'c', 'd'))
	defer c.Close()

	got, ok := c.GetAll([]int{3, 0, 3, 1})
	require.True(t, ok)
	assert.Equal(t, []rune{'d', 'a', 'd', 'b'}, got)

	_, ok = c.GetAll([]int{0, 4})
	assert.False(t, ok, "one unreachable index makes the batch absent")
	_, ok = c.GetAll([]int{-1})
	assert.False(t, ok)

	got, ok = c.GetAll(nil)
	require.True(t, ok)
	assert.Empty(t, got)
}

// TestCache_Select picks elements by bitmask.
func TestCache_Select(t *testing.T) {
	c := cache.New(seq.Of("x0", "x1", "x2"))
	defer c.Close()

	got, ok := c.Select(0)
	require.True(t, ok)
	assert.Empty(t, got)

	got, ok = c.Select(0b101)
	require.True(t, ok)
	assert.Equal(t, []string{"x0", "x2"}, got)

	_, ok = c.Select(0b1000)
	assert.False(t, ok)
}

// TestCache_CloseReleasesSource checks the pull cursor is stopped by Close and
// that buffered data survives.
func TestCache_CloseReleasesSource(t *testing.T) {
	src := &countingSource{n: -1}
	c := cache.New(src.seq())

	_, _ = c.Get(1)
	assert.False(t, src.released)
	c.Close()
	c.Close()
	assert.True(t, src.released, "Close stops the underlying traversal")

	x, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1, x)
	_, ok = c.Get(50)
	assert.False(t, ok, "a closed cache pulls nothing new")
	_, known := c.IsLast(1)
	assert.False(t, known, "closing is not exhaustion")
}

// TestCache_FromSlice is exhausted from the start.
func TestCache_FromSlice(t *testing.T) {
	c := cache.FromSlice([]int{5, 6})
	last, known := c.IsLast(1)
	assert.True(t, known)
	assert.True(t, last)
	x, ok := c.Get(0)
	require.True(t, ok)
	assert.Equal(t, 5, x)
	assert.Equal(t, 2, c.Size())
}
