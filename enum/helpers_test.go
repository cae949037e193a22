package enum_test

import (
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/lvlmath/seq"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/combin"
)

// take collects at most n elements of s.
func take[T any](s iter.Seq[T], n int) []T {
	return slices.Collect(seq.Take(s, n))
}

// letters splits "abc" into the sequence "a", "b", "c".
func letters(s string) iter.Seq[string] {
	return seq.Of(strings.Split(s, "")...)
}

// tracked yields 0 … n-1, or forever when n < 0, and keeps *live equal to the
// number of traversals currently running.
func tracked(n int, live *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		*live++
		defer func() { *live-- }()
		for i := 0; n < 0 || i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// cartesian is the lexicographic product of pools, computed by gonum as an
// independent oracle.
func cartesian[T any](pools ...[]T) [][]T {
	lens := lo.Map(pools, func(p []T, _ int) int { return len(p) })
	return lo.Map(combin.Cartesian(lens), func(ix []int, _ int) []T {
		return lo.Map(ix, func(k int, pos int) T { return pools[pos][k] })
	})
}

// distinct reports whether xs has no repeated element under key.
func distinct[T any](xs []T, key func(T) string) bool {
	return len(lo.UniqBy(xs, key)) == len(xs)
}

func joinKey(xs []string) string { return strings.Join(xs, ",") }
