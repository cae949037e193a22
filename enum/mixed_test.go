package enum_test

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlmath/demux"
	"github.com/katalvlaran/lvlmath/enum"
	"github.com/katalvlaran/lvlmath/seq"
	"github.com/katalvlaran/lvlmath/tuple"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairs_Scenario: pairs([1 2], [1 2]) is the full product, once each.
func TestPairs_Scenario(t *testing.T) {
	g := NewWithT(t)

	got := slices.Collect(enum.Pairs(seq.Of(1, 2), seq.Of(1, 2)))
	g.Expect(got).To(ConsistOf(
		tuple.NewPair(1, 1), tuple.NewPair(1, 2), tuple.NewPair(2, 1), tuple.NewPair(2, 2),
	))
	g.Expect(got).To(HaveLen(4))
}

// TestPairs_FiniteProducts checks m·n distinct pairs for uneven sizes, ending
// on the pair of last elements.
func TestPairs_FiniteProducts(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 4}, {7, 2}, {6, 6}, {2, 9}} {
		m, n := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", m, n), func(t *testing.T) {
			g := NewWithT(t)

			got := slices.Collect(enum.Pairs(seq.Range(0, m), seq.Range(0, n)))
			want := slices.Collect(enum.PairsIncreasing(seq.Range(0, m), seq.Range(0, n)))

			g.Expect(got).To(HaveLen(m * n))
			g.Expect(got).To(ConsistOf(want))
			g.Expect(got[len(got)-1]).To(Equal(tuple.NewPair(m-1, n-1)))
		})
	}
}

// TestPairs_InfiniteFollowsZCurve compares ℕ × ℕ with the demux directly.
func TestPairs_InfiniteFollowsZCurve(t *testing.T) {
	got := take(enum.Pairs(seq.Naturals(), seq.Naturals()), 256)
	require.Len(t, got, 256)
	for i, p := range got {
		a, b := demux.Unpair(uint64(i))
		assert.Equal(t, tuple.NewPair(a, b), p, "i=%d", i)
	}
}

// TestPairs_FiniteWithInfinite never terminates on its own but stays within
// the finite side and never repeats.
func TestPairs_FiniteWithInfinite(t *testing.T) {
	got := take(enum.Pairs(letters("ab"), seq.Naturals()), 40)
	require.Len(t, got, 40)
	assert.True(t, distinct(got, func(p tuple.Pair[string, uint64]) string { return p.String() }))

	for b := uint64(0); b < 10; b++ {
		assert.Contains(t, got, tuple.NewPair("a", b))
		assert.Contains(t, got, tuple.NewPair("b", b))
	}
}

// TestPairs_EmptyInput makes the product empty even against an infinite side.
func TestPairs_EmptyInput(t *testing.T) {
	assert.True(t, seq.IsEmpty(enum.Pairs(seq.Empty[int], seq.Naturals())))
	assert.True(t, seq.IsEmpty(enum.Pairs(seq.Naturals(), seq.Empty[int])))
	assert.True(t, seq.IsEmpty(enum.PairsOf(seq.Empty[int])))
	assert.True(t, seq.IsEmpty(enum.Triples(seq.Naturals(), seq.Of(1), seq.Empty[int])))
}

// TestPairsOf covers the single-source form in every order.
func TestPairsOf(t *testing.T) {
	orders := map[string]func(iter.Seq[string]) iter.Seq[tuple.Pair[string, string]]{
		"zcurve":      enum.PairsOf[string],
		"logarithmic": enum.PairsLogarithmicOrderOf[string],
		"squareRoot":  enum.PairsSquareRootOrderOf[string],
	}
	for name, pairsOf := range orders {
		t.Run(name, func(t *testing.T) {
			g := NewWithT(t)
			got := slices.Collect(pairsOf(letters("abc")))
			want := slices.Collect(enum.PairsIncreasing(letters("abc"), letters("abc")))
			g.Expect(got).To(ConsistOf(want))
			g.Expect(got[len(got)-1]).To(Equal(tuple.NewPair("c", "c")))
		})
	}
}

// TestPairsLogarithmicOrder checks the first few cells and finite products.
func TestPairsLogarithmicOrder(t *testing.T) {
	got := take(enum.PairsLogarithmicOrder(seq.Naturals(), seq.Naturals()), 8)
	want := []tuple.Pair[uint64, uint64]{
		{First: 0, Second: 0}, {First: 0, Second: 1}, {First: 1, Second: 0}, {First: 0, Second: 2},
		{First: 2, Second: 0}, {First: 1, Second: 1}, {First: 3, Second: 0}, {First: 0, Second: 3},
	}
	assert.Equal(t, want, got)

	g := NewWithT(t)
	finite := slices.Collect(enum.PairsLogarithmicOrder(seq.Range(0, 5), letters("wxyz")))
	g.Expect(finite).To(ConsistOf(slices.Collect(enum.PairsIncreasing(seq.Range(0, 5), letters("wxyz")))))
}

// TestPairsSquareRootOrder checks the first few cells and finite products.
func TestPairsSquareRootOrder(t *testing.T) {
	got := take(enum.PairsSquareRootOrder(seq.Naturals(), seq.Naturals()), 9)
	want := []tuple.Pair[uint64, uint64]{
		{First: 0, Second: 0}, {First: 0, Second: 1}, {First: 1, Second: 0}, {First: 1, Second: 1},
		{First: 2, Second: 0}, {First: 2, Second: 1}, {First: 3, Second: 0}, {First: 3, Second: 1},
		{First: 0, Second: 2},
	}
	assert.Equal(t, want, got)

	g := NewWithT(t)
	finite := slices.Collect(enum.PairsSquareRootOrder(seq.Range(0, 6), seq.Range(0, 3)))
	g.Expect(finite).To(ConsistOf(slices.Collect(enum.PairsIncreasing(seq.Range(0, 6), seq.Range(0, 3)))))
}

// TestTuples_FiniteArities covers 3 through 7 inputs of uneven sizes.
func TestTuples_FiniteArities(t *testing.T) {
	g := NewWithT(t)

	triples := slices.Collect(enum.Triples(seq.Range(0, 2), seq.Range(0, 3), seq.Range(0, 4)))
	g.Expect(triples).To(ConsistOf(slices.Collect(enum.TriplesIncreasing(seq.Range(0, 2), seq.Range(0, 3), seq.Range(0, 4)))))
	g.Expect(triples[len(triples)-1]).To(Equal(tuple.NewTriple(1, 2, 3)))

	r := func(n int) iter.Seq[int] { return seq.Range(0, n) }

	quads := slices.Collect(enum.Quadruples(r(2), r(1), r(3), r(2)))
	g.Expect(quads).To(ConsistOf(slices.Collect(enum.QuadruplesIncreasing(r(2), r(1), r(3), r(2)))))

	quints := slices.Collect(enum.Quintuples(r(2), r(2), r(1), r(3), r(2)))
	g.Expect(quints).To(ConsistOf(slices.Collect(enum.QuintuplesIncreasing(r(2), r(2), r(1), r(3), r(2)))))

	sexts := slices.Collect(enum.Sextuples(r(1), r(2), r(2), r(1), r(2), r(3)))
	g.Expect(sexts).To(ConsistOf(slices.Collect(enum.SextuplesIncreasing(r(1), r(2), r(2), r(1), r(2), r(3)))))

	septs := slices.Collect(enum.Septuples(r(2), r(1), r(2), r(2), r(1), r(2), r(2)))
	g.Expect(septs).To(HaveLen(32))
	g.Expect(septs).To(ConsistOf(slices.Collect(enum.SeptuplesIncreasing(r(2), r(1), r(2), r(2), r(1), r(2), r(2)))))
	g.Expect(septs[len(septs)-1]).To(Equal(tuple.NewSeptuple(1, 0, 1, 1, 0, 1, 1)))
}

// TestTuples_MixedFiniteAndInfinite exercises arities of 3 and more with one
// infinite input among finite ones: the walk keeps producing new tuples,
// stays inside the finite bounds and never repeats.
func TestTuples_MixedFiniteAndInfinite(t *testing.T) {
	triples := take(enum.Triples(seq.Range(0, 2), seq.Naturals(), letters("xyz")), 120)
	require.Len(t, triples, 120)
	assert.True(t, distinct(triples, func(x tuple.Triple[int, uint64, string]) string { return x.String() }))
	for _, x := range triples {
		assert.Less(t, x.First, 2)
	}
	// Every (a, c) combination of the finite sides shows up with b = 0.
	for _, a := range []int{0, 1} {
		for _, c := range []string{"x", "y", "z"} {
			assert.Contains(t, triples, tuple.NewTriple(a, uint64(0), c))
		}
	}

	quads := take(enum.Quadruples(seq.Naturals(), seq.Of(true), seq.Range(0, 3), seq.Of("k")), 50)
	require.Len(t, quads, 50)
	assert.True(t, distinct(quads, func(x tuple.Quadruple[uint64, bool, int, string]) string { return x.String() }))

	septs := take(enum.Septuples(
		seq.Of(0), seq.Of(0, 1), seq.Naturals(), seq.Of(0), seq.Of(0, 1), seq.Of(0), seq.Of(0),
	), 30)
	require.Len(t, septs, 30)
	assert.True(t, distinct(septs, func(x tuple.Septuple[int, int, uint64, int, int, int, int]) string { return x.String() }))
}

// TestTuples_AllInfinite checks that 3-way ℕ³ follows the Z-curve exactly.
func TestTuples_AllInfinite(t *testing.T) {
	got := take(enum.Triples(seq.Naturals(), seq.Naturals(), seq.Naturals()), 64)
	for i, x := range got {
		c := demux.ZCurve(3, uint64(i))
		assert.Equal(t, tuple.NewTriple(c[0], c[1], c[2]), x, "i=%d", i)
	}
}

// TestMixed_ReleasesSources breaks out early and checks every traversal of
// the inputs has been stopped.
func TestMixed_ReleasesSources(t *testing.T) {
	live := 0
	for range enum.Pairs(tracked(-1, &live), tracked(3, &live)) {
		assert.Equal(t, 2, live)
		break
	}
	assert.Zero(t, live)

	for range enum.Septuples(tracked(2, &live), tracked(-1, &live), tracked(2, &live),
		tracked(1, &live), tracked(2, &live), tracked(-1, &live), tracked(2, &live)) {
		break
	}
	assert.Zero(t, live)

	// Exhausted finite inputs are released as soon as their end is seen.
	_ = seq.Count(enum.Pairs(tracked(4, &live), tracked(2, &live)))
	assert.Zero(t, live)
}

// TestMixed_Restartable ranges over the same sequence twice.
func TestMixed_Restartable(t *testing.T) {
	pairs := enum.Pairs(seq.Range(0, 5), seq.Range(0, 3))
	assert.Equal(t, slices.Collect(pairs), slices.Collect(pairs))

	infinite := enum.PairsSquareRootOrder(seq.Naturals(), letters("ab"))
	assert.Equal(t, take(infinite, 30), take(infinite, 30))
}
