package enum

import (
	"iter"
	"math"

	"github.com/katalvlaran/lvlmath/cache"
	"github.com/katalvlaran/lvlmath/demux"
	"github.com/katalvlaran/lvlmath/seq"
	"github.com/katalvlaran/lvlmath/tuple"
)

// indexed is the part of cache.Cache the walk needs, independent of the
// element type.
type indexed interface {
	Has(index int) bool
	IsLast(index int) (last, known bool)
}

// splitter maps a position of the index stream to one coordinate per input.
type splitter func(i uint64) []uint64

func zcurve(n int) splitter {
	return func(i uint64) []uint64 { return demux.ZCurve(n, i) }
}

func logarithmic(i uint64) []uint64 {
	a, b := demux.Logarithmic(i)
	return []uint64{a, b}
}

func squareRoot(i uint64) []uint64 {
	a, b := demux.SquareRoot(i)
	return []uint64{a, b}
}

// walk drives the natural numbers through split and calls emit with the
// coordinates of every reachable cell. It returns when emit returns false,
// after a cell whose every coordinate is the last of its source, or at once
// when some source is empty.
//
// ix is reused between calls; emit must not retain it.
func walk(split splitter, srcs []indexed, emit func(ix []int) bool) {
	for _, s := range srcs {
		if !s.Has(0) {
			return
		}
	}

	ix := make([]int, len(srcs))
	for i := range seq.Naturals() {
		if !resolve(split(i), srcs, ix) {
			continue
		}
		if !emit(ix) || allLast(srcs, ix) {
			return
		}
	}
}

// resolve converts coords into ix and reports whether every coordinate is
// reachable in its source.
func resolve(coords []uint64, srcs []indexed, ix []int) bool {
	if !toInts(coords, ix) {
		return false
	}
	for k, s := range srcs {
		if !s.Has(ix[k]) {
			return false
		}
	}

	return true
}

// toInts copies coords into ix, reporting false if one does not fit an int.
func toInts(coords []uint64, ix []int) bool {
	for k, c := range coords {
		if c > math.MaxInt {
			return false
		}
		ix[k] = int(c)
	}

	return true
}

// allLast is the termination predicate.
func allLast(srcs []indexed, ix []int) bool {
	for k, s := range srcs {
		if last, known := s.IsLast(ix[k]); !known || !last {
			return false
		}
	}

	return true
}

// Pairs returns as × bs in Z-curve order. Either input may be infinite:
//
//	Pairs([1 2], [a b]) → (1, a) (2, a) (1, b) (2, b)
//	Pairs(ℕ, ℕ)         → (0, 0) (1, 0) (0, 1) (1, 1) (2, 0) (3, 0) (2, 1) …
//
// Every pair appears exactly once; the sequence ends after the pair of the
// two last elements when both inputs are finite, and is empty when either is
// empty.
func Pairs[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq[tuple.Pair[A, B]] {
	return pairsBy(zcurve(2), as, bs)
}

// PairsOf returns xs × xs in Z-curve order.
func PairsOf[T any](xs iter.Seq[T]) iter.Seq[tuple.Pair[T, T]] {
	return pairsOfBy(zcurve(2), xs)
}

// PairsLogarithmicOrder returns as × bs with the first coordinate growing
// linearly and the second logarithmically along the index stream (see
// demux.Logarithmic). Suited to a long or infinite as paired with a short bs;
// positions of bs past 63 are never reached.
func PairsLogarithmicOrder[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq[tuple.Pair[A, B]] {
	return pairsBy(logarithmic, as, bs)
}

// PairsLogarithmicOrderOf returns xs × xs in logarithmic order.
func PairsLogarithmicOrderOf[T any](xs iter.Seq[T]) iter.Seq[tuple.Pair[T, T]] {
	return pairsOfBy(logarithmic, xs)
}

// PairsSquareRootOrder returns as × bs with the first coordinate growing as
// the 2/3 power and the second as the 1/3 power of the index (see
// demux.SquareRoot).
func PairsSquareRootOrder[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq[tuple.Pair[A, B]] {
	return pairsBy(squareRoot, as, bs)
}

// PairsSquareRootOrderOf returns xs × xs in square-root order.
func PairsSquareRootOrderOf[T any](xs iter.Seq[T]) iter.Seq[tuple.Pair[T, T]] {
	return pairsOfBy(squareRoot, xs)
}

func pairsBy[A, B any](split splitter, as iter.Seq[A], bs iter.Seq[B]) iter.Seq[tuple.Pair[A, B]] {
	return func(yield func(tuple.Pair[A, B]) bool) {
		ca, cb := cache.New(as), cache.New(bs)
		defer ca.Close()
		defer cb.Close()

		walk(split, []indexed{ca, cb}, func(ix []int) bool {
			a, _ := ca.Get(ix[0])
			b, _ := cb.Get(ix[1])
			return yield(tuple.NewPair(a, b))
		})
	}
}

func pairsOfBy[T any](split splitter, xs iter.Seq[T]) iter.Seq[tuple.Pair[T, T]] {
	return func(yield func(tuple.Pair[T, T]) bool) {
		c := cache.New(xs)
		defer c.Close()

		walk(split, []indexed{c, c}, func(ix []int) bool {
			a, _ := c.Get(ix[0])
			b, _ := c.Get(ix[1])
			return yield(tuple.NewPair(a, b))
		})
	}
}

// Triples returns as × bs × cs in 3-way Z-curve order. Inputs may be finite
// or infinite in any mix; the sequence ends after the triple of last
// elements when all are finite.
func Triples[A, B, C any](as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C]) iter.Seq[tuple.Triple[A, B, C]] {
	return func(yield func(tuple.Triple[A, B, C]) bool) {
		ca, cb, cc := cache.New(as), cache.New(bs), cache.New(cs)
		defer ca.Close()
		defer cb.Close()
		defer cc.Close()

		walk(zcurve(3), []indexed{ca, cb, cc}, func(ix []int) bool {
			a, _ := ca.Get(ix[0])
			b, _ := cb.Get(ix[1])
			c, _ := cc.Get(ix[2])
			return yield(tuple.NewTriple(a, b, c))
		})
	}
}

// Quadruples is the 4-way Z-curve product.
func Quadruples[A, B, C, D any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D],
) iter.Seq[tuple.Quadruple[A, B, C, D]] {
	return func(yield func(tuple.Quadruple[A, B, C, D]) bool) {
		ca, cb, cc, cd := cache.New(as), cache.New(bs), cache.New(cs), cache.New(ds)
		defer ca.Close()
		defer cb.Close()
		defer cc.Close()
		defer cd.Close()

		walk(zcurve(4), []indexed{ca, cb, cc, cd}, func(ix []int) bool {
			a, _ := ca.Get(ix[0])
			b, _ := cb.Get(ix[1])
			c, _ := cc.Get(ix[2])
			d, _ := cd.Get(ix[3])
			return yield(tuple.NewQuadruple(a, b, c, d))
		})
	}
}

// Quintuples is the 5-way Z-curve product.
func Quintuples[A, B, C, D, E any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D], es iter.Seq[E],
) iter.Seq[tuple.Quintuple[A, B, C, D, E]] {
	return func(yield func(tuple.Quintuple[A, B, C, D, E]) bool) {
		ca, cb, cc, cd, ce := cache.New(as), cache.New(bs), cache.New(cs), cache.New(ds), cache.New(es)
		defer ca.Close()
		defer cb.Close()
		defer cc.Close()
		defer cd.Close()
		defer ce.Close()

		walk(zcurve(5), []indexed{ca, cb, cc, cd, ce}, func(ix []int) bool {
			a, _ := ca.Get(ix[0])
			b, _ := cb.Get(ix[1])
			c, _ := cc.Get(ix[2])
			d, _ := cd.Get(ix[3])
			e, _ := ce.Get(ix[4])
			return yield(tuple.NewQuintuple(a, b, c, d, e))
		})
	}
}

// Sextuples is the 6-way Z-curve product.
func Sextuples[A, B, C, D, E, F any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D], es iter.Seq[E], fs iter.Seq[F],
) iter.Seq[tuple.Sextuple[A, B, C, D, E, F]] {
	return func(yield func(tuple.Sextuple[A, B, C, D, E, F]) bool) {
		ca, cb, cc, cd, ce, cf := cache.New(as), cache.New(bs), cache.New(cs), cache.New(ds), cache.New(es), cache.New(fs)
		defer ca.Close()
		defer cb.Close()
		defer cc.Close()
		defer cd.Close()
		defer ce.Close()
		defer cf.Close()

		walk(zcurve(6), []indexed{ca, cb, cc, cd, ce, cf}, func(ix []int) bool {
			a, _ := ca.Get(ix[0])
			b, _ := cb.Get(ix[1])
			c, _ := cc.Get(ix[2])
			d, _ := cd.Get(ix[3])
			e, _ := ce.Get(ix[4])
			f, _ := cf.Get(ix[5])
			return yield(tuple.NewSextuple(a, b, c, d, e, f))
		})
	}
}

// Septuples is the 7-way Z-curve product.
func Septuples[A, B, C, D, E, F, G any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D], es iter.Seq[E], fs iter.Seq[F], gs iter.Seq[G],
) iter.Seq[tuple.Septuple[A, B, C, D, E, F, G]] {
	return func(yield func(tuple.Septuple[A, B, C, D, E, F, G]) bool) {
		ca, cb, cc, cd := cache.New(as), cache.New(bs), cache.New(cs), cache.New(ds)
		ce, cf, cg := cache.New(es), cache.New(fs), cache.New(gs)
		defer ca.Close()
		defer cb.Close()
		defer cc.Close()
		defer cd.Close()
		defer ce.Close()
		defer cf.Close()
		defer cg.Close()

		walk(zcurve(7), []indexed{ca, cb, cc, cd, ce, cf, cg}, func(ix []int) bool {
			a, _ := ca.Get(ix[0])
			b, _ := cb.Get(ix[1])
			c, _ := cc.Get(ix[2])
			d, _ := cd.Get(ix[3])
			e, _ := ce.Get(ix[4])
			f, _ := cf.Get(ix[5])
			g, _ := cg.Get(ix[6])
			return yield(tuple.NewSeptuple(a, b, c, d, e, f, g))
		})
	}
}
