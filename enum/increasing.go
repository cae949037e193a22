package enum

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvlmath/seq"
	"github.com/katalvlaran/lvlmath/tuple"
	"github.com/samber/lo"
)

// ListsIncreasing returns every list of exactly length elements drawn from xs,
// in lexicographic order induced by the order of xs:
//
//	ListsIncreasing(2, [1 2 3]) → [1 1] [1 2] [1 3] [2 1] … [3 3]
//
// length 0 yields the single empty list, even when xs is empty. Otherwise an
// empty xs yields nothing. xs must be finite; it is buffered once per
// traversal.
//
// Errors: ErrNegativeLength if length < 0.
//
// Complexity: |xs|^length lists, O(length) work each.
func ListsIncreasing[T any](length int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateMin(MethodListsIncreasing, ErrNegativeLength, length); err != nil {
		return nil, err
	}

	return func(yield func([]T) bool) {
		odometer(length, slices.Collect(xs), yield)
	}, nil
}

// odometer yields every list of the given length over pool, rightmost
// position turning fastest. It reports false once yield has asked to stop.
func odometer[T any](length int, pool []T, yield func([]T) bool) bool {
	if length == 0 {
		return yield([]T{})
	}
	if len(pool) == 0 {
		return true
	}

	idx := make([]int, length)
	for {
		if !yield(lo.Map(idx, func(k int, _ int) T { return pool[k] })) {
			return false
		}
		p := length - 1
		for p >= 0 && idx[p] == len(pool)-1 {
			idx[p] = 0
			p--
		}
		if p < 0 {
			return true
		}
		idx[p]++
	}
}

// PairsIncreasing returns as × bs in lexicographic order: the first component
// varies slowest. as may be infinite; bs must be finite and is buffered once
// per traversal, on the first element of as.
func PairsIncreasing[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq[tuple.Pair[A, B]] {
	return func(yield func(tuple.Pair[A, B]) bool) {
		var right []B
		buffered := false
		for a := range as {
			if !buffered {
				right, buffered = slices.Collect(bs), true
			}
			if len(right) == 0 {
				return
			}
			for _, b := range right {
				if !yield(tuple.NewPair(a, b)) {
					return
				}
			}
		}
	}
}

// TriplesIncreasing returns as × bs × cs in lexicographic order. Every input
// but as must be finite.
func TriplesIncreasing[A, B, C any](as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C]) iter.Seq[tuple.Triple[A, B, C]] {
	return seq.Map(PairsIncreasing(as, PairsIncreasing(bs, cs)),
		func(p tuple.Pair[A, tuple.Pair[B, C]]) tuple.Triple[A, B, C] {
			return tuple.NewTriple(p.First, p.Second.First, p.Second.Second)
		})
}

// QuadruplesIncreasing returns the 4-way product in lexicographic order. Every
// input but as must be finite.
func QuadruplesIncreasing[A, B, C, D any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D],
) iter.Seq[tuple.Quadruple[A, B, C, D]] {
	return seq.Map(PairsIncreasing(as, TriplesIncreasing(bs, cs, ds)),
		func(p tuple.Pair[A, tuple.Triple[B, C, D]]) tuple.Quadruple[A, B, C, D] {
			t := p.Second
			return tuple.NewQuadruple(p.First, t.First, t.Second, t.Third)
		})
}

// QuintuplesIncreasing returns the 5-way product in lexicographic order.
// Every input but as must be finite.
func QuintuplesIncreasing[A, B, C, D, E any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D], es iter.Seq[E],
) iter.Seq[tuple.Quintuple[A, B, C, D, E]] {
	return seq.Map(PairsIncreasing(as, QuadruplesIncreasing(bs, cs, ds, es)),
		func(p tuple.Pair[A, tuple.Quadruple[B, C, D, E]]) tuple.Quintuple[A, B, C, D, E] {
			t := p.Second
			return tuple.NewQuintuple(p.First, t.First, t.Second, t.Third, t.Fourth)
		})
}

// SextuplesIncreasing returns the 6-way product in lexicographic order.
// Every input but as must be finite.
func SextuplesIncreasing[A, B, C, D, E, F any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D], es iter.Seq[E], fs iter.Seq[F],
) iter.Seq[tuple.Sextuple[A, B, C, D, E, F]] {
	return seq.Map(PairsIncreasing(as, QuintuplesIncreasing(bs, cs, ds, es, fs)),
		func(p tuple.Pair[A, tuple.Quintuple[B, C, D, E, F]]) tuple.Sextuple[A, B, C, D, E, F] {
			t := p.Second
			return tuple.NewSextuple(p.First, t.First, t.Second, t.Third, t.Fourth, t.Fifth)
		})
}

// SeptuplesIncreasing returns the 7-way product in lexicographic order.
// Every input but as must be finite.
func SeptuplesIncreasing[A, B, C, D, E, F, G any](
	as iter.Seq[A], bs iter.Seq[B], cs iter.Seq[C], ds iter.Seq[D], es iter.Seq[E], fs iter.Seq[F], gs iter.Seq[G],
) iter.Seq[tuple.Septuple[A, B, C, D, E, F, G]] {
	return seq.Map(PairsIncreasing(as, SextuplesIncreasing(bs, cs, ds, es, fs, gs)),
		func(p tuple.Pair[A, tuple.Sextuple[B, C, D, E, F, G]]) tuple.Septuple[A, B, C, D, E, F, G] {
			t := p.Second
			return tuple.NewSeptuple(p.First, t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth)
		})
}

// ControlledListsIncreasing returns the cross product of xss as lists, in
// lexicographic order: one element from each sequence, in sequence order.
//
// The product is built by halving: each half is enumerated recursively and
// the two are combined with PairsIncreasing, concatenating left and right
// lists. No input count needs an N-ary primitive of its own.
//
//	ControlledListsIncreasing([[1 2] [a] [x y]]) → [1 a x] [1 a y] [2 a x] [2 a y]
//
// No sequences yield the single empty list. Every sequence but the first must
// be finite.
func ControlledListsIncreasing[T any](xss []iter.Seq[T]) iter.Seq[[]T] {
	xss = slices.Clone(xss)
	switch len(xss) {
	case 0:
		return func(yield func([]T) bool) { yield([]T{}) }
	case 1:
		return seq.Map(xss[0], func(x T) []T { return []T{x} })
	}

	mid := len(xss) / 2
	halves := PairsIncreasing(ControlledListsIncreasing(xss[:mid]), ControlledListsIncreasing(xss[mid:]))

	return seq.Map(halves, func(p tuple.Pair[[]T, []T]) []T {
		return slices.Concat(p.First, p.Second)
	})
}
