package enum

import (
	"iter"

	"github.com/katalvlaran/lvlmath/cache"
	"github.com/katalvlaran/lvlmath/demux"
	"github.com/katalvlaran/lvlmath/seq"
	"github.com/samber/lo"
)

// Lists returns every list of exactly size elements of xs, in size-way
// Z-curve order over positions of xs. It is Pairs, Triples, … generalised to
// any arity, with lists in place of tuples:
//
//	Lists(2, [a b]) → [a a] [b a] [a b] [b b]
//
// size 0 yields the single empty list, even when xs is empty. For size > 0
// an empty xs yields nothing and a finite xs ends after the list made of its
// last element only.
//
// Errors: ErrNegativeSize if size < 0.
func Lists[T any](size int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateMin(MethodLists, ErrNegativeSize, size); err != nil {
		return nil, err
	}
	if size == 0 {
		return func(yield func([]T) bool) { yield([]T{}) }, nil
	}

	return func(yield func([]T) bool) {
		c := cache.New(xs)
		defer c.Close()

		srcs := lo.RepeatBy(size, func(int) indexed { return c })
		walk(zcurve(size), srcs, func(ix []int) bool {
			list, _ := c.GetAll(ix)
			return yield(list)
		})
	}, nil
}

// AllLists returns every finite list over xs, of every length, in an order
// that reaches each one after finitely many steps even when xs is infinite.
//
// Each index i of the stream is split twice: demux.Logarithmic gives a
// length bucket b and a position a, then demux.ZCurve(b, a) gives the
// positions within xs. Short lists therefore come up far more often than
// long ones. Length 0 contributes exactly one empty list, and an empty xs
// yields that empty list alone.
//
//	AllLists([a b]) → [] [a] [a a] [b] [a a a] [b a] …
func AllLists[T any](xs iter.Seq[T]) iter.Seq[[]T] {
	return allLists(MinLength, xs)
}

// ListsAtLeast is AllLists restricted to lists of at least minSize elements:
// the length bucket is offset by minSize.
//
// Errors: ErrNegativeSize if minSize < 0.
func ListsAtLeast[T any](minSize int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateMin(MethodListsAtLeast, ErrNegativeSize, minSize); err != nil {
		return nil, err
	}

	return allLists(minSize, xs), nil
}

func allLists[T any](minSize int, xs iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		c := cache.New(xs)
		defer c.Close()

		if !c.Has(0) {
			if minSize == 0 {
				yield([]T{})
			}
			return
		}

		for i := range seq.Naturals() {
			a, b := demux.Logarithmic(i)
			size := minSize + int(b)
			if size == 0 {
				if a == 0 && !yield([]T{}) {
					return
				}
				continue
			}

			ix := make([]int, size)
			if !toInts(demux.ZCurve(size, a), ix) {
				continue
			}
			list, ok := c.GetAll(ix)
			if !ok {
				continue
			}
			if !yield(list) {
				return
			}
		}
	}
}
