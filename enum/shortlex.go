package enum

import (
	"iter"
	"slices"
)

// ListsShortlex returns every finite list over xs in shortlex order: by
// length 0, 1, 2, …, and lexicographically within one length.
//
//	ListsShortlex([a b]) → [] [a] [b] [a a] [a b] [b a] [b b] [a a a] …
//
// An empty xs yields exactly the empty list; any other xs gives an unbounded
// sequence. xs must be finite and is buffered once per traversal.
func ListsShortlex[T any](xs iter.Seq[T]) iter.Seq[[]T] {
	return shortlex(MinLength, xs)
}

// ListsShortlexAtLeast is ListsShortlex starting from lists of length
// minSize. With an empty xs it yields the empty list if minSize is 0 and
// nothing otherwise.
//
// Errors: ErrNegativeLength if minSize < 0.
func ListsShortlexAtLeast[T any](minSize int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateMin(MethodListsShortlexAtLeast, ErrNegativeLength, minSize); err != nil {
		return nil, err
	}

	return shortlex(minSize, xs), nil
}

func shortlex[T any](from int, xs iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := slices.Collect(xs)
		if len(pool) == 0 {
			if from == 0 {
				yield([]T{})
			}
			return
		}
		for length := from; ; length++ {
			if !odometer(length, pool, yield) {
				return
			}
		}
	}
}
