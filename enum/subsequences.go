package enum

import (
	"iter"

	"github.com/katalvlaran/lvlmath/cache"
	"github.com/katalvlaran/lvlmath/seq"
)

// OrderedSubsequences returns every selection of elements of xs taken at
// strictly increasing positions, empty selection first, in odometer order:
// extend the selection by the next position while one exists, otherwise drop
// the last position and advance the one before it.
//
//	OrderedSubsequences([a b c]) → [] [a] [a b] [a b c] [a c] [b] [b c] [c]
//
// An empty xs yields only the empty selection. An infinite xs yields
// [x0] [x0 x1] [x0 x1 x2] … without ever backtracking.
func OrderedSubsequences[T any](xs iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		o := newSelector(xs)
		defer o.close()

		for o.advance() {
			if !yield(o.current()) {
				return
			}
		}
	}
}

// selector is the odometer state machine behind OrderedSubsequences.
//
//	fresh ──advance──▶ running ──(stack empties on backtrack)──▶ done
//
// stack holds the selected positions, strictly increasing.
type selector[T any] struct {
	src   *cache.Cache[T]
	stack []int
	fresh bool
	done  bool
}

func newSelector[T any](xs iter.Seq[T]) *selector[T] {
	return &selector[T]{src: cache.New(xs), fresh: true}
}

// advance moves to the next selection and reports whether there is one.
func (o *selector[T]) advance() bool {
	if o.done {
		return false
	}
	if o.fresh {
		o.fresh = false
		return true
	}

	next := 0
	if n := len(o.stack); n > 0 {
		next = o.stack[n-1] + 1
	}
	if o.src.Has(next) {
		o.stack = append(o.stack, next)
		return true
	}

	// Backtrack. The new top is below the popped position, so top+1 exists.
	if n := len(o.stack); n > 0 {
		o.stack = o.stack[:n-1]
	}
	if len(o.stack) == 0 {
		o.done = true
		return false
	}
	o.stack[len(o.stack)-1]++

	return true
}

// current returns the elements at the selected positions.
func (o *selector[T]) current() []T {
	xs, _ := o.src.GetAll(o.stack)
	return xs
}

func (o *selector[T]) close() {
	o.src.Close()
}

// Subsequences returns every finite subset of positions of xs, as the list of
// elements at those positions, ordered by the subset's characteristic
// bitmask 0, 1, 2, 3, …:
//
//	Subsequences([a b c]) → [] [a] [b] [a b] [c] [a c] [b c] [a b c]
//
// The sequence stops at the first mask naming a position past the end of xs,
// so a finite xs of n elements yields exactly 2^n lists. With an infinite xs
// only subsets of the first 64 positions are reached.
func Subsequences[T any](xs iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		c := cache.New(xs)
		defer c.Close()

		for mask := range seq.Naturals() {
			sub, ok := c.Select(mask)
			if !ok || !yield(sub) {
				return
			}
		}
	}
}
