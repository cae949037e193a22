package seq

import (
	"iter"
	"math"
	"strings"
)

// Empty is the (stateless) empty sequence.
func Empty[T any](func(T) bool) {}

// Of returns a sequence over the given values, in order.
// The slice is not cloned.
func Of[T any](xs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

// Naturals yields 0, 1, 2, … without bound. It is the master index driver of
// every mixed-growth enumerator. The stream ends after math.MaxUint64, which
// no consumer can reach in practice.
func Naturals() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := uint64(0); ; i++ {
			if !yield(i) || i == math.MaxUint64 {
				return
			}
		}
	}
}

// Range yields the integers in [from, to). It is empty when to <= from.
func Range(from, to int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i < to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields x forever.
func Repeat[T any](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(x) {
		}
	}
}

// Concat chains the given sequences one after another.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for x := range s {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// Map applies f to every element of s.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range s {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// Filter keeps the elements of s for which keep reports true.
// A nil predicate keeps everything.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	if keep == nil {
		return s
	}
	return func(yield func(T) bool) {
		for x := range s {
			if keep(x) && !yield(x) {
				return
			}
		}
	}
}

// TakeWhile yields elements of s until the first one rejected by keep.
func TakeWhile[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s {
			if !keep(x) || !yield(x) {
				return
			}
		}
	}
}

// Take yields at most n elements of s. Non-positive n gives the empty sequence.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	if n < 1 {
		return Empty[T]
	}
	return func(yield func(T) bool) {
		i := 0
		for x := range s {
			if !yield(x) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// IsEmpty reports whether s yields nothing. It pulls at most one element.
func IsEmpty[T any](s iter.Seq[T]) bool {
	for range s {
		return false
	}
	return true
}

// Count drains s and returns the number of elements. Never call it on an
// unbounded sequence.
func Count[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Runes turns a string into the sequence of its runes.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// String builds a string from a finite rune sequence.
func String(rs iter.Seq[rune]) string {
	var b strings.Builder
	for r := range rs {
		b.WriteRune(r)
	}
	return b.String()
}
