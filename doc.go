// Package lvlmath is a small combinatorics toolkit built on Go's range-over-func
// iterators: it enumerates tuples, lists, strings and subsequences of lazy
// sequences, finite or infinite, and counts permutations and derangements.
//
// 🚀 What is inside?
//
//	seq/     lazy sequences over iter.Seq: Naturals, Range, Map, Filter, Take…
//	demux/   pairing functions: Z-curve, logarithmic and square-root splits
//	cache/   Cache, an indexable buffer over one traversal of a sequence
//	tuple/   Pair … Septuple value types
//	enum/    the enumerators, lexicographic and mixed-growth
//	numeric/ Factorial and Subfactorial, fixed-width and *big.Int
//
// ✨ Why lvlmath?
//
//   - Infinite inputs are first-class: enum.Pairs(seq.Naturals(), seq.Naturals())
//     reaches every pair of naturals after finitely many steps.
//   - Finite inputs end on their own: the mixed-growth walk stops right after
//     the tuple of last elements.
//   - Every result is a plain iter.Seq, restartable and safe to abandon with
//     break.
//
// Quick example:
//
//	for p := range enum.Pairs(seq.Of(1, 2), seq.Of("a", "b")) {
//		fmt.Println(p) // (1, a) (2, a) (1, b) (2, b)
//	}
//
// The lvlmath command (cmd/lvlmath) exposes the same enumerators on the
// command line; see examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
