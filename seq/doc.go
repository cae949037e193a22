// Package seq is the lazy-sequence toolkit the enumerators are built on.
//
// A lazy sequence is a plain iter.Seq[T]. It produces elements on demand, may
// be empty or unbounded, and is restartable: ranging over it twice starts over
// from the first element. Every constructor here returns such a sequence, so
// the results compose freely with the standard library (slices.Values,
// slices.Collect, maps.Keys, …).
//
// What lives here:
//
//   - Sources:      Naturals, Range, Of, Empty, Repeat, Runes
//   - Combinators:  Concat, Map, Filter, TakeWhile, Take
//   - Consumers:    IsEmpty, Count, String
//
// Guarantees:
//
//   - Stateless in, stateless out: if the inputs are restartable, so are the
//     outputs.
//   - No combinator ranges over its input more than once per traversal.
//   - Early exit is honoured everywhere: a consumer that breaks out of a range
//     loop stops the whole pipeline immediately.
//
// Complexity: every combinator adds O(1) work per element pulled.
package seq
