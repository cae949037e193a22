// Package enum enumerates combinatorial products of lazy sequences: tuples,
// fixed-length lists, lists of every length, strings and subsequences.
//
// What
//
//   - Increasing (lexicographic) order over finite inputs:
//     ListsIncreasing, PairsIncreasing … SeptuplesIncreasing,
//     ListsShortlex(AtLeast), StringsIncreasing, StringsShortlex(AtLeast),
//     ControlledListsIncreasing.
//   - Mixed-growth order over inputs of any length, infinite included:
//     Pairs … Septuples and PairsOf (Z-curve), PairsLogarithmicOrder(Of),
//     PairsSquareRootOrder(Of), Lists, AllLists, ListsAtLeast, Strings,
//     AllStrings, StringsAtLeast.
//   - Subsets: OrderedSubsequences (odometer order) and Subsequences
//     (characteristic-bitmask order).
//
// Why
//
//	A lexicographic walk over A × B never leaves the first row when B is
//	infinite. The mixed-growth enumerators instead walk the natural numbers
//	and split each index into one coordinate per input with a demux function
//	(see package demux). Every cell of the product is reached after finitely
//	many steps, however long each input is.
//
// Mixed-growth walk
//
//	Each traversal wraps every input in a cache.Cache, then for i = 0, 1, 2, …
//	splits i into coordinates, emits the tuple if every coordinate resolves and
//	skips it otherwise. It stops right after emitting a tuple whose every
//	component is known to be the final element of its input. Because all
//	demux functions are monotone in each coordinate, that tuple has the
//	largest index of its box, so finite products are emitted completely and
//	then the walk ends. An empty input makes the whole product empty.
//
// Determinism & restartability
//
//	Output order depends only on the inputs' order. Every returned sequence
//	builds fresh caches per traversal, so ranging over it twice yields the
//	same elements, and the inputs are each traversed once per traversal.
//	Breaking out of a range loop releases every cache.
//
// Errors
//
//	Negative lengths and sizes are rejected at call time, before any element
//	is produced: ErrNegativeLength, ErrNegativeSize. Unreachable cells are
//	never errors; they are skipped.
//
// Index space
//
//	Indices are uint64. A walk covers the first 2^64 positions of the index
//	stream, which bounds the reachable coordinates: the logarithmic bucket of
//	AllLists never exceeds 63, and Lists of more than 64 components keep the
//	components past the 64th at index 0.
//
// Complexity
//
//   - Increasing enumerators: O(length) per list; every input except the
//     first is buffered once per traversal.
//   - Mixed-growth enumerators: O(N) per index visited; cache memory grows
//     with the largest coordinate reached.
package enum
