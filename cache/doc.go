// Package cache provides Cache, an indexable, append-only buffer over a lazy
// sequence whose length is unknown and possibly infinite.
//
// What it answers:
//
//   - Get(i)       : the i-th element, pulling from the source as needed.
//   - GetAll(is)   : a batch of elements, absent if any index is unreachable.
//   - Select(mask) : the elements at the set bit positions of mask.
//   - IsLast(i)    : whether element i is the final one, once that is known.
//   - Size()       : how many elements have been pulled so far.
//
// State machine:
//
//	NOT_EXHAUSTED ──(a pull yields nothing)──▶ EXHAUSTED
//
// The transition is one-way. While NOT_EXHAUSTED, IsLast reports "unknown".
//
// Lookahead: every successful Get(i) also tries to pull element i+1, the way a
// hasNext() check would. The final element of a finite source is therefore
// recognised as final the moment it is fetched, which is what the
// enumerators' termination test needs.
//
// Invariants:
//
//   - buffer[i] is the i-th element of the source once pulled; it is never
//     evicted or rewritten.
//   - The source is ranged over at most once per Cache, through iter.Pull.
//   - Indices may be queried in any order (Z-curve walks are non-monotone).
//
// Concurrency: a Cache mutates on read and is NOT safe for concurrent use.
//
// Lifecycle: call Close when done to release the pull cursor. Enumerators
// create one Cache per traversal and defer Close, so abandoning a range loop
// early leaks nothing.
package cache
