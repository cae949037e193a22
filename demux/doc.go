// Package demux provides bijective mappings between a single natural-number
// index and a tuple of natural numbers ("unpairing" / demultiplexing), and the
// inverse multiplexing functions.
//
// 🚀 Why demux?
//
//	An enumerator that must visit every cell of A×B (or A×B×C…) where some of
//	the factors are infinite cannot nest loops: the inner loop would never end.
//	Instead it walks the naturals 0,1,2,… and splits each index into one
//	coordinate per factor. Because the split is a bijection, every cell is
//	visited exactly once and every cell is eventually visited.
//
// ✨ Orderings:
//
//   - Z-curve (Morton):  ZCurve(n, i) deals the bits of i round-robin to n
//     components. All components grow as O(i^(1/n)).
//
//     i = …b5 b4 b3 b2 b1 b0,  n = 2  ⇒  x = …b4 b2 b0,  y = …b5 b3 b1
//
//   - Logarithmic:  Logarithmic(i) = (a, b) with i+1 = 2^b·(2a+1).
//     a grows linearly, b logarithmically.
//
//   - Square-root:  SquareRoot(i) deals bits in the pattern b,a,a,b,a,a,…
//     a grows as O(i^(2/3)), b as O(i^(1/3)).
//
// Every ordering is monotone in each coordinate: raising any coordinate of a
// tuple raises its index. Enumerators rely on this to know that the last cell
// of a finite product is also the last one visited.
//
// Domain: indices are uint64. Mux functions are exact on the image of the
// matching demux; tuples outside that image wrap.
package demux
