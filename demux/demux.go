package demux

import (
	"math"
	"math/bits"
)

// indexBits is the width of the index space.
const indexBits = 64

// ZCurve splits i into n components by de-interleaving its bits: bit k of i
// becomes bit k/n of component k mod n.
//
// ZCurve(0, i) returns an empty tuple; it is only meaningful for i == 0 and
// callers enumerating zero-length tuples must treat every other index as
// empty. A negative n is a contract violation and panics.
//
// Complexity: O(n + log i).
func ZCurve(n int, i uint64) []uint64 {
	if n < 0 {
		panic("demux: ZCurve with negative arity")
	}
	out := make([]uint64, n)
	if n == 0 {
		return out
	}
	for k := 0; i != 0; k++ {
		if i&1 == 1 {
			out[k%n] |= 1 << uint(k/n)
		}
		i >>= 1
	}
	return out
}

// ZCurveMux is the inverse of ZCurve: it interleaves the bits of xs into one
// index. len(xs) is the arity.
func ZCurveMux(xs []uint64) uint64 {
	n := len(xs)
	var i uint64
	for c, x := range xs {
		for p := 0; x != 0; p++ {
			if x&1 == 1 {
				if k := p*n + c; k < indexBits {
					i |= 1 << uint(k)
				}
			}
			x >>= 1
		}
	}
	return i
}

// Unpair is the 2-way Z-curve split: a takes the even bits of i, b the odd ones.
func Unpair(i uint64) (a, b uint64) {
	xs := ZCurve(2, i)
	return xs[0], xs[1]
}

// Pair is the inverse of Unpair.
func Pair(a, b uint64) uint64 {
	return ZCurveMux([]uint64{a, b})
}

// Logarithmic splits i into (a, b) with i+1 = 2^b·(2a+1).
// b is the number of trailing zero bits of i+1, so it grows logarithmically;
// a grows linearly.
func Logarithmic(i uint64) (a, b uint64) {
	if i == math.MaxUint64 {
		// i+1 = 2^64 does not fit; it is 2^64·(2·0+1).
		return 0, indexBits
	}
	j := i + 1
	tz := bits.TrailingZeros64(j)
	return j >> uint(tz+1), uint64(tz)
}

// LogarithmicMux is the inverse of Logarithmic: 2^b·(2a+1) − 1.
func LogarithmicMux(a, b uint64) uint64 {
	return (2*a+1)<<b - 1
}

// SquareRoot splits i into (a, b) by dealing its bits in the repeating
// pattern b,a,a: bit k goes to b when k ≡ 0 (mod 3) and to a otherwise.
// a receives two thirds of the bits and grows as O(i^(2/3)); b grows as
// O(i^(1/3)).
func SquareRoot(i uint64) (a, b uint64) {
	for k := 0; i != 0; k++ {
		if i&1 == 1 {
			group, slot := k/3, k%3
			if slot == 0 {
				b |= 1 << uint(group)
			} else {
				a |= 1 << uint(2*group+slot-1)
			}
		}
		i >>= 1
	}
	return a, b
}

// SquareRootMux is the inverse of SquareRoot.
func SquareRootMux(a, b uint64) uint64 {
	var i uint64
	for p := 0; a != 0; p++ {
		if a&1 == 1 {
			if k := 3*(p/2) + 1 + p%2; k < indexBits {
				i |= 1 << uint(k)
			}
		}
		a >>= 1
	}
	for p := 0; b != 0; p++ {
		if b&1 == 1 {
			if k := 3 * p; k < indexBits {
				i |= 1 << uint(k)
			}
		}
		b >>= 1
	}
	return i
}
