// Package numeric provides the counting functions that accompany the
// enumerators: factorial (n!) and subfactorial (!n, the rencontres number
// counting derangements of n elements).
//
// Each comes in two flavours:
//
//   - generic over any fixed-width integer type (constraints.Integer), failing
//     with ErrOverflow when the exact value does not fit;
//   - arbitrary precision (*big.Int), exact for every n ≥ 0.
//
// Negative n is a domain error (ErrNegativeArgument) in every flavour.
package numeric

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// Factorial returns n! = 1·2·…·n, with 0! = 1.
//
// Errors:
//   - ErrNegativeArgument if n < 0.
//   - ErrOverflow if n! does not fit in N (e.g. n > 20 for int64).
//
// Complexity: O(n) multiplications.
func Factorial[N constraints.Integer](n N) (N, error) {
	if n < 0 {
		return 0, numericErrorf(MethodFactorial, ErrNegativeArgument, "n=%d", n)
	}
	var r N = 1
	for k := N(2); k <= n; k++ {
		p, ok := mulChecked(r, k)
		if !ok {
			return 0, numericErrorf(MethodFactorial, ErrOverflow, "n=%d", n)
		}
		r = p
	}
	return r, nil
}

// Subfactorial returns !n, the number of permutations of n elements with no
// fixed point, from the recurrence !0 = 1, !n = n·!(n−1) + (−1)^n.
//
//	n  : 0 1 2 3 4  5   6
//	!n : 1 0 1 2 9 44 265
//
// Errors:
//   - ErrNegativeArgument if n < 0.
//   - ErrOverflow if !n does not fit in N.
func Subfactorial[N constraints.Integer](n N) (N, error) {
	if n < 0 {
		return 0, numericErrorf(MethodSubfactorial, ErrNegativeArgument, "n=%d", n)
	}
	var d N = 1
	for k := N(1); k <= n; k++ {
		p, ok := mulChecked(k, d)
		if !ok {
			return 0, numericErrorf(MethodSubfactorial, ErrOverflow, "n=%d", n)
		}
		if k%2 == 1 {
			d = p - 1
			continue
		}
		if p+1 < p {
			return 0, numericErrorf(MethodSubfactorial, ErrOverflow, "n=%d", n)
		}
		d = p + 1
	}
	return d, nil
}

// BigFactorial returns n! exactly.
func BigFactorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, numericErrorf(MethodBigFactorial, ErrNegativeArgument, "n=%d", n)
	}
	// MulRange(1, 0) is 1, which covers 0!.
	return new(big.Int).MulRange(1, int64(n)), nil
}

// BigSubfactorial returns !n exactly.
func BigSubfactorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, numericErrorf(MethodBigSubfactorial, ErrNegativeArgument, "n=%d", n)
	}
	d := big.NewInt(1)
	one := big.NewInt(1)
	k := new(big.Int)
	for i := 1; i <= n; i++ {
		d.Mul(d, k.SetInt64(int64(i)))
		if i%2 == 1 {
			d.Sub(d, one)
		} else {
			d.Add(d, one)
		}
	}
	return d, nil
}

// mulChecked multiplies two non-negative values, reporting false on overflow.
func mulChecked[N constraints.Integer](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || p < 0 {
		return 0, false
	}
	return p, true
}
