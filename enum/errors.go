// Package enum: sentinel error set.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Returned errors carry the function name and the offending value, and
//     wrap the sentinel with %w.
//   - Errors are returned synchronously by the constructor. A sequence that
//     was returned without error never fails while it is being ranged over.

package enum

import (
	"errors"
	"fmt"
)

// ErrNegativeLength indicates a negative list or string length passed to an
// increasing-order enumerator (ListsIncreasing, StringsIncreasing) or a
// negative minimum length passed to a shortlex enumerator.
var ErrNegativeLength = errors.New("enum: length must be non-negative")

// ErrNegativeSize indicates a negative size or minimum size passed to a
// mixed-growth list enumerator (Lists, ListsAtLeast, Strings, StringsAtLeast).
var ErrNegativeSize = errors.New("enum: size must be non-negative")

// enumErrorf returns "<method>: <detail>: <sentinel>" wrapping err.
func enumErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
