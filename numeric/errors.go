// Package numeric: sentinel error set.
// Callers MUST branch with errors.Is; messages carry the "numeric:" prefix and
// are wrapped with the calling function's name when returned.

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeArgument is returned for n < 0; factorials are defined on the
	// naturals only.
	ErrNegativeArgument = errors.New("numeric: argument must be non-negative")

	// ErrOverflow is returned when the result does not fit the requested
	// fixed-width integer type. Use the Big* variants for exact values.
	ErrOverflow = errors.New("numeric: result overflows integer type")
)

// Function names used as error context.
const (
	MethodFactorial       = "Factorial"
	MethodSubfactorial    = "Subfactorial"
	MethodBigFactorial    = "BigFactorial"
	MethodBigSubfactorial = "BigSubfactorial"
)

// numericErrorf prefixes err with method and a formatted detail, keeping err
// matchable with errors.Is.
func numericErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
