package cli

import "errors"

var (
	// ErrUnknownKind is returned for an enumerator name not listed by "kinds".
	ErrUnknownKind = errors.New("cli: unknown enumeration kind")
	// ErrSourceCount is returned when a kind gets the wrong number of inputs.
	ErrSourceCount = errors.New("cli: wrong number of sources")
	// ErrUnknownOrder is returned for a demux order other than zcurve, log or sqrt.
	ErrUnknownOrder = errors.New("cli: unknown demux order")
	// ErrBadArgument is returned when a positional argument does not parse.
	ErrBadArgument = errors.New("cli: bad argument")
)
