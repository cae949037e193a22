// Package tuple defines small immutable fixed-arity records, Pair through
// Septuple, used as the element type of the tuple enumerators.
//
// Tuples are plain value structs: == is structural equality whenever every
// component type is comparable, and any component may hold a zero/nil value.
// String renders "(a, b, …)" with fmt's %v for each component.
package tuple

import (
	"cmp"
	"fmt"
	"strings"
)

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quadruple is a 4-tuple.
type Quadruple[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Quintuple is a 5-tuple.
type Quintuple[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

// Sextuple is a 6-tuple.
type Sextuple[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

// Septuple is a 7-tuple.
type Septuple[A, B, C, D, E, F, G any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
}

// NewPair creates a Pair.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{a, b}
}

// NewTriple creates a Triple.
func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{a, b, c}
}

// NewQuadruple creates a Quadruple.
func NewQuadruple[A, B, C, D any](a A, b B, c C, d D) Quadruple[A, B, C, D] {
	return Quadruple[A, B, C, D]{a, b, c, d}
}

// NewQuintuple creates a Quintuple.
func NewQuintuple[A, B, C, D, E any](a A, b B, c C, d D, e E) Quintuple[A, B, C, D, E] {
	return Quintuple[A, B, C, D, E]{a, b, c, d, e}
}

// NewSextuple creates a Sextuple.
func NewSextuple[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) Sextuple[A, B, C, D, E, F] {
	return Sextuple[A, B, C, D, E, F]{a, b, c, d, e, f}
}

// NewSeptuple creates a Septuple.
func NewSeptuple[A, B, C, D, E, F, G any](a A, b B, c C, d D, e E, f F, g G) Septuple[A, B, C, D, E, F, G] {
	return Septuple[A, B, C, D, E, F, G]{a, b, c, d, e, f, g}
}

// Swap returns (Second, First).
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Second, p.First}
}

func (p Pair[A, B]) String() string { return render(p.First, p.Second) }

func (t Triple[A, B, C]) String() string { return render(t.First, t.Second, t.Third) }

func (t Quadruple[A, B, C, D]) String() string {
	return render(t.First, t.Second, t.Third, t.Fourth)
}

func (t Quintuple[A, B, C, D, E]) String() string {
	return render(t.First, t.Second, t.Third, t.Fourth, t.Fifth)
}

func (t Sextuple[A, B, C, D, E, F]) String() string {
	return render(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth)
}

func (t Septuple[A, B, C, D, E, F, G]) String() string {
	return render(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh)
}

// ComparePairs orders pairs lexicographically: by First, then by Second.
func ComparePairs[A, B cmp.Ordered](p, q Pair[A, B]) int {
	if c := cmp.Compare(p.First, q.First); c != 0 {
		return c
	}
	return cmp.Compare(p.Second, q.Second)
}

// CompareTriples orders triples lexicographically.
func CompareTriples[A, B, C cmp.Ordered](p, q Triple[A, B, C]) int {
	if c := cmp.Compare(p.First, q.First); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Second, q.Second); c != 0 {
		return c
	}
	return cmp.Compare(p.Third, q.Third)
}

func render(xs ...any) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(')')
	return b.String()
}
