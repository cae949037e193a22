package enum

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvlmath/seq"
)

// StringsIncreasing returns every string of exactly length runes over
// alphabet, in lexicographic order of the alphabet's rune order (not Unicode
// order):
//
//	StringsIncreasing(2, "ba") → "bb" "ba" "ab" "aa"
//
// Alphabets of zero or one rune are answered without enumerating.
//
// Errors: ErrNegativeLength if length < 0.
func StringsIncreasing(length int, alphabet string) (iter.Seq[string], error) {
	if err := validateMin(MethodStringsIncreasing, ErrNegativeLength, length); err != nil {
		return nil, err
	}

	switch utf8.RuneCountInString(alphabet) {
	case 0:
		if length == 0 {
			return seq.Of(""), nil
		}
		return seq.Empty[string], nil
	case 1:
		return seq.Of(strings.Repeat(alphabet, length)), nil
	}

	lists, err := ListsIncreasing(length, seq.Runes(alphabet))
	if err != nil {
		return nil, err
	}

	return seq.Map(lists, runesToString), nil
}

// StringsShortlex returns every finite string over alphabet in shortlex
// order, starting with "". An empty alphabet yields "" alone.
func StringsShortlex(alphabet string) iter.Seq[string] {
	return stringsShortlex(MinLength, alphabet)
}

// StringsShortlexAtLeast is StringsShortlex starting from strings of minSize
// runes.
//
// Errors: ErrNegativeLength if minSize < 0.
func StringsShortlexAtLeast(minSize int, alphabet string) (iter.Seq[string], error) {
	if err := validateMin(MethodStringsShortlexAtLeast, ErrNegativeLength, minSize); err != nil {
		return nil, err
	}

	return stringsShortlex(minSize, alphabet), nil
}

func stringsShortlex(from int, alphabet string) iter.Seq[string] {
	switch utf8.RuneCountInString(alphabet) {
	case 0:
		if from == 0 {
			return seq.Of("")
		}
		return seq.Empty[string]
	case 1:
		return func(yield func(string) bool) {
			for n := from; yield(strings.Repeat(alphabet, n)); n++ {
			}
		}
	}

	return seq.Map(shortlex(from, seq.Runes(alphabet)), runesToString)
}

// Strings returns the strings of exactly size runes over alphabet in Z-curve
// order (see Lists). A repeated rune in alphabet repeats strings too.
//
// Errors: ErrNegativeSize if size < 0.
func Strings(size int, alphabet string) (iter.Seq[string], error) {
	if err := validateMin(MethodStrings, ErrNegativeSize, size); err != nil {
		return nil, err
	}
	lists, err := Lists(size, seq.Runes(alphabet))
	if err != nil {
		return nil, err
	}

	return seq.Map(lists, runesToString), nil
}

// AllStrings returns the strings of every length over alphabet, in the mixed
// order of AllLists. An empty alphabet yields "" alone.
func AllStrings(alphabet string) iter.Seq[string] {
	return seq.Map(AllLists(seq.Runes(alphabet)), runesToString)
}

// StringsAtLeast is AllStrings restricted to strings of at least minSize
// runes.
//
// Errors: ErrNegativeSize if minSize < 0.
func StringsAtLeast(minSize int, alphabet string) (iter.Seq[string], error) {
	if err := validateMin(MethodStringsAtLeast, ErrNegativeSize, minSize); err != nil {
		return nil, err
	}
	lists, err := ListsAtLeast(minSize, seq.Runes(alphabet))
	if err != nil {
		return nil, err
	}

	return seq.Map(lists, runesToString), nil
}

func runesToString(rs []rune) string {
	return seq.String(slices.Values(rs))
}
