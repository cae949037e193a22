package cli

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmath/enum"
	"github.com/katalvlaran/lvlmath/internal/config"
	"github.com/katalvlaran/lvlmath/seq"
	"github.com/samber/lo"
)

// anySources marks a kind accepting any number of sources.
const anySources = -1

// allInfinite marks a kind accepting ℕ at every source position.
const allInfinite = math.MaxInt

// kind describes one enumerator reachable from the command line.
type kind struct {
	summary string
	// sources is the exact number of sources, or anySources.
	sources int
	// finiteFrom is the first source position that must be finite.
	finiteFrom int
	build      func(job *config.Job, srcs []iter.Seq[string]) (iter.Seq[string], error)
}

type sources = []iter.Seq[string]

var kinds = map[string]kind{
	// Mixed-growth order.
	"pairs": {"Z-curve pairs", 2, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.Pairs(s[0], s[1])), nil
	}},
	"pairs-of": {"Z-curve pairs of one source", 1, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.PairsOf(s[0])), nil
	}},
	"pairs-log": {"pairs, first coordinate linear, second logarithmic", 2, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.PairsLogarithmicOrder(s[0], s[1])), nil
	}},
	"pairs-log-of": {"logarithmic-order pairs of one source", 1, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.PairsLogarithmicOrderOf(s[0])), nil
	}},
	"pairs-sqrt": {"pairs, coordinates growing as i^(2/3) and i^(1/3)", 2, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.PairsSquareRootOrder(s[0], s[1])), nil
	}},
	"pairs-sqrt-of": {"square-root-order pairs of one source", 1, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.PairsSquareRootOrderOf(s[0])), nil
	}},
	"triples": {"Z-curve triples", 3, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.Triples(s[0], s[1], s[2])), nil
	}},
	"quadruples": {"Z-curve quadruples", 4, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.Quadruples(s[0], s[1], s[2], s[3])), nil
	}},
	"quintuples": {"Z-curve quintuples", 5, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.Quintuples(s[0], s[1], s[2], s[3], s[4])), nil
	}},
	"sextuples": {"Z-curve sextuples", 6, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.Sextuples(s[0], s[1], s[2], s[3], s[4], s[5])), nil
	}},
	"septuples": {"Z-curve septuples", 7, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.Septuples(s[0], s[1], s[2], s[3], s[4], s[5], s[6])), nil
	}},
	"lists": {"Z-curve lists of --size elements", 1, allInfinite, func(job *config.Job, s sources) (iter.Seq[string], error) {
		return renderErr(enum.Lists(job.Size, s[0]))
	}},
	"all-lists": {"lists of every length ≥ --size", 1, allInfinite, func(job *config.Job, s sources) (iter.Seq[string], error) {
		return renderErr(enum.ListsAtLeast(job.Size, s[0]))
	}},
	"subsequences": {"subsets in bitmask order", 1, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.Subsequences(s[0])), nil
	}},
	"ordered-subsequences": {"subsets in odometer order", 1, allInfinite, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.OrderedSubsequences(s[0])), nil
	}},

	// Lexicographic order; later sources are buffered whole.
	"increasing": {"lists of --size elements, lexicographic", 1, 0, func(job *config.Job, s sources) (iter.Seq[string], error) {
		return renderErr(enum.ListsIncreasing(job.Size, s[0]))
	}},
	"shortlex": {"lists of every length ≥ --size, shortlex", 1, 0, func(job *config.Job, s sources) (iter.Seq[string], error) {
		return renderErr(enum.ListsShortlexAtLeast(job.Size, s[0]))
	}},
	"pairs-increasing": {"lexicographic pairs", 2, 1, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.PairsIncreasing(s[0], s[1])), nil
	}},
	"triples-increasing": {"lexicographic triples", 3, 1, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.TriplesIncreasing(s[0], s[1], s[2])), nil
	}},
	"controlled": {"lexicographic lists, one element per source", anySources, 1, func(_ *config.Job, s sources) (iter.Seq[string], error) {
		return render(enum.ControlledListsIncreasing(s)), nil
	}},

	// Strings over the runes of the first source, joined.
	"strings": {"strings of --size runes, lexicographic", 1, 0, func(job *config.Job, _ sources) (iter.Seq[string], error) {
		return quoteErr(enum.StringsIncreasing(job.Size, alphabet(job)))
	}},
	"strings-shortlex": {"strings of every length ≥ --size, shortlex", 1, 0, func(job *config.Job, _ sources) (iter.Seq[string], error) {
		return quoteErr(enum.StringsShortlexAtLeast(job.Size, alphabet(job)))
	}},
	"strings-zcurve": {"strings of --size runes, Z-curve", 1, 0, func(job *config.Job, _ sources) (iter.Seq[string], error) {
		return quoteErr(enum.Strings(job.Size, alphabet(job)))
	}},
	"all-strings": {"strings of every length ≥ --size, mixed order", 1, 0, func(job *config.Job, _ sources) (iter.Seq[string], error) {
		return quoteErr(enum.StringsAtLeast(job.Size, alphabet(job)))
	}},
}

// kindNames lists the registered kinds in alphabetical order.
func kindNames() []string {
	names := lo.Keys(kinds)
	slices.Sort(names)
	return names
}

// build resolves job into the rendered result sequence.
func build(job *config.Job) (iter.Seq[string], error) {
	k, ok := kinds[job.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (see \"%s kinds\")", ErrUnknownKind, job.Kind, config.AppName)
	}
	if k.sources != anySources && len(job.Sources) != k.sources {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrSourceCount, job.Kind, k.sources, len(job.Sources))
	}
	if bad, found := lo.Find(job.Naturals, func(pos int) bool { return pos >= k.finiteFrom }); found {
		return nil, fmt.Errorf("%w: %s needs a finite source at position %d", config.ErrInvalidJob, job.Kind, bad)
	}

	return k.build(job, sourcesOf(job))
}

// sourcesOf turns the job's value lists into sequences, substituting ℕ at
// the positions listed in Naturals.
func sourcesOf(job *config.Job) []iter.Seq[string] {
	return lo.Map(job.Sources, func(values []string, pos int) iter.Seq[string] {
		if slices.Contains(job.Naturals, pos) {
			return seq.Map(seq.Naturals(), func(i uint64) string { return strconv.FormatUint(i, 10) })
		}
		return slices.Values(values)
	})
}

func alphabet(job *config.Job) string {
	return strings.Join(job.Sources[0], "")
}

func render[T any](s iter.Seq[T]) iter.Seq[string] {
	return seq.Map(s, func(x T) string { return fmt.Sprint(x) })
}

func renderErr[T any](s iter.Seq[T], err error) (iter.Seq[string], error) {
	if err != nil {
		return nil, err
	}
	return render(s), nil
}

func quoteErr(s iter.Seq[string], err error) (iter.Seq[string], error) {
	if err != nil {
		return nil, err
	}
	return seq.Map(s, strconv.Quote), nil
}
