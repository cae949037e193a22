package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmath/demux"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Demux orders accepted by --order.
const (
	OrderZCurve      = "zcurve"
	OrderLogarithmic = "log"
	OrderSquareRoot  = "sqrt"
)

func (a *app) demuxCommand() *cobra.Command {
	var (
		order   string
		arity   int
		inverse bool
	)

	cmd := &cobra.Command{
		Use:   "demux INDEX...",
		Short: "Split indices into coordinates, or with --inverse join coordinates into an index",
		Example: "  lvlmath demux 0 1 2 3 --arity 3\n" +
			"  lvlmath demux --order log --inverse 3 2",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			xs, err := parseUints(args)
			if err != nil {
				return err
			}
			a.log.Debug("demux", zap.String("order", order), zap.Int("arity", arity),
				zap.Bool("inverse", inverse), zap.Int("args", len(xs)))

			if inverse {
				i, err := muxBy(order, xs)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, i)
				return err
			}

			for _, i := range xs {
				coords, err := demuxBy(order, arity, i)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(a.out, "%d\t%s\n", i, renderCoords(coords)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&order, "order", OrderZCurve, "zcurve, log or sqrt")
	cmd.Flags().IntVar(&arity, "arity", 2, "number of coordinates (zcurve only)")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "treat the arguments as coordinates of one index")

	return cmd
}

func demuxBy(order string, arity int, i uint64) ([]uint64, error) {
	switch order {
	case OrderZCurve:
		if arity < 0 {
			return nil, fmt.Errorf("%w: arity=%d", ErrBadArgument, arity)
		}
		return demux.ZCurve(arity, i), nil
	case OrderLogarithmic:
		x, y := demux.Logarithmic(i)
		return []uint64{x, y}, nil
	case OrderSquareRoot:
		x, y := demux.SquareRoot(i)
		return []uint64{x, y}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
}

func muxBy(order string, coords []uint64) (uint64, error) {
	switch order {
	case OrderZCurve:
		return demux.ZCurveMux(coords), nil
	case OrderLogarithmic, OrderSquareRoot:
		if len(coords) != 2 {
			return 0, fmt.Errorf("%w: order %s takes 2 coordinates, got %d", ErrBadArgument, order, len(coords))
		}
		if order == OrderLogarithmic {
			return demux.LogarithmicMux(coords[0], coords[1]), nil
		}
		return demux.SquareRootMux(coords[0], coords[1]), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
}

func parseUints(args []string) ([]uint64, error) {
	out := make([]uint64, 0, len(args))
	for _, s := range args {
		x, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadArgument, s, err)
		}
		out = append(out, x)
	}

	return out, nil
}

func renderCoords(coords []uint64) string {
	return "(" + strings.Join(lo.Map(coords, func(c uint64, _ int) string {
		return strconv.FormatUint(c, 10)
	}), ", ") + ")"
}
