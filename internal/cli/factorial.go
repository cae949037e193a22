package cli

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlmath/numeric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) factorialCommand() *cobra.Command {
	var sub, exact bool

	cmd := &cobra.Command{
		Use:   "factorial N",
		Short: "Print n! or, with --sub, the subfactorial !n",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: N=%q: %w", ErrBadArgument, args[0], err)
			}
			a.log.Debug("factorial", zap.Int("n", n), zap.Bool("sub", sub), zap.Bool("big", exact))

			result, err := factorialOf(n, sub, exact)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, result)
			return err
		},
	}
	cmd.Flags().BoolVar(&sub, "sub", false, "subfactorial (number of derangements)")
	cmd.Flags().BoolVar(&exact, "big", false, "arbitrary precision instead of int64")

	return cmd
}

func factorialOf(n int, sub, exact bool) (string, error) {
	if exact {
		f := numeric.BigFactorial
		if sub {
			f = numeric.BigSubfactorial
		}
		v, err := f(n)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}

	f := numeric.Factorial[int64]
	if sub {
		f = numeric.Subfactorial[int64]
	}
	v, err := f(int64(n))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(v, 10), nil
}
