package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvlmath/internal/config"
	"github.com/katalvlaran/lvlmath/seq"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) enumCommand() *cobra.Command {
	var (
		job     config.Job
		raw     []string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "enum KIND",
		Short: "Print the first elements of an enumeration",
		Long: "Print the first --limit elements of the enumeration KIND over the given sources.\n" +
			"Each --source is one input, as comma-separated values; --naturals k replaces\n" +
			"input k (0-based) with 0, 1, 2, … Run \"lvlmath kinds\" for the list of kinds.",
		Example: "  lvlmath enum pairs --source a,b --source x,y,z\n" +
			"  lvlmath enum triples --source a,b --source '' --source x,y --naturals 1 --limit 30\n" +
			"  lvlmath enum all-lists --source 0,1 --size 1",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job.Kind = args[0]
			job.Sources = lo.Map(raw, func(s string, _ int) []string { return splitValues(s) })
			if cmd.Flags().Changed("timeout") {
				a.cfg.Enum.Timeout = timeout
			}
			return a.emit(cmd.Context(), &job)
		},
	}
	cmd.Flags().StringArrayVar(&raw, "source", nil, "one input as comma-separated values (repeatable)")
	cmd.Flags().IntSliceVar(&job.Naturals, "naturals", nil, "input positions replaced by the natural numbers")
	cmd.Flags().IntVar(&job.Size, "size", 0, "list length, or minimum length for the open-ended kinds")
	cmd.Flags().IntVar(&job.Limit, "limit", 0, "number of elements to print (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "stop printing after this long (default from config)")

	return cmd
}

func (a *app) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run JOB.json",
		Short: "Run an enumeration described by a JSON job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := config.LoadJob(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("job loaded", zap.String("path", args[0]), zap.String("kind", job.Kind))
			return a.emit(cmd.Context(), job)
		},
	}
}

func (a *app) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the enumeration kinds",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, name := range kindNames() {
				k := kinds[name]
				arity := fmt.Sprint(k.sources)
				if k.sources == anySources {
					arity = "n"
				}
				if _, err := fmt.Fprintf(a.out, "%-22s %s  %s\n", name, arity, k.summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// emit prints the first elements of job, one per line. The timeout is
// checked between elements.
func (a *app) emit(ctx context.Context, job *config.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	results, err := build(job)
	if err != nil {
		return err
	}

	if a.cfg.Enum.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Enum.Timeout)
		defer cancel()
	}

	limit := job.EffectiveLimit(a.cfg.Enum.Limit)
	log := a.log.With(zap.String("kind", job.Kind), zap.Int("sources", len(job.Sources)), zap.Int("limit", limit))
	log.Info("enumeration started")

	start, emitted := time.Now(), 0
	for x := range seq.Take(results, limit) {
		if err := ctx.Err(); err != nil {
			log.Warn("enumeration interrupted", zap.Int("emitted", emitted), zap.Error(err))
			return fmt.Errorf("%s after %d elements: %w", job.Kind, emitted, err)
		}
		if _, err := fmt.Fprintln(a.out, x); err != nil {
			return err
		}
		emitted++
	}

	log.Info("enumeration finished", zap.Int("emitted", emitted), zap.Duration("elapsed", time.Since(start)))

	return nil
}

// splitValues parses "a, b,c" into [a b c]; the empty string is an empty
// source.
func splitValues(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	return lo.Map(strings.Split(s, ","), func(v string, _ int) string { return strings.TrimSpace(v) })
}
