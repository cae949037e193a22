// Package cli implements the lvlmath command tree.
//
//	lvlmath factorial N [--sub] [--big]
//	lvlmath demux INDEX... [--order zcurve|log|sqrt] [--arity n] [--inverse]
//	lvlmath enum KIND [--source a,b,c]... [--naturals k]... [--size n] [--limit k]
//	lvlmath run JOB.json
//	lvlmath kinds
//
// Every command writes results to the configured output, one per line, and
// logs through zap on stderr.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlmath/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out     io.Writer
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCommand builds the command tree writing results to out. A nil
// logger is replaced, once the configuration is loaded, by one built from it.
func NewRootCommand(out io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{out: out, log: logger}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Combinatorial enumeration toolkit",
		Long:          "lvlmath enumerates tuples, lists, strings and subsequences of finite\nor infinite inputs, and evaluates factorials and pairing functions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")

	root.AddCommand(
		a.factorialCommand(),
		a.demuxCommand(),
		a.enumCommand(),
		a.runCommand(),
		a.kindsCommand(),
	)

	return root
}

// init loads the configuration and, if needed, the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		logger, err := NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		a.log = logger
	}

	return nil
}

// Execute runs the command tree on os.Args and reports failures once.
func Execute(ctx context.Context) int {
	root := NewRootCommand(os.Stdout, nil)
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	logger, logErr := NewLogger(config.DefaultConfig().Log)
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	if cmd == nil {
		cmd = root
	}
	logger.Error("command failed", zap.String("command", cmd.CommandPath()), zap.Error(err))

	return 1
}
