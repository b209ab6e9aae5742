// Package cmd wires the demos into the lambda command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/lambda/internal/config"
	"github.com/alextanhongpin/lambda/internal/demo"
	"github.com/alextanhongpin/lambda/internal/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile string
	verbose bool
}

// Execute runs the command line against the process streams. The context is
// canceled on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRoot(os.Stdout, os.Stderr)

	return root.ExecuteContext(ctx)
}

func NewRoot(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "lambda",
		Short: "Functional programming and date-time demos",
		Long: `lambda prints small demos of comparators, predicates, validators,
method values, lazy streams and calendar arithmetic.

Run "lambda list" to see the demos, "lambda <demo>" to run one and
"lambda all" to run every demo in order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the demos",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			for _, d := range demo.All() {
				fmt.Fprintf(c.OutOrStdout(), "%-12s %s\n", d.Name, d.Summary)
			}

			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every demo",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			env, err := newEnv(c, &opts)
			if err != nil {
				return report(c, err)
			}

			return report(c, demo.RunAll(c.Context(), env))
		},
	})

	for _, d := range demo.All() {
		root.AddCommand(&cobra.Command{
			Use:   d.Name,
			Short: d.Summary,
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				env, err := newEnv(c, &opts)
				if err != nil {
					return report(c, err)
				}

				return report(c, demo.Execute(c.Context(), env, d))
			},
		})
	}

	return root
}

func newEnv(c *cobra.Command, opts *options) (*demo.Env, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if opts.verbose {
		level = "debug"
	}

	log, err := logger.New(c.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	clk, err := cfg.NewClock()
	if err != nil {
		return nil, err
	}

	return &demo.Env{
		Out:      c.OutOrStdout(),
		Logger:   log,
		Clock:    clk,
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
	}, nil
}

// report prints err to stderr, prefixed with the cause name when there is
// one.
func report(c *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	var ce *cause.Error
	if errors.As(err, &ce) {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %s: %v\n", ce.Name, err)
		return err
	}
	fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n", err)

	return err
}
