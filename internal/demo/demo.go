// Package demo holds the runnable demos printed by the lambda command.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/alextanhongpin/lambda/internal/config"
	"github.com/alextanhongpin/lambda/internal/logger"
	"github.com/alextanhongpin/lambda/types/clock"
	"github.com/prometheus/client_golang/prometheus"
)

// Env is what a demo runs against. Zero fields are filled with defaults on
// first use.
type Env struct {
	Out      io.Writer
	Logger   *slog.Logger
	Clock    clock.Clock
	Config   *config.Config
	Registry prometheus.Registerer
}

func (e *Env) init() {
	if e.Out == nil {
		e.Out = os.Stdout
	}
	if e.Logger == nil {
		e.Logger = logger.Discard()
	}
	if e.Config == nil {
		e.Config = config.Default()
	}
	if e.Clock == nil {
		e.Clock = clock.System()
	}
	if e.Registry == nil {
		e.Registry = prometheus.NewRegistry()
	}
}

// Now returns the clock reading in the configured zone.
func (e *Env) Now() time.Time {
	now := e.Clock.Now()
	if loc, err := e.Config.Location(); err == nil {
		now = now.In(loc)
	}

	return now
}

type Demo struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, env *Env) error
}

var catalog = []Demo{
	{"lambda", "Sort strings and people with comparators", Lambda},
	{"thread", "Start greeting tasks and numbered workers", Thread},
	{"methodref", "Use functions, methods and constructors as values", MethodRef},
	{"validator", "Compose validators with and/or", Validator},
	{"predicate", "Filter names with composed predicates", Predicate},
	{"collection", "Filter, upper-case and sort names", Collection},
	{"stream", "Create, transform, collect and reduce streams", Stream},
	{"people", "Query the sample people", People},
	{"file", "Extract the long words of a data file", File},
	{"datetime", "Construct, compare, format and measure dates", DateTime},
}

// Names returns the demo names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}

	return names
}

func All() []Demo {
	return slices.Clone(catalog)
}

func Lookup(name string) (Demo, error) {
	i := slices.IndexFunc(catalog, func(d Demo) bool {
		return d.Name == name
	})
	if i < 0 {
		return Demo{}, cause.New(codes.NotFound, "demo/not_found", fmt.Sprintf("Demo %q does not exist", name))
	}

	return catalog[i], nil
}

// Execute runs a single demo.
func Execute(ctx context.Context, env *Env, d Demo) error {
	env.init()

	start := time.Now()
	env.Logger.DebugContext(ctx, "demo started", slog.String("demo", d.Name))

	if err := d.Run(ctx, env); err != nil {
		env.Logger.ErrorContext(ctx, "demo failed",
			slog.String("demo", d.Name),
			slog.Any("err", err),
		)

		return err
	}

	env.Logger.DebugContext(ctx, "demo finished",
		slog.String("demo", d.Name),
		slog.Duration("took", time.Since(start)),
	)

	return nil
}

// RunAll runs every demo in order under a heading, stopping at the first
// failure.
func RunAll(ctx context.Context, env *Env) error {
	env.init()

	for i, d := range catalog {
		if i > 0 {
			fmt.Fprintln(env.Out)
		}
		fmt.Fprintf(env.Out, "== %s ==\n", d.Name)

		if err := Execute(ctx, env, d); err != nil {
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}

	return nil
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
