// Package workers starts greeting tasks and numbered workers as goroutines.
package workers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alextanhongpin/lambda/types/fn"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

type Metrics struct {
	Started  prometheus.Counter
	Finished prometheus.Counter
}

// NewMetrics registers the worker counters on reg. Counters that are already
// registered are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	started, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "workers_started_total",
		Help: "Number of workers started.",
	}))
	if err != nil {
		return nil, err
	}

	finished, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "workers_finished_total",
		Help: "Number of workers that ran to completion.",
	}))
	if err != nil {
		return nil, err
	}

	return &Metrics{Started: started, Finished: finished}, nil
}

func register(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	err := reg.Register(c)

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

type Pool struct {
	Logger  *slog.Logger
	Metrics *Metrics
	Sleep   time.Duration

	out *syncWriter
}

func New(w io.Writer, m *Metrics) *Pool {
	return &Pool{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: m,
		Sleep:   time.Second,
		out:     &syncWriter{w: w},
	}
}

type greeter struct {
	out *syncWriter
}

func (g greeter) Run() {
	g.out.Println("Created the classic way!")
}

// Greet runs the three greeting tasks concurrently and waits for them.
func (p *Pool) Greet() {
	tasks := []fn.Runner{
		greeter{out: p.out},
		fn.Runnable(func() {
			p.out.Println("Created with a closure!")
		}),
		fn.Runnable(func() { p.out.Println("Even shorter!") }),
	}

	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task.Run()
		}()
	}
	wg.Wait()
}

// Run starts n workers that each report, sleep and report again. It waits
// for all of them and returns ctx.Err() if the sleep is interrupted.
func (p *Pool) Run(ctx context.Context, n int) error {
	runID := uuid.NewString()
	logger := p.Logger.With(slog.String("run_id", runID))
	logger.InfoContext(ctx, "workers starting", slog.Int("workers", n))

	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			return p.work(ctx, logger, i)
		})
	}

	if err := g.Wait(); err != nil {
		logger.WarnContext(ctx, "workers interrupted", slog.Any("err", err))
		return err
	}
	logger.InfoContext(ctx, "workers finished", slog.Int("workers", n))

	return nil
}

func (p *Pool) work(ctx context.Context, logger *slog.Logger, i int) error {
	if p.Metrics != nil {
		p.Metrics.Started.Inc()
	}
	p.out.Printf("Worker %d started\n", i)
	logger.DebugContext(ctx, "worker started", slog.Int("worker", i))

	t := time.NewTimer(p.Sleep)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	p.out.Printf("Worker %d finished\n", i)
	if p.Metrics != nil {
		p.Metrics.Finished.Inc()
	}

	return nil
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Println(msg string) {
	s.Printf("%s\n", msg)
}

func (s *syncWriter) Printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, format, args...)
}
