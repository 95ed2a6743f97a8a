package cinta

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/aretw0/cinta/internal/runtime"
	"github.com/aretw0/cinta/pkg/domain"
	"github.com/aretw0/cinta/pkg/ports"
)

// NoStepLimit disables the step-limit safety valve.
const NoStepLimit = runtime.NoStepLimit

// Engine is the high-level entry point for the cinta library.
// It wraps the internal runtime and provides a simplified API for consumers:
// construct once from a validated Definition, then run any number of inputs.
type Engine struct {
	def      *domain.Definition
	machine  *runtime.Machine
	logger   *slog.Logger
	store    ports.RunStore
	hooks    domain.LifecycleHooks
	maxSteps int
	seq      atomic.Int64
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxSteps bounds every run to at most n applied transitions.
// The default is NoStepLimit (unbounded).
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithStore persists every RunResult to the given store.
func WithStore(store ports.RunStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithName overrides the engine name (defaults to the definition name).
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes an Engine around a validated Definition.
func New(def *domain.Definition, opts ...Option) (*Engine, error) {
	if def == nil {
		return nil, fmt.Errorf("definition is required")
	}

	eng := &Engine{
		def:      def,
		maxSteps: NoStepLimit,
		Name:     def.Name(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.Name == "" {
		eng.Name = "machine"
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("machine", eng.Name)

	eng.machine = runtime.NewMachine(def, runtime.WithLogger(eng.logger))
	return eng, nil
}

// Definition returns the underlying machine definition.
func (e *Engine) Definition() *domain.Definition {
	return e.def
}

// Run executes the machine on one input string, fires lifecycle hooks, and
// persists the result when a store is configured. The context applies to
// persistence only: execution itself has no suspension points.
func (e *Engine) Run(ctx context.Context, input string) (*domain.RunResult, error) {
	return e.RunWithLimit(ctx, input, e.maxSteps)
}

// RunWithLimit is Run with a per-call step limit overriding the engine's.
func (e *Engine) RunWithLimit(ctx context.Context, input string, maxSteps int) (*domain.RunResult, error) {
	if e.hooks.OnRunStart != nil {
		e.hooks.OnRunStart(input)
	}

	result, err := e.machine.Run(input, maxSteps)
	if err != nil {
		return nil, err
	}

	if e.hooks.OnRunComplete != nil {
		e.hooks.OnRunComplete(result)
	}

	if e.store != nil {
		runID := fmt.Sprintf("%s-%d", e.Name, e.seq.Add(1))
		if err := e.store.Save(ctx, runID, result); err != nil {
			return nil, fmt.Errorf("failed to persist run %s: %w", runID, err)
		}
	}
	return result, nil
}

// RunBatch executes every input independently and returns results in input
// order. Runs share nothing but the read-only Definition, so they are fanned
// out over a small worker pool.
func (e *Engine) RunBatch(ctx context.Context, inputs []string) ([]*domain.RunResult, error) {
	results := make([]*domain.RunResult, len(inputs))
	errs := make([]error, len(inputs))

	const maxWorkers = 4
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, input := range inputs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, input string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = e.Run(ctx, input)
		}(i, input)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
