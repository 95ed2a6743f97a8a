// Package http exposes a machine engine over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/cinta/internal/dto"
	"github.com/aretw0/cinta/internal/presentation/graph"
	"github.com/aretw0/cinta/internal/runtime"
	"github.com/aretw0/cinta/pkg/domain"
	"github.com/aretw0/cinta/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the interface for the simulator core the server drives.
type Engine interface {
	Run(ctx context.Context, input string) (*domain.RunResult, error)
	RunWithLimit(ctx context.Context, input string, maxSteps int) (*domain.RunResult, error)
	Definition() *domain.Definition
}

// Server handles the HTTP surface of a machine engine.
type Server struct {
	engine  Engine
	store   ports.RunStore
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures the Server.
type Option func(*Server)

// WithStore enables the /runs listing and lookup endpoints.
func WithStore(store ports.RunStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// runRequest is the POST /runs payload. A nil MaxSteps uses the engine's
// configured limit. An inline Definition runs a one-shot machine instead of
// the server's engine (never persisted).
type runRequest struct {
	Input      string         `json:"input"`
	MaxSteps   *int           `json:"max_steps,omitempty"`
	Definition map[string]any `json:"definition,omitempty"`
}

// NewHandler builds the router for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(server)
	}

	registry := prometheus.NewRegistry()
	server.metrics = NewMetrics(registry)

	r := chi.NewRouter()
	r.Post("/runs", server.createRun)
	r.Get("/runs", server.listRuns)
	r.Get("/runs/{id}", server.getRun)
	r.Get("/definition", server.getDefinition)
	r.Get("/graph", server.getGraph)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) createRun(w http.ResponseWriter, r *http.Request) {
	var body runRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("createRun: invalid request body", "error", err)
		return
	}

	var (
		result *domain.RunResult
		err    error
	)

	if body.Definition != nil {
		result, err = s.runInline(&body)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid definition: %v", err), http.StatusBadRequest)
			s.logger.Warn("createRun: inline definition rejected", "error", err)
			return
		}
	} else if body.MaxSteps != nil {
		result, err = s.engine.RunWithLimit(r.Context(), body.Input, *body.MaxSteps)
	} else {
		result, err = s.engine.Run(r.Context(), body.Input)
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusInternalServerError)
		s.logger.Error("createRun failed", "error", err)
		return
	}

	s.metrics.Observe(result)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.logger.Error("createRun response encode failed", "error", err)
	}
}

// runInline builds a one-shot machine from the request's inline definition.
func (s *Server) runInline(body *runRequest) (*domain.RunResult, error) {
	spec, err := dto.DecodeMachine(body.Definition)
	if err != nil {
		return nil, err
	}
	def, err := spec.Definition()
	if err != nil {
		return nil, err
	}

	maxSteps := runtime.NoStepLimit
	if body.MaxSteps != nil {
		maxSteps = *body.MaxSteps
	}
	return runtime.NewMachine(def).Run(body.Input, maxSteps)
}

func (s *Server) listRuns(w http.ResponseWriter, r *http.Request) {
	ids := []string{}
	if s.store != nil {
		stored, err := s.store.List(r.Context())
		if err != nil {
			http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
			s.logger.Error("listRuns failed", "error", err)
			return
		}
		ids = stored
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]string{"runs": ids}); err != nil {
		s.logger.Error("listRuns response encode failed", "error", err)
	}
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "No run store configured", http.StatusNotFound)
		return
	}

	runID := chi.URLParam(r, "id")
	result, err := s.store.Load(r.Context(), runID)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, "Run not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.logger.Error("getRun failed", "run_id", runID, "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.logger.Error("getRun response encode failed", "error", err)
	}
}

func (s *Server) getDefinition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.engine.Definition()); err != nil {
		s.logger.Error("getDefinition response encode failed", "error", err)
	}
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(s.engine.Definition())))
}
