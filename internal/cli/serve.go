package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/cinta"
	httpadapter "github.com/aretw0/cinta/internal/adapters/http"
	"github.com/aretw0/cinta/pkg/adapters/machinefile"
	"github.com/aretw0/cinta/pkg/adapters/memory"
)

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	MachinePath string
	Addr        string
	MaxSteps    int
	Debug       bool
	RedisURL    string
}

// Serve loads a machine document and exposes it over HTTP until interrupted.
func Serve(opts ServeOptions) error {
	logger := createLogger(opts.Debug)

	doc, err := machinefile.Load(opts.MachinePath)
	if err != nil {
		return err
	}
	def, err := doc.Definition()
	if err != nil {
		return err
	}

	store, closeStore, err := newStore(opts.RedisURL)
	if err != nil {
		return err
	}
	defer closeStore()
	if store == nil {
		store = memory.NewStore()
	}

	engine, err := cinta.New(def,
		cinta.WithLogger(logger),
		cinta.WithMaxSteps(opts.MaxSteps),
		cinta.WithStore(store),
	)
	if err != nil {
		return err
	}

	handler := httpadapter.NewHandler(engine,
		httpadapter.WithStore(store),
		httpadapter.WithLogger(logger),
	)

	server := &http.Server{
		Addr:    opts.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", opts.Addr, "machine", engine.Name)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down http server")
		return server.Shutdown(shutdownCtx)
	}
}
