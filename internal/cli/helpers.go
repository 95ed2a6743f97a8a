package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/cinta/internal/adapters/redis"
	"github.com/aretw0/cinta/internal/logging"
	"github.com/aretw0/cinta/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// In debug mode it writes to Stderr (to separate from Stdout traces).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// newStore builds a Redis-backed run store from a URL, or nil when no URL is
// given. The returned closer is safe to call on a nil store.
func newStore(redisURL string) (ports.RunStore, func() error, error) {
	if redisURL == "" {
		return nil, func() error { return nil }, nil
	}

	opts, err := backend.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	store := redis.NewFromClient(backend.NewClient(opts))
	return store, store.Close, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
