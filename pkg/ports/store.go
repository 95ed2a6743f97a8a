package ports

import (
	"context"

	"github.com/aretw0/cinta/pkg/domain"
)

// RunStore defines the interface for persisting run results.
// Results are immutable once saved; Save with an existing ID overwrites.
type RunStore interface {
	// Save persists the result under the given run ID.
	Save(ctx context.Context, runID string, result *domain.RunResult) error

	// Load retrieves the result for a run ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.RunResult, error)

	// Delete removes the result for a run ID.
	Delete(ctx context.Context, runID string) error

	// List returns the stored run IDs.
	List(ctx context.Context) ([]string, error)
}
