package ports

import (
	"context"

	"github.com/aretw0/micromouse/pkg/domain"
)

// RunStore defines the interface for persisting run snapshots.
// Snapshots are records for inspection; the navigator never reads them back.
type RunStore interface {
	// Save persists the snapshot under its RunID.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Load retrieves the snapshot for a run ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.Snapshot, error)

	// Delete removes the snapshot for a run ID. Deleting an unknown run is not an error.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of all stored runs.
	List(ctx context.Context) ([]string, error)
}

type finalSaveKey struct{}

// WithFinalSave marks ctx so that store decorators forward the Save unconditionally.
// The runner uses it for the last snapshot of a run that stops before the goal.
func WithFinalSave(ctx context.Context) context.Context {
	return context.WithValue(ctx, finalSaveKey{}, true)
}

// IsFinalSave reports whether ctx was marked by WithFinalSave.
func IsFinalSave(ctx context.Context) bool {
	final, _ := ctx.Value(finalSaveKey{}).(bool)
	return final
}
