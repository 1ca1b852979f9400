package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store RunStore) {
	t.Helper()
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := domain.NewSnapshot(runID, domain.Bounds{Width: 16, Height: 16})
		snap.Heading = domain.West
		snap.Position = domain.Position{X: 3, Y: 7}
		snap.Counters.Moves = 42

		require.NoError(t, store.Save(ctx, snap), "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, runID, loaded.RunID)
		assert.Equal(t, domain.West, loaded.Heading)
		assert.Equal(t, domain.Position{X: 3, Y: 7}, loaded.Position)
		assert.Equal(t, 42, loaded.Counters.Moves)
		assert.Equal(t, domain.StatusRunning, loaded.Status)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		snap := domain.NewSnapshot(runID, domain.Bounds{Width: 16, Height: 16})
		snap.Status = domain.StatusDone
		require.NoError(t, store.Save(ctx, snap))

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.True(t, loaded.Done())
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		loaded.Position = domain.Position{X: -100, Y: -100}

		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.NotEqual(t, loaded.Position, again.Position)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewSnapshot(runID, domain.Bounds{Width: 4, Height: 4})))

		require.NoError(t, store.Delete(ctx, runID), "Delete should not return error")

		_, err := store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")

		assert.NoError(t, store.Delete(ctx, runID), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, domain.NewSnapshot(id1, domain.Bounds{Width: 4, Height: 4}))
		_ = store.Save(ctx, domain.NewSnapshot(id2, domain.Bounds{Width: 4, Height: 4}))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
