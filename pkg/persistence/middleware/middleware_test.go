package middleware_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/persistence/middleware"
	"github.com/aretw0/micromouse/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotAt(runID string, ticks int, status domain.Status) *domain.Snapshot {
	snap := domain.NewSnapshot(runID, domain.Bounds{Width: 16, Height: 16})
	snap.Counters.Ticks = ticks
	snap.Status = status
	return snap
}

func TestThrottleMiddleware_SkipsIntermediateTicks(t *testing.T) {
	underlying := NewMockStore()
	store := middleware.NewThrottleMiddleware(10)(underlying)
	ctx := context.Background()

	for tick := 0; tick <= 25; tick++ {
		require.NoError(t, store.Save(ctx, snapshotAt("run", tick, domain.StatusRunning)))
	}
	// Ticks 0, 10 and 20.
	assert.Equal(t, 3, underlying.saves)

	loaded, err := store.Load(ctx, "run")
	require.NoError(t, err)
	assert.Equal(t, 20, loaded.Counters.Ticks)
}

func TestThrottleMiddleware_AlwaysWritesStatusChange(t *testing.T) {
	underlying := NewMockStore()
	store := middleware.NewThrottleMiddleware(100)(underlying)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, snapshotAt("run", 0, domain.StatusRunning)))
	require.NoError(t, store.Save(ctx, snapshotAt("run", 1, domain.StatusRunning)))
	require.NoError(t, store.Save(ctx, snapshotAt("run", 2, domain.StatusDone)))

	assert.Equal(t, 2, underlying.saves)
	loaded, err := store.Load(ctx, "run")
	require.NoError(t, err)
	assert.True(t, loaded.Done())
}

func TestThrottleMiddleware_ForwardsFinalSave(t *testing.T) {
	underlying := NewMockStore()
	store := middleware.NewThrottleMiddleware(10)(underlying)
	ctx := context.Background()

	for tick := 0; tick < 7; tick++ {
		require.NoError(t, store.Save(ctx, snapshotAt("run", tick, domain.StatusRunning)))
	}
	assert.Equal(t, 1, underlying.saves)

	require.NoError(t, store.Save(ports.WithFinalSave(ctx), snapshotAt("run", 7, domain.StatusRunning)))
	assert.Equal(t, 2, underlying.saves)

	loaded, err := store.Load(ctx, "run")
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Counters.Ticks)

	// The throttle window restarts from the forced write.
	require.NoError(t, store.Save(ctx, snapshotAt("run", 8, domain.StatusRunning)))
	assert.Equal(t, 2, underlying.saves)
}

func TestThrottleMiddleware_TracksRunsSeparately(t *testing.T) {
	underlying := NewMockStore()
	store := middleware.NewThrottleMiddleware(5)(underlying)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, snapshotAt("a", 0, domain.StatusRunning)))
	require.NoError(t, store.Save(ctx, snapshotAt("b", 3, domain.StatusRunning)))
	assert.Equal(t, 2, underlying.saves)

	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Save(ctx, snapshotAt("a", 1, domain.StatusRunning)))
	assert.Equal(t, 3, underlying.saves, "a deleted run starts over")
}

func TestThrottleMiddleware_DisabledReturnsNext(t *testing.T) {
	underlying := NewMockStore()
	assert.Same(t, underlying, middleware.NewThrottleMiddleware(1)(underlying))
}

func TestTimeoutMiddleware_SetsDeadline(t *testing.T) {
	underlying := NewMockStore()
	store := middleware.NewTimeoutMiddleware(time.Second)(underlying)

	require.NoError(t, store.Save(context.Background(), snapshotAt("run", 0, domain.StatusRunning)))
	deadline, ok := underlying.ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
}

func TestChain_WrapsInOrder(t *testing.T) {
	underlying := NewMockStore()
	store := middleware.Chain(underlying,
		middleware.NewTimeoutMiddleware(time.Second),
		middleware.NewThrottleMiddleware(2),
	)
	ports.RunStoreContract(t, store)
}
