package middleware

import (
	"context"
	"sync"

	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
)

type throttleMiddleware struct {
	next  ports.RunStore
	every int

	mu   sync.Mutex
	last map[string]domain.Snapshot
}

// NewThrottleMiddleware creates a middleware that forwards at most one Save every
// `every` ticks per run. The first snapshot of a run, any status change and any Save
// whose context is marked with ports.WithFinalSave are always written, so a run is never
// left stale when it ends. every <= 1 disables throttling.
func NewThrottleMiddleware(every int) Middleware {
	return func(next ports.RunStore) ports.RunStore {
		if every <= 1 {
			return next
		}
		return &throttleMiddleware{
			next:  next,
			every: every,
			last:  make(map[string]domain.Snapshot),
		}
	}
}

func (m *throttleMiddleware) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	m.mu.Lock()
	prev, seen := m.last[snapshot.RunID]
	due := !seen ||
		ports.IsFinalSave(ctx) ||
		prev.Status != snapshot.Status ||
		snapshot.Counters.Ticks-prev.Counters.Ticks >= m.every
	m.mu.Unlock()

	if !due {
		return nil
	}
	if err := m.next.Save(ctx, snapshot); err != nil {
		return err
	}

	m.mu.Lock()
	m.last[snapshot.RunID] = *snapshot
	m.mu.Unlock()
	return nil
}

func (m *throttleMiddleware) Load(ctx context.Context, runID string) (*domain.Snapshot, error) {
	return m.next.Load(ctx, runID)
}

func (m *throttleMiddleware) Delete(ctx context.Context, runID string) error {
	m.mu.Lock()
	delete(m.last, runID)
	m.mu.Unlock()
	return m.next.Delete(ctx, runID)
}

func (m *throttleMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
