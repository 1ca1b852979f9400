package middleware

import (
	"context"
	"time"

	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
)

type timeoutMiddleware struct {
	next    ports.RunStore
	timeout time.Duration
}

// NewTimeoutMiddleware bounds every store call by timeout.
// A remote store that hangs then fails the run instead of stalling the mouse.
func NewTimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next ports.RunStore) ports.RunStore {
		if timeout <= 0 {
			return next
		}
		return &timeoutMiddleware{next: next, timeout: timeout}
	}
}

func (m *timeoutMiddleware) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Save(ctx, snapshot)
}

func (m *timeoutMiddleware) Load(ctx context.Context, runID string) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Load(ctx, runID)
}

func (m *timeoutMiddleware) Delete(ctx context.Context, runID string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Delete(ctx, runID)
}

func (m *timeoutMiddleware) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.List(ctx)
}
