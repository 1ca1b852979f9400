package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/micromouse/internal/logging"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
)

// Agent is what the runner drives. *micromouse.Engine satisfies it.
type Agent interface {
	Start()
	Tick() domain.Status
	Snapshot() *domain.Snapshot
	// Err reports a transport failure of the underlying platform.
	Err() error
}

// Runner drives an Agent from start until it reaches the center.
// The core loop is unbounded; the runner adds the optional step ceiling,
// cancellation between ticks and snapshot persistence.
type Runner struct {
	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Store persists a snapshot after every tick.
	// If nil, runs are ephemeral.
	Store ports.RunStore

	// StepLimit stops the run with domain.ErrStepLimit after that many ticks.
	// Zero keeps the loop unbounded.
	StepLimit int
}

// NewRunner creates a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run starts the agent and ticks it until it is done.
// It returns the last snapshot together with the reason the loop stopped early, if any.
func (r *Runner) Run(ctx context.Context, agent Agent) (*domain.Snapshot, error) {
	agent.Start()
	if err := agent.Err(); err != nil {
		snap := agent.Snapshot()
		return snap, r.stop(ctx, snap, fmt.Errorf("platform failed during start: %w", err))
	}

	snap := agent.Snapshot()
	if err := r.save(ctx, snap); err != nil {
		return snap, err
	}

	for ticks := 0; ; ticks++ {
		if err := ctx.Err(); err != nil {
			r.Logger.Debug("run interrupted", "run_id", snap.RunID, "ticks", ticks)
			return snap, r.stop(ctx, snap, fmt.Errorf("run interrupted: %w", err))
		}
		if r.StepLimit > 0 && ticks >= r.StepLimit {
			return snap, r.stop(ctx, snap, fmt.Errorf("%w: %d ticks", domain.ErrStepLimit, r.StepLimit))
		}

		status := agent.Tick()
		snap = agent.Snapshot()
		if err := agent.Err(); err != nil {
			return snap, r.stop(ctx, snap, fmt.Errorf("platform failed: %w", err))
		}

		// Commit even when the caller's context was cancelled mid-tick.
		if err := r.save(context.WithoutCancel(ctx), snap); err != nil {
			return snap, err
		}

		if status == domain.StatusDone {
			r.Logger.Debug("run finished", "run_id", snap.RunID, "ticks", snap.Counters.Ticks)
			return snap, nil
		}
	}
}

// stop commits the last snapshot of a run that ends before the goal and returns cause,
// joined with the save error if the commit fails.
func (r *Runner) stop(ctx context.Context, snap *domain.Snapshot, cause error) error {
	if err := r.save(ports.WithFinalSave(context.WithoutCancel(ctx)), snap); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (r *Runner) save(ctx context.Context, snap *domain.Snapshot) error {
	if r.Store == nil {
		return nil
	}
	if err := r.Store.Save(ctx, snap); err != nil {
		return fmt.Errorf("critical persistence error: %w", err)
	}
	r.Logger.Debug("snapshot saved", "run_id", snap.RunID, "ticks", snap.Counters.Ticks)
	return nil
}
