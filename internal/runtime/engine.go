package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/micromouse/internal/logging"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
)

// Navigator owns the whole state of one run: pose, bounds and loop status.
// It is not safe for concurrent use; the driving loop holds it exclusively.
type Navigator struct {
	platform ports.Platform
	bounds   domain.Bounds
	pose     pose
	status   domain.Status
	counters domain.Counters

	runID     string
	startedAt time.Time
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) NavigatorOption {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) NavigatorOption {
	return func(n *Navigator) {
		n.hooks = hooks
	}
}

// WithRunID tags events and snapshots.
func WithRunID(id string) NavigatorOption {
	return func(n *Navigator) {
		n.runID = id
	}
}

// NewNavigator queries the maze bounds once and returns a navigator at (0, 0) facing North.
func NewNavigator(platform ports.Platform, opts ...NavigatorOption) (*Navigator, error) {
	n := &Navigator{
		platform:  platform,
		status:    domain.StatusRunning,
		pose:      pose{heading: domain.North},
		logger:    logging.NewNop(),
		startedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(n)
	}

	n.bounds = domain.Bounds{Width: platform.MazeWidth(), Height: platform.MazeHeight()}
	if err := n.bounds.Validate(); err != nil {
		return nil, err
	}
	n.logger = n.logger.With("maze", n.bounds.String())
	return n, nil
}

// Start marks the start cell and acknowledges the platform reset.
func (n *Navigator) Start() {
	n.markCell(visitedText, visitedColor)
	n.logPosition()
	n.platform.AckReset()
}

// Tick runs one iteration of the driving loop.
// A navigator on a center candidate marks the goal and becomes done; otherwise the
// wall-following policy runs once. Ticking a done navigator does nothing.
func (n *Navigator) Tick() domain.Status {
	if n.status == domain.StatusDone {
		return n.status
	}
	n.counters.Ticks++

	if AtGoal(n.pose.position, n.bounds) {
		n.markCell(goalText, goalColor)
		p := n.pose.position
		n.logger.Info("reached the center", "x", p.X, "y", p.Y, "ticks", n.counters.Ticks)
		n.status = domain.StatusDone
		if n.hooks.OnGoal != nil {
			n.hooks.OnGoal(&domain.GoalEvent{
				EventBase: n.event(domain.EventGoal),
				Position:  p,
				Ticks:     n.counters.Ticks,
			})
		}
		return n.status
	}

	action := n.follow()
	n.logger.Debug("tick", "action", action.String(), "heading", n.pose.heading.String())
	return n.status
}

// Heading returns the tracked heading.
func (n *Navigator) Heading() domain.Heading { return n.pose.heading }

// Position returns the tracked cell.
func (n *Navigator) Position() domain.Position { return n.pose.position }

// Bounds returns the maze bounds read at construction.
func (n *Navigator) Bounds() domain.Bounds { return n.bounds }

// Status returns the loop status.
func (n *Navigator) Status() domain.Status { return n.status }

// Counters returns the run counters.
func (n *Navigator) Counters() domain.Counters { return n.counters }

// Snapshot captures the observable state of the run.
func (n *Navigator) Snapshot() *domain.Snapshot {
	return &domain.Snapshot{
		RunID:     n.runID,
		Status:    n.status,
		Heading:   n.pose.heading,
		Position:  n.pose.position,
		Bounds:    n.bounds,
		Counters:  n.counters,
		StartedAt: n.startedAt,
		UpdatedAt: time.Now().UTC(),
	}
}
