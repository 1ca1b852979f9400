package micromouse

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/micromouse/internal/runtime"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
	"github.com/google/uuid"
)

// Version is the release of the agent, printed by the CLI.
const Version = "0.3.0"

// Engine is the high-level entry point for the micromouse library.
// It wraps the internal navigator and provides a simplified API for consumers.
type Engine struct {
	nav      *runtime.Navigator
	platform ports.Platform
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	runID    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks. Repeated calls merge hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(e *Engine) {
		e.runID = id
	}
}

// New builds an engine on top of a platform. It queries the maze size once.
func New(platform ports.Platform, opts ...Option) (*Engine, error) {
	if platform == nil {
		return nil, fmt.Errorf("platform is required")
	}
	eng := &Engine{platform: platform}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.runID == "" {
		eng.runID = uuid.NewString()
	}

	navOpts := []runtime.NavigatorOption{
		runtime.WithRunID(eng.runID),
		runtime.WithLifecycleHooks(eng.hooks),
	}
	if eng.logger != nil {
		navOpts = append(navOpts, runtime.WithLogger(eng.logger.With("run_id", eng.runID)))
	}

	nav, err := runtime.NewNavigator(platform, navOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize navigator: %w", err)
	}
	eng.nav = nav
	return eng, nil
}

// Start marks the start cell and acknowledges the platform reset.
func (e *Engine) Start() {
	e.nav.Start()
}

// Tick runs one iteration of the driving loop and returns the resulting status.
func (e *Engine) Tick() domain.Status {
	return e.nav.Tick()
}

// Snapshot captures the observable state of the run.
func (e *Engine) Snapshot() *domain.Snapshot {
	return e.nav.Snapshot()
}

// Bounds returns the maze bounds read at construction.
func (e *Engine) Bounds() domain.Bounds {
	return e.nav.Bounds()
}

// RunID returns the identifier that tags events and snapshots.
func (e *Engine) RunID() string {
	return e.runID
}

// Err reports the transport failure of the platform, if it can report one.
// Platforms that cannot fail always yield nil.
func (e *Engine) Err() error {
	if f, ok := e.platform.(ports.Faulter); ok {
		return f.Err()
	}
	return nil
}
