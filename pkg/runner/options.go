package runner

import (
	"log/slog"

	"github.com/aretw0/micromouse/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithStore configures the RunStore for snapshot persistence.
func WithStore(store ports.RunStore) Option {
	return func(r *Runner) {
		r.Store = store
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithStepLimit bounds the number of ticks. Zero or less means unbounded.
func WithStepLimit(limit int) Option {
	return func(r *Runner) {
		if limit < 0 {
			limit = 0
		}
		r.StepLimit = limit
	}
}
