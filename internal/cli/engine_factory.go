package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/micromouse"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/observability"
	"github.com/aretw0/micromouse/pkg/ports"
)

// createEngine initializes an engine with standard CLI conventions.
func createEngine(platform ports.Platform, opts Options, logger *slog.Logger, hooks domain.LifecycleHooks) (*micromouse.Engine, error) {
	engineOpts := []micromouse.Option{
		micromouse.WithLogger(logger),
		micromouse.WithLifecycleHooks(hooks),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, micromouse.WithLifecycleHooks(observability.LoggingHooks(logger)))
	}
	if opts.RunID != "" {
		engineOpts = append(engineOpts, micromouse.WithRunID(opts.RunID))
	}

	engine, err := micromouse.New(platform, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
