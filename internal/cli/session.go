package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/micromouse/internal/config"
	statushttp "github.com/aretw0/micromouse/pkg/adapters/http"
	"github.com/aretw0/micromouse/pkg/adapters/mms"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/observability"
	"github.com/aretw0/micromouse/pkg/ports"
	"github.com/aretw0/micromouse/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// RunSession drives the agent against the mms simulator over stdin/stdout.
// Stdout belongs to the protocol, so every message goes to stderr.
func RunSession(opts Options) error {
	opts.withDefaults()
	logger, err := createLogger(opts.Stderr, opts.Config.LogLevel, opts.Debug, opts.Quiet)
	if err != nil {
		return err
	}

	client := mms.New(opts.Stdin, opts.Stdout, mms.WithLogger(logger))
	snap, interrupted, err := drive(opts, client, logger)
	logCompletion(opts.Stderr, snap, err, interrupted, opts.Quiet)
	return handleExecutionError(err, interrupted)
}

// drive runs one engine on platform to completion with the configured store,
// step limit and optional status server.
func drive(opts Options, platform ports.Platform, logger *slog.Logger) (*domain.Snapshot, bool, error) {
	cfg := opts.Config
	sm := runner.NewSignalManager(opts.Context)
	defer sm.Stop()

	store, closeStore, err := OpenStore(sm.Context(), cfg, logger)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}()

	hooks, stopStatus, err := setupStatus(cfg, store, logger)
	if err != nil {
		return nil, false, err
	}
	defer stopStatus()

	engine, err := createEngine(platform, opts, logger, hooks)
	if err != nil {
		return nil, false, err
	}
	logger.Info("run started", "run_id", engine.RunID(), "maze", engine.Bounds().String())

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithStore(store),
		runner.WithStepLimit(cfg.StepLimit),
	)
	snap, runErr := r.Run(sm.Context(), engine)

	// A closed pipe may be the first sign of Ctrl+C on the simulator side.
	interrupted := runErr != nil && sm.Interrupted()
	return snap, interrupted, runErr
}

// setupStatus starts the status server when an address is configured and returns
// the hooks that feed its metrics and event streams.
func setupStatus(cfg *config.Config, store ports.RunStore, logger *slog.Logger) (domain.LifecycleHooks, func(), error) {
	if cfg.StatusAddr == "" {
		return domain.LifecycleHooks{}, func() {}, nil
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return domain.LifecycleHooks{}, nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	streams := statushttp.NewStreamManager(logger)

	handler := statushttp.NewHandler(store,
		statushttp.WithGatherer(reg),
		statushttp.WithStreams(streams),
		statushttp.WithLogger(logger),
	)
	stop, err := startServer(cfg.StatusAddr, handler, logger)
	if err != nil {
		return domain.LifecycleHooks{}, nil, err
	}
	return metrics.Hooks().Merge(streams.Hooks()), stop, nil
}
