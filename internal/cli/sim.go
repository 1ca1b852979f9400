package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/micromouse/internal/config"
	"github.com/aretw0/micromouse/internal/presentation/tui"
	"github.com/aretw0/micromouse/pkg/adapters/sim"
)

// RunSim drives the agent through an in-process maze and prints the trace and a summary.
func RunSim(opts Options) error {
	opts.withDefaults()
	logger, err := createLogger(opts.Stderr, opts.Config.LogLevel, opts.Debug, opts.Quiet)
	if err != nil {
		return err
	}

	maze, err := loadMaze(opts.Config.Sim)
	if err != nil {
		return err
	}
	platform := sim.NewPlatform(maze)

	terminal := false
	if f, ok := opts.Stdout.(*os.File); ok {
		terminal = tui.IsTerminal(f)
	}
	if !opts.Quiet {
		tui.PrintBanner(opts.Stdout)
	}

	snap, interrupted, runErr := drive(opts, platform, logger)

	if !opts.Quiet && snap != nil {
		if err := tui.RenderMaze(opts.Stdout, platform); err != nil {
			return err
		}
		summary, err := tui.NewRenderer(terminal)(tui.Summary(snap))
		if err != nil {
			logger.Warn("failed to render summary", "error", err)
			summary = tui.Summary(snap)
		}
		fmt.Fprint(opts.Stdout, summary)
	}
	logCompletion(opts.Stdout, snap, runErr, interrupted, opts.Quiet)
	return handleExecutionError(runErr, interrupted)
}

// loadMaze reads the configured .map file, or generates a maze from the seed.
func loadMaze(cfg config.SimConfig) (*sim.Maze, error) {
	if cfg.MazeFile == "" {
		return sim.Generate(cfg.Width, cfg.Height, cfg.Seed), nil
	}
	f, err := os.Open(cfg.MazeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open maze: %w", err)
	}
	defer f.Close()

	maze, err := sim.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cfg.MazeFile, err)
	}
	return maze, nil
}
