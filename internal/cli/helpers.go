package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/micromouse/internal/logging"
	"github.com/aretw0/micromouse/pkg/domain"
)

// createLogger configures the application logger. It always writes to w, which is
// stderr in practice so it never mixes with the simulator protocol on stdout.
// Debug wins over the configured level; quiet keeps only warnings and errors.
func createLogger(w io.Writer, level string, debug, quiet bool) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch {
	case debug:
		lvl = slog.LevelDebug
	case quiet && lvl < slog.LevelWarn:
		lvl = slog.LevelWarn
	}
	return logging.NewWithWriter(w, lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// handleExecutionError maps a run error to the command result.
// Interruptions exit cleanly.
func handleExecutionError(err error, interrupted bool) error {
	if err == nil || interrupted || isInterrupted(err) {
		return nil
	}
	return err
}

func logCompletion(w io.Writer, snap *domain.Snapshot, err error, interrupted, quiet bool) {
	if quiet || snap == nil {
		return
	}
	switch {
	case err == nil:
		printSystemMessage(w, "Reached the center at %s after %d ticks.", snap.Position, snap.Counters.Ticks)
	case interrupted || isInterrupted(err):
		printSystemMessage(w, "Interrupted at %s after %d ticks.", snap.Position, snap.Counters.Ticks)
	case errors.Is(err, domain.ErrStepLimit):
		printSystemMessage(w, "Gave up at %s: %v.", snap.Position, err)
	default:
		printSystemMessage(w, "Stopped at %s: %v.", snap.Position, err)
	}
}
