package observability

import (
	"log/slog"

	"github.com/aretw0/micromouse/pkg/domain"
)

// LoggingHooks logs every lifecycle event at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTurn: func(e *domain.TurnEvent) {
			logger.Debug("turn", "run_id", e.RunID, "turn", e.Turn.String(),
				"from", e.From.String(), "heading", e.Heading.String())
		},
		OnMove: func(e *domain.MoveEvent) {
			logger.Debug("move", "run_id", e.RunID, "from", e.From.String(),
				"to", e.To.String(), "blocked", e.Blocked)
		},
		OnDeadEnd: func(e *domain.DeadEndEvent) {
			logger.Debug("dead_end", "run_id", e.RunID, "position", e.Position.String(),
				"heading", e.Heading.String())
		},
		OnGoal: func(e *domain.GoalEvent) {
			logger.Debug("goal", "run_id", e.RunID, "position", e.Position.String(), "ticks", e.Ticks)
		},
	}
}
