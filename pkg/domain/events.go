package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventTurn    EventType = "turn"
	EventMove    EventType = "move"
	EventDeadEnd EventType = "dead_end"
	EventGoal    EventType = "goal"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// TurnEvent is emitted after a committed turn.
type TurnEvent struct {
	EventBase
	Turn    Turn    `json:"turn"`
	From    Heading `json:"from"`
	Heading Heading `json:"heading"`
}

// MoveEvent is emitted after every advance attempt.
// When Blocked is true, From and To are equal.
type MoveEvent struct {
	EventBase
	From    Position `json:"from"`
	To      Position `json:"to"`
	Heading Heading  `json:"heading"`
	Blocked bool     `json:"blocked,omitempty"`
}

// DeadEndEvent is emitted when walls surround the mouse on three sides.
type DeadEndEvent struct {
	EventBase
	Position Position `json:"position"`
	Heading  Heading  `json:"heading"`
}

// GoalEvent is emitted once, when the heuristic reaches zero.
type GoalEvent struct {
	EventBase
	Position Position `json:"position"`
	Ticks    int      `json:"ticks"`
}

// LifecycleHooks defines callbacks for navigator observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnTurn    func(*TurnEvent)
	OnMove    func(*MoveEvent)
	OnDeadEnd func(*DeadEndEvent)
	OnGoal    func(*GoalEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTurn:    chain(h.OnTurn, other.OnTurn),
		OnMove:    chain(h.OnMove, other.OnMove),
		OnDeadEnd: chain(h.OnDeadEnd, other.OnDeadEnd),
		OnGoal:    chain(h.OnGoal, other.OnGoal),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
