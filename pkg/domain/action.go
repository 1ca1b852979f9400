package domain

import "fmt"

// WallObservation is one fresh sample of the wall sensors, relative to the heading.
type WallObservation struct {
	Front bool `json:"front"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

// Action is the single decision the wall-following policy makes per tick.
type Action int

const (
	ActionTurnLeftAdvance Action = iota
	ActionAdvance
	ActionTurnRightAdvance
	ActionReverse
)

// Turns returns the relative turns the action commits before any advance attempt.
func (a Action) Turns() []Turn {
	switch a {
	case ActionTurnLeftAdvance:
		return []Turn{TurnLeft}
	case ActionTurnRightAdvance:
		return []Turn{TurnRight}
	case ActionReverse:
		return []Turn{TurnRight, TurnRight}
	default:
		return nil
	}
}

// Advances reports whether the action attempts a forward move.
func (a Action) Advances() bool {
	return a != ActionReverse
}

func (a Action) String() string {
	switch a {
	case ActionTurnLeftAdvance:
		return "turn_left_advance"
	case ActionAdvance:
		return "advance"
	case ActionTurnRightAdvance:
		return "turn_right_advance"
	case ActionReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
