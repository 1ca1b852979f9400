package runtime

import "github.com/aretw0/micromouse/pkg/domain"

// Decide applies the left-hand rule. The first open side in the order
// left, front, right wins; with all three walled the mouse reverses.
func Decide(obs domain.WallObservation) domain.Action {
	switch {
	case !obs.Left:
		return domain.ActionTurnLeftAdvance
	case !obs.Front:
		return domain.ActionAdvance
	case !obs.Right:
		return domain.ActionTurnRightAdvance
	default:
		return domain.ActionReverse
	}
}

// sense samples each wall sensor once.
func (n *Navigator) sense() domain.WallObservation {
	return domain.WallObservation{
		Front: n.platform.WallFront(),
		Left:  n.platform.WallLeft(),
		Right: n.platform.WallRight(),
	}
}

// recordWalls reports every sensed wall in the maze's absolute frame.
func (n *Navigator) recordWalls(obs domain.WallObservation) {
	p, h := n.pose.position, n.pose.heading
	if obs.Front {
		n.platform.SetWall(p.X, p.Y, h.Letter())
	}
	if obs.Right {
		n.platform.SetWall(p.X, p.Y, h.Right().Letter())
	}
	if obs.Left {
		n.platform.SetWall(p.X, p.Y, h.Left().Letter())
	}
}

// follow runs one pass of the wall-following policy: at most one turn (or the
// reversing pair) and at most one advance attempt. A blocked advance is not retried.
func (n *Navigator) follow() domain.Action {
	obs := n.sense()
	n.recordWalls(obs)

	action := Decide(obs)
	for _, t := range action.Turns() {
		n.turn(t)
	}

	if action.Advances() {
		n.advance()
		return action
	}

	n.counters.DeadEnds++
	p := n.pose.position
	n.logger.Info("dead end, turning around", "x", p.X, "y", p.Y)
	if n.hooks.OnDeadEnd != nil {
		n.hooks.OnDeadEnd(&domain.DeadEndEvent{
			EventBase: n.event(domain.EventDeadEnd),
			Position:  p,
			Heading:   n.pose.heading,
		})
	}
	return action
}
