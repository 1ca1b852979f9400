package runtime

import (
	"time"

	"github.com/aretw0/micromouse/pkg/domain"
)

const (
	visitedText  = "X"
	visitedColor = 'G'
	goalText     = "C"
	goalColor    = 'R'
)

// pose is the dead-reckoned heading and cell of the mouse.
type pose struct {
	heading  domain.Heading
	position domain.Position
}

// turn rotates the platform and the tracked heading together.
func (n *Navigator) turn(t domain.Turn) {
	from := n.pose.heading
	if t == domain.TurnLeft {
		n.platform.TurnLeft()
	} else {
		n.platform.TurnRight()
	}
	n.pose.heading = from.Rotate(t)
	n.counters.Turns++

	if n.hooks.OnTurn != nil {
		n.hooks.OnTurn(&domain.TurnEvent{
			EventBase: n.event(domain.EventTurn),
			Turn:      t,
			From:      from,
			Heading:   n.pose.heading,
		})
	}
}

// advance attempts one forward move. Position changes only if the platform moved.
func (n *Navigator) advance() bool {
	from := n.pose.position
	moved := n.platform.MoveForward()
	if moved {
		n.pose.position = from.Add(n.pose.heading)
		n.counters.Moves++
		n.markCell(visitedText, visitedColor)
		n.logPosition()
	} else {
		n.counters.Blocked++
		n.logger.Debug("move blocked", "x", from.X, "y", from.Y, "heading", n.pose.heading)
	}

	if n.hooks.OnMove != nil {
		n.hooks.OnMove(&domain.MoveEvent{
			EventBase: n.event(domain.EventMove),
			From:      from,
			To:        n.pose.position,
			Heading:   n.pose.heading,
			Blocked:   !moved,
		})
	}
	return moved
}

func (n *Navigator) markCell(text string, color byte) {
	p := n.pose.position
	n.platform.SetText(p.X, p.Y, text)
	n.platform.SetColor(p.X, p.Y, color)
}

func (n *Navigator) logPosition() {
	p := n.pose.position
	n.logger.Info("mouse position", "x", p.X, "y", p.Y)
}

func (n *Navigator) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, RunID: n.runID}
}
