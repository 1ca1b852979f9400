package sim

import (
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/aretw0/micromouse/pkg/ports"
)

// Stats counts the calls the navigator made against the platform.
type Stats struct {
	Sensing int
	Moves   int
	Crashes int
	Turns   int
	Resets  int
}

// Platform implements ports.Platform on top of a Maze.
// It keeps the ground-truth pose of the mouse and records every annotation.
type Platform struct {
	maze    *Maze
	pos     domain.Position
	heading domain.Heading
	blocked int

	texts  map[domain.Position]string
	colors map[domain.Position]byte
	walls  map[domain.Position]map[byte]bool
	trail  []domain.Position
	stats  Stats
}

var _ ports.Platform = (*Platform)(nil)

// NewPlatform places the mouse at (0, 0) facing North.
func NewPlatform(m *Maze) *Platform {
	return &Platform{
		maze:    m,
		heading: domain.North,
		texts:   make(map[domain.Position]string),
		colors:  make(map[domain.Position]byte),
		walls:   make(map[domain.Position]map[byte]bool),
		trail:   []domain.Position{{}},
	}
}

// BlockMoves makes the next n move attempts fail even when the way is open,
// reproducing a sensor/actuator mismatch.
func (p *Platform) BlockMoves(n int) {
	p.blocked = n
}

func (p *Platform) MazeWidth() int  { return p.maze.Width }
func (p *Platform) MazeHeight() int { return p.maze.Height }

func (p *Platform) WallFront() bool { return p.sense(p.heading) }
func (p *Platform) WallLeft() bool  { return p.sense(p.heading.Left()) }
func (p *Platform) WallRight() bool { return p.sense(p.heading.Right()) }

func (p *Platform) sense(h domain.Heading) bool {
	p.stats.Sensing++
	return p.maze.HasWall(p.pos, h)
}

func (p *Platform) MoveForward() bool {
	if p.blocked > 0 || p.maze.HasWall(p.pos, p.heading) {
		if p.blocked > 0 {
			p.blocked--
		}
		p.stats.Crashes++
		return false
	}
	p.pos = p.pos.Add(p.heading)
	p.trail = append(p.trail, p.pos)
	p.stats.Moves++
	return true
}

func (p *Platform) TurnLeft() {
	p.heading = p.heading.Left()
	p.stats.Turns++
}

func (p *Platform) TurnRight() {
	p.heading = p.heading.Right()
	p.stats.Turns++
}

func (p *Platform) SetText(x, y int, text string) {
	p.texts[domain.Position{X: x, Y: y}] = text
}

func (p *Platform) SetColor(x, y int, color byte) {
	p.colors[domain.Position{X: x, Y: y}] = color
}

func (p *Platform) SetWall(x, y int, side byte) {
	pos := domain.Position{X: x, Y: y}
	if p.walls[pos] == nil {
		p.walls[pos] = make(map[byte]bool)
	}
	p.walls[pos][side] = true
}

func (p *Platform) AckReset() {
	p.stats.Resets++
}

// Maze returns the underlying maze.
func (p *Platform) Maze() *Maze { return p.maze }

// Pose returns the ground-truth cell and heading of the mouse.
func (p *Platform) Pose() (domain.Position, domain.Heading) { return p.pos, p.heading }

// Text returns the label set on a cell, if any.
func (p *Platform) Text(pos domain.Position) string { return p.texts[pos] }

// Color returns the color code set on a cell, or 0.
func (p *Platform) Color(pos domain.Position) byte { return p.colors[pos] }

// RecordedWalls returns the sides reported through SetWall for a cell, in n, e, s, w order.
func (p *Platform) RecordedWalls(pos domain.Position) []byte {
	var sides []byte
	for _, h := range domain.Headings() {
		if p.walls[pos][h.Letter()] {
			sides = append(sides, h.Letter())
		}
	}
	return sides
}

// Trail returns every cell the mouse stood on, in order, starting with (0, 0).
func (p *Platform) Trail() []domain.Position {
	return append([]domain.Position(nil), p.trail...)
}

// Stats returns the call counters.
func (p *Platform) Stats() Stats { return p.stats }
