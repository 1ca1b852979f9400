package domain

import "fmt"

// Position is a grid cell coordinate. The start cell is (0, 0).
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns the neighbouring cell in the given heading.
func (p Position) Add(h Heading) Position {
	dx, dy := h.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the L1 distance between two cells.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Bounds holds the maze dimensions reported by the platform at startup.
type Bounds struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Validate rejects non-positive dimensions.
func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBounds, b.Width, b.Height)
	}
	return nil
}

// Contains reports whether p lies inside the maze.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Centers returns the two center candidates. They coincide on odd dimensions.
func (b Bounds) Centers() [2]Position {
	return [2]Position{
		{X: b.Width / 2, Y: b.Height / 2},
		{X: (b.Width - 1) / 2, Y: (b.Height - 1) / 2},
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
