package sim

import (
	"math/rand"

	"github.com/aretw0/micromouse/pkg/domain"
)

// Cell holds the four walls of a cell in the absolute frame.
type Cell struct {
	North bool
	East  bool
	South bool
	West  bool
}

func (c *Cell) wall(h domain.Heading) *bool {
	switch h {
	case domain.North:
		return &c.North
	case domain.East:
		return &c.East
	case domain.South:
		return &c.South
	default:
		return &c.West
	}
}

// Maze is a rectangular grid. Cell (0, 0) is the bottom-left corner and y grows
// towards North, matching the simulator.
type Maze struct {
	Width  int
	Height int
	cells  [][]Cell // [y][x]
}

// NewMaze returns a maze with every wall present.
func NewMaze(width, height int) *Maze {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{North: true, East: true, South: true, West: true}
		}
	}
	return &Maze{Width: width, Height: height, cells: cells}
}

// NewOpenMaze returns a maze with only the outer boundary walled.
func NewOpenMaze(width, height int) *Maze {
	m := NewMaze(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &m.cells[y][x]
			c.North = y == height-1
			c.South = y == 0
			c.East = x == width-1
			c.West = x == 0
		}
	}
	return m
}

// Bounds returns the maze dimensions.
func (m *Maze) Bounds() domain.Bounds {
	return domain.Bounds{Width: m.Width, Height: m.Height}
}

// Cell returns the walls of the cell at p. Cells outside the maze are fully walled.
func (m *Maze) Cell(p domain.Position) Cell {
	if !m.Bounds().Contains(p) {
		return Cell{North: true, East: true, South: true, West: true}
	}
	return m.cells[p.Y][p.X]
}

// HasWall reports whether the side h of the cell at p is walled.
func (m *Maze) HasWall(p domain.Position, h domain.Heading) bool {
	c := m.Cell(p)
	return *c.wall(h)
}

// SetWall adds or removes a wall on both sides of the shared edge.
// The outer boundary cannot be opened.
func (m *Maze) SetWall(p domain.Position, h domain.Heading, present bool) {
	if !m.Bounds().Contains(p) {
		return
	}
	next := p.Add(h)
	if !m.Bounds().Contains(next) {
		return
	}
	*m.cells[p.Y][p.X].wall(h) = present
	*m.cells[next.Y][next.X].wall(h.Reverse()) = present
}

// Generate builds a perfect maze (exactly one path between any two cells) with
// Wilson's loop-erased random walk. The same seed always yields the same maze.
func Generate(width, height int, seed int64) *Maze {
	m := NewMaze(width, height)
	if width <= 0 || height <= 0 {
		return m
	}
	rng := rand.New(rand.NewSource(seed))
	total := width * height

	inTree := make(map[domain.Position]bool, total)
	inTree[m.randomCell(rng)] = true

	for len(inTree) < total {
		start := m.randomCell(rng)
		for inTree[start] {
			start = m.randomCell(rng)
		}

		// Walk until the tree is hit, remembering only the last exit of each cell.
		// Following the exits from the start afterwards erases the loops.
		exits := make(map[domain.Position]domain.Heading)
		cell := start
		for !inTree[cell] {
			h := m.randomExit(rng, cell)
			exits[cell] = h
			cell = cell.Add(h)
		}

		for cell = start; !inTree[cell]; {
			h := exits[cell]
			m.SetWall(cell, h, false)
			inTree[cell] = true
			cell = cell.Add(h)
		}
	}
	return m
}

func (m *Maze) randomCell(rng *rand.Rand) domain.Position {
	return domain.Position{X: rng.Intn(m.Width), Y: rng.Intn(m.Height)}
}

func (m *Maze) randomExit(rng *rand.Rand, p domain.Position) domain.Heading {
	var options []domain.Heading
	for _, h := range domain.Headings() {
		if m.Bounds().Contains(p.Add(h)) {
			options = append(options, h)
		}
	}
	return options[rng.Intn(len(options))]
}
