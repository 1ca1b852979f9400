package sim

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/micromouse/pkg/domain"
)

// Parse reads a maze in the ASCII map layout used by the mms simulator:
//
//	+---+---+
//	|       |
//	+   +---+
//	|   |   |
//	+---+---+
//
// The first line is the northern edge. Each cell is three characters wide.
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r \t")
		if line == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maze: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, fmt.Errorf("maze must have an odd number of lines (at least 3), got %d", len(lines))
	}
	top := lines[0]
	if !strings.HasPrefix(top, "+") || (len(top)-1)%4 != 0 {
		return nil, fmt.Errorf("malformed top edge %q", top)
	}

	width := (len(top) - 1) / 4
	height := (len(lines) - 1) / 2
	m := NewMaze(width, height)

	for row := 0; row < height; row++ {
		y := height - 1 - row
		above, middle, below := lines[2*row], lines[2*row+1], lines[2*row+2]
		for x := 0; x < width; x++ {
			c := &m.cells[y][x]
			c.North = horizontalWall(above, x)
			c.South = horizontalWall(below, x)
			c.West = charAt(middle, 4*x) == '|'
			c.East = charAt(middle, 4*x+4) == '|'
		}
	}

	if err := m.checkConsistent(); err != nil {
		return nil, err
	}
	return m, nil
}

func horizontalWall(line string, x int) bool {
	return charAt(line, 4*x+2) == '-'
}

func charAt(line string, i int) byte {
	if i < len(line) {
		return line[i]
	}
	return ' '
}

// checkConsistent rejects layouts whose boundary is open or whose shared edges disagree.
func (m *Maze) checkConsistent() error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := domain.Position{X: x, Y: y}
			for _, h := range domain.Headings() {
				next := p.Add(h)
				if !m.Bounds().Contains(next) {
					if !m.HasWall(p, h) {
						return fmt.Errorf("boundary open at %v side %c", p, h.Letter())
					}
					continue
				}
				if m.HasWall(p, h) != m.HasWall(next, h.Reverse()) {
					return fmt.Errorf("inconsistent wall between %v and %v", p, next)
				}
			}
		}
	}
	return nil
}

// String renders the maze in the layout accepted by Parse.
func (m *Maze) String() string {
	return m.Format(nil)
}

// Format renders the maze with an optional three-character label per cell.
func (m *Maze) Format(label func(domain.Position) string) string {
	return m.FormatStyled(label, nil)
}

// FormatStyled is Format with a paint function applied to each padded cell
// interior, e.g. to add terminal colors without breaking the alignment.
func (m *Maze) FormatStyled(label func(domain.Position) string, paint func(domain.Position, string) string) string {
	var sb strings.Builder
	for row := 0; row < m.Height; row++ {
		y := m.Height - 1 - row
		m.writeEdge(&sb, y, domain.North)

		for x := 0; x < m.Width; x++ {
			p := domain.Position{X: x, Y: y}
			if m.HasWall(p, domain.West) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			text := "   "
			if label != nil {
				text = center3(label(p))
			}
			if paint != nil {
				text = paint(p, text)
			}
			sb.WriteString(text)
		}
		if m.HasWall(domain.Position{X: m.Width - 1, Y: y}, domain.East) {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	m.writeEdge(&sb, 0, domain.South)
	return sb.String()
}

func (m *Maze) writeEdge(sb *strings.Builder, y int, side domain.Heading) {
	sb.WriteByte('+')
	for x := 0; x < m.Width; x++ {
		if m.HasWall(domain.Position{X: x, Y: y}, side) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteByte('\n')
}

func center3(s string) string {
	switch n := len([]rune(s)); {
	case n >= 3:
		return string([]rune(s)[:3])
	case n == 2:
		return s + " "
	case n == 1:
		return " " + s + " "
	default:
		return "   "
	}
}
