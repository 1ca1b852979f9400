package tui

import (
	"io"

	"github.com/aretw0/micromouse/pkg/adapters/sim"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/muesli/termenv"
)

// mmsColors maps the simulator color codes to terminal colors.
var mmsColors = map[byte]string{
	'k': "#000000", 'b': "#3b82f6", 'a': "#9ca3af", 'c': "#22d3ee",
	'g': "#4ade80", 'o': "#fb923c", 'r': "#f87171", 'w': "#ffffff",
	'y': "#facc15", 'B': "#1e3a8a", 'C': "#0e7490", 'A': "#4b5563",
	'G': "#15803d", 'R': "#b91c1c", 'Y': "#a16207",
}

// RenderMaze draws the simulated maze with the marks the agent left on it.
// The mouse's true cell shows its heading letter. Colors are applied only when
// w is a terminal that supports them.
func RenderMaze(w io.Writer, p *sim.Platform) error {
	o := termenv.NewOutput(w)
	pos, heading := p.Pose()

	label := func(c domain.Position) string {
		if c == pos {
			return string(heading.Letter() - 'a' + 'A')
		}
		return p.Text(c)
	}
	paint := func(c domain.Position, text string) string {
		hex, ok := mmsColors[p.Color(c)]
		if !ok {
			return text
		}
		return o.String(text).Background(o.Color(hex)).String()
	}

	_, err := io.WriteString(w, p.Maze().FormatStyled(label, paint))
	return err
}
