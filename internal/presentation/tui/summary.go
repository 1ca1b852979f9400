package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aretw0/micromouse/pkg/domain"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Summary describes a run as markdown.
func Summary(snap *domain.Snapshot) string {
	var sb strings.Builder

	outcome := "still exploring"
	if snap.Done() {
		outcome = "reached the center"
	}
	fmt.Fprintf(&sb, "# Run %s\n\n", snap.RunID)
	fmt.Fprintf(&sb, "The mouse **%s** of a %s maze at %s facing %s.\n\n",
		outcome, snap.Bounds, snap.Position, snap.Heading)

	c := snap.Counters
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Ticks | %d |\n", c.Ticks)
	fmt.Fprintf(&sb, "| Moves | %d |\n", c.Moves)
	fmt.Fprintf(&sb, "| Blocked moves | %d |\n", c.Blocked)
	fmt.Fprintf(&sb, "| Turns | %d |\n", c.Turns)
	fmt.Fprintf(&sb, "| Dead ends | %d |\n", c.DeadEnds)
	if !snap.StartedAt.IsZero() && !snap.UpdatedAt.IsZero() {
		fmt.Fprintf(&sb, "| Duration | %s |\n", snap.UpdatedAt.Sub(snap.StartedAt).Round(time.Millisecond))
	}
	return sb.String()
}
