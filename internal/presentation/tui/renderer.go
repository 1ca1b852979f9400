package tui

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders markdown using glamour.
// Terminals get the auto-detected light or dark style; anything else gets plain text.
func NewRenderer(terminal bool) func(string) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle("notty"),
		glamour.WithColorProfile(termenv.Ascii),
	}
	if terminal {
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	r, err := glamour.NewTermRenderer(append(opts, glamour.WithWordWrap(80))...)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
