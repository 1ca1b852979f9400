package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the micromouse banner to w, colored when w supports it.
func PrintBanner(w io.Writer) {
	o := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{`            _                                        `, "#34d399"},
		{`  _ __ ___ (_) ___ _ __ ___  _ __ ___   ___  _   _ ___  ___ `, "#2dd4bf"},
		{` | '_ ' _ \| |/ __| '__/ _ \| '_ ' _ \ / _ \| | | / __|/ _ \`, "#22d3ee"},
		{` | | | | | | | (__| | | (_) | | | | | | (_) | |_| \__ \  __/`, "#38bdf8"},
		{` |_| |_| |_|_|\___|_|  \___/|_| |_| |_|\___/ \__,_|___/\___|`, "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, o.String(l.text).Foreground(o.Color(l.color)))
	}
	fmt.Fprintln(w)
}
