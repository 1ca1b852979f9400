package cli

import (
	"context"
	"io"
	"os"

	"github.com/aretw0/micromouse/internal/config"
)

// Options carries what every command needs: the resolved configuration and its streams.
type Options struct {
	Config *config.Config
	Debug  bool
	Quiet  bool
	RunID  string

	// Context is cancelled alongside SIGINT/SIGTERM. Defaults to context.Background().
	Context context.Context

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) withDefaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}
