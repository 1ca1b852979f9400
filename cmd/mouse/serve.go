package main

import (
	"github.com/aretw0/micromouse/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stored runs over HTTP",
	Long: `Exposes the configured run store: /healthz, /info, /runs, /runs/{id} and /metrics.
Point it at the file or redis store that a run writes to.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, nil)
		if err != nil {
			return err
		}
		return cli.Serve(opts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
