package main

import (
	"github.com/aretw0/micromouse/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the mouse in the mms simulator",
	Long: `Speaks the mms simulator protocol on stdin/stdout. Configure the simulator to
launch this command; diagnostics go to stderr, which mms shows in its output pane.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, nil)
		if err != nil {
			return err
		}
		return cli.RunSession(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// mms launches the binary without arguments.
	rootCmd.RunE = runCmd.RunE
}
