package main

import (
	"fmt"

	"github.com/aretw0/micromouse"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mouse",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mouse version %s\n", micromouse.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
