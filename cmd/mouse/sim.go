package main

import (
	"github.com/aretw0/micromouse/internal/cli"
	"github.com/aretw0/micromouse/internal/config"
	"github.com/spf13/cobra"
)

var simCmd = &cobra.Command{
	Use:   "sim [maze.map]",
	Short: "Drive the mouse through a simulated maze",
	Long: `Runs the agent against an in-process maze, either read from a classic ASCII .map
file or generated from a seed, then prints the explored maze and a run summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, func(cfg *config.Config) {
			if cmd.Flags().Changed("width") {
				cfg.Sim.Width, _ = cmd.Flags().GetInt("width")
			}
			if cmd.Flags().Changed("height") {
				cfg.Sim.Height, _ = cmd.Flags().GetInt("height")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Sim.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if len(args) == 1 {
				cfg.Sim.MazeFile = args[0]
			}
		})
		if err != nil {
			return err
		}
		return cli.RunSim(opts)
	},
}

func init() {
	rootCmd.AddCommand(simCmd)

	simCmd.Flags().Int("width", 16, "Width of the generated maze")
	simCmd.Flags().Int("height", 16, "Height of the generated maze")
	simCmd.Flags().Int64("seed", 1, "Seed of the generated maze")
}
