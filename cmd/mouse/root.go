package main

import (
	"fmt"
	"os"

	"github.com/aretw0/micromouse/internal/cli"
	"github.com/aretw0/micromouse/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "mouse",
	Short: "mouse is a left-hand-rule micromouse agent",
	Long: `mouse follows the left wall of a micromouse maze until it stands on a center cell.
It talks to the mms simulator over stdin/stdout, or runs against a built-in simulated maze.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())
}

// addConfigFlags registers the flags shared by every command.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to the YAML config file (default micromouse.yaml if present)")
	flags.String("env-file", "", "Path to a dotenv file (default .env if present)")
	flags.Bool("debug", false, "Log every event at debug level")
	flags.BoolP("quiet", "q", false, "Only print warnings and errors")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Int("step-limit", 0, "Stop after this many ticks (0 means unbounded)")
	flags.String("store", "", "Run store: memory, file or redis")
	flags.String("store-path", "", "Directory of the file store")
	flags.String("redis-addr", "", "Address of the redis store")
	flags.String("status-addr", "", "Serve the status API on this address")
	flags.String("run-id", "", "Run identifier (default a random UUID)")
}

// flagOverrides maps persistent flags onto configuration fields.
var flagOverrides = map[string]func(cmd *cobra.Command, name string, cfg *config.Config){
	"log-level":   func(c *cobra.Command, n string, cfg *config.Config) { cfg.LogLevel, _ = c.Flags().GetString(n) },
	"step-limit":  func(c *cobra.Command, n string, cfg *config.Config) { cfg.StepLimit, _ = c.Flags().GetInt(n) },
	"store":       func(c *cobra.Command, n string, cfg *config.Config) { cfg.Store, _ = c.Flags().GetString(n) },
	"store-path":  func(c *cobra.Command, n string, cfg *config.Config) { cfg.StorePath, _ = c.Flags().GetString(n) },
	"redis-addr":  func(c *cobra.Command, n string, cfg *config.Config) { cfg.RedisAddr, _ = c.Flags().GetString(n) },
	"status-addr": func(c *cobra.Command, n string, cfg *config.Config) { cfg.StatusAddr, _ = c.Flags().GetString(n) },
}

// loadOptions resolves the configuration for cmd: file and environment first, flags last.
func loadOptions(cmd *cobra.Command, extra func(*config.Config)) (cli.Options, error) {
	path, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(path, envFile)
	if err != nil {
		return cli.Options{}, err
	}
	for name, apply := range flagOverrides {
		if cmd.Flags().Changed(name) {
			apply(cmd, name, cfg)
		}
	}
	if extra != nil {
		extra(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Options{}, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	quiet, _ := cmd.Flags().GetBool("quiet")
	runID, _ := cmd.Flags().GetString("run-id")
	return cli.Options{
		Config:  cfg,
		Debug:   debug,
		Quiet:   quiet,
		RunID:   runID,
		Context: cmd.Context(),
	}, nil
}
