package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voyager-mc/voyager/foundation/config"
	"github.com/voyager-mc/voyager/foundation/log"
)

var (
	cfgFile  string
	logDir   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "voyager",
	Short: "Voyager - embodied agent platform utilities",
	Long: `Voyager platform utilities.

The controller, the agent modules, and the game bridge share one logging
facility: leveled namespaces, a colorized console stream, and rotating
per-component log files under a common directory.

Commands:
  selftest - exercise the logging pipeline end to end
  logs     - list (and optionally prune) files in the log directory
  version  - show build information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./voyager.toml if present)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "log directory (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "root log level (overrides environment and config file)")
}

// resolveConfig loads the configuration file and applies flag overrides.
func resolveConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "voyager.toml"
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if logDir != "" {
		cfg.Log.Dir = logDir
	}
	return cfg, nil
}

// resolveLevel applies the level precedence: the --log-level flag, then
// the environment (VOYAGER_LOG_LEVEL, LOG_LEVEL), then the config file.
// Unrecognized names resolve to INFO with a warning, never an error.
func resolveLevel(cfg *config.Config) log.Level {
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "voyager: %v, defaulting to %s\n", err, level)
		}
		return level
	}
	if level, set := log.LookupEnvLevel(); set {
		return level
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "voyager: %v, defaulting to %s\n", err, level)
	}
	return level
}
