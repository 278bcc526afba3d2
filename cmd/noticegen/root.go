package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oss-works/noticegen/pkg/config"
	"oss-works/noticegen/pkg/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "noticegen",
	Short: "noticegen - OSS attribution document generator",
	Long: `noticegen generates open-source attribution documents from a component
inventory.

It reads third-party components from XLSX, CSV, JSON, or YAML, groups them
by license expression, resolves each expression (including AND/OR/WITH
combinations) into full license texts, and writes a single attribution
file ready to ship with a release.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "noticegen.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the project configuration and installs the logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	if _, err := logging.Setup(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
	}); err != nil {
		return nil, err
	}

	return cfg, nil
}
