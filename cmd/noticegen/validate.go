package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"oss-works/noticegen/pkg/cli"
	"oss-works/noticegen/pkg/component"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and inputs without generating",
	Long: `Check that the project configuration, the template file, the licenses
file, and the component inventory all load cleanly. Nothing is written.

Examples:
  noticegen validate
  noticegen validate --config configs/release.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}
	fmt.Printf("✓ Configuration: %s\n", cfgFile)

	if _, err := buildGenerator(context.Background(), cfg); err != nil {
		return cli.NewCommandError("validate", err)
	}
	fmt.Printf("✓ Licenses: %s\n", cfg.Files.Licenses)
	fmt.Printf("✓ Templates: %s\n", cfg.Files.Templates)

	components, err := component.NewLoader().LoadFile(cfg.Files.Input)
	if err != nil {
		return cli.NewInputError(cfg.Files.Input, err)
	}
	fmt.Printf("✓ Inventory: %s (%d components)\n", cfg.Files.Input, len(components))

	return nil
}
