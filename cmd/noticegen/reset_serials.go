package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oss-works/noticegen/pkg/cli"
	"oss-works/noticegen/pkg/config"
)

var resetSerialsCmd = &cobra.Command{
	Use:   "reset-serials",
	Short: "Reset all license serial starts to 1",
	Long: `Reset every entry of license_serial_starts in the project configuration
back to 1 and save the file.

Serial starts let a group's component numbering continue from a previous
document revision; resetting them starts the next document from scratch.`,
	RunE: runResetSerials,
}

func init() {
	rootCmd.AddCommand(resetSerialsCmd)
}

func runResetSerials(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	if len(cfg.SerialStarts) == 0 {
		fmt.Println("No license serial starts configured; nothing to reset.")
		return nil
	}

	for key := range cfg.SerialStarts {
		cfg.SerialStarts[key] = 1
	}
	if err := config.Save(cfg, cfgFile); err != nil {
		return cli.NewCommandError("reset-serials", err)
	}

	fmt.Printf("Reset %d license serial start(s) to 1 in %s\n", len(cfg.SerialStarts), cfgFile)
	return nil
}
