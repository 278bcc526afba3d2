package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oss-works/noticegen/pkg/cli"
)

var generateFlags struct {
	input  string
	output string
	format string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the attribution document",
	Long: `Load the component inventory, resolve every license expression, and
write the attribution document.

Unresolved license ids do not abort generation: the document gets a
greppable placeholder for each, and the ids are listed in the summary so
the licenses file can be completed.

Examples:
  # Use the paths from noticegen.yaml
  noticegen generate

  # Override the inventory and output path
  noticegen generate --input inventory/components.csv --output NOTICE.txt

  # Machine-readable summary
  noticegen generate --format json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.input, "input", "i", "", "component inventory file (overrides config)")
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "output file (overrides config)")
	generateCmd.Flags().StringVar(&generateFlags.format, "format", "text", "summary format: text, json")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}
	if generateFlags.input != "" {
		cfg.Files.Input = generateFlags.input
	}
	if generateFlags.output != "" {
		cfg.Files.Output = generateFlags.output
	}

	summary, err := runGeneration(context.Background(), cfg)
	if err != nil {
		return cli.NewCommandError("generate", err)
	}

	if generateFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, summary)
	}

	fmt.Printf("Attribution file written to %s\n", cfg.Files.Output)
	fmt.Printf("  Components: %d\n", summary.Components)
	fmt.Printf("  License groups: %d\n", summary.Groups)
	fmt.Printf("  Duration: %s\n", summary.Duration)
	if len(summary.Missing) > 0 {
		fmt.Println()
		fmt.Printf("Warning: %d license id(s) have no text in %s:\n", len(summary.Missing), cfg.Files.Licenses)
		for _, id := range summary.Missing {
			fmt.Printf("  - %s\n", id)
		}
	}
	return nil
}
