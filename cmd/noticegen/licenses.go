package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oss-works/noticegen/pkg/cli"
	"oss-works/noticegen/pkg/component"
	"oss-works/noticegen/pkg/license"
)

var licensesCmd = &cobra.Command{
	Use:   "licenses",
	Short: "List known license ids",
	Long: `List the license ids that have full texts in the licenses file.

Examples:
  noticegen licenses
  noticegen licenses missing`,
	RunE: runLicenses,
}

var licensesMissingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Report license ids used by the inventory but absent from the licenses file",
	RunE:  runLicensesMissing,
}

var licensesFlags struct {
	format string
}

func init() {
	rootCmd.AddCommand(licensesCmd)
	licensesCmd.AddCommand(licensesMissingCmd)

	licensesCmd.PersistentFlags().StringVar(&licensesFlags.format, "format", "text", "output format: text, json")
}

func runLicenses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	store, err := license.LoadStore(cfg.Files.Licenses)
	if err != nil {
		return cli.NewCommandError("licenses", err)
	}

	ids := store.IDs()
	if licensesFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, ids)
	}

	fmt.Printf("%d license(s) in %s:\n", len(ids), cfg.Files.Licenses)
	for _, id := range ids {
		fmt.Printf("  %s\n", id)
	}
	return nil
}

// runLicensesMissing renders every expression in the inventory against the
// store and reports the ids that did not resolve.
func runLicensesMissing(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	generator, err := buildGenerator(context.Background(), cfg)
	if err != nil {
		return cli.NewCommandError("licenses", err)
	}

	components, err := component.NewLoader().LoadFile(cfg.Files.Input)
	if err != nil {
		return cli.NewInputError(cfg.Files.Input, err)
	}

	_, summary := generator.Generate(components)

	if licensesFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, summary.Missing)
	}

	if len(summary.Missing) == 0 {
		fmt.Println("All license expressions resolve.")
		return nil
	}
	fmt.Printf("%d license id(s) missing from %s:\n", len(summary.Missing), cfg.Files.Licenses)
	for _, id := range summary.Missing {
		fmt.Printf("  %s\n", id)
	}
	return nil
}
