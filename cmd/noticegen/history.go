package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oss-works/noticegen/pkg/cli"
	"oss-works/noticegen/pkg/history"
)

var historyFlags struct {
	limit  int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generation runs",
	Long: `List recent generation runs recorded in the history database, newest
first.

Examples:
  noticegen history
  noticegen history --limit 5 --format json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 20, "maximum number of runs to list")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	store, err := history.NewStore(cfg.History.Path)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer store.Close()

	records, err := store.List(context.Background(), historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	if historyFlags.format == string(cli.FormatJSON) {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Println("No generation runs recorded.")
		return nil
	}
	for _, record := range records {
		fmt.Printf("%s  %s\n", record.StartedAt.Format("2006-01-02 15:04:05"), record.ID)
		fmt.Printf("  %s -> %s\n", record.InputPath, record.OutputPath)
		fmt.Printf("  %d components, %d groups, %d missing, %s\n",
			record.Components, record.Groups, len(record.Missing), record.Duration)
	}
	return nil
}
