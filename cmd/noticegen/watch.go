package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oss-works/noticegen/pkg/cli"
	"oss-works/noticegen/pkg/config"
	"oss-works/noticegen/pkg/history"
	"oss-works/noticegen/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate automatically when inputs change",
	Long: `Watch the component inventory, the licenses file, and the template file,
and regenerate the attribution document after each change. Changes are
debounced so a burst of editor saves produces one regeneration.

When history pruning is scheduled (history.prune_schedule), the retention
policy also runs on that cron schedule while watching.

Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	ctx := cli.SetupSignalHandler()

	// Initial pass so the document exists before the first change.
	summary, err := runGeneration(ctx, cfg)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	fmt.Printf("Attribution file written to %s (%d components, %d groups)\n",
		cfg.Files.Output, summary.Components, summary.Groups)

	if cfg.History.Enabled && cfg.History.PruneSchedule != "" {
		store, err := history.NewStore(cfg.History.Path)
		if err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer store.Close()

		scheduler := history.NewScheduler(history.NewPruner(store, history.PrunerConfig{
			RetentionDays: cfg.History.RetentionDays,
			MaxRecords:    cfg.History.MaxRecords,
			PruneSchedule: cfg.History.PruneSchedule,
		}))
		if err := scheduler.Start(ctx); err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer scheduler.Stop()
	}

	watcher, err := watch.NewFileWatcher(&watch.FileWatcherConfig{
		Paths:            watchPaths(cfg),
		DebounceInterval: cfg.Watch.DebounceInterval,
		Extensions:       cfg.Watch.Extensions,
		SkipHidden:       true,
	}, nil)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	fmt.Println("Watching for changes (Ctrl-C to stop)...")
	err = watcher.Watch(ctx, func() error {
		summary, err := runGeneration(ctx, cfg)
		if err != nil {
			return err
		}
		fmt.Printf("Regenerated %s (%d components, %d groups)\n",
			cfg.Files.Output, summary.Components, summary.Groups)
		return nil
	})
	if err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// watchPaths lists the inputs whose changes trigger regeneration. Files
// synced from a git source are excluded; they change on sync, not on disk
// edits.
func watchPaths(cfg *config.Config) []string {
	candidates := []string{cfg.Files.Input, cfgFile}
	if cfg.GitSource.URL == "" {
		candidates = append(candidates, cfg.Files.Licenses, cfg.Files.Templates)
	}

	// The template file is optional; only watch paths that exist.
	var paths []string
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}
