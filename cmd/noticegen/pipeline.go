package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"oss-works/noticegen/pkg/attribution"
	"oss-works/noticegen/pkg/cli"
	"oss-works/noticegen/pkg/component"
	"oss-works/noticegen/pkg/config"
	"oss-works/noticegen/pkg/history"
	"oss-works/noticegen/pkg/license"
	"oss-works/noticegen/pkg/license/gitsource"
	"oss-works/noticegen/pkg/template"
)

// buildGenerator assembles the generator from the configured licenses and
// templates. When a git source is configured, the license and template
// files are synced from it first and resolved inside the cached clone.
func buildGenerator(ctx context.Context, cfg *config.Config) (*attribution.Generator, error) {
	licensesPath := cfg.Files.Licenses
	templatesPath := cfg.Files.Templates

	if cfg.GitSource.URL != "" {
		source, err := gitsource.New(cfg.GitSource)
		if err != nil {
			return nil, fmt.Errorf("git source: %w", err)
		}
		if _, err := source.Sync(ctx); err != nil {
			return nil, fmt.Errorf("git source sync: %w", err)
		}
		if licensesPath, err = source.Resolve(cfg.Files.Licenses); err != nil {
			return nil, fmt.Errorf("git source: %w", err)
		}
		// Templates are optional in the central repository; fall back to
		// the local path when absent.
		if resolved, err := source.Resolve(cfg.Files.Templates); err == nil {
			templatesPath = resolved
		}
	}

	store, err := license.LoadStore(licensesPath)
	if err != nil {
		return nil, err
	}

	templates, err := loadTemplates(templatesPath)
	if err != nil {
		return nil, err
	}

	resolver := license.NewResolver(store, license.ResolverConfig{
		IncludeHeaders: !cfg.Rendering.OmitHeaders,
	})

	return attribution.NewGenerator(resolver, templates, cfg.Project, cfg.SerialStarts), nil
}

// loadTemplates loads the template file, falling back to the built-in
// defaults when the file does not exist.
func loadTemplates(path string) (*template.Set, error) {
	set, err := template.Load(path)
	if err == nil {
		return set, nil
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		slog.Default().Debug("template file not found, using defaults", "path", path)
		return template.Defaults(), nil
	}
	return nil, err
}

// runGeneration executes a full generation pass: load inventory, render the
// document, write the output, and record the run in history if enabled.
func runGeneration(ctx context.Context, cfg *config.Config) (*attribution.Summary, error) {
	generator, err := buildGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	components, err := component.NewLoader().LoadFile(cfg.Files.Input)
	if err != nil {
		return nil, cli.NewInputError(cfg.Files.Input, err)
	}

	summary, err := generator.GenerateToFile(components, cfg.Files.Output)
	if err != nil {
		return nil, err
	}

	if cfg.History.Enabled {
		if err := recordRun(ctx, cfg, summary); err != nil {
			// History is bookkeeping; a failed insert must not fail the run.
			slog.Default().Warn("failed to record generation run", "error", err)
		}
	}

	return summary, nil
}

// recordRun stores one run in the history database and applies the
// retention policy inline.
func recordRun(ctx context.Context, cfg *config.Config, summary *attribution.Summary) error {
	store, err := history.NewStore(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.Record(ctx, history.RunRecord{
		InputPath:  cfg.Files.Input,
		OutputPath: cfg.Files.Output,
		Components: summary.Components,
		Groups:     summary.Groups,
		Missing:    summary.Missing,
		Duration:   summary.Duration,
	}); err != nil {
		return err
	}

	pruner := history.NewPruner(store, history.PrunerConfig{
		RetentionDays: cfg.History.RetentionDays,
		MaxRecords:    cfg.History.MaxRecords,
	})
	if _, err := pruner.Prune(ctx); err != nil {
		return err
	}
	return nil
}
