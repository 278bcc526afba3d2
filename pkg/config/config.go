package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Config is the root configuration for noticegen, normally loaded from
// noticegen.yaml.
type Config struct {
	// Project identifies the project the attribution document is for.
	Project ProjectConfig `yaml:"project"`

	// Files locates the input inventory, the output document, and the
	// license/template configuration files.
	Files FilesConfig `yaml:"files"`

	// Rendering tunes how license texts are emitted.
	Rendering RenderingConfig `yaml:"rendering"`

	// SerialStarts maps a license expression to the serial number its
	// component listing starts at. Useful when a group continues numbering
	// from a previous document revision; reset with `noticegen reset-serials`.
	SerialStarts map[string]int `yaml:"license_serial_starts"`

	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// History configures the sqlite generation-run history.
	History HistoryConfig `yaml:"history"`

	// Watch configures watch mode.
	Watch WatchConfig `yaml:"watch"`

	// GitSource optionally syncs license and template configuration from a
	// central git repository before generation.
	GitSource GitSourceConfig `yaml:"git_source"`
}

// ProjectConfig holds the values substituted into header/footer templates.
type ProjectConfig struct {
	Name                 string `yaml:"name"`
	CopyrightHolderFull  string `yaml:"copyright_holder_full"`
	CopyrightHolderShort string `yaml:"copyright_holder_short"`
}

// FilesConfig holds the file paths of a generation run.
type FilesConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Licenses  string `yaml:"licenses"`
	Templates string `yaml:"templates"`
}

// RenderingConfig tunes license text rendering.
type RenderingConfig struct {
	// OmitHeaders drops the "For license: <id>" header above each resolved
	// text. Exception texts keep their header regardless.
	OmitHeaders bool `yaml:"omit_headers"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text, console
}

// HistoryConfig configures the generation-run history store.
type HistoryConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Path          string `yaml:"path"`
	RetentionDays int    `yaml:"retention_days"`
	MaxRecords    int    `yaml:"max_records"`
	PruneSchedule string `yaml:"prune_schedule"` // cron expression, watch mode only
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	DebounceInterval time.Duration `yaml:"debounce_interval"`
	Extensions       []string      `yaml:"extensions"`
}

// GitSourceConfig configures the optional central license-config repository.
type GitSourceConfig struct {
	URL      string `yaml:"url"`
	Branch   string `yaml:"branch"`
	Path     string `yaml:"path"` // subdirectory within the repository
	CacheDir string `yaml:"cache_dir"`
}

// ApplyDefaults fills in default values for unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Files.Input == "" {
		cfg.Files.Input = "components.xlsx"
	}
	if cfg.Files.Output == "" {
		cfg.Files.Output = "ATTRIBUTIONS.txt"
	}
	if cfg.Files.Licenses == "" {
		cfg.Files.Licenses = "licenses.yaml"
	}
	if cfg.Files.Templates == "" {
		cfg.Files.Templates = "templates.yaml"
	}
	if cfg.SerialStarts == nil {
		cfg.SerialStarts = make(map[string]int)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "data/noticegen-history.db"
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = 90
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = 250 * time.Millisecond
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = []string{".yaml", ".yml", ".json", ".csv", ".xlsx", ".xls"}
	}
	if cfg.GitSource.Branch == "" {
		cfg.GitSource.Branch = "main"
	}
}

// Validate checks the configuration for inconsistencies. It is called after
// defaults have been applied.
func Validate(cfg *Config) error {
	if cfg.Project.Name == "" {
		return fmt.Errorf("project.name is required")
	}
	if cfg.Project.CopyrightHolderFull == "" {
		return fmt.Errorf("project.copyright_holder_full is required")
	}
	if cfg.Project.CopyrightHolderShort == "" {
		cfg.Project.CopyrightHolderShort = cfg.Project.CopyrightHolderFull
	}

	for expr, start := range cfg.SerialStarts {
		if start < 1 {
			return fmt.Errorf("license_serial_starts[%q] = %d, must be >= 1", expr, start)
		}
	}

	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must not be negative")
	}
	if cfg.History.MaxRecords < 0 {
		return fmt.Errorf("history.max_records must not be negative")
	}
	if cfg.History.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.History.PruneSchedule); err != nil {
			return fmt.Errorf("history.prune_schedule %q is not a valid cron expression: %w",
				cfg.History.PruneSchedule, err)
		}
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval must not be negative")
	}

	if cfg.GitSource.URL != "" && cfg.GitSource.CacheDir == "" {
		return fmt.Errorf("git_source.cache_dir is required when git_source.url is set")
	}

	return nil
}
