package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention NOTICEGEN_SECTION_FIELD (e.g. NOTICEGEN_FILES_INPUT) and always
// take precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration back to a YAML file. Used by commands that
// mutate persisted state, such as reset-serials.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file %q: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies NOTICEGEN_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("NOTICEGEN_PROJECT_NAME"); val != "" {
		cfg.Project.Name = val
	}
	if val := os.Getenv("NOTICEGEN_PROJECT_COPYRIGHT_HOLDER_FULL"); val != "" {
		cfg.Project.CopyrightHolderFull = val
	}
	if val := os.Getenv("NOTICEGEN_PROJECT_COPYRIGHT_HOLDER_SHORT"); val != "" {
		cfg.Project.CopyrightHolderShort = val
	}

	if val := os.Getenv("NOTICEGEN_FILES_INPUT"); val != "" {
		cfg.Files.Input = val
	}
	if val := os.Getenv("NOTICEGEN_FILES_OUTPUT"); val != "" {
		cfg.Files.Output = val
	}
	if val := os.Getenv("NOTICEGEN_FILES_LICENSES"); val != "" {
		cfg.Files.Licenses = val
	}
	if val := os.Getenv("NOTICEGEN_FILES_TEMPLATES"); val != "" {
		cfg.Files.Templates = val
	}

	if val := os.Getenv("NOTICEGEN_RENDERING_OMIT_HEADERS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Rendering.OmitHeaders = b
		}
	}

	if val := os.Getenv("NOTICEGEN_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("NOTICEGEN_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	if val := os.Getenv("NOTICEGEN_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("NOTICEGEN_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}
	if val := os.Getenv("NOTICEGEN_HISTORY_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.RetentionDays = i
		}
	}
	if val := os.Getenv("NOTICEGEN_HISTORY_MAX_RECORDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.MaxRecords = i
		}
	}
	if val := os.Getenv("NOTICEGEN_HISTORY_PRUNE_SCHEDULE"); val != "" {
		cfg.History.PruneSchedule = val
	}

	if val := os.Getenv("NOTICEGEN_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}

	if val := os.Getenv("NOTICEGEN_GIT_SOURCE_URL"); val != "" {
		cfg.GitSource.URL = val
	}
	if val := os.Getenv("NOTICEGEN_GIT_SOURCE_BRANCH"); val != "" {
		cfg.GitSource.Branch = val
	}
	if val := os.Getenv("NOTICEGEN_GIT_SOURCE_PATH"); val != "" {
		cfg.GitSource.Path = val
	}
	if val := os.Getenv("NOTICEGEN_GIT_SOURCE_CACHE_DIR"); val != "" {
		cfg.GitSource.CacheDir = val
	}
}
