package component

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader reads component lists from input files. The format is chosen by
// file extension: .json, .yaml/.yml, .csv, .xlsx/.xls.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a component loader.
func NewLoader() *Loader {
	return &Loader{
		logger: slog.Default().With("component", "component.loader"),
	}
}

// LoadFile loads components from the given path, dispatching on extension.
func (l *Loader) LoadFile(path string) ([]Component, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file %q not found: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return l.loadJSON(path)
	case ".yaml", ".yml":
		return l.loadYAML(path)
	case ".csv":
		return l.loadCSV(path)
	case ".xlsx", ".xls":
		return l.loadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input file extension %q", filepath.Ext(path))
	}
}

// documentShape covers the two accepted JSON/YAML layouts: a bare list of
// components, or a mapping with a components key.
type documentShape struct {
	Components []rawComponent `json:"components" yaml:"components"`
}

// rawComponent tolerates loose typing on the modified flag ("yes", 1, true).
type rawComponent struct {
	Name        string `json:"name" yaml:"name"`
	Copyright   string `json:"copyright" yaml:"copyright"`
	License     string `json:"license" yaml:"license"`
	Version     string `json:"version" yaml:"version"`
	OthersURL   string `json:"others_url" yaml:"others_url"`
	Modified    any    `json:"modified" yaml:"modified"`
	ModifiedURL string `json:"modified_url" yaml:"modified_url"`
}

func (l *Loader) loadJSON(path string) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var list []rawComponent
	if err := json.Unmarshal(data, &list); err != nil {
		var doc documentShape
		if err2 := json.Unmarshal(data, &doc); err2 != nil || doc.Components == nil {
			return nil, fmt.Errorf("invalid format in %q: expected a list or an object with a components key", path)
		}
		list = doc.Components
	}

	return l.normalize(path, list), nil
}

func (l *Loader) loadYAML(path string) ([]Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var list []rawComponent
	if err := yaml.Unmarshal(data, &list); err != nil {
		var doc documentShape
		if err2 := yaml.Unmarshal(data, &doc); err2 != nil || doc.Components == nil {
			return nil, fmt.Errorf("invalid format in %q: expected a list or a mapping with a components key", path)
		}
		list = doc.Components
	}

	return l.normalize(path, list), nil
}

// normalize cleans raw entries and drops the unusable ones.
func (l *Loader) normalize(path string, raw []rawComponent) []Component {
	components := make([]Component, 0, len(raw))
	for _, item := range raw {
		c := Component{
			Name:        cleanCell(item.Name),
			Copyright:   cleanCell(item.Copyright),
			License:     cleanCell(item.License),
			Version:     cleanCell(item.Version),
			OthersURL:   cleanCell(item.OthersURL),
			Modified:    looseBool(item.Modified),
			ModifiedURL: cleanCell(item.ModifiedURL),
		}
		if c.Name == "" {
			l.logger.Warn("skipping component with no name", "file", filepath.Base(path))
			continue
		}
		if c.License == "" {
			l.logger.Warn("component has no license expression", "name", c.Name, "file", filepath.Base(path))
		}
		components = append(components, c)
	}
	return components
}

// buildFromRow assembles a component from a tabular row using a column
// mapping produced by mapColumns.
func (l *Loader) buildFromRow(path string, mapping map[string]int, row []string) (Component, bool) {
	cell := func(field string) string {
		idx, ok := mapping[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return cleanCell(row[idx])
	}

	c := Component{
		Name:        cell(fieldName),
		Copyright:   cell(fieldCopyright),
		License:     cell(fieldLicense),
		Version:     cell(fieldVersion),
		OthersURL:   cell(fieldOthersURL),
		Modified:    looseBool(cell(fieldModified)),
		ModifiedURL: cell(fieldModifiedURL),
	}

	if c.Name == "" {
		return Component{}, false
	}
	if c.License == "" {
		l.logger.Warn("component has no license expression", "name", c.Name, "file", filepath.Base(path))
	}
	return c, true
}

// cleanCell strips spreadsheet artifacts (_x000d_ carriage-return escapes)
// and surrounding whitespace.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, "_x000d_", "")
	s = strings.ReplaceAll(s, "_x000D_", "")
	return strings.TrimSpace(s)
}

// looseBool coerces the assorted truthy spellings seen in real input files.
func looseBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case nil:
		return false
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "t", "y", "yes":
			return true
		}
		return false
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return false
	}
}
