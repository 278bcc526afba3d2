package attribution

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"oss-works/noticegen/pkg/component"
	"oss-works/noticegen/pkg/config"
	"oss-works/noticegen/pkg/license"
	"oss-works/noticegen/pkg/template"
)

// UnspecifiedLicenseKey is the group key for components without a license
// expression. Those components are still listed; their group renders the
// not-provided notice instead of a license text.
const UnspecifiedLicenseKey = "UNSPECIFIED_LICENSE"

// Summary describes one generation run.
type Summary struct {
	Components int           `json:"components"`
	Groups     int           `json:"groups"`
	Missing    []string      `json:"missing_licenses"`
	Duration   time.Duration `json:"duration"`
}

// Generator assembles the attribution document from components, templates,
// and resolved license texts.
type Generator struct {
	resolver     *license.Resolver
	templates    *template.Set
	project      config.ProjectConfig
	serialStarts map[string]int
	logger       *slog.Logger
}

// NewGenerator creates a generator. serialStarts maps a license expression to
// the serial number its component listing starts at; absent entries start
// at 1.
func NewGenerator(resolver *license.Resolver, templates *template.Set,
	project config.ProjectConfig, serialStarts map[string]int) *Generator {
	return &Generator{
		resolver:     resolver,
		templates:    templates,
		project:      project,
		serialStarts: serialStarts,
		logger:       slog.Default().With("component", "attribution.generator"),
	}
}

// GroupByLicense groups components by their exact license expression. Blank
// expressions group under UnspecifiedLicenseKey.
func GroupByLicense(components []component.Component) map[string][]component.Component {
	grouped := make(map[string][]component.Component)
	for _, comp := range components {
		key := strings.TrimSpace(comp.License)
		if key == "" {
			key = UnspecifiedLicenseKey
		}
		grouped[key] = append(grouped[key], comp)
	}
	return grouped
}

// sortedGroupKeys returns the group keys in case-insensitive order, ties
// broken by the original casing so the output is deterministic.
func sortedGroupKeys(grouped map[string][]component.Component) []string {
	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Generate renders the full attribution document and returns it with a run
// summary. Rendering never fails; data problems degrade to placeholder text
// and are reported through the summary and the log.
func (g *Generator) Generate(components []component.Component) (string, *Summary) {
	started := time.Now()

	if len(components) == 0 {
		return "No components to attribute.", &Summary{Duration: time.Since(started)}
	}

	grouped := GroupByLicense(components)
	keys := sortedGroupKeys(grouped)
	missing := license.NewMissingSet()

	projectParams := map[string]string{
		"project_name":           g.project.Name,
		"copyright_holder_full":  g.project.CopyrightHolderFull,
		"copyright_holder_short": g.project.CopyrightHolderShort,
	}

	parts := []string{g.templates.Render(template.SlotHeader, projectParams), ""}

	for i, key := range keys {
		if i > 0 {
			parts = append(parts, "", g.templates.Get(template.SlotInterLicenseSeparator), "")
		}
		parts = append(parts, g.renderGroup(key, grouped[key], missing)...)
	}

	parts = append(parts, "", g.templates.Render(template.SlotFooter, projectParams), "")

	summary := &Summary{
		Components: len(components),
		Groups:     len(keys),
		Missing:    missing.IDs(),
		Duration:   time.Since(started),
	}

	g.logger.Info("attribution document generated",
		"components", summary.Components,
		"groups", summary.Groups,
		"missing_licenses", len(summary.Missing),
		"duration", summary.Duration)

	return strings.Join(parts, "\n"), summary
}

// renderGroup renders one license group: group header, numbered component
// listing with modification notices, the resolved license text, and the
// others-URL section where applicable.
func (g *Generator) renderGroup(key string, comps []component.Component, missing *license.MissingSet) []string {
	parts := []string{g.templates.Render(template.SlotLicenseGroupHeader, map[string]string{
		"license_id":             key,
		"copyright_holder_short": g.project.CopyrightHolderShort,
	})}

	type othersEntry struct {
		serial int
		name   string
		url    string
	}
	var othersEntries []othersEntry

	serial := g.serialStart(key)
	for _, comp := range comps {
		version := comp.Version
		if version == "" {
			version = "N/A"
		}
		parts = append(parts, g.templates.Render(template.SlotComponentListing, map[string]string{
			"serial_number":       strconv.Itoa(serial),
			"name":                comp.Name,
			"version":             version,
			"copyright":           comp.Copyright,
			"modification_notice": g.modificationNotice(comp),
		}))

		if comp.OthersURL != "" {
			othersEntries = append(othersEntries, othersEntry{serial, comp.Name, comp.OthersURL})
		}
		serial++
	}

	parts = append(parts, "")

	licenseText := license.NotProvidedText
	if key != UnspecifiedLicenseKey {
		licenseText = g.resolver.RenderExpression(key, missing)
	}
	parts = append(parts, g.templates.Render(template.SlotLicenseGroupFooter, map[string]string{
		"license_id":   key,
		"license_text": licenseText,
	}))

	// The others-URL section only applies to groups whose expression
	// actually references the catch-all pseudo-license.
	if strings.Contains(strings.ToLower(key), "others") && len(othersEntries) > 0 {
		parts = append(parts, g.templates.Get(template.SlotOthersURLSectionHeader))
		for _, entry := range othersEntries {
			parts = append(parts, g.templates.Render(template.SlotOthersURLItem, map[string]string{
				"component_serial_number": strconv.Itoa(entry.serial),
				"component_name":          entry.name,
				"others_url":              entry.url,
			}))
		}
		parts = append(parts, "")
	}

	return parts
}

// serialStart returns the first serial number for a license group.
func (g *Generator) serialStart(key string) int {
	if start, ok := g.serialStarts[key]; ok && start >= 1 {
		return start
	}
	return 1
}

// modificationNotice builds the indented notice appended to a modified
// component's listing, or "" for unmodified components.
func (g *Generator) modificationNotice(comp component.Component) string {
	if !comp.Modified {
		return ""
	}
	notice := fmt.Sprintf("\n     This software was modified by %s", g.project.CopyrightHolderShort)
	if comp.ModifiedURL != "" {
		return fmt.Sprintf("%s, you may find the modified code at %s", notice, comp.ModifiedURL)
	}
	return notice + "."
}

// GenerateToFile renders the document and writes it to path.
func (g *Generator) GenerateToFile(components []component.Component, path string) (*Summary, error) {
	document, summary := g.Generate(components)
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write attribution file %q: %w", path, err)
	}
	g.logger.Info("attribution file written", "path", path)
	return summary, nil
}
