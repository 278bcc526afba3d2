package template

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Slot identifies one of the fixed template sections of the attribution
// document. The set is closed: configuration files may override a slot's
// text but cannot invent new slots.
type Slot string

const (
	SlotHeader                 Slot = "header"
	SlotFooter                 Slot = "footer"
	SlotComponentListing       Slot = "component_listing"
	SlotLicenseGroupHeader     Slot = "license_group_header"
	SlotLicenseGroupFooter     Slot = "license_group_footer"
	SlotInterLicenseSeparator  Slot = "inter_license_separator"
	SlotOthersURLSectionHeader Slot = "others_url_section_header"
	SlotOthersURLItem          Slot = "others_url_item"
)

// slotPlaceholders enumerates the substitution parameters each slot accepts.
// Templates are validated against this table at load time so a typo fails
// fast instead of surfacing as a stray "{placeholdr}" in the output.
var slotPlaceholders = map[Slot][]string{
	SlotHeader:                 {"project_name", "copyright_holder_full", "copyright_holder_short"},
	SlotFooter:                 {"project_name", "copyright_holder_full", "copyright_holder_short"},
	SlotComponentListing:       {"serial_number", "name", "version", "copyright", "modification_notice"},
	SlotLicenseGroupHeader:     {"license_id", "copyright_holder_short"},
	SlotLicenseGroupFooter:     {"license_id", "license_text"},
	SlotInterLicenseSeparator:  {},
	SlotOthersURLSectionHeader: {},
	SlotOthersURLItem:          {"component_serial_number", "component_name", "others_url"},
}

// defaults are the built-in slot texts, used when a slot is absent from the
// template file (or when no file is supplied at all).
var defaults = map[Slot]string{
	SlotHeader:                 "Open Source Software Attribution\nProject: {project_name}\nCopyright (c) {copyright_holder_full}\n",
	SlotFooter:                 "\nEnd of Attribution File",
	SlotComponentListing:       "{serial_number}. {name} (v{version})\n{copyright}{modification_notice}",
	SlotLicenseGroupHeader:     "Components under license: {license_id}",
	SlotLicenseGroupFooter:     "License text for {license_id}:\n\n{license_text}",
	SlotInterLicenseSeparator:  strings.Repeat("=", 80),
	SlotOthersURLSectionHeader: "\nAdditional notices for the above components:",
	SlotOthersURLItem:          "  - Component {component_serial_number} ({component_name}): {others_url}",
}

// placeholderPattern matches {name}-style substitution tokens.
var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Set holds the loaded templates for every slot.
type Set struct {
	templates map[Slot]string
}

// Defaults returns a Set containing only the built-in templates.
func Defaults() *Set {
	return &Set{templates: make(map[Slot]string)}
}

// Load reads a templates YAML file mapping slot names to template strings.
// Unknown slot names and unknown placeholders are load errors; slots absent
// from the file keep their built-in defaults.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %q: %w", path, err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse template file %q: %w", path, err)
	}

	set := Defaults()
	for name, text := range raw {
		slot := Slot(name)
		allowed, ok := slotPlaceholders[slot]
		if !ok {
			return nil, fmt.Errorf("template file %q: unknown template slot %q", path, name)
		}
		if err := validatePlaceholders(slot, text, allowed); err != nil {
			return nil, fmt.Errorf("template file %q: %w", path, err)
		}
		set.templates[slot] = text
	}

	return set, nil
}

// validatePlaceholders checks that every {token} in text is allowed for the
// slot.
func validatePlaceholders(slot Slot, text string, allowed []string) error {
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		token := match[1]
		known := false
		for _, a := range allowed {
			if token == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("slot %q does not accept placeholder {%s}", slot, token)
		}
	}
	return nil
}

// Get returns the template text for a slot, falling back to the built-in
// default.
func (s *Set) Get(slot Slot) string {
	if text, ok := s.templates[slot]; ok {
		return text
	}
	return defaults[slot]
}

// Render substitutes params into the slot's template. Parameters not
// accepted by the slot are ignored; accepted parameters missing from params
// substitute as empty strings.
func (s *Set) Render(slot Slot, params map[string]string) string {
	text := s.Get(slot)
	for _, name := range slotPlaceholders[slot] {
		text = strings.ReplaceAll(text, "{"+name+"}", params[name])
	}
	return text
}

// Slots returns every known slot name, in document order.
func Slots() []Slot {
	return []Slot{
		SlotHeader,
		SlotLicenseGroupHeader,
		SlotComponentListing,
		SlotLicenseGroupFooter,
		SlotOthersURLSectionHeader,
		SlotOthersURLItem,
		SlotInterLicenseSeparator,
		SlotFooter,
	}
}
