package component

import (
	"fmt"
	"strings"
)

// Field names produced by column mapping.
const (
	fieldName        = "name"
	fieldCopyright   = "copyright"
	fieldLicense     = "license"
	fieldVersion     = "version"
	fieldOthersURL   = "others_url"
	fieldModified    = "modified"
	fieldModifiedURL = "modified_url"
)

// columnRule maps a header-name pattern to a component field. Rules are
// evaluated in order; the first rule matching a column wins, and the first
// column claiming a field wins. Keeping this an explicit ordered list makes
// the mapping deterministic regardless of header order in the input file.
type columnRule struct {
	pattern string
	field   string
	exact   bool // match the whole header instead of a substring
}

var columnRules = []columnRule{
	{pattern: "component_name", field: fieldName},
	{pattern: "name", field: fieldName, exact: true},
	{pattern: "copyright", field: fieldCopyright},
	{pattern: "license", field: fieldLicense},
	{pattern: "version", field: fieldVersion},
	{pattern: "others_url", field: fieldOthersURL},
	{pattern: "notice_url", field: fieldOthersURL},
	{pattern: "modified", field: fieldModified, exact: true},
	{pattern: "modified_url", field: fieldModifiedURL},
}

// requiredFields must all be claimed by some column for tabular input to be
// usable.
var requiredFields = []string{fieldName, fieldCopyright, fieldLicense}

// mapColumns assigns each header to a component field using columnRules.
// It returns field -> column index. Headers matching no rule are ignored;
// missing required fields are an error.
func mapColumns(headers []string) (map[string]int, error) {
	mapping := make(map[string]int)

	for idx, header := range headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		if normalized == "" {
			continue
		}
		for _, rule := range columnRules {
			if !rule.matches(normalized) {
				continue
			}
			if _, claimed := mapping[rule.field]; !claimed {
				mapping[rule.field] = idx
			}
			break
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns %v (headers: %v)", missing, headers)
	}

	return mapping, nil
}

func (r columnRule) matches(normalizedHeader string) bool {
	if r.exact {
		return normalizedHeader == r.pattern
	}
	return strings.Contains(normalizedHeader, r.pattern)
}
