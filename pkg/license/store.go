package license

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OthersDefinitionKey is the reserved licenses.yaml key holding the
// catch-all text rendered for the "others" pseudo-license.
const OthersDefinitionKey = "others_definition"

// othersFallback is rendered for "others" when no others_definition entry
// is configured.
const othersFallback = "[This component is subject to additional terms or conditions, " +
	"often specified by the copyright holder or in accompanying notices. These 'other' " +
	"terms should be detailed here, in a referenced document, or by defining " +
	"'others_definition' in your licenses.yaml. Specific URLs may be listed with " +
	"components below.]"

// Store holds the license-text lookup table. Keys are stored lowercased so
// lookups are case-insensitive; the values are full license texts.
type Store struct {
	texts  map[string]string
	source string
}

// NewStore creates a store from an in-memory table. Keys are lowercased on
// the way in. The source name is only used in placeholder error text.
func NewStore(texts map[string]string, source string) *Store {
	if source == "" {
		source = "licenses.yaml"
	}
	s := &Store{
		texts:  make(map[string]string, len(texts)),
		source: source,
	}
	for id, text := range texts {
		s.texts[strings.ToLower(id)] = text
	}
	return s
}

// LoadStore reads a licenses YAML file mapping license ids to full texts.
// A missing or malformed file is an error; the caller decides whether to
// continue with an empty store.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read license file %q: %w", path, err)
	}

	var texts map[string]string
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("failed to parse license file %q: %w", path, err)
	}

	return NewStore(texts, path), nil
}

// Get returns the text for a license id. The lookup is case-insensitive.
func (s *Store) Get(id string) (string, bool) {
	text, ok := s.texts[strings.ToLower(id)]
	return text, ok
}

// OthersDefinition returns the configured catch-all text for the "others"
// pseudo-license, or the built-in fallback when none is configured.
func (s *Store) OthersDefinition() string {
	if text, ok := s.texts[OthersDefinitionKey]; ok {
		return text
	}
	return othersFallback
}

// Source returns the origin of the table, for diagnostics.
func (s *Store) Source() string { return s.source }

// Len returns the number of license entries, excluding the others_definition
// entry.
func (s *Store) Len() int {
	n := len(s.texts)
	if _, ok := s.texts[OthersDefinitionKey]; ok {
		n--
	}
	return n
}

// IDs returns the known license ids (lowercased), sorted, excluding the
// others_definition entry.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.texts))
	for id := range s.texts {
		if id == OthersDefinitionKey {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
