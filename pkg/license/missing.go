package license

import (
	"sort"
	"strings"
	"sync"
)

// MissingSet accumulates license identifiers that were requested during
// rendering but absent from the store. It is an explicit accumulator passed
// into the resolver rather than hidden resolver state, so a single run can
// collect across many render calls and report once at the end.
//
// The set is safe for concurrent use; identifiers keep the case they were
// first requested with, and duplicates collapse case-insensitively.
type MissingSet struct {
	mu  sync.Mutex
	ids map[string]string // lowercased id -> original-case id
}

// NewMissingSet creates an empty accumulator.
func NewMissingSet() *MissingSet {
	return &MissingSet{ids: make(map[string]string)}
}

// Add records an unresolved identifier.
func (m *MissingSet) Add(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(id)
	if _, ok := m.ids[key]; !ok {
		m.ids[key] = id
	}
}

// IDs returns the recorded identifiers in their original case, sorted.
func (m *MissingSet) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.ids))
	for _, id := range m.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of distinct unresolved identifiers.
func (m *MissingSet) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.ids)
}
