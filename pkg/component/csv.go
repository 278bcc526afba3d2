package component

import (
	"encoding/csv"
	"fmt"
	"os"
)

// loadCSV reads a header row plus data rows. Column-to-field assignment
// goes through the ordered mapping rules, so header naming can vary.
func (l *Loader) loadCSV(path string) ([]Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file %q has no header row", path)
	}

	mapping, err := mapColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("CSV file %q: %w", path, err)
	}

	var components []Component
	for _, row := range rows[1:] {
		if c, ok := l.buildFromRow(path, mapping, row); ok {
			components = append(components, c)
		}
	}
	return components, nil
}
