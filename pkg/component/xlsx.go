package component

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads the first sheet of a spreadsheet: one header row, then one
// component per row. Cells come back as strings, so the same cleaning and
// boolean coercion as CSV input applies.
func (l *Loader) loadXLSX(path string) ([]Component, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %q has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %q: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("spreadsheet %q has no header row", path)
	}

	mapping, err := mapColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("spreadsheet %q: %w", path, err)
	}

	var components []Component
	for _, row := range rows[1:] {
		if c, ok := l.buildFromRow(path, mapping, row); ok {
			components = append(components, c)
		}
	}
	return components, nil
}
