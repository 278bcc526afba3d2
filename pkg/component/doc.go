// Package component loads third-party component inventories from input
// files.
//
// Supported formats are JSON and YAML (a bare list or a mapping with a
// components key), CSV, and Excel spreadsheets. Tabular formats resolve
// their header row to component fields through an explicit ordered list of
// (pattern, field) rules, so the mapping is deterministic no matter how the
// columns are named or ordered. Cell values are cleaned of spreadsheet
// artifacts, and the modified flag accepts the usual loose truthy
// spellings.
//
// Rows without a component name are skipped with a warning; a missing
// license expression is tolerated here and reported during generation.
package component
