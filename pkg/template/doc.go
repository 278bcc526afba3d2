// Package template manages the textual templates of the attribution document.
//
// The document is assembled from a fixed, enumerated set of named slots
// (header, component listing, license group header/footer, separators,
// footer). Each slot accepts a small fixed set of {name}-style substitution
// parameters; templates loaded from a YAML file are validated against that
// set at load time, so a misspelled placeholder is a configuration error
// rather than a silent formatting defect at generation time.
//
// Every slot has a built-in default, so a partial (or absent) template file
// still yields a complete document.
package template
