// Package config defines and loads the noticegen configuration.
//
// Configuration lives in a single YAML file (noticegen.yaml by default)
// with sections for project identity, file paths, rendering, serial-number
// starts, logging, run history, watch mode, and the optional git license
// source. Loading applies defaults, then validates; environment variables
// of the form NOTICEGEN_SECTION_FIELD override file values.
package config
