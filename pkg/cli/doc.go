// Package cli provides shared command-line plumbing: typed errors, output
// formatters, and signal handling for watch mode.
package cli
