// Package gitsource syncs shared license and template configuration from a
// central git repository before generation.
package gitsource
