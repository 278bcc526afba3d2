// Package watch provides the debounced file watcher behind watch mode.
package watch
