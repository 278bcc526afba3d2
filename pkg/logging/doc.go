// Package logging configures the process-wide structured logger.
//
// Setup installs a *slog.Logger as the default; the console format is meant
// for interactive use, json and text for machine consumption.
package logging
