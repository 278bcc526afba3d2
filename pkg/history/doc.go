// Package history records attribution generation runs in SQLite.
//
// Each run is stored with a uuid, its input/output paths, counts, the
// unresolved license ids, and the duration. A pruner applies the retention
// policy (age and record-count limits); in watch mode a cron scheduler
// drives it.
package history
