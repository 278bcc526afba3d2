package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// RunRecord describes one completed generation run.
type RunRecord struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	InputPath  string        `json:"input_path"`
	OutputPath string        `json:"output_path"`
	Components int           `json:"components"`
	Groups     int           `json:"groups"`
	Missing    []string      `json:"missing_licenses"`
	Duration   time.Duration `json:"duration"`
}

// Store persists generation runs in SQLite. It is suitable for a single
// process; SQLite only supports one writer.
type Store struct {
	db        *sql.DB
	dbPath    string
	mu        sync.RWMutex
	closeOnce sync.Once

	insertStmt *sql.Stmt
	listStmt   *sql.Stmt
}

// StoreConfig configures the history store.
type StoreConfig struct {
	// DBPath is the path to the SQLite database file. Parent directories
	// are created if needed.
	DBPath string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// NewStore opens (and if necessary creates) the run-history database.
func NewStore(dbPath string) (*Store, error) {
	return NewStoreWithConfig(StoreConfig{DBPath: dbPath})
}

// NewStoreWithConfig opens the history database with custom configuration.
func NewStoreWithConfig(cfg StoreConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.DBPath, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db, dbPath: cfg.DBPath}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := store.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	return store, nil
}

// initSchema creates the database schema if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generation_runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		components INTEGER NOT NULL,
		license_groups INTEGER NOT NULL,
		missing_licenses TEXT,
		duration_ms INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON generation_runs(started_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// prepareStatements prepares SQL statements for reuse.
func (s *Store) prepareStatements() error {
	var err error

	s.insertStmt, err = s.db.Prepare(`
		INSERT INTO generation_runs
			(id, started_at, input_path, output_path, components, license_groups, missing_licenses, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}

	s.listStmt, err = s.db.Prepare(`
		SELECT id, started_at, input_path, output_path, components, license_groups, missing_licenses, duration_ms
		FROM generation_runs
		ORDER BY started_at DESC
		LIMIT ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare list statement: %w", err)
	}

	return nil
}

// Record persists a run. A zero ID is filled in with a fresh uuid; a zero
// StartedAt with the current time. The stored record is returned.
func (s *Store) Record(ctx context.Context, record RunRecord) (RunRecord, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.StartedAt.IsZero() {
		record.StartedAt = time.Now()
	}

	missingJSON, err := json.Marshal(record.Missing)
	if err != nil {
		return RunRecord{}, fmt.Errorf("failed to marshal missing licenses: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.insertStmt.ExecContext(ctx,
		record.ID,
		record.StartedAt.Unix(),
		record.InputPath,
		record.OutputPath,
		record.Components,
		record.Groups,
		string(missingJSON),
		record.Duration.Milliseconds(),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("failed to record run: %w", err)
	}

	return record, nil
}

// List returns the most recent runs, newest first. limit <= 0 means a
// default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.listStmt.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var (
			record      RunRecord
			startedAt   int64
			missingJSON string
			durationMS  int64
		)
		if err := rows.Scan(&record.ID, &startedAt, &record.InputPath, &record.OutputPath,
			&record.Components, &record.Groups, &missingJSON, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		record.StartedAt = time.Unix(startedAt, 0)
		record.Duration = time.Duration(durationMS) * time.Millisecond
		if missingJSON != "" {
			if err := json.Unmarshal([]byte(missingJSON), &record.Missing); err != nil {
				return nil, fmt.Errorf("failed to unmarshal missing licenses: %w", err)
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Count returns the number of stored runs.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM generation_runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// DeleteOlderThan removes runs started before the cutoff and returns the
// number deleted.
func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM generation_runs WHERE started_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(deleted), nil
}

// DeleteExcess keeps only the newest maxRecords runs and returns the number
// deleted.
func (s *Store) DeleteExcess(ctx context.Context, maxRecords int) (int, error) {
	if maxRecords <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM generation_runs WHERE id NOT IN (
			SELECT id FROM generation_runs ORDER BY started_at DESC LIMIT ?
		)`, maxRecords)
	if err != nil {
		return 0, fmt.Errorf("failed to delete excess runs: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(deleted), nil
}

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	var closeErr error

	s.closeOnce.Do(func() {
		if s.insertStmt != nil {
			s.insertStmt.Close()
		}
		if s.listStmt != nil {
			s.listStmt.Close()
		}
		if s.db != nil {
			_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
			closeErr = s.db.Close()
		}
	})

	return closeErr
}
