/*
Package sqlite persists saved calendar configurations.

PURPOSE:
  The derivation engine is pure and reads nothing from disk; what workers
  save between sessions is the configuration blob the factory package parses.
  This store keeps those blobs as opaque JSON keyed by id, so the caller can
  list, reload, update and delete named configurations.

KEY TABLE:
  calendar_configs: id, name, year, config_json, timestamps

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of the single connection pool.

USAGE:
  store, err := sqlite.New("./data/jornada.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  rec, err := store.SaveConfig(ctx, sqlite.ConfigRecord{
      Name:       "turno 2025",
      Year:       2025,
      ConfigJSON: blob,
  })

SEE ALSO:
  - factory/config.go: Parses ConfigJSON blobs loaded from this store
  - api/handlers.go: The only caller; the engine itself never touches storage
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store persists calendar configurations in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// ConfigRecord is one saved configuration. ConfigJSON is opaque to the
// store; the factory package owns its schema.
type ConfigRecord struct {
	ID         string
	Name       string
	Year       int
	ConfigJSON string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calendar_configs (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		year        INTEGER NOT NULL,
		config_json TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calendar_configs_year
		ON calendar_configs(year);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveConfig inserts or updates a configuration. A record without an ID gets
// a fresh one; the returned record carries the assigned ID and timestamps.
func (s *Store) SaveConfig(ctx context.Context, rec ConfigRecord) (ConfigRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calendar_configs (id, name, year, config_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			year = excluded.year,
			config_json = excluded.config_json,
			updated_at = excluded.updated_at`,
		rec.ID, rec.Name, rec.Year, rec.ConfigJSON,
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return ConfigRecord{}, fmt.Errorf("failed to save configuration: %w", err)
	}

	saved, err := s.getConfigLocked(ctx, rec.ID)
	if err != nil {
		return ConfigRecord{}, err
	}
	return *saved, nil
}

// GetConfig returns a configuration by id, or nil if it does not exist.
func (s *Store) GetConfig(ctx context.Context, id string) (*ConfigRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getConfigLocked(ctx, id)
}

func (s *Store) getConfigLocked(ctx context.Context, id string) (*ConfigRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, year, config_json, created_at, updated_at
		FROM calendar_configs WHERE id = ?`, id)

	rec, err := scanConfig(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}
	return rec, nil
}

// ListConfigs returns all saved configurations, most recently updated first.
func (s *Store) ListConfigs(ctx context.Context) ([]ConfigRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, year, config_json, created_at, updated_at
		FROM calendar_configs ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	defer rows.Close()

	var records []ConfigRecord
	for rows.Next() {
		rec, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan configuration: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// DeleteConfig removes a configuration by id.
func (s *Store) DeleteConfig(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM calendar_configs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (*ConfigRecord, error) {
	var rec ConfigRecord
	var createdAt, updatedAt string
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Year, &rec.ConfigJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &rec, nil
}
