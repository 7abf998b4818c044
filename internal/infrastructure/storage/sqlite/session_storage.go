package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteSessionStorage stores session keys in a single-table SQLite
// database. Suits hosts where a state directory of loose files is
// undesirable.
type SQLiteSessionStorage struct {
	db *sql.DB
}

// NewSQLiteSessionStorage opens (or creates) the database and runs the
// schema migration.
func NewSQLiteSessionStorage(dbPath string) (*SQLiteSessionStorage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("session storage: open DB: %w", err)
	}

	ctx := context.Background()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session storage: set WAL: %w", err)
	}
	// Avoid "database is locked" when a write races a read
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session storage: set busy_timeout: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS session (
		key   TEXT PRIMARY KEY CHECK(length(key) > 0),
		value TEXT NOT NULL
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session storage: migrate: %w", err)
	}

	return &SQLiteSessionStorage{db: db}, nil
}

func (s *SQLiteSessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM session WHERE key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session storage: get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteSessionStorage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO session (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("session storage: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteSessionStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE key = ?", key); err != nil {
		return fmt.Errorf("session storage: delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteSessionStorage) Close() error {
	return s.db.Close()
}
