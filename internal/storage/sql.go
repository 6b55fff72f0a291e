package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
	_ "modernc.org/sqlite"
)

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key VARCHAR PRIMARY KEY,
	value VARCHAR NOT NULL
)`

// SQLStore keeps keys in a two-column table. Both DuckDB and SQLite
// accept the same statements, so one implementation serves both.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// OpenDuckDB opens (or creates) a DuckDB database file at path.
func OpenDuckDB(path string) (*SQLStore, error) {
	return openSQL("duckdb", path)
}

// OpenSQLite opens (or creates) a SQLite database file at path.
func OpenSQLite(path string) (*SQLStore, error) {
	return openSQL("sqlite", path)
}

func openSQL(driver, path string) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", driver, err)
	}

	// A single writer keeps both engines happy with one process-wide file.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLStore{db: db, driver: driver}, nil
}

func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q from %s: %w", key, s.driver, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)`, key, value); err != nil {
		return fmt.Errorf("failed to write key %q to %s: %w", key, s.driver, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
