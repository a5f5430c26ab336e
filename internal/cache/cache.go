// Package cache stores compilation results keyed on the SHA-256 of the
// source text as read (no normalization), so re-running the compiler on unchanged input
// skips lexing/parsing/analysis/codegen entirely. It is backed by
// modernc.org/sqlite, a pure-Go SQLite driver, so the cache is a single
// portable file with no cgo toolchain dependency of its own.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite-backed cache of compilation results.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS results (
	source_hash TEXT PRIMARY KEY,
	run_id      TEXT NOT NULL,
	output      TEXT NOT NULL,
	is_error    INTEGER NOT NULL
);`

// Open creates or attaches to a cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key hashes the source text, byte for byte, into the cache's lookup key.
func Key(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Result is a previously-cached compilation outcome.
type Result struct {
	RunID   string
	Output  string
	IsError bool
}

// Lookup returns a cached result for key, if one exists.
func (s *Store) Lookup(key string) (Result, bool, error) {
	var r Result
	var isError int
	row := s.db.QueryRow(`SELECT run_id, output, is_error FROM results WHERE source_hash = ?`, key)
	if err := row.Scan(&r.RunID, &r.Output, &isError); err != nil {
		if err == sql.ErrNoRows {
			return Result{}, false, nil
		}
		return Result{}, false, err
	}
	r.IsError = isError != 0
	return r, true, nil
}

// Store records a compilation outcome under key, replacing any prior
// entry for the same source hash.
func (s *Store) Store(key string, r Result) error {
	isError := 0
	if r.IsError {
		isError = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO results (source_hash, run_id, output, is_error) VALUES (?, ?, ?, ?)
		 ON CONFLICT(source_hash) DO UPDATE SET run_id = excluded.run_id, output = excluded.output, is_error = excluded.is_error`,
		key, r.RunID, r.Output, isError,
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", key, err)
	}
	return nil
}
