// Package store wraps a DuckDB-backed local cache of finished summaries,
// keyed by a SHA-256 hash of the input document's bytes and its resolved
// configuration (computed by the caller) — the
// dominant cost of this pipeline is the mining/SVD pair, so a repeated run
// against an unchanged document should not re-pay it.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"
)

// DefaultDir is the cache directory created relative to the working
// directory, mirroring the teacher's repo-relative ".rekal/" convention.
const DefaultDir = ".textloom"

// Open opens (or creates) the cache DB at <dir>/cache.db and ensures its
// schema exists.
func Open(dir string) (*sql.DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, "cache.db")
	d, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db %s: %w", path, err)
	}
	if err := d.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("ping cache db %s: %w", path, err)
	}
	if err := InitSchema(d); err != nil {
		d.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return d, nil
}

// Row is one cached summary record.
type Row struct {
	Hash      string
	RunID     string
	CreatedAt time.Time
	Payload   []byte
}

// Lookup returns the cached payload for hash, if any.
func Lookup(d *sql.DB, hash string) (payload []byte, found bool, err error) {
	err = d.QueryRow("SELECT payload FROM summaries WHERE hash = $1", hash).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup summary: %w", err)
	}
	return payload, true, nil
}

// Put inserts or replaces the cached payload for hash under runID.
func Put(d *sql.DB, hash, runID string, payload []byte) error {
	_, err := d.Exec(
		`INSERT INTO summaries (hash, run_id, created_at, payload)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (hash) DO UPDATE SET run_id = $2, created_at = $3, payload = $4`,
		hash, runID, time.Now().UTC(), payload,
	)
	if err != nil {
		return fmt.Errorf("put summary: %w", err)
	}
	return nil
}

// List returns every cached run, most recent first.
func List(d *sql.DB) ([]Row, error) {
	rows, err := d.Query("SELECT hash, run_id, created_at FROM summaries ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var result []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Hash, &r.RunID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Clear truncates the cache entirely.
func Clear(d *sql.DB) error {
	if _, err := d.Exec("DELETE FROM summaries"); err != nil {
		return fmt.Errorf("clear summaries: %w", err)
	}
	return nil
}

// LastVersionCheck returns the last time the CLI checked GitHub for a
// newer release. The zero Time is returned if no check has been recorded
// yet, which callers treat as "check is due".
func LastVersionCheck(d *sql.DB) (time.Time, error) {
	var t time.Time
	err := d.QueryRow("SELECT last_check_time FROM version_check WHERE id = 0").Scan(&t)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("lookup last version check: %w", err)
	}
	return t, nil
}

// SetLastVersionCheck records t as the most recent version-check time.
func SetLastVersionCheck(d *sql.DB, t time.Time) error {
	_, err := d.Exec(
		`INSERT INTO version_check (id, last_check_time) VALUES (0, $1)
		 ON CONFLICT (id) DO UPDATE SET last_check_time = $1`,
		t,
	)
	if err != nil {
		return fmt.Errorf("set last version check: %w", err)
	}
	return nil
}
