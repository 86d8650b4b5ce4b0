// Package store persists search outcomes in SQLite so repeated (length, sum)
// requests are answered without searching again. Both outcomes are cached:
// a chain, and the fact that no chain exists.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrCorrupt is returned when a stored chain cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt entry")

// Entry is one cached outcome.
type Entry struct {
	Length    int    `json:"length"`
	Sum       int    `json:"sum"`
	Found     bool   `json:"found"`
	Values    []int  `json:"values,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Store is a SQLite-backed outcome cache.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS outcomes (
			target_length INTEGER NOT NULL,
			target_sum    INTEGER NOT NULL,
			found         INTEGER NOT NULL,
			chain         TEXT    NOT NULL DEFAULT '',
			created_at    TEXT    NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (target_length, target_sum)
		)
	`); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}

	return nil
}

// Get returns the cached outcome for (length, sum). ok is false on a miss.
func (s *Store) Get(ctx context.Context, length, sum int) (Entry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT target_length, target_sum, found, chain, created_at FROM outcomes WHERE target_length = ? AND target_sum = ?`,
		length, sum)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}

	return e, true, nil
}

// Put stores an outcome, replacing any previous one for the same key.
func (s *Store) Put(ctx context.Context, e Entry) error {
	found := 0
	if e.Found {
		found = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outcomes (target_length, target_sum, found, chain) VALUES (?, ?, ?, ?)
		ON CONFLICT (target_length, target_sum) DO UPDATE SET
			found = excluded.found,
			chain = excluded.chain,
			created_at = datetime('now')`,
		e.Length, e.Sum, found, encodeValues(e.Values))
	if err != nil {
		return fmt.Errorf("store: put (%d, %d): %w", e.Length, e.Sum, err)
	}

	return nil
}

// List returns every cached outcome ordered by (length, sum).
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT target_length, target_sum, found, chain, created_at FROM outcomes ORDER BY target_length, target_sum`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return out, nil
}

// Clear removes every cached outcome and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM outcomes`)
	if err != nil {
		return 0, fmt.Errorf("store: clear: %w", err)
	}

	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e     Entry
		found int
		raw   string
	)
	if err := sc.Scan(&e.Length, &e.Sum, &found, &raw, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("store: scan: %w", err)
	}
	e.Found = found != 0

	values, err := decodeValues(raw)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: (%d, %d): %v", ErrCorrupt, e.Length, e.Sum, err)
	}
	e.Values = values

	return e, nil
}

// encodeValues stores a chain as space-separated decimals.
func encodeValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func decodeValues(raw string) ([]int, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
