// Package corpus persists failing property-test cases in a local
// sqlite database so they can be inspected and replayed across runs.
package corpus

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lischenko/quicktheories/nanoid"
)

// Failure is one recorded counterexample.
type Failure struct {
	ID         string
	Property   string
	Seed       int64
	Trial      int
	Value      string
	RecordedAt time.Time
}

// Store is a handle to the failure database. Safe for use from
// multiple goroutines; sqlite serializes writers underneath.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS failures (
	id          TEXT PRIMARY KEY,
	property    TEXT NOT NULL,
	seed        INTEGER NOT NULL,
	trial       INTEGER NOT NULL,
	value       TEXT NOT NULL,
	recorded_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS failures_property ON failures(property);
`

// Open opens the failure store at path, creating the database file and
// any parent directories on first use.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating corpus directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing corpus schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts a failure. A zero ID or RecordedAt is filled in.
func (s *Store) Record(f Failure) error {
	if f.ID == "" {
		f.ID = nanoid.New()
	}
	if f.RecordedAt.IsZero() {
		f.RecordedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO failures (id, property, seed, trial, value, recorded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.Property, f.Seed, f.Trial, f.Value, f.RecordedAt)
	if err != nil {
		return fmt.Errorf("recording failure: %w", err)
	}
	return nil
}

// List returns recorded failures, newest first. An empty property
// matches all properties.
func (s *Store) List(property string) ([]Failure, error) {
	const base = `SELECT id, property, seed, trial, value, recorded_at FROM failures`

	var rows *sql.Rows
	var err error
	if property == "" {
		rows, err = s.db.Query(base + ` ORDER BY recorded_at DESC`)
	} else {
		rows, err = s.db.Query(base+` WHERE property = ? ORDER BY recorded_at DESC`, property)
	}
	if err != nil {
		return nil, fmt.Errorf("listing failures: %w", err)
	}
	defer rows.Close()

	return scanFailures(rows)
}

// ListSince returns failures recorded strictly after the given time,
// oldest first. Used to follow the store live.
func (s *Store) ListSince(after time.Time) ([]Failure, error) {
	rows, err := s.db.Query(
		`SELECT id, property, seed, trial, value, recorded_at FROM failures WHERE recorded_at > ? ORDER BY recorded_at`,
		after)
	if err != nil {
		return nil, fmt.Errorf("listing failures: %w", err)
	}
	defer rows.Close()

	return scanFailures(rows)
}

// Seeds returns the distinct seeds recorded for a property, for replay
// with proptest.RunSeeds.
func (s *Store) Seeds(property string) ([]int64, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT seed FROM failures WHERE property = ? ORDER BY seed`, property)
	if err != nil {
		return nil, fmt.Errorf("listing seeds: %w", err)
	}
	defer rows.Close()

	var seeds []int64
	for rows.Next() {
		var seed int64
		if err := rows.Scan(&seed); err != nil {
			return nil, fmt.Errorf("scanning seed: %w", err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, rows.Err()
}

// Clear deletes recorded failures and reports how many were removed.
// An empty property clears the whole store.
func (s *Store) Clear(property string) (int64, error) {
	var res sql.Result
	var err error
	if property == "" {
		res, err = s.db.Exec(`DELETE FROM failures`)
	} else {
		res, err = s.db.Exec(`DELETE FROM failures WHERE property = ?`, property)
	}
	if err != nil {
		return 0, fmt.Errorf("clearing failures: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanFailures(rows *sql.Rows) ([]Failure, error) {
	var out []Failure
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.ID, &f.Property, &f.Seed, &f.Trial, &f.Value, &f.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning failure: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
