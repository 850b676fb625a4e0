// Package catalog persists named spring designs in SQLite.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/alexiusacademia/gospring/internal/spring"
	"github.com/alexiusacademia/gospring/internal/tables"
)

// ErrNotFound is returned when no design has the requested name
var ErrNotFound = errors.New("design not found")

const schema = `
CREATE TABLE IF NOT EXISTS designs (
	name TEXT PRIMARY KEY,
	family TEXT NOT NULL,
	description TEXT,
	data TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_designs_family ON designs(family);
`

// Entry is a stored design with its bookkeeping columns
type Entry struct {
	Design    spring.Design
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the SQLite design catalog
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the catalog database at path
func Open(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s, err := New(db, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Debug().Str("path", path).Msg("Catalog opened")
	return s, nil
}

// New wraps an open database, creating the schema if missing
func New(db *sql.DB, log zerolog.Logger) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts the design or replaces the one with the same name
func (s *Store) Save(ctx context.Context, d spring.Design) error {
	if err := d.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}

	var desc sql.NullString
	if d.Description != "" {
		desc = sql.NullString{String: d.Description, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO designs (name, family, description, data) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			family = excluded.family,
			description = excluded.description,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		d.Name, string(d.Family), desc, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save design: %w", err)
	}

	s.log.Debug().Str("name", d.Name).Str("family", string(d.Family)).Msg("Design saved")
	return nil
}

// Get retrieves a design by name
func (s *Store) Get(ctx context.Context, name string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT data, created_at, updated_at FROM designs WHERE name = ?",
		name,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("design %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get design: %w", err)
	}
	return e, nil
}

// List retrieves designs ordered by name. An empty family lists every family.
func (s *Store) List(ctx context.Context, family tables.Family) ([]*Entry, error) {
	query := "SELECT data, created_at, updated_at FROM designs"
	var args []any
	if family != "" {
		query += " WHERE family = ?"
		args = append(args, string(family))
	}
	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan design: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes a design by name
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM designs WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete design: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete design: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("design %q: %w", name, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (*Entry, error) {
	var (
		data      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := sc.Scan(&data, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	e := &Entry{CreatedAt: createdAt, UpdatedAt: updatedAt}
	if err := json.Unmarshal([]byte(data), &e.Design); err != nil {
		return nil, fmt.Errorf("failed to decode design: %w", err)
	}
	return e, nil
}
