// Package sqlite provides a SQLite implementation of the LookupLog interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
	"github.com/ersonp/vgame-horizon/internal/domain/ports"
)

// DefaultRecentLimit is used when Recent is called with a non-positive limit.
const DefaultRecentLimit = 20

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.LookupLog using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

var _ ports.LookupLog = (*Repository)(nil)

// NewRepository opens the history database at path.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and
	// serializes writers from concurrent HTTP handlers.
	db.SetMaxOpenConns(1)

	pragmas := []struct {
		stmt string
		desc string
	}{
		{"PRAGMA journal_mode = WAL", "enabling WAL mode"},
		{"PRAGMA busy_timeout = 5000", "setting busy timeout"},
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p.stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p.desc, err)
		}
	}

	return &Repository{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS lookups (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		fallback TEXT,
		resolved_name TEXT,
		status TEXT NOT NULL,
		credits INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_lookups_created ON lookups(created_at);
	CREATE INDEX IF NOT EXISTS idx_lookups_status ON lookups(status);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Record inserts a lookup, assigning an ID and timestamp when they are unset.
func (r *Repository) Record(ctx context.Context, lookup *entities.Lookup) error {
	if lookup == nil {
		return errors.New("lookup is required")
	}
	if lookup.ID == "" {
		lookup.ID = uuid.New().String()
	}
	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = timeNow().UTC()
	}

	query := `
		INSERT INTO lookups (id, query, fallback, resolved_name, status, credits, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		lookup.ID,
		lookup.Query,
		nullString(lookup.Fallback),
		nullString(lookup.ResolvedName),
		lookup.Status,
		lookup.Credits,
		lookup.DurationMs,
		lookup.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("recording lookup: %w", err)
	}
	return nil
}

// Recent returns up to limit lookups, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]entities.Lookup, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := `
		SELECT id, query, fallback, resolved_name, status, credits, duration_ms, created_at
		FROM lookups
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying lookups: %w", err)
	}
	defer rows.Close()

	lookups := make([]entities.Lookup, 0, limit)
	for rows.Next() {
		var l entities.Lookup
		var fallback, resolved sql.NullString
		if err := rows.Scan(
			&l.ID,
			&l.Query,
			&fallback,
			&resolved,
			&l.Status,
			&l.Credits,
			&l.DurationMs,
			&l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning lookup: %w", err)
		}
		l.Fallback = fallback.String
		l.ResolvedName = resolved.String
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
