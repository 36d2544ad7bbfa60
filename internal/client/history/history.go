package history

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SearchRecord is a past catalog search.
type SearchRecord struct {
	Query      string
	SearchedAt time.Time
}

// ViewRecord is a sneaker the user opened the detail view for.
type ViewRecord struct {
	SneakerID string
	Name      string
	ViewedAt  time.Time
}

// Store keeps local search and viewing history in SQLite. History is a
// convenience, not session state; it lives outside the encrypted store.
type Store struct {
	db *sql.DB
}

// New opens the history database at dbPath and applies migrations.
// Use ":memory:" for an in-memory database (useful for testing).
func New(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single writer; SQLite handles this workload fine with WAL
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	store := &Store{db: db}

	if err := store.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// RecordSearch stores a search query with the current timestamp.
func (s *Store) RecordSearch(ctx context.Context, query string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (query, searched_at) VALUES (?, ?)`,
		query, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// RecordView stores a sneaker detail view with the current timestamp.
func (s *Store) RecordView(ctx context.Context, sneakerID, name string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO views (sneaker_id, name, viewed_at) VALUES (?, ?, ?)`,
		sneakerID, name, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// RecentSearches returns up to limit past searches, newest first.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]SearchRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT query, searched_at FROM searches ORDER BY searched_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var records []SearchRecord
	for rows.Next() {
		var r SearchRecord
		if err := rows.Scan(&r.Query, &r.SearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate searches: %w", err)
	}
	return records, nil
}

// RecentlyViewed returns up to limit past detail views, newest first.
func (s *Store) RecentlyViewed(ctx context.Context, limit int) ([]ViewRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sneaker_id, name, viewed_at FROM views ORDER BY viewed_at DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query views: %w", err)
	}
	defer rows.Close()

	var records []ViewRecord
	for rows.Next() {
		var r ViewRecord
		if err := rows.Scan(&r.SneakerID, &r.Name, &r.ViewedAt); err != nil {
			return nil, fmt.Errorf("failed to scan view record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate views: %w", err)
	}
	return records, nil
}

// Clear deletes all history.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM searches`); err != nil {
		return fmt.Errorf("failed to clear searches: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM views`); err != nil {
		return fmt.Errorf("failed to clear views: %w", err)
	}
	return nil
}
