// Package db provides the SQLite event repository.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/slotcheck/internal/event"
)

// MemoryDSN opens a private in-memory database. Events are gone when the
// repository is closed.
const MemoryDSN = ":memory:"

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ event.Repository = (*SQLite)(nil)

// Open creates an in-memory SQLite repository.
func Open(ctx context.Context) (*SQLite, error) {
	return New(ctx, MemoryDSN)
}

// New creates a new SQLite repository on dsn and runs migrations.
func New(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to :memory: gets its own database, so pin the pool
	// to a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Add appends an event.
func (s *SQLite) Add(ctx context.Context, e *event.Event) error {
	if e == nil {
		return nil
	}

	query := `
		INSERT INTO events (id, name, start_minute, end_minute)
		VALUES (?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, e.ID, e.Name, int(e.Start), int(e.End)); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// AddAll appends several events in one transaction.
func (s *SQLite) AddAll(ctx context.Context, events []*event.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (id, name, start_minute, end_minute)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range events {
		if e == nil {
			continue
		}
		if _, err := stmt.ExecContext(ctx, e.ID, e.Name, int(e.Start), int(e.End)); err != nil {
			return fmt.Errorf("inserting event %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// All returns every event in insertion order.
func (s *SQLite) All(ctx context.Context) ([]*event.Event, error) {
	query := `
		SELECT id, name, start_minute, end_minute
		FROM events
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]*event.Event, 0)
	for rows.Next() {
		var (
			e          event.Event
			start, end int
		)
		if err := rows.Scan(&e.ID, &e.Name, &start, &end); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		e.Start = event.Clock(start)
		e.End = event.Clock(end)
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// Len returns the number of stored events.
func (s *SQLite) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
