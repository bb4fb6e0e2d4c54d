package db

import (
	"context"
	"fmt"
)

// migrate runs database migrations.
func (s *SQLite) migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			seq          INTEGER PRIMARY KEY AUTOINCREMENT,
			id           TEXT NOT NULL,
			name         TEXT NOT NULL,
			start_minute INTEGER NOT NULL CHECK(start_minute >= 0 AND start_minute < 1440),
			end_minute   INTEGER NOT NULL CHECK(end_minute > 0 AND end_minute < 1440),
			CHECK(start_minute < end_minute)
		);

		CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_minute);
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}

	return nil
}
