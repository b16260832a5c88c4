package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS bookings (
			id            TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			email         TEXT NOT NULL,
			phone         TEXT NOT NULL,
			payment_type  TEXT NOT NULL,
			attendees     INTEGER NOT NULL CHECK(attendees > 0),
			booking_date  TEXT NOT NULL,
			notes         TEXT,
			total_cost    INTEGER NOT NULL,
			status        TEXT NOT NULL DEFAULT 'Pending' CHECK(status IN ('Pending', 'Approved', 'Denied')),
			created_at    TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(booking_date);
		CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status);

		CREATE TABLE IF NOT EXISTS inquiries (
			id             TEXT PRIMARY KEY,
			organisation   TEXT NOT NULL,
			contact_name   TEXT NOT NULL,
			email          TEXT NOT NULL,
			phone          TEXT,
			kind           TEXT NOT NULL,
			preferred_date TEXT,
			message        TEXT,
			created_at     TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS messages (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			subject    TEXT,
			body       TEXT NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS subscriptions (
			email      TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			interests  TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
