// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/dateutil"
)

// SQLite implements booking.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ booking.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path and opens the repository.
func Open(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

const bookingColumns = `
	id, customer_name, email, phone, payment_type, attendees,
	booking_date, notes, total_cost, status, created_at
`

// CreateBooking stores a new booking.
func (s *SQLite) CreateBooking(ctx context.Context, b *booking.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		b.ID,
		b.CustomerName,
		b.Email,
		b.Phone,
		b.PaymentType,
		b.Attendees,
		b.Date.Format(dateutil.DateLayout),
		b.Notes,
		b.TotalCost,
		b.Status,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by ID.
func (s *SQLite) GetBooking(ctx context.Context, id string) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

	b, err := scanBooking(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying booking: %w", err)
	}
	return b, nil
}

// ListBookings returns bookings ordered by date, optionally filtered by status.
func (s *SQLite) ListBookings(ctx context.Context, status booking.Status) ([]*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY booking_date, created_at`

	return s.queryBookings(ctx, query, args...)
}

// ListBookingsByDateRange returns bookings on days within the range (inclusive).
func (s *SQLite) ListBookingsByDateRange(ctx context.Context, start, end time.Time) ([]*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE booking_date >= ? AND booking_date <= ?
		ORDER BY booking_date, created_at`

	return s.queryBookings(ctx, query, start.Format(dateutil.DateLayout), end.Format(dateutil.DateLayout))
}

// SetStatus updates a booking's approval status.
func (s *SQLite) SetStatus(ctx context.Context, id string, status booking.Status) error {
	if _, err := booking.ParseStatus(string(status)); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating booking status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", booking.ErrNotFound, id)
	}
	return nil
}

func (s *SQLite) queryBookings(ctx context.Context, query string, args ...any) ([]*booking.Booking, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}
	return bookings, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		b         booking.Booking
		date      string
		notes     sql.NullString
		createdAt string
	)

	err := row.Scan(
		&b.ID,
		&b.CustomerName,
		&b.Email,
		&b.Phone,
		&b.PaymentType,
		&b.Attendees,
		&date,
		&notes,
		&b.TotalCost,
		&b.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing booking date: %w", err)
	}
	b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	b.Notes = notes.String

	return &b, nil
}

// CreateInquiry stores a new inquiry.
func (s *SQLite) CreateInquiry(ctx context.Context, q *booking.Inquiry) error {
	query := `
		INSERT INTO inquiries (
			id, organisation, contact_name, email, phone, kind,
			preferred_date, message, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var preferred sql.NullString
	if q.PreferredDate != nil {
		preferred = sql.NullString{String: q.PreferredDate.Format(dateutil.DateLayout), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		q.ID,
		q.Organisation,
		q.ContactName,
		q.Email,
		q.Phone,
		q.Kind,
		preferred,
		q.Message,
		q.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting inquiry: %w", err)
	}
	return nil
}

// ListInquiries returns inquiries, newest first.
func (s *SQLite) ListInquiries(ctx context.Context) ([]*booking.Inquiry, error) {
	query := `
		SELECT id, organisation, contact_name, email, phone, kind,
		       preferred_date, message, created_at
		FROM inquiries
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying inquiries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var inquiries []*booking.Inquiry
	for rows.Next() {
		var (
			q         booking.Inquiry
			phone     sql.NullString
			preferred sql.NullString
			message   sql.NullString
			createdAt string
		)
		err := rows.Scan(
			&q.ID,
			&q.Organisation,
			&q.ContactName,
			&q.Email,
			&phone,
			&q.Kind,
			&preferred,
			&message,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry: %w", err)
		}

		q.Phone = phone.String
		q.Message = message.String
		if preferred.Valid {
			d, err := parseDate(preferred.String)
			if err != nil {
				return nil, fmt.Errorf("parsing preferred date: %w", err)
			}
			q.PreferredDate = &d
		}
		q.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		inquiries = append(inquiries, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inquiries: %w", err)
	}
	return inquiries, nil
}

// parseDate reads a stored day as local midnight.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateutil.DateLayout, s, time.Local); err == nil {
		return t, nil
	}

	// Some drivers hand DATE values back as "2006-01-02T00:00:00Z".
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		if t, err := time.ParseInLocation(dateutil.DateLayout, s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
