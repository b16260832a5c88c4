package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
)

// CreateMessage stores a contact message.
func (s *SQLite) CreateMessage(ctx context.Context, msg *booking.Message) error {
	query := `INSERT INTO messages (id, name, email, subject, body, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Body,
		msg.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// ListMessages returns contact messages, newest first.
func (s *SQLite) ListMessages(ctx context.Context) ([]*booking.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, body, created_at
		FROM messages
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []*booking.Message
	for rows.Next() {
		var (
			msg       booking.Message
			subject   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &subject, &msg.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		msg.Subject = subject.String
		msg.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return messages, nil
}

// Subscribe adds or updates a newsletter subscriber, keyed by email. The
// original sign-up time is kept on update.
func (s *SQLite) Subscribe(ctx context.Context, sub *booking.Subscription) error {
	query := `
		INSERT INTO subscriptions (email, name, interests, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			name = excluded.name,
			interests = excluded.interests
	`

	_, err := s.db.ExecContext(ctx, query,
		sub.Email,
		sub.Name,
		sub.InterestList(),
		sub.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving subscription: %w", err)
	}
	return nil
}

// ListSubscriptions returns subscribers ordered by email.
func (s *SQLite) ListSubscriptions(ctx context.Context) ([]*booking.Subscription, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT email, name, interests, created_at
		FROM subscriptions
		ORDER BY email
	`)
	if err != nil {
		return nil, fmt.Errorf("querying subscriptions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []*booking.Subscription
	for rows.Next() {
		var (
			sub       booking.Subscription
			interests string
			createdAt string
		)
		if err := rows.Scan(&sub.Email, &sub.Name, &interests, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning subscription: %w", err)
		}
		sub.Interests, err = parseInterests(interests)
		if err != nil {
			return nil, err
		}
		sub.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		subs = append(subs, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subscriptions: %w", err)
	}
	return subs, nil
}

func parseInterests(s string) ([]booking.Interest, error) {
	if s == "" {
		return nil, nil
	}
	var out []booking.Interest
	for _, part := range strings.Split(s, ",") {
		in, err := booking.ParseInterest(part)
		if err != nil {
			return nil, fmt.Errorf("parsing interests %q: %w", s, err)
		}
		out = append(out, in)
	}
	return out, nil
}
