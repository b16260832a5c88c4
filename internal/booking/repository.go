package booking

import (
	"context"
	"time"
)

// Repository defines the storage interface for bookings and inquiries.
type Repository interface {
	// CreateBooking stores a new booking.
	CreateBooking(ctx context.Context, b *Booking) error

	// GetBooking retrieves a booking by ID. It returns nil, nil when absent.
	GetBooking(ctx context.Context, id string) (*Booking, error)

	// ListBookings returns bookings by date, optionally filtered by status.
	// An empty status returns every booking.
	ListBookings(ctx context.Context, status Status) ([]*Booking, error)

	// ListBookingsByDateRange returns bookings on days within the range (inclusive).
	ListBookingsByDateRange(ctx context.Context, start, end time.Time) ([]*Booking, error)

	// SetStatus approves, denies or reopens a booking.
	// Returns ErrNotFound if no booking has the ID.
	SetStatus(ctx context.Context, id string, status Status) error

	// CreateInquiry stores a new inquiry.
	CreateInquiry(ctx context.Context, q *Inquiry) error

	// ListInquiries returns inquiries, newest first.
	ListInquiries(ctx context.Context) ([]*Inquiry, error)

	// CreateMessage stores a contact message.
	CreateMessage(ctx context.Context, msg *Message) error

	// ListMessages returns contact messages, newest first.
	ListMessages(ctx context.Context) ([]*Message, error)

	// Subscribe adds a newsletter subscriber. Subscribing an address that
	// is already on the list replaces its name and interests.
	Subscribe(ctx context.Context, sub *Subscription) error

	// ListSubscriptions returns subscribers ordered by email.
	ListSubscriptions(ctx context.Context) ([]*Subscription, error)

	// Close releases any resources held by the repository.
	Close() error
}
