// Package booking defines the core domain types for hall bookings and
// organisation inquiries.
package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lancaster-music-hall/boxoffice/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("email must contain @")
	ErrEmptyPhone       = errors.New("phone cannot be empty")
	ErrEmptyPayment     = errors.New("payment type cannot be empty")
	ErrInvalidAttendees = errors.New("attendees out of range")
	ErrNoDate           = errors.New("a date must be selected")
	ErrInvalidStatus    = errors.New("status must be Pending, Approved or Denied")
	ErrInvalidKind      = errors.New("unknown inquiry kind")
	ErrEmptyOrg         = errors.New("organisation cannot be empty")
	ErrEmptyMessage     = errors.New("message cannot be empty")
	ErrInvalidInterest  = errors.New("unknown newsletter interest")
)

// Domain errors.
var (
	ErrNotFound = errors.New("booking not found")
)

// Status represents where a booking is in the approval flow.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDenied   Status = "Denied"
)

// ParseStatus accepts a status in any letter case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "denied":
		return StatusDenied, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Pricing computes the total cost of a booking.
type Pricing struct {
	Base         int
	PerAttendee  int
	MaxAttendees int
}

// Cost returns Base + PerAttendee*attendees.
func (p Pricing) Cost(attendees int) int {
	return p.Base + p.PerAttendee*attendees
}

// Booking is a customer's request to hire the hall on a single day.
type Booking struct {
	ID           string
	CustomerName string
	Email        string
	Phone        string
	PaymentType  string
	Attendees    int
	Date         time.Time // day precision
	Notes        string
	TotalCost    int
	Status       Status
	CreatedAt    time.Time
}

// Draft carries the form fields for a new booking.
type Draft struct {
	Name        string
	Email       string
	Phone       string
	PaymentType string
	Attendees   int
	Date        time.Time
	Notes       string
}

// New validates a draft and returns a pending booking with its cost.
func New(d Draft, pricing Pricing) (*Booking, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email := strings.TrimSpace(d.Email)
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	phone := strings.TrimSpace(d.Phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if strings.TrimSpace(d.PaymentType) == "" {
		return nil, ErrEmptyPayment
	}
	if d.Date.IsZero() {
		return nil, ErrNoDate
	}
	maxAttendees := pricing.MaxAttendees
	if maxAttendees <= 0 {
		maxAttendees = 500
	}
	if d.Attendees < 1 || d.Attendees > maxAttendees {
		return nil, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidAttendees, maxAttendees)
	}

	return &Booking{
		ID:           NewID("BK"),
		CustomerName: name,
		Email:        email,
		Phone:        phone,
		PaymentType:  d.PaymentType,
		Attendees:    d.Attendees,
		Date:         dateutil.TruncateToDay(d.Date),
		Notes:        strings.TrimSpace(d.Notes),
		TotalCost:    pricing.Cost(d.Attendees),
		Status:       StatusPending,
		CreatedAt:    time.Now(),
	}, nil
}

// NewID returns a short random identifier such as "BK-1A2B3C4D".
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:8])
}

// IsDecided reports whether the booking has been approved or denied.
func (b *Booking) IsDecided() bool {
	return b.Status == StatusApproved || b.Status == StatusDenied
}

// DateString returns the booking date in YYYY-MM-DD format.
func (b *Booking) DateString() string {
	return b.Date.Format(dateutil.DateLayout)
}
