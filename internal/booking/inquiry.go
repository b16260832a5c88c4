package booking

import (
	"strings"
	"time"
)

// InquiryKind classifies an organisation inquiry.
type InquiryKind string

const (
	KindCorporate   InquiryKind = "Corporate Event"
	KindEducational InquiryKind = "Educational Visit"
	KindCharity     InquiryKind = "Charity Event"
	KindPrivate     InquiryKind = "Private Function"
	KindOther       InquiryKind = "Other"
)

// InquiryKinds lists the kinds in display order.
var InquiryKinds = []InquiryKind{KindCorporate, KindEducational, KindCharity, KindPrivate, KindOther}

// Valid returns true if the kind is one of InquiryKinds.
func (k InquiryKind) Valid() bool {
	for _, known := range InquiryKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Inquiry is a company or institution asking about a larger event.
type Inquiry struct {
	ID            string
	Organisation  string
	ContactName   string
	Email         string
	Phone         string
	Kind          InquiryKind
	PreferredDate *time.Time // optional
	Message       string
	CreatedAt     time.Time
}

// NewInquiry validates the fields and returns an inquiry with a fresh ID.
func NewInquiry(org, contact, email, phone string, kind InquiryKind, preferred *time.Time, message string) (*Inquiry, error) {
	org = strings.TrimSpace(org)
	if org == "" {
		return nil, ErrEmptyOrg
	}
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}

	return &Inquiry{
		ID:            NewID("IQ"),
		Organisation:  org,
		ContactName:   contact,
		Email:         email,
		Phone:         strings.TrimSpace(phone),
		Kind:          kind,
		PreferredDate: preferred,
		Message:       strings.TrimSpace(message),
		CreatedAt:     time.Now(),
	}, nil
}
