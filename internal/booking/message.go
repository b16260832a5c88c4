package booking

import (
	"strings"
	"time"
)

// Message is a note sent through the "Send Us a Message" form.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string // optional
	Body      string
	CreatedAt time.Time
}

// NewMessage validates the fields and returns a message with a fresh ID.
func NewMessage(name, email, subject, body string) (*Message, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email, err := checkEmail(email)
	if err != nil {
		return nil, err
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	return &Message{
		ID:        NewID("MS"),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(subject),
		Body:      body,
		CreatedAt: time.Now(),
	}, nil
}

// Interest is a newsletter topic.
type Interest string

const (
	InterestConcerts      Interest = "Concerts"
	InterestSpecialEvents Interest = "Special Events"
	InterestPromotions    Interest = "Promotions"
	InterestVenueUpdates  Interest = "Venue Updates"
)

// Interests lists the topics in display order.
var Interests = []Interest{InterestConcerts, InterestSpecialEvents, InterestPromotions, InterestVenueUpdates}

// ParseInterest accepts a topic in any letter case.
func ParseInterest(s string) (Interest, error) {
	s = strings.TrimSpace(s)
	for _, i := range Interests {
		if strings.EqualFold(string(i), s) {
			return i, nil
		}
	}
	return "", ErrInvalidInterest
}

// Subscription is one newsletter subscriber.
type Subscription struct {
	Name      string
	Email     string
	Interests []Interest
	CreatedAt time.Time
}

// NewSubscription validates name, email and interests. Duplicate interests
// are dropped and the rest kept in display order.
func NewSubscription(name, email string, interests []Interest) (*Subscription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email, err := checkEmail(email)
	if err != nil {
		return nil, err
	}

	chosen := make(map[Interest]bool, len(interests))
	for _, i := range interests {
		if _, err := ParseInterest(string(i)); err != nil {
			return nil, err
		}
		chosen[i] = true
	}
	var ordered []Interest
	for _, i := range Interests {
		if chosen[i] {
			ordered = append(ordered, i)
		}
	}

	return &Subscription{
		Name:      name,
		Email:     strings.ToLower(email),
		Interests: ordered,
		CreatedAt: time.Now(),
	}, nil
}

// InterestList joins the interests for display and storage.
func (s *Subscription) InterestList() string {
	parts := make([]string, len(s.Interests))
	for i, in := range s.Interests {
		parts[i] = string(in)
	}
	return strings.Join(parts, ", ")
}

func checkEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	return email, nil
}
