// Package venue provides the hall's static venue catalogue.
package venue

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed venues.toml
var catalogue []byte

// Venue describes one bookable space.
type Venue struct {
	Name        string   `toml:"name"`
	Capacity    int      `toml:"capacity"`
	Facilities  []string `toml:"facilities"`
	Description string   `toml:"description"`
	Rates       Rates    `toml:"rates"`
}

// Event is a featured event listed on the home screen.
type Event struct {
	Title   string `toml:"title"`
	When    string `toml:"when"`
	Summary string `toml:"summary"`
}

// Rates holds hire prices in pounds.
type Rates struct {
	Hourly  float64 `toml:"hourly"`
	Daily   float64 `toml:"daily"`
	Weekend float64 `toml:"weekend"`
	Weekly  float64 `toml:"weekly"`
}

// RateLine is one labelled price on a rate card.
type RateLine struct {
	Label string
	Price string
}

// Lines returns the rate card rows in display order.
func (r Rates) Lines() []RateLine {
	return []RateLine{
		{"Hourly Rate", formatPrice(r.Hourly) + "/hour"},
		{"Daily Rate", formatPrice(r.Daily) + "/day"},
		{"Weekend Rate", formatPrice(r.Weekend) + "/weekend"},
		{"Weekly Rate", formatPrice(r.Weekly) + "/week"},
	}
}

// Format renders the rates as a single line.
func (r Rates) Format() string {
	lines := r.Lines()
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Price
	}
	return strings.Join(parts, " · ")
}

func formatPrice(v float64) string {
	return fmt.Sprintf("£%.2f", v)
}

var (
	loadOnce sync.Once
	venues   []Venue
	events   []Event
	loadErr  error
)

func load() ([]Venue, error) {
	loadOnce.Do(func() {
		var doc struct {
			Venues []Venue `toml:"venue"`
			Events []Event `toml:"event"`
		}
		if err := toml.Unmarshal(catalogue, &doc); err != nil {
			loadErr = fmt.Errorf("parsing venue catalogue: %w", err)
			return
		}
		venues = doc.Venues
		events = doc.Events
	})
	return venues, loadErr
}

// Featured returns the featured events in display order.
func Featured() ([]Event, error) {
	if _, err := load(); err != nil {
		return nil, err
	}
	out := make([]Event, len(events))
	copy(out, events)
	return out, nil
}

// All returns a copy of the catalogue in display order.
func All() ([]Venue, error) {
	vs, err := load()
	if err != nil {
		return nil, err
	}
	out := make([]Venue, len(vs))
	copy(out, vs)
	return out, nil
}

// ByName finds a venue by case-insensitive name.
func ByName(name string) (Venue, bool) {
	vs, err := load()
	if err != nil {
		return Venue{}, false
	}
	for _, v := range vs {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Venue{}, false
}
