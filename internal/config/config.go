// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Booking  BookingConfig  `toml:"booking"`
	Storage  StorageConfig  `toml:"storage"`
	Staff    StaffConfig    `toml:"staff"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds date picker animation and year overlay settings.
type CalendarConfig struct {
	AnimationDurationMs int `toml:"animation_duration_ms"` // total slide time
	AnimationSteps      int `toml:"animation_steps"`       // frames per slide
	HoverDebounceMs     int `toml:"hover_debounce_ms"`     // 0 applies hover immediately
	YearWindowBefore    int `toml:"year_window_before"`
	YearWindowAfter     int `toml:"year_window_after"`
}

// BookingConfig holds pricing and form defaults.
type BookingConfig struct {
	BaseCost           int    `toml:"base_cost"`
	PerAttendeeCost    int    `toml:"per_attendee_cost"`
	DefaultAttendees   int    `toml:"default_attendees"`
	MaxAttendees       int    `toml:"max_attendees"`
	DefaultPaymentType string `toml:"default_payment_type"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// StaffConfig holds the staff credential file location.
type StaffConfig struct {
	AuthFile string `toml:"auth_file"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "lancaster", "mocha", "latte"
}

// YearWindowSize is the number of years the year overlay lists.
const YearWindowSize = 20

// PaymentTypes lists the accepted payment types, in form order.
var PaymentTypes = []string{"Credit Card", "Debit Card", "Bank Transfer", "Invoice"}

var knownThemes = map[string]bool{
	"lancaster": true,
	"mocha":     true,
	"latte":     true,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			AnimationDurationMs: 300,
			AnimationSteps:      30,
			HoverDebounceMs:     20,
			YearWindowBefore:    10,
			YearWindowAfter:     9,
		},
		Booking: BookingConfig{
			BaseCost:           500,
			PerAttendeeCost:    10,
			DefaultAttendees:   50,
			MaxAttendees:       500,
			DefaultPaymentType: "Credit Card",
		},
		Storage: StorageConfig{
			DBPath: defaultDataPath("boxoffice.db"),
		},
		Staff: StaffConfig{
			AuthFile: defaultConfigFile("staff.secret"),
		},
		UI: UIConfig{
			Theme: "lancaster",
		},
	}
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".local", "share", "boxoffice", name)
}

func defaultConfigFile(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".config", "boxoffice", name)
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return defaultConfigFile("config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Staff.AuthFile = expandPath(cfg.Staff.AuthFile)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies BOXOFFICE_* environment variables on top of the file config.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"BOXOFFICE_ANIMATION_DURATION_MS", &cfg.Calendar.AnimationDurationMs},
		{"BOXOFFICE_ANIMATION_STEPS", &cfg.Calendar.AnimationSteps},
		{"BOXOFFICE_HOVER_DEBOUNCE_MS", &cfg.Calendar.HoverDebounceMs},
		{"BOXOFFICE_BASE_COST", &cfg.Booking.BaseCost},
		{"BOXOFFICE_PER_ATTENDEE_COST", &cfg.Booking.PerAttendeeCost},
		{"BOXOFFICE_DEFAULT_ATTENDEES", &cfg.Booking.DefaultAttendees},
		{"BOXOFFICE_MAX_ATTENDEES", &cfg.Booking.MaxAttendees},
	}
	for _, o := range ints {
		v := os.Getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", o.key, v)
		}
		*o.dst = n
	}

	if v := os.Getenv("BOXOFFICE_PAYMENT_TYPE"); v != "" {
		cfg.Booking.DefaultPaymentType = v
	}
	if v := os.Getenv("BOXOFFICE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("BOXOFFICE_STAFF_AUTH_FILE"); v != "" {
		cfg.Staff.AuthFile = v
	}
	if v := os.Getenv("BOXOFFICE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	cal := c.Calendar
	if cal.AnimationSteps <= 0 {
		return errors.New("animation_steps must be positive")
	}
	if cal.AnimationDurationMs <= 0 {
		return errors.New("animation_duration_ms must be positive")
	}
	if cal.HoverDebounceMs < 0 {
		return errors.New("hover_debounce_ms must not be negative")
	}
	if cal.YearWindowBefore < 0 || cal.YearWindowAfter < 0 {
		return errors.New("year window bounds must not be negative")
	}
	if n := cal.YearWindowBefore + cal.YearWindowAfter + 1; n != YearWindowSize {
		return fmt.Errorf("year window must span %d years, got %d", YearWindowSize, n)
	}

	b := c.Booking
	if b.BaseCost < 0 || b.PerAttendeeCost < 0 {
		return errors.New("booking costs must not be negative")
	}
	if b.MaxAttendees < 1 {
		return errors.New("max_attendees must be at least 1")
	}
	if b.DefaultAttendees < 1 || b.DefaultAttendees > b.MaxAttendees {
		return fmt.Errorf("default_attendees must be between 1 and %d", b.MaxAttendees)
	}
	if !IsPaymentType(b.DefaultPaymentType) {
		return fmt.Errorf("unknown payment type %q", b.DefaultPaymentType)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.Staff.AuthFile == "" {
		return errors.New("auth_file must be set")
	}
	if !knownThemes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}
	return nil
}

// IsPaymentType reports whether s is an accepted payment type.
func IsPaymentType(s string) bool {
	for _, p := range PaymentTypes {
		if p == s {
			return true
		}
	}
	return false
}

// AnimationDuration returns the total slide duration.
func (c *Config) AnimationDuration() time.Duration {
	return time.Duration(c.Calendar.AnimationDurationMs) * time.Millisecond
}

// HoverDebounce returns the hover coalescing delay.
func (c *Config) HoverDebounce() time.Duration {
	return time.Duration(c.Calendar.HoverDebounceMs) * time.Millisecond
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
