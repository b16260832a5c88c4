// Package debuglog writes JSON-lines debug traces of TUI state, keystrokes and
// booking events. It is off unless the application runs with --debug.
package debuglog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Path is the fixed file name for debug logs, created in the working directory.
const Path = "boxoffice-debug.log"

// Logger appends one JSON object per line to a file.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

var std = &Logger{}

// Init enables the package logger at Path when enabled is true.
func Init(enabled bool) error {
	if !enabled {
		std = &Logger{}
		return nil
	}
	return Open(Path)
}

// Open enables the package logger, truncating the file at path.
func Open(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	std = &Logger{file: f, enabled: true}
	std.log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// Close flushes a final entry and closes the log file.
func Close() {
	if std == nil || std.file == nil {
		return
	}
	std.log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	_ = std.file.Close()
	std = &Logger{}
}

// Enabled reports whether debug logging is on.
func Enabled() bool {
	return std != nil && std.enabled
}

func (l *Logger) log(event string, data map[string]any) {
	if l == nil || !l.enabled || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.file, "%s\n", b)
}

// KeyPress logs a key press and the screen that received it.
func KeyPress(key, screen string) {
	std.log("KEY_PRESS", map[string]any{
		"key":    key,
		"screen": screen,
	})
}

// ScreenChange logs a navigation between screens.
func ScreenChange(from, to, reason string) {
	std.log("SCREEN_CHANGE", map[string]any{
		"from":   from,
		"to":     to,
		"reason": reason,
	})
}

// TransitionStart logs the start of a month slide.
func TransitionStart(direction, from string, steps int, interval time.Duration) {
	std.log("TRANSITION_START", map[string]any{
		"direction":   direction,
		"from":        from,
		"steps":       steps,
		"interval_ms": interval.Milliseconds(),
	})
}

// TransitionEnd logs the month a slide settled on.
func TransitionEnd(direction, to string) {
	std.log("TRANSITION_END", map[string]any{
		"direction": direction,
		"to":        to,
	})
}

// SelectionChanged logs a committed date selection.
func SelectionChanged(date, source string) {
	std.log("SELECTION_CHANGED", map[string]any{
		"date":   date,
		"source": source,
	})
}

// InvalidDay logs a day cell whose label is not a number.
func InvalidDay(label string, row, col int) {
	std.log("INVALID_DAY", map[string]any{
		"label": label,
		"row":   row,
		"col":   col,
	})
}

// YearOverlay logs opening, closing or picking in the year overlay.
func YearOverlay(action string, year int) {
	std.log("YEAR_OVERLAY", map[string]any{
		"action": action,
		"year":   year,
	})
}

// BookingSubmitted logs a stored booking.
func BookingSubmitted(id, date string, attendees, cost int) {
	std.log("BOOKING_SUBMITTED", map[string]any{
		"id":        id,
		"date":      date,
		"attendees": attendees,
		"cost":      cost,
	})
}

// BookingStatus logs an approval or denial.
func BookingStatus(id, status string) {
	std.log("BOOKING_STATUS", map[string]any{
		"id":     id,
		"status": status,
	})
}

// Error logs an error with the operation that produced it.
func Error(context string, err error) {
	if err == nil {
		return
	}
	std.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
