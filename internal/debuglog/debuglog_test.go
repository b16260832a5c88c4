package debuglog

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening log: %v", err)
	}
	defer func() { _ = f.Close() }()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestDisabledIsNoop(t *testing.T) {
	if err := Init(false); err != nil {
		t.Fatalf("Init(false): %v", err)
	}
	if Enabled() {
		t.Fatal("logger should be disabled")
	}
	KeyPress("x", "home")
	InvalidDay("??", 0, 0)
	Close()
}

func TestOpenWritesSequencedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !Enabled() {
		t.Fatal("logger should be enabled")
	}

	InvalidDay("x1", 2, 3)
	BookingStatus("BK-1234ABCD", "Approved")
	Error("ignored", nil)
	Error("load", errors.New("boom"))
	Close()

	entries := readEntries(t, path)
	wantEvents := []string{"DEBUG_START", "INVALID_DAY", "BOOKING_STATUS", "ERROR", "DEBUG_END"}
	if len(entries) != len(wantEvents) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantEvents))
	}
	for i, want := range wantEvents {
		if got := entries[i]["event"]; got != want {
			t.Errorf("entry %d event = %v, want %s", i, got, want)
		}
		if got := entries[i]["seq"]; got != float64(i+1) {
			t.Errorf("entry %d seq = %v, want %d", i, got, i+1)
		}
	}
	if entries[1]["label"] != "x1" || entries[1]["row"] != float64(2) {
		t.Errorf("INVALID_DAY fields = %v", entries[1])
	}
	if entries[3]["error"] != "boom" {
		t.Errorf("ERROR fields = %v", entries[3])
	}
	if Enabled() {
		t.Error("Close should disable the logger")
	}
}
