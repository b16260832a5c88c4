package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOverlaySetActive(t *testing.T) {
	overlay := NewOverlayModel()
	if overlay.Active() {
		t.Fatalf("expected overlay to start inactive")
	}
	overlay.SetActive(true)
	if !overlay.Active() {
		t.Fatalf("expected overlay to be active")
	}
	overlay.SetActive(false)
	if overlay.Active() {
		t.Fatalf("expected overlay to be inactive again")
	}
}

func TestOverlayRenderInactiveReturnsBase(t *testing.T) {
	overlay := NewOverlayModel()
	base := "alpha\nbeta"
	if got := overlay.Render(base, 10, 2, "content"); got != base {
		t.Fatalf("expected base content unchanged when inactive")
	}
}

func TestOverlayRenderCentersBox(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetActive(true)

	width, height := 30, 11
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row
	box := "+----+\n|BOOK|\n+----+"

	got := overlay.Render(base, width, height, box)
	lines := strings.Split(ansi.Strip(got), "\n")
	if len(lines) != height {
		t.Fatalf("expected %d lines, got %d", height, len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d: expected width %d, got %d", i, width, w)
		}
	}

	// 3-line box in 11 rows starts at row 4; 6 columns in 30 start at col 12.
	want := strings.Repeat(".", 12) + "|BOOK|" + strings.Repeat(".", 12)
	if lines[5] != want {
		t.Errorf("row 5 = %q, want %q", lines[5], want)
	}
	if lines[3] != row || lines[7] != row {
		t.Errorf("rows outside the box should be untouched")
	}
}

func TestOverlayRenderPadsShortLines(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetActive(true)

	width, height := 20, 5
	row := strings.Repeat(".", width)
	base := strings.Repeat(row+"\n", height-1) + row

	got := ansi.Strip(overlay.Render(base, width, height, "long line\nx"))
	lines := strings.Split(got, "\n")
	// The shorter line is padded to the box width so no base shows through.
	if !strings.Contains(lines[2], "x        ") {
		t.Errorf("expected padded short line, got %q", lines[2])
	}
}

func TestOverlayRenderClipsOversizedBox(t *testing.T) {
	overlay := NewOverlayModel()
	overlay.SetActive(true)

	got := overlay.Render("", 4, 2, "abcdefgh\nijklmnop\nqrstuvwx")
	lines := strings.Split(ansi.Strip(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abcd" || lines[1] != "ijkl" {
		t.Errorf("got %q", lines)
	}
}

func TestNormalizeLines(t *testing.T) {
	lines := normalizeLines("ab\ncdefgh", 4, 3)
	want := []string{"ab  ", "cdef", "    "}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
