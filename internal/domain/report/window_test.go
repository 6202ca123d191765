package report

import (
	"errors"
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    bool
	}{
		{"valid window", "2026-08-01", "2026-08-07", false},
		{"single day window", "2026-08-01", "2026-08-01", false},
		{"start after end", "2026-08-07", "2026-08-01", true},
		{"malformed start", "01-08-2026", "2026-08-07", true},
		{"malformed end", "2026-08-01", "yesterday", true},
		{"empty start", "", "2026-08-07", true},
		{"empty end", "2026-08-01", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWindow(tt.start, tt.end)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWindow) {
					t.Fatalf("ParseWindow() error = %v, want ErrInvalidWindow", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindow() unexpected error: %v", err)
			}
		})
	}
}

func TestWindowDays(t *testing.T) {
	w, err := ParseWindow("2026-08-01", "2026-08-07")
	if err != nil {
		t.Fatal(err)
	}
	if got := w.Days(); got != 7 {
		t.Errorf("Days() = %d, want 7", got)
	}

	single, err := ParseWindow("2026-08-01", "2026-08-01")
	if err != nil {
		t.Fatal(err)
	}
	if got := single.Days(); got != 1 {
		t.Errorf("Days() = %d, want 1", got)
	}
}

func TestWindowContains(t *testing.T) {
	w, err := ParseWindow("2026-08-01", "2026-08-07")
	if err != nil {
		t.Fatal(err)
	}

	parse := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	if !w.Contains(parse("2026-08-01")) {
		t.Error("start boundary should be inside the window")
	}
	if !w.Contains(parse("2026-08-07")) {
		t.Error("end boundary should be inside the window")
	}
	if w.Contains(parse("2026-07-31")) {
		t.Error("day before start should be outside the window")
	}
	if w.Contains(parse("2026-08-08")) {
		t.Error("day after end should be outside the window")
	}
}
