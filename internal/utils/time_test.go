package utils

import "testing"

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-08-29", "2026-08-29"}, // a Saturday maps to itself
		{"2026-08-30", "2026-08-29"}, // Sunday
		{"2026-09-04", "2026-08-29"}, // Friday, last day of the window
		{"2026-09-05", "2026-09-05"}, // next Saturday starts a new window
		{"2026-01-01", "2025-12-27"}, // window crossing a year boundary
	}

	for _, tt := range tests {
		got, err := StartOfWeek(tt.date)
		if err != nil {
			t.Fatalf("StartOfWeek(%s) failed: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestStartOfWeekInvalidDate(t *testing.T) {
	if _, err := StartOfWeek("29-08-2026"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestWeekDates(t *testing.T) {
	dates, err := WeekDates("2026-08-29")
	if err != nil {
		t.Fatalf("WeekDates failed: %v", err)
	}
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0] != "2026-08-29" || dates[6] != "2026-09-04" {
		t.Errorf("unexpected window bounds: %s .. %s", dates[0], dates[6])
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-02-28", 1)
	if err != nil {
		t.Fatalf("AddDays failed: %v", err)
	}
	if got != "2026-03-01" {
		t.Errorf("AddDays(2026-02-28, 1) = %s, want 2026-03-01", got)
	}
}

func TestDaysBetween(t *testing.T) {
	got, err := DaysBetween("2026-08-29", "2026-09-05")
	if err != nil {
		t.Fatalf("DaysBetween failed: %v", err)
	}
	if got != 7 {
		t.Errorf("DaysBetween = %d, want 7", got)
	}
}
