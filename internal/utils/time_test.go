package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-10")
	if err != nil {
		t.Fatalf("ParseDate() error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 10 {
		t.Errorf("ParseDate() = %v", got)
	}

	for _, bad := range []string{"03/10/2026", "2026-3-10", "not a date", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) accepted", bad)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		days int
		want string
	}{
		{"2026-03-10", 1, "2026-03-11"},
		{"2026-03-31", 1, "2026-04-01"},
		{"2026-01-01", -1, "2025-12-31"},
		{"2026-02-28", 1, "2026-03-01"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.days)
		if err != nil {
			t.Fatalf("AddDays(%q, %d) error: %v", tt.date, tt.days, err)
		}
		if got != tt.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.date, tt.days, got, tt.want)
		}
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart string
		wantEnd   string
	}{
		{"tuesday", time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC), "2026-03-09", "2026-03-15"},
		{"monday is its own start", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), "2026-03-09", "2026-03-15"},
		{"sunday belongs to the prior monday", time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC), "2026-03-09", "2026-03-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekRange(tt.ref)
			if FormatDate(start) != tt.wantStart || FormatDate(end) != tt.wantEnd {
				t.Errorf("WeekRange() = %s..%s, want %s..%s",
					FormatDate(start), FormatDate(end), tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC))
	if FormatDate(start) != "2026-02-01" || FormatDate(end) != "2026-02-28" {
		t.Errorf("MonthRange() = %s..%s", FormatDate(start), FormatDate(end))
	}

	start, end = MonthRange(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))
	if FormatDate(start) != "2026-12-01" || FormatDate(end) != "2026-12-31" {
		t.Errorf("MonthRange() = %s..%s", FormatDate(start), FormatDate(end))
	}
}

func TestDatesBetween(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	got := DatesBetween(start, start.AddDate(0, 0, 6))
	if len(got) != 7 {
		t.Fatalf("got %d dates, want 7", len(got))
	}
	if got[0] != "2026-03-09" || got[6] != "2026-03-15" {
		t.Errorf("range = %s..%s", got[0], got[6])
	}

	if got := DatesBetween(start, start); len(got) != 1 {
		t.Errorf("single-day range has %d dates", len(got))
	}
	if got := DatesBetween(start.AddDate(0, 0, 1), start); got != nil {
		t.Errorf("inverted range = %v, want nil", got)
	}
}
