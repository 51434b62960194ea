package parser

import (
	"testing"
	"time"
)

func TestToCalendarDate(t *testing.T) {
	tests := []struct {
		input string
		year  int
		want  time.Time
		ok    bool
	}{
		{"01/08", 2024, time.Date(2024, time.January, 8, 12, 0, 0, 0, time.Local), true},
		{"1/8", 2024, time.Date(2024, time.January, 8, 12, 0, 0, 0, time.Local), true},
		{"01-08", 2024, time.Date(2024, time.January, 8, 12, 0, 0, 0, time.Local), true},
		{"12/31", 2023, time.Date(2023, time.December, 31, 12, 0, 0, 0, time.Local), true},
		{"00/15", 2024, time.Time{}, false},
		{"01/00", 2024, time.Time{}, false},
		{"13/01", 2024, time.Time{}, false},
		{"02/30", 2024, time.Time{}, false},
		{"01/32", 2024, time.Time{}, false},
		{"0108", 2024, time.Time{}, false},
		{"", 2024, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ToCalendarDate(tt.input, tt.year)
			if ok != tt.ok {
				t.Fatalf("ToCalendarDate(%q, %d): ok = %v, want %v", tt.input, tt.year, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ToCalendarDate(%q, %d) = %v, want %v", tt.input, tt.year, got, tt.want)
			}
		})
	}
}

func TestToCalendarDate_LocalNoon(t *testing.T) {
	// The time of day must be noon, never midnight, so that rendering the
	// date in a different timezone cannot shift the calendar day.
	got, ok := ToCalendarDate("06/15", 2024)
	if !ok {
		t.Fatal("expected valid date")
	}
	if got.Hour() != 12 || got.Minute() != 0 {
		t.Errorf("time of day: got %02d:%02d, want 12:00", got.Hour(), got.Minute())
	}
	if got.Location() != time.Local {
		t.Errorf("location: got %v, want local", got.Location())
	}
}

func TestStartsNewRecord(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"01/15 Card Purchase AMAZON", true},
		{"01/16 Orig CO Name:Home Depot", true},
		{"CO Entry Descr:Online Pmt", false},
		{"$389.20", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := startsNewRecord(tt.input); got != tt.want {
				t.Errorf("startsNewRecord(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
