package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 9*60 + 30},
		{"14:00", 14 * 60},
		{"23:59", 23*60 + 59},
		{" 18:15 ", 18*60 + 15},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	if _, err := ParseClock(""); !errors.Is(err, ErrEmptyClock) {
		t.Fatalf("want ErrEmptyClock, got %v", err)
	}
	for _, in := range []string{"24:00", "12:60", "noon", "12", "12:3:4"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidClock) {
			t.Fatalf("ParseClock(%q): want ErrInvalidClock, got %v", in, err)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(9*60 + 5); got != "09:05" {
		t.Fatalf("want 09:05, got %s", got)
	}
	if got := FormatMinutes(-10); got != "00:00" {
		t.Fatalf("want 00:00, got %s", got)
	}
}

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	d, err := ParseDate("2025-08-09", loc)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2025, time.August, 9, 0, 0, 0, 0, loc)
	if !d.Equal(want) {
		t.Fatalf("want %v, got %v", want, d)
	}
	if _, err := ParseDate("09/08/2025", loc); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("want ErrInvalidDate, got %v", err)
	}
}
