package timespan_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"clipcut/internal/faults"
	"clipcut/internal/timespan"
)

func TestParseAcceptsSpanForms(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"0", 0},
		{"42", 42 * time.Second},
		{"90", 90 * time.Second},
		{"0:00", 0},
		{"5:00", 5 * time.Minute},
		{"05:30", 5*time.Minute + 30*time.Second},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"10:00:00", 10 * time.Hour},
		{"  7:15  ", 7*time.Minute + 15*time.Second},
		// Unnormalized components carry over, the grammar does not range-check.
		{"1:90", time.Minute + 90*time.Second},
	}
	for _, tc := range cases {
		got, err := timespan.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseRejectsMalformedSpans(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"abc",
		"1:xx",
		"1:2:3:4",
		"-5",
		"+5",
		"1:-2",
		"1::2",
		":30",
		"1.5",
	} {
		if _, err := timespan.Parse(input); !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("Parse(%q): expected validation error, got %v", input, err)
		}
	}
}

func TestPathString(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0-00-00"},
		{5 * time.Minute, "0-05-00"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1-02-03"},
		{26 * time.Hour, "26-00-00"},
		{-(time.Minute + 30*time.Second), "-0-01-30"},
	}
	for _, tc := range cases {
		if got := timespan.PathString(tc.d); got != tc.want {
			t.Fatalf("PathString(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestPathStringIsFilenameSafe(t *testing.T) {
	for _, d := range []time.Duration{0, time.Second, 90 * time.Minute, 100 * time.Hour, -time.Hour} {
		got := timespan.PathString(d)
		if strings.ContainsAny(got, `"*/:?\|<> `) {
			t.Fatalf("PathString(%v) = %q contains unsafe characters", d, got)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := timespan.ParseTimestamp("2020-01-01T00:00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp returned error: %v", err)
	}
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("ParseTimestamp = %v, want %v", got, want)
	}

	for _, input := range []string{"", "2020-01-01", "2020-01-01 00:00:00", "01/01/2020T00:00:00"} {
		if _, err := timespan.ParseTimestamp(input); !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("ParseTimestamp(%q): expected validation error, got %v", input, err)
		}
	}
}
