package ledger

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		want    string
	}{
		{"valid", "2024-03-01", nil, "2024-03-01"},
		{"empty means no date", "", nil, ""},
		{"wrong layout", "01-03-2024", ErrInvalidDate, ""},
		{"not a date", "yesterday", ErrInvalidDate, ""},
		{"truncated", "2024-03", ErrInvalidDate, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseDate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if tt.want == "" {
				if !got.IsZero() {
					t.Errorf("ParseDate(%q) = %v, want zero time", tt.input, got)
				}
				return
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestInRange_NoBoundsMatchesEverything(t *testing.T) {
	// The no-constraint case must match every date. An early revision of
	// this tool returned false here; the corrected contract is true.
	dates := []string{"1970-01-01", "2024-06-15", "2099-12-31"}
	for _, s := range dates {
		if !InRange(date(t, s), time.Time{}, time.Time{}) {
			t.Errorf("InRange(%s, zero, zero) = false, want true", s)
		}
	}
}

func TestInRange_Bounds(t *testing.T) {
	start := date(t, "2024-03-01")
	end := date(t, "2024-03-31")

	tests := []struct {
		name       string
		d          string
		start, end time.Time
		want       bool
	}{
		{"inside", "2024-03-15", start, end, true},
		{"on start", "2024-03-01", start, end, true},
		{"on end", "2024-03-31", start, end, true},
		{"before start", "2024-02-29", start, end, false},
		{"after end", "2024-04-01", start, end, false},
		{"only start, after", "2024-05-01", start, time.Time{}, true},
		{"only start, before", "2024-02-01", start, time.Time{}, false},
		{"only end, before", "2024-01-01", time.Time{}, end, true},
		{"only end, after", "2024-04-01", time.Time{}, end, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(date(t, tt.d), tt.start, tt.end); got != tt.want {
				t.Errorf("InRange(%s) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestInPeriod(t *testing.T) {
	d := date(t, "2024-03-15")

	tests := []struct {
		name  string
		month time.Month
		year  int
		want  bool
	}{
		{"no constraint", 0, 0, true},
		{"month match", time.March, 0, true},
		{"month mismatch", time.April, 0, false},
		{"year match", 0, 2024, true},
		{"year mismatch", 0, 2023, false},
		{"both match", time.March, 2024, true},
		{"month match year mismatch", time.March, 2023, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InPeriod(d, tt.month, tt.year); got != tt.want {
				t.Errorf("InPeriod(%s, %v, %d) = %v, want %v", d.Format("2006-01-02"), tt.month, tt.year, got, tt.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		year       int
		month      time.Month
		start, end string
	}{
		{2025, time.March, "2025-03-01", "2025-03-31"},
		{2024, time.February, "2024-02-01", "2024-02-29"}, // leap year
		{2023, time.February, "2023-02-01", "2023-02-28"},
		{2024, time.December, "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		start, end := monthBounds(tt.year, tt.month)
		if start.Format("2006-01-02") != tt.start {
			t.Errorf("monthBounds(%d, %v) start = %s, want %s", tt.year, tt.month, start.Format("2006-01-02"), tt.start)
		}
		if end.Format("2006-01-02") != tt.end {
			t.Errorf("monthBounds(%d, %v) end = %s, want %s", tt.year, tt.month, end.Format("2006-01-02"), tt.end)
		}
	}
}
