// Package ledger implements the query-filter-aggregate-budget engine:
// transaction filtering, period reports, category breakdowns, and budget
// tracking. Every function here is a pure computation over an in-memory
// snapshot; persistence and rendering live elsewhere.
package ledger

import "time"

// dateLayout is the only accepted calendar date format.
const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a day-precision time.
// An empty string means "no date" and yields the zero time without error.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// DateFilter is the combined date constraint: an explicit range plus a
// month/year period. All four bounds are independently optional (zero
// value = unset) and AND together. A fully unset filter matches every
// date.
type DateFilter struct {
	Start time.Time
	End   time.Time
	Month time.Month // 0 = any month
	Year  int        // 0 = any year
}

// Matches reports whether d satisfies both the range and the period
// constraints.
func (f DateFilter) Matches(d time.Time) bool {
	return InRange(d, f.Start, f.End) && InPeriod(d, f.Month, f.Year)
}

// IsZero reports whether no constraint is set at all.
func (f DateFilter) IsZero() bool {
	return f.Start.IsZero() && f.End.IsZero() && f.Month == 0 && f.Year == 0
}

// InRange reports whether d falls within [start, end], where either bound
// may be zero (unset). Both bounds unset means no constraint: every date
// matches.
func InRange(d, start, end time.Time) bool {
	if !start.IsZero() && d.Before(start) {
		return false
	}
	if !end.IsZero() && d.After(end) {
		return false
	}
	return true
}

// InPeriod reports whether d falls in the given month and year, either of
// which may be unset (0).
func InPeriod(d time.Time, month time.Month, year int) bool {
	if month != 0 && d.Month() != month {
		return false
	}
	if year != 0 && d.Year() != year {
		return false
	}
	return true
}

// monthBounds returns the first and last calendar day of a month.
func monthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
