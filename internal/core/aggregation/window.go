package aggregation

import (
	"fmt"
	"strconv"
	"time"
)

// Bucket key layouts. Keys sort lexically in calendar order within their scope.
const (
	MonthKeyLayout     = "01"
	YearMonthKeyLayout = "2006-01"
)

// WindowSpec represents a parsed and validated window size.
type WindowSpec struct {
	Size time.Duration
}

// ParseWindowSize parses a duration string into a WindowSpec.
// Supports Go duration syntax (e.g., "10s", "1m", "1h") plus "Xd" for days.
func ParseWindowSize(s string) (WindowSpec, error) {
	if s == "" {
		return WindowSpec{}, fmt.Errorf("window size must not be empty")
	}

	// time.ParseDuration has no "d" unit.
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
			return WindowSpec{}, fmt.Errorf("invalid window size %q: %w", s, err)
		}
		if days <= 0 {
			return WindowSpec{}, fmt.Errorf("window size must be positive, got %q", s)
		}
		return WindowSpec{Size: time.Duration(days) * 24 * time.Hour}, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return WindowSpec{}, fmt.Errorf("invalid window size %q: %w", s, err)
	}
	if d <= 0 {
		return WindowSpec{}, fmt.Errorf("window size must be positive, got %q", s)
	}
	return WindowSpec{Size: d}, nil
}

// TimeRange is the half-open interval [From, To). A zero bound is open.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

// Unbounded reports whether neither side of the range is set.
func (r TimeRange) Unbounded() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// TrailingWindow returns [now-size, +inf).
func TrailingWindow(now time.Time, size time.Duration) TimeRange {
	return TimeRange{From: now.Add(-size)}
}

// PreviousWindow returns the window of the same size that ends where the trailing one starts.
func PreviousWindow(now time.Time, size time.Duration) TimeRange {
	return TimeRange{From: now.Add(-2 * size), To: now.Add(-size)}
}

// TrailingMonths returns [now - months calendar months, +inf).
func TrailingMonths(now time.Time, months int) TimeRange {
	return TimeRange{From: now.AddDate(0, -months, 0)}
}

// MonthKey buckets a timestamp by calendar month only ("01".."12").
// Timestamps are bucketed in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthKeyLayout)
}

// YearMonthKey buckets a timestamp by calendar year and month ("2026-01").
func YearMonthKey(t time.Time) string {
	return t.UTC().Format(YearMonthKeyLayout)
}

// ParseMonthKey converts a MonthKey back to its month.
func ParseMonthKey(key string) (time.Month, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month key %q: out of range", key)
	}
	return time.Month(n), nil
}

// ParseYearMonthKey converts a YearMonthKey back to the first instant of that month.
func ParseYearMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(YearMonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year-month key %q: %w", key, err)
	}
	return t, nil
}

// MonthLabel returns the three-letter month abbreviation ("Jan").
func MonthLabel(m time.Month) string {
	return m.String()[:3]
}
