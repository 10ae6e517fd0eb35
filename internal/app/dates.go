package app

import "time"

const dateLayout = "2006-01-02"

// DateRange bounds record timestamps for a collection run. Both bounds are
// inclusive. A nil bound means unbounded. A range with since after until
// matches nothing.
type DateRange struct {
	Since *time.Time
	Until *time.Time
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Since != nil && t.Before(*r.Since) {
		return false
	}
	if r.Until != nil && t.After(*r.Until) {
		return false
	}
	return true
}

// IsZero reports whether both bounds are unset.
func (r DateRange) IsZero() bool {
	return r.Since == nil && r.Until == nil
}

// ParseSince parses a YYYY-MM-DD lower bound. Empty input means no bound.
func ParseSince(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, &InvalidDateFormatError{Value: s}
	}
	return &t, nil
}

// ParseUntil parses a YYYY-MM-DD upper bound. The bound is inclusive: records
// from any moment of the given day are in range. Empty input means no bound.
func ParseUntil(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, &InvalidDateFormatError{Value: s}
	}
	u := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &u, nil
}

// ParseDateRange parses both bounds of a collection run.
func ParseDateRange(since, until string) (DateRange, error) {
	s, err := ParseSince(since)
	if err != nil {
		return DateRange{}, err
	}
	u, err := ParseUntil(until)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Since: s, Until: u}, nil
}
