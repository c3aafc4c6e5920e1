package domain

import "time"

// DateOnly is the wire and storage format for calendar dates.
const DateOnly = "2006-01-02"

// NormalizeDate strips any time-of-day component, leaving midnight UTC.
// Bookings deal in calendar dates only.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}

// Overlaps reports whether two half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent ranges do not overlap, so a checkout
// day can double as another guest's check-in day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(!aEnd.After(bStart) || !bEnd.After(aStart))
}
