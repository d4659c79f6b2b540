package types

import "time"

// DateKey identifies one local calendar day as a "YYYY-MM-DD" string.
// Lexicographic ordering of DateKeys coincides with chronological ordering,
// so keys can be compared and sorted as plain strings.
type DateKey string

// dateKeyLayout is the reference layout for DateKey values.
const dateKeyLayout = "2006-01-02"

// KeyOf truncates an instant to its local calendar day. Any two instants
// within the same local day map to the same DateKey.
func KeyOf(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// Valid reports whether the key parses as a calendar day.
func (k DateKey) Valid() bool {
	_, err := time.ParseInLocation(dateKeyLayout, string(k), time.Local)
	return err == nil
}

// Time returns the midnight instant of the key's day in local time.
// Returns the zero time for keys that do not parse.
func (k DateKey) Time() time.Time {
	t, err := time.ParseInLocation(dateKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays shifts the key by n whole days. Negative n shifts backward.
// Month and year boundaries are handled by the calendar, not by day counting.
func (k DateKey) AddDays(n int) DateKey {
	return KeyOf(k.Time().AddDate(0, 0, n))
}

// SubDays shifts the key backward by n whole days.
func (k DateKey) SubDays(n int) DateKey {
	return k.AddDays(-n)
}

// Weekday returns the day of week for the key, numbered 0=Sunday..6=Saturday
// to match the host calendar's weekday numbering.
func (k DateKey) Weekday() int {
	return int(k.Time().Weekday())
}

// WeekWindow returns the 7 DateKeys of the instant's week, starting on
// Monday (ISO week start), in chronological order.
func WeekWindow(t time.Time) []DateKey {
	// Monday offset: Monday=0 .. Sunday=6.
	offset := (int(t.Weekday()) + 6) % 7
	monday := KeyOf(t.AddDate(0, 0, -offset))

	window := make([]DateKey, 7)
	for i := range window {
		window[i] = monday.AddDays(i)
	}
	return window
}
