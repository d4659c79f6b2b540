package types

import "strings"

// Frequency of a recurring-task definition.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

// ParseFrequency parses user input into a Frequency.
// Returns ErrInvalidFrequency for unrecognized values.
func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", ErrInvalidFrequency
	}
	return f, nil
}

// MaxRecurringTitleLen limits recurring-task definition titles.
const MaxRecurringTitleLen = 80

// RecurringTaskDefinition describes a task that is materialized onto day
// records automatically. WeekDay is set (0=Sunday..6=Saturday) iff the
// frequency is weekly.
type RecurringTaskDefinition struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	Frequency Frequency `json:"frequency"`
	WeekDay   *int      `json:"weekDay,omitempty"`
}

// NewRecurringTask creates a recurring-task definition with a generated ID.
// weekDay is only consulted for weekly frequency and must be 0..6.
func NewRecurringTask(title string, priority Priority, frequency Frequency, weekDay int) (RecurringTaskDefinition, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return RecurringTaskDefinition{}, ErrTitleEmpty
	}
	if len(title) > MaxRecurringTitleLen {
		return RecurringTaskDefinition{}, ErrTitleTooLong
	}
	if !frequency.IsValid() {
		return RecurringTaskDefinition{}, ErrInvalidFrequency
	}
	if !priority.IsValid() {
		priority = DefaultPriority
	}

	def := RecurringTaskDefinition{
		ID:        NewID(),
		Title:     title,
		Priority:  priority,
		Frequency: frequency,
	}
	if frequency == FrequencyWeekly {
		if weekDay < 0 || weekDay > 6 {
			return RecurringTaskDefinition{}, ErrInvalidWeekDay
		}
		def.WeekDay = &weekDay
	}
	return def, nil
}

// DueOn reports whether the definition applies to the given day: daily
// definitions apply every day, weekly ones on their configured weekday.
func (d RecurringTaskDefinition) DueOn(key DateKey) bool {
	switch d.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return d.WeekDay != nil && *d.WeekDay == key.Weekday()
	default:
		return false
	}
}
