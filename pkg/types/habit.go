package types

import "strings"

// Limits on habit definitions. The global list is capped at 6 entries;
// enforcement is the calling surface's responsibility, not the store's.
const (
	MaxHabitDefinitions = 6
	MaxHabitNameLen     = 40
)

// HabitDefinition names a habit tracked across day records. Day records
// reference definitions by ID; deleting a definition leaves historical
// per-day entries in place as harmless orphaned booleans.
type HabitDefinition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewHabitDefinition creates a habit definition with a generated ID and
// validated name.
func NewHabitDefinition(name string) (HabitDefinition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return HabitDefinition{}, ErrNameEmpty
	}
	if len(name) > MaxHabitNameLen {
		return HabitDefinition{}, ErrNameTooLong
	}
	return HabitDefinition{ID: NewID(), Name: name}, nil
}
