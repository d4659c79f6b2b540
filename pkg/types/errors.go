package types

import "errors"

// Entity validation errors.
var (
	ErrTitleEmpty       = errors.New("title must not be empty")
	ErrTitleTooLong     = errors.New("title exceeds maximum length")
	ErrNameEmpty        = errors.New("name must not be empty")
	ErrNameTooLong      = errors.New("name exceeds maximum length")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidWeekDay   = errors.New("week day must be between 0 and 6")
)

// Capacity errors. The store itself never enforces these limits; the calling
// surface (CLI) rejects at the boundary.
var (
	ErrTaskLimit  = errors.New("daily task limit reached")
	ErrHabitLimit = errors.New("habit definition limit reached")
)

// Lookup errors for definition management.
var (
	ErrHabitNotFound     = errors.New("habit definition not found")
	ErrRecurringNotFound = errors.New("recurring task definition not found")
	ErrTaskNotFound      = errors.New("task not found")
)
