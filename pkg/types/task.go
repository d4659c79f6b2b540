package types

import "strings"

// Priority levels for tasks and recurring-task definitions.
type Priority string

const (
	PriorityHigh Priority = "high"
	PriorityMid  Priority = "mid"
	PriorityLow  Priority = "low"
)

// DefaultPriority is used when input is missing or invalid.
const DefaultPriority = PriorityMid

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMid, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank returns the sort order of the priority, high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMid:
		return 1
	default:
		return 2
	}
}

// ParsePriority parses user input into a Priority.
// Returns ErrInvalidPriority for unrecognized values.
func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.TrimSpace(strings.ToLower(input)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Length limits for task titles and the per-day soft cap on task count.
const (
	MaxTaskTitleLen    = 100
	MaxSubtaskTitleLen = 80
	MaxTasksPerDay     = 10
)

// Subtask is a checklist entry nested inside a Task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is a single to-do entry on a day record.
// DueDate is empty when the task has no due date.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	Subtasks  []Subtask `json:"subtasks"`
	DueDate   DateKey   `json:"dueDate,omitempty"`
}

// NewTask creates a task with a generated ID, validating the title and
// priority. An invalid priority falls back to DefaultPriority; priority is
// user preference, not integrity, so it is defaulted rather than rejected.
func NewTask(title string, priority Priority) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrTitleEmpty
	}
	if len(title) > MaxTaskTitleLen {
		return Task{}, ErrTitleTooLong
	}
	if !priority.IsValid() {
		priority = DefaultPriority
	}
	return Task{
		ID:       NewID(),
		Title:    title,
		Priority: priority,
		Subtasks: []Subtask{},
	}, nil
}

// NewSubtask creates a subtask with a generated ID and validated title.
func NewSubtask(title string) (Subtask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Subtask{}, ErrTitleEmpty
	}
	if len(title) > MaxSubtaskTitleLen {
		return Subtask{}, ErrTitleTooLong
	}
	return Subtask{ID: NewID(), Title: title}, nil
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	cp := t
	cp.Subtasks = make([]Subtask, len(t.Subtasks))
	copy(cp.Subtasks, t.Subtasks)
	return cp
}
