package planner

import (
	"fmt"
	"time"

	"github.com/daykeep/daykeep/pkg/types"
)

// PopulateDay materializes recurring-task definitions into concrete tasks on
// today's record, at most once per calendar day. It returns the tasks it
// appended, which is empty on the second and later calls within the same
// day.
//
// Selection takes daily definitions plus weekly ones whose weekday matches
// today. A definition whose title exactly matches a title already on today's
// list is skipped; dedup is by title, not definition ID, so a same-titled
// manual task suppresses the recurring insertion for that day.
//
// The last-populated marker is stamped unconditionally, even when nothing
// was selected, so later checks the same day return immediately. If the
// process's notion of today changes mid-session, the new day is populated on
// the next call that observes the new date; there is no timer here.
func PopulateDay(s Store, now time.Time) ([]types.Task, error) {
	today := types.KeyOf(now)
	if s.LastPopulatedDate() == today {
		return nil, nil
	}

	defs := s.RecurringTasks()
	if len(defs) == 0 {
		if err := s.SetLastPopulatedDate(today); err != nil {
			return nil, fmt.Errorf("stamping populated date: %w", err)
		}
		return nil, nil
	}

	record := s.Get(today)
	existing := make(map[string]bool, len(record.Tasks))
	for _, t := range record.Tasks {
		existing[t.Title] = true
	}

	var added []types.Task
	for _, def := range defs {
		if !def.DueOn(today) || existing[def.Title] {
			continue
		}
		added = append(added, types.Task{
			ID:       types.NewID(),
			Title:    def.Title,
			Priority: def.Priority,
			Subtasks: []types.Subtask{},
		})
	}

	if len(added) > 0 {
		tasks := append(record.Tasks, added...)
		if _, err := s.Patch(today, types.TasksPatch(tasks)); err != nil {
			return nil, fmt.Errorf("appending recurring tasks: %w", err)
		}
	}

	if err := s.SetLastPopulatedDate(today); err != nil {
		return nil, fmt.Errorf("stamping populated date: %w", err)
	}
	return added, nil
}
