package planner

import (
	"sort"
	"time"

	"github.com/daykeep/daykeep/pkg/types"
)

// maxStreakDays caps the backward scan. A safety bound on work per query,
// not a domain rule.
const maxStreakDays = 365

// Streak counts consecutive days the habit was marked done, scanning
// backward from the reference instant's day. If today is not yet marked
// done, the scan starts at yesterday, so an in-progress day neither breaks
// nor inflates the streak. Unknown habit IDs yield 0.
func Streak(s Store, habitID string, ref time.Time) int {
	key := types.KeyOf(ref)
	if !s.Get(key).Habits[habitID] {
		key = key.SubDays(1)
	}

	count := 0
	for count < maxStreakDays && s.Get(key).Habits[habitID] {
		count++
		key = key.SubDays(1)
	}
	return count
}

// Streaks computes the streak for every habit definition.
func Streaks(s Store, ref time.Time) map[string]int {
	defs := s.HabitDefinitions()
	out := make(map[string]int, len(defs))
	for _, d := range defs {
		out[d.ID] = Streak(s, d.ID, ref)
	}
	return out
}

// DayCompletion reports one day's task and habit completion. Rates are in
// [0,1]; a zero denominator yields a 0 rate, never NaN.
type DayCompletion struct {
	Key         types.DateKey `json:"key"`
	TaskRate    float64       `json:"taskRate"`
	HabitRate   float64       `json:"habitRate"`
	TasksDone   int           `json:"tasksDone"`
	TasksTotal  int           `json:"tasksTotal"`
	HabitsDone  int           `json:"habitsDone"`
	HabitsTotal int           `json:"habitsTotal"`
}

// WeeklyCompletion returns one entry per day for the 7 days ending at the
// reference instant's day, oldest first.
func WeeklyCompletion(s Store, ref time.Time) []DayCompletion {
	defs := s.HabitDefinitions()
	out := make([]DayCompletion, 0, 7)

	end := types.KeyOf(ref)
	for i := 6; i >= 0; i-- {
		key := end.SubDays(i)
		record := s.Get(key)

		tasksDone, tasksTotal := record.TaskCounts()
		habitsDone, habitsTotal := record.HabitCounts(defs)

		entry := DayCompletion{
			Key:         key,
			TasksDone:   tasksDone,
			TasksTotal:  tasksTotal,
			HabitsDone:  habitsDone,
			HabitsTotal: habitsTotal,
		}
		if tasksTotal > 0 {
			entry.TaskRate = float64(tasksDone) / float64(tasksTotal)
		}
		if habitsTotal > 0 {
			entry.HabitRate = float64(habitsDone) / float64(habitsTotal)
		}
		out = append(out, entry)
	}
	return out
}

// TopPriorities returns up to n uncompleted tasks ordered by priority, high
// first. Ties keep their list order.
func TopPriorities(record types.DayRecord, n int) []types.Task {
	open := make([]types.Task, 0, len(record.Tasks))
	for _, t := range record.Tasks {
		if !t.Completed {
			open = append(open, t.Clone())
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Priority.Rank() < open[j].Priority.Rank()
	})
	if len(open) > n {
		open = open[:n]
	}
	return open
}
