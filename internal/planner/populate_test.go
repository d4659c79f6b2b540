package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daykeep/daykeep/internal/storage"
	"github.com/daykeep/daykeep/internal/store"
	"github.com/daykeep/daykeep/pkg/types"
)

// monday is 2024-06-10 12:00 local, a Monday (weekday 1).
var monday = time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(storage.NewMemStore())
	require.NoError(t, err)
	return s
}

func setRecurring(t *testing.T, s *store.Store, defs ...types.RecurringTaskDefinition) {
	t.Helper()
	require.NoError(t, s.SetRecurringTasks(defs))
}

func dailyDef(t *testing.T, title string, pri types.Priority) types.RecurringTaskDefinition {
	t.Helper()
	def, err := types.NewRecurringTask(title, pri, types.FrequencyDaily, 0)
	require.NoError(t, err)
	return def
}

func weeklyDef(t *testing.T, title string, weekDay int) types.RecurringTaskDefinition {
	t.Helper()
	def, err := types.NewRecurringTask(title, types.PriorityMid, types.FrequencyWeekly, weekDay)
	require.NoError(t, err)
	return def
}

func TestPopulateDailyDefinition(t *testing.T) {
	s := openStore(t)
	setRecurring(t, s, dailyDef(t, "Stretch", types.PriorityLow))

	added, err := PopulateDay(s, monday)
	require.NoError(t, err)
	require.Len(t, added, 1)

	tasks := s.Get("2024-06-10").Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "Stretch", tasks[0].Title)
	assert.Equal(t, types.PriorityLow, tasks[0].Priority)
	assert.False(t, tasks[0].Completed)
	assert.Empty(t, tasks[0].Subtasks)
	assert.Empty(t, tasks[0].DueDate)
	assert.NotEmpty(t, tasks[0].ID)

	assert.Equal(t, types.DateKey("2024-06-10"), s.LastPopulatedDate())
}

func TestPopulateTwiceSameDayIsNoOp(t *testing.T) {
	s := openStore(t)
	setRecurring(t, s, dailyDef(t, "Stretch", types.PriorityLow))

	_, err := PopulateDay(s, monday)
	require.NoError(t, err)
	added, err := PopulateDay(s, monday.Add(3*time.Hour))
	require.NoError(t, err)

	assert.Empty(t, added)
	assert.Len(t, s.Get("2024-06-10").Tasks, 1, "no duplicate titles appended")
}

func TestPopulateWeeklySelection(t *testing.T) {
	s := openStore(t)
	setRecurring(t, s,
		weeklyDef(t, "Plan week", 1), // Monday: selected
		weeklyDef(t, "Groceries", 0), // Sunday: not selected
		dailyDef(t, "Stretch", types.PriorityLow),
	)

	_, err := PopulateDay(s, monday)
	require.NoError(t, err)

	tasks := s.Get("2024-06-10").Tasks
	require.Len(t, tasks, 2)
	// Definition order is preserved.
	assert.Equal(t, "Plan week", tasks[0].Title)
	assert.Equal(t, "Stretch", tasks[1].Title)
}

func TestPopulateDedupsByTitle(t *testing.T) {
	s := openStore(t)
	manual, err := types.NewTask("Stretch", types.PriorityHigh)
	require.NoError(t, err)
	_, err = s.Patch("2024-06-10", types.TasksPatch([]types.Task{manual}))
	require.NoError(t, err)

	setRecurring(t, s, dailyDef(t, "Stretch", types.PriorityLow), dailyDef(t, "Journal", types.PriorityMid))

	_, err = PopulateDay(s, monday)
	require.NoError(t, err)

	tasks := s.Get("2024-06-10").Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "Stretch", tasks[0].Title)
	assert.Equal(t, manual.ID, tasks[0].ID, "the manual task suppresses the recurring one")
	assert.Equal(t, "Journal", tasks[1].Title)
}

func TestPopulateDedupIsCaseSensitive(t *testing.T) {
	s := openStore(t)
	manual, err := types.NewTask("stretch", types.PriorityMid)
	require.NoError(t, err)
	_, err = s.Patch("2024-06-10", types.TasksPatch([]types.Task{manual}))
	require.NoError(t, err)

	setRecurring(t, s, dailyDef(t, "Stretch", types.PriorityLow))

	_, err = PopulateDay(s, monday)
	require.NoError(t, err)

	assert.Len(t, s.Get("2024-06-10").Tasks, 2, "titles differing in case do not dedup")
}

func TestPopulateAppendsAfterExistingTasks(t *testing.T) {
	s := openStore(t)
	manual, err := types.NewTask("Manual first", types.PriorityMid)
	require.NoError(t, err)
	_, err = s.Patch("2024-06-10", types.TasksPatch([]types.Task{manual}))
	require.NoError(t, err)

	setRecurring(t, s, dailyDef(t, "Recurring second", types.PriorityLow))

	_, err = PopulateDay(s, monday)
	require.NoError(t, err)

	tasks := s.Get("2024-06-10").Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, "Manual first", tasks[0].Title)
	assert.Equal(t, "Recurring second", tasks[1].Title)
}

func TestPopulateStampsDateWithoutDefinitions(t *testing.T) {
	s := openStore(t)

	added, err := PopulateDay(s, monday)
	require.NoError(t, err)

	assert.Empty(t, added)
	assert.Equal(t, types.DateKey("2024-06-10"), s.LastPopulatedDate())
	assert.Empty(t, s.Days(), "no record is created when nothing is selected")
}

func TestPopulateStampsDateWhenNothingSelected(t *testing.T) {
	s := openStore(t)
	setRecurring(t, s, weeklyDef(t, "Groceries", 0)) // Sunday, not due Monday

	added, err := PopulateDay(s, monday)
	require.NoError(t, err)

	assert.Empty(t, added)
	assert.Equal(t, types.DateKey("2024-06-10"), s.LastPopulatedDate())
}

func TestPopulateRunsAgainOnNewDay(t *testing.T) {
	s := openStore(t)
	setRecurring(t, s, dailyDef(t, "Stretch", types.PriorityLow))

	_, err := PopulateDay(s, monday)
	require.NoError(t, err)

	tuesday := monday.AddDate(0, 0, 1)
	added, err := PopulateDay(s, tuesday)
	require.NoError(t, err)

	require.Len(t, added, 1)
	assert.Len(t, s.Get("2024-06-11").Tasks, 1)
	assert.Equal(t, types.DateKey("2024-06-11"), s.LastPopulatedDate())
}
