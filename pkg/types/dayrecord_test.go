package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDayRecord(t *testing.T) {
	r := DefaultDayRecord()
	assert.NotNil(t, r.Tasks)
	assert.Empty(t, r.Tasks)
	assert.NotNil(t, r.Habits)
	assert.Empty(t, r.Habits)
	assert.Equal(t, Review{}, r.Review)
}

func TestMergeDay(t *testing.T) {
	task := Task{ID: "t1", Title: "Walk", Priority: PriorityMid, Subtasks: []Subtask{}}
	stored := DayRecord{
		Tasks:  []Task{task},
		Habits: map[string]bool{"h1": true},
		Review: Review{WhatWorked: "focus"},
	}

	t.Run("empty patch over nothing yields default", func(t *testing.T) {
		got := MergeDay(nil, DayPatch{})
		assert.Equal(t, DefaultDayRecord(), got)
	})

	t.Run("empty patch preserves stored record", func(t *testing.T) {
		got := MergeDay(&stored, DayPatch{})
		assert.Equal(t, stored, got)
	})

	t.Run("patched field replaces wholesale", func(t *testing.T) {
		got := MergeDay(&stored, HabitsPatch(map[string]bool{"h2": true}))
		assert.Equal(t, map[string]bool{"h2": true}, got.Habits, "habits are replaced, not deep-merged")
		assert.Equal(t, stored.Tasks, got.Tasks, "unpatched fields survive")
		assert.Equal(t, stored.Review, got.Review)
	})

	t.Run("absent stored fields fall back to defaults", func(t *testing.T) {
		partial := DayRecord{Review: Review{WhatWorked: "rest"}}
		got := MergeDay(&partial, DayPatch{})
		assert.NotNil(t, got.Tasks)
		assert.NotNil(t, got.Habits)
		assert.Equal(t, "rest", got.Review.WhatWorked)
	})

	t.Run("merge is idempotent", func(t *testing.T) {
		patch := TasksPatch([]Task{task})
		once := MergeDay(&stored, patch)
		twice := MergeDay(&once, patch)
		assert.Equal(t, once, twice)
	})

	t.Run("result shares no memory with inputs", func(t *testing.T) {
		got := MergeDay(&stored, DayPatch{})
		got.Habits["h1"] = false
		got.Tasks[0].Title = "changed"
		assert.True(t, stored.Habits["h1"])
		assert.Equal(t, "Walk", stored.Tasks[0].Title)
	})
}

func TestDayRecordCounts(t *testing.T) {
	r := DayRecord{
		Tasks: []Task{
			{ID: "a", Title: "one", Completed: true},
			{ID: "b", Title: "two"},
			{ID: "c", Title: "three", Completed: true},
		},
		Habits: map[string]bool{"h1": true, "h2": false, "orphan": true},
	}
	defs := []HabitDefinition{{ID: "h1", Name: "Exercise"}, {ID: "h2", Name: "Read"}}

	done, total := r.TaskCounts()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)

	done, total = r.HabitCounts(defs)
	assert.Equal(t, 1, done, "orphaned habit entries are not counted")
	assert.Equal(t, 2, total)
}

func TestDayRecordJSONRoundTrip(t *testing.T) {
	due := DateKey("2024-06-15")
	r := DayRecord{
		Tasks: []Task{{
			ID:        "t1",
			Title:     "Write",
			Completed: true,
			Priority:  PriorityHigh,
			Subtasks:  []Subtask{{ID: "s1", Title: "Outline", Completed: true}},
			DueDate:   due,
		}},
		Habits: map[string]bool{"h1": true},
		Review: Review{WhatWorked: "morning", WhatToImprove: "less coffee"},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back DayRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}
