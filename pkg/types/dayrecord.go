package types

// Review holds the evening-review text for a day.
type Review struct {
	WhatWorked    string `json:"whatWorked"`
	WhatToImprove string `json:"whatToImprove"`
}

// DayRecord is the full planner state for one calendar day. Habits maps
// HabitDefinition IDs to done/not-done; an absent ID means not done, never
// deletion of the definition.
type DayRecord struct {
	Tasks  []Task          `json:"tasks"`
	Habits map[string]bool `json:"habits"`
	Review Review          `json:"review"`
}

// DefaultDayRecord returns a structurally complete empty record. Every read
// path resolves absence to this shape; callers never see a nil Tasks slice
// or Habits map.
func DefaultDayRecord() DayRecord {
	return DayRecord{
		Tasks:  []Task{},
		Habits: map[string]bool{},
	}
}

// Clone returns a deep copy of the record.
func (r DayRecord) Clone() DayRecord {
	cp := DayRecord{
		Tasks:  make([]Task, len(r.Tasks)),
		Habits: make(map[string]bool, len(r.Habits)),
		Review: r.Review,
	}
	for i, t := range r.Tasks {
		cp.Tasks[i] = t.Clone()
	}
	for k, v := range r.Habits {
		cp.Habits[k] = v
	}
	return cp
}

// TaskCounts returns the completed and total task counts for the day.
func (r DayRecord) TaskCounts() (done, total int) {
	for _, t := range r.Tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(r.Tasks)
}

// HabitCounts returns the completed count over the given definitions and the
// definition total. Habit entries without a matching definition are ignored.
func (r DayRecord) HabitCounts(defs []HabitDefinition) (done, total int) {
	for _, d := range defs {
		if r.Habits[d.ID] {
			done++
		}
	}
	return done, len(defs)
}

// DayPatch is a partial DayRecord overlay. A nil field is absent; a non-nil
// field replaces the stored field wholesale. There is no deep merge below
// the top level.
type DayPatch struct {
	Tasks  *[]Task
	Habits *map[string]bool
	Review *Review
}

// TasksPatch builds a patch that replaces the task list.
func TasksPatch(tasks []Task) DayPatch {
	return DayPatch{Tasks: &tasks}
}

// HabitsPatch builds a patch that replaces the habit map.
func HabitsPatch(habits map[string]bool) DayPatch {
	return DayPatch{Habits: &habits}
}

// ReviewPatch builds a patch that replaces the review.
func ReviewPatch(review Review) DayPatch {
	return DayPatch{Review: &review}
}

// MergeDay applies the three-way merge that defines the patch operation:
// defaults first, then the stored record if any, then the patch overlay,
// shallowly per top-level field. The result is always structurally complete
// and shares no memory with its inputs. Merging the same patch twice yields
// the same result.
func MergeDay(stored *DayRecord, patch DayPatch) DayRecord {
	out := DefaultDayRecord()

	if stored != nil {
		// Stored records loaded from older data may carry nil fields;
		// the defaults stand for those.
		if stored.Tasks != nil {
			out.Tasks = stored.Tasks
		}
		if stored.Habits != nil {
			out.Habits = stored.Habits
		}
		out.Review = stored.Review
	}

	if patch.Tasks != nil {
		out.Tasks = *patch.Tasks
	}
	if patch.Habits != nil {
		out.Habits = *patch.Habits
	}
	if patch.Review != nil {
		out.Review = *patch.Review
	}

	return out.Clone()
}
