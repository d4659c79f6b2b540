package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr error
	}{
		{name: "high", input: "high", want: PriorityHigh},
		{name: "mid", input: "mid", want: PriorityMid},
		{name: "low", input: "low", want: PriorityLow},
		{name: "case insensitive", input: "HIGH", want: PriorityHigh},
		{name: "surrounding whitespace", input: "  low ", want: PriorityLow},
		{name: "unknown value", input: "urgent", wantErr: ErrInvalidPriority},
		{name: "empty", input: "", wantErr: ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMid.Rank())
	assert.Less(t, PriorityMid.Rank(), PriorityLow.Rank())
}

func TestNewTask(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		priority Priority
		wantErr  error
		wantPri  Priority
	}{
		{name: "valid task", title: "Write report", priority: PriorityHigh, wantPri: PriorityHigh},
		{name: "title is trimmed", title: "  Walk  ", priority: PriorityLow, wantPri: PriorityLow},
		{name: "invalid priority defaults to mid", title: "Walk", priority: "urgent", wantPri: PriorityMid},
		{name: "empty priority defaults to mid", title: "Walk", priority: "", wantPri: PriorityMid},
		{name: "empty title rejected", title: "   ", wantErr: ErrTitleEmpty},
		{name: "overlong title rejected", title: strings.Repeat("x", MaxTaskTitleLen+1), wantErr: ErrTitleTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.title, tt.priority)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, task.ID)
			assert.Equal(t, strings.TrimSpace(tt.title), task.Title)
			assert.Equal(t, tt.wantPri, task.Priority)
			assert.False(t, task.Completed)
			assert.NotNil(t, task.Subtasks)
			assert.Empty(t, task.Subtasks)
			assert.Empty(t, task.DueDate)
		})
	}
}

func TestNewTaskGeneratesUniqueIDs(t *testing.T) {
	a, err := NewTask("one", PriorityMid)
	require.NoError(t, err)
	b, err := NewTask("two", PriorityMid)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewSubtask(t *testing.T) {
	sub, err := NewSubtask("Outline")
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Outline", sub.Title)
	assert.False(t, sub.Completed)

	_, err = NewSubtask("")
	assert.ErrorIs(t, err, ErrTitleEmpty)

	_, err = NewSubtask(strings.Repeat("y", MaxSubtaskTitleLen+1))
	assert.ErrorIs(t, err, ErrTitleTooLong)
}

func TestTaskCloneIsDeep(t *testing.T) {
	task, err := NewTask("with subtasks", PriorityMid)
	require.NoError(t, err)
	sub, err := NewSubtask("child")
	require.NoError(t, err)
	task.Subtasks = append(task.Subtasks, sub)

	cp := task.Clone()
	cp.Subtasks[0].Completed = true

	assert.False(t, task.Subtasks[0].Completed, "mutating the clone must not touch the original")
}
