package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecurringTask(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		priority  Priority
		frequency Frequency
		weekDay   int
		wantErr   error
	}{
		{name: "daily", title: "Stretch", priority: PriorityLow, frequency: FrequencyDaily},
		{name: "weekly monday", title: "Plan week", priority: PriorityHigh, frequency: FrequencyWeekly, weekDay: 1},
		{name: "weekly sunday", title: "Groceries", priority: PriorityMid, frequency: FrequencyWeekly, weekDay: 0},
		{name: "weekly saturday", title: "Clean", priority: PriorityMid, frequency: FrequencyWeekly, weekDay: 6},
		{name: "empty title", title: "", frequency: FrequencyDaily, wantErr: ErrTitleEmpty},
		{name: "overlong title", title: strings.Repeat("x", MaxRecurringTitleLen+1), frequency: FrequencyDaily, wantErr: ErrTitleTooLong},
		{name: "invalid frequency", title: "Stretch", frequency: "monthly", wantErr: ErrInvalidFrequency},
		{name: "weekday below range", title: "Stretch", frequency: FrequencyWeekly, weekDay: -1, wantErr: ErrInvalidWeekDay},
		{name: "weekday above range", title: "Stretch", frequency: FrequencyWeekly, weekDay: 7, wantErr: ErrInvalidWeekDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := NewRecurringTask(tt.title, tt.priority, tt.frequency, tt.weekDay)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, def.ID)
			assert.Equal(t, tt.frequency, def.Frequency)
			if tt.frequency == FrequencyWeekly {
				require.NotNil(t, def.WeekDay)
				assert.Equal(t, tt.weekDay, *def.WeekDay)
			} else {
				assert.Nil(t, def.WeekDay, "daily definitions carry no weekday")
			}
		})
	}
}

func TestRecurringTaskDueOn(t *testing.T) {
	daily, err := NewRecurringTask("Stretch", PriorityLow, FrequencyDaily, 0)
	require.NoError(t, err)
	// 2024-06-10 is a Monday (weekday 1).
	weeklyMon, err := NewRecurringTask("Plan week", PriorityHigh, FrequencyWeekly, 1)
	require.NoError(t, err)

	assert.True(t, daily.DueOn("2024-06-10"))
	assert.True(t, daily.DueOn("2024-06-11"))
	assert.True(t, weeklyMon.DueOn("2024-06-10"))
	assert.False(t, weeklyMon.DueOn("2024-06-11"))
	assert.True(t, weeklyMon.DueOn("2024-06-17"), "due again the following monday")
}

func TestParseFrequency(t *testing.T) {
	got, err := ParseFrequency(" Weekly ")
	require.NoError(t, err)
	assert.Equal(t, FrequencyWeekly, got)

	_, err = ParseFrequency("monthly")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}
