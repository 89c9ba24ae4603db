package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyWindowsSkipsInactiveAndStartsOnSaturday(t *testing.T) {
	service := newTestService()
	set := NewScheduleSet(
		Window{ID: 1, Day: time.Monday, Start: Clock{Hour: 9}, End: Clock{Hour: 11}, Active: true},
		Window{ID: 2, Day: time.Saturday, Start: Clock{Hour: 7}, End: Clock{Hour: 9}, Active: true},
		Window{ID: 3, Day: time.Sunday, Start: Clock{Hour: 8}, End: Clock{Hour: 10}, Active: false},
	)

	windows := service.WeeklyWindows(set)

	require.Len(t, windows, 2)
	assert.Equal(t, 2, windows[0].ID)
	assert.Equal(t, 1, windows[1].ID)

	withInactive := newTestService(WithInactiveWindows(true)).WeeklyWindows(set)
	assert.Len(t, withInactive, 3)
}

func TestDescribeWindow(t *testing.T) {
	service := newTestService()

	described := service.DescribeWindow(Window{Start: Clock{Hour: 9}, End: Clock{Hour: 13, Minute: 30}})

	assert.Equal(t, "09:00", described.Start)
	assert.Equal(t, "13:30", described.End)
	assert.Equal(t, "09:00 AM", described.StartLabel)
	assert.Equal(t, "01:30 PM", described.EndLabel)
}

func TestConvertTimesIntoResponse(t *testing.T) {
	converted := ConvertTimesIntoResponse([]TimeOption{
		{Value: "09:00", Label: "09:00 AM"},
		{Value: "09:30", Label: "09:30 AM", Selected: true},
	})

	require.Len(t, converted, 2)
	assert.False(t, converted[0].Selected)
	assert.True(t, converted[1].Selected)
	assert.Equal(t, "09:30", converted[1].Value)

	assert.Empty(t, ConvertDatesIntoResponse(nil))
	assert.Equal(t, "monday", DayName(time.Monday))
}
