package availability

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainFormatter struct{}

func (plainFormatter) DateLabel(t time.Time) string { return t.Format("Monday 02/01/2006") }
func (plainFormatter) TimeLabel(t time.Time) string { return t.Format("03:04 PM") }

func newTestService(opts ...Option) *Service {
	// 2025-06-02 is a Monday.
	now := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	base := []Option{
		WithNow(func() time.Time { return now }),
		WithLocation(time.UTC),
	}
	return NewService(plainFormatter{}, append(base, opts...)...)
}

func centerSchedule() ScheduleSet {
	return NewScheduleSet(
		Window{ID: 1, Day: time.Monday, Start: Clock{Hour: 9}, End: Clock{Hour: 11}, Active: true},
		Window{ID: 2, Day: time.Friday, Start: Clock{Hour: 14}, End: Clock{Hour: 16}, Active: true},
		Window{ID: 3, Day: time.Sunday, Start: Clock{Hour: 8}, End: Clock{Hour: 10}, Active: false},
	)
}

func TestListSelectableDates(t *testing.T) {
	service := newTestService()

	dates := service.ListSelectableDates(centerSchedule())

	keys := make([]string, 0, len(dates))
	for _, date := range dates {
		keys = append(keys, date.Key)
	}
	assert.Equal(t, []string{"2025-06-02", "2025-06-06", "2025-06-09", "2025-06-13"}, keys)
	assert.Equal(t, "Monday 02/06/2025", dates[0].Label)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), dates[0].Date)
}

func TestListSelectableDatesInactiveWindows(t *testing.T) {
	set := centerSchedule()

	excluded := newTestService().ListSelectableDates(set)
	for _, date := range excluded {
		assert.NotEqual(t, time.Sunday, date.Date.Weekday())
	}

	included := newTestService(WithInactiveWindows(true)).ListSelectableDates(set)
	assert.Len(t, included, len(excluded)+2)
}

func TestListSelectableDatesEmptySchedule(t *testing.T) {
	dates := newTestService().ListSelectableDates(NewScheduleSet())
	assert.NotNil(t, dates)
	assert.Empty(t, dates)
}

func TestListSelectableDatesCustomHorizon(t *testing.T) {
	assert.Len(t, newTestService(WithHorizonDays(7)).ListSelectableDates(centerSchedule()), 2)
	assert.Empty(t, newTestService(WithHorizonDays(0)).ListSelectableDates(centerSchedule()))
}

func TestListSelectableTimes(t *testing.T) {
	service := newTestService()
	set := centerSchedule()

	t.Run("monday window with stored time", func(t *testing.T) {
		times := service.ListSelectableTimes(set, "2025-06-02", "10:05")
		require.Len(t, times, 4)

		values := []string{}
		var selected []string
		for _, option := range times {
			values = append(values, option.Value)
			if option.Selected {
				selected = append(selected, option.Value)
			}
		}
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, values)
		assert.Equal(t, []string{"10:00"}, selected)
		assert.Equal(t, "10:00 AM", times[2].Label)
	})

	t.Run("no stored time selects nothing", func(t *testing.T) {
		for _, option := range service.ListSelectableTimes(set, "2025-06-09", "") {
			assert.False(t, option.Selected)
		}
	})

	t.Run("weekday without window", func(t *testing.T) {
		// 2025-06-04 is a Wednesday.
		times := service.ListSelectableTimes(set, "2025-06-04", "10:00")
		assert.NotNil(t, times)
		assert.Empty(t, times)
	})

	t.Run("inactive window yields nothing by default", func(t *testing.T) {
		assert.Empty(t, service.ListSelectableTimes(set, "2025-06-08", ""))
		assert.Len(t, newTestService(WithInactiveWindows(true)).ListSelectableTimes(set, "2025-06-08", ""), 4)
	})

	t.Run("empty or malformed date", func(t *testing.T) {
		assert.Empty(t, service.ListSelectableTimes(set, "", "10:00"))
		assert.Empty(t, service.ListSelectableTimes(set, "02/06/2025", "10:00"))
	})

	t.Run("dates outside the horizon still resolve their window", func(t *testing.T) {
		assert.Len(t, service.ListSelectableTimes(set, "2025-05-26", ""), 4)
	})
}

func TestWindowFor(t *testing.T) {
	service := newTestService()
	set := NewScheduleSet(
		Window{ID: 10, Day: time.Monday, Start: Clock{Hour: 16}, End: Clock{Hour: 12}, Active: true},
		Window{ID: 11, Day: time.Monday, Start: Clock{Hour: 13}, End: Clock{Hour: 14}, Active: true},
		Window{ID: 12, Day: time.Monday, Start: Clock{Hour: 8}, End: Clock{Hour: 9}, Active: true},
	)

	window, ok := service.WindowFor(set, "2025-06-02")
	require.True(t, ok)
	assert.Equal(t, 11, window.ID)

	values := []string{}
	for _, option := range service.ListSelectableTimes(set, "2025-06-02", "") {
		values = append(values, option.Value)
	}
	assert.Equal(t, []string{"13:00", "13:30"}, values)
}

func TestIsSelectableDateAndOfferedSlot(t *testing.T) {
	service := newTestService()
	set := centerSchedule()

	assert.True(t, service.IsSelectableDate(set, "2025-06-06"))
	assert.False(t, service.IsSelectableDate(set, "2025-06-04"))
	assert.False(t, service.IsSelectableDate(set, "2025-06-16"), "beyond the horizon")
	assert.False(t, service.IsSelectableDate(set, "2025-05-30"), "in the past")

	assert.True(t, service.IsOfferedSlot(set, "2025-06-06", "15:30"))
	assert.True(t, service.IsOfferedSlot(set, "2025-06-06", "15:30:00"))
	assert.False(t, service.IsOfferedSlot(set, "2025-06-06", "15:45"))
	assert.False(t, service.IsOfferedSlot(set, "2025-06-06", "16:00"))
	assert.False(t, service.IsOfferedSlot(set, "2025-06-06", "garbage"))
}

func TestListSelectableTimesAcrossDaylightSavingChange(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	service := NewService(plainFormatter{},
		WithNow(func() time.Time { return time.Date(2026, 10, 30, 9, 0, 0, 0, location) }),
		WithLocation(location),
	)
	set := NewScheduleSet(Window{Day: time.Sunday, Start: at(0, 30), End: at(3, 0), Active: true})

	collect := func(dateKey, selectedTime string) ([]string, []string) {
		values := []string{}
		var selected []string
		for _, option := range service.ListSelectableTimes(set, dateKey, selectedTime) {
			values = append(values, option.Value)
			if option.Selected {
				selected = append(selected, option.Value)
			}
		}
		return values, selected
	}

	t.Run("clocks fall back", func(t *testing.T) {
		values, selected := collect("2026-11-01", "01:05")
		assert.Equal(t, []string{"00:30", "01:00", "01:30", "02:00", "02:30"}, values)
		assert.Equal(t, []string{"01:00"}, selected)
	})

	t.Run("clocks spring forward", func(t *testing.T) {
		values, _ := collect("2026-03-08", "")
		assert.Equal(t, []string{"00:30", "01:00", "01:30", "02:00", "02:30"}, values)
	})

	t.Run("labels follow the wall clock", func(t *testing.T) {
		times := service.ListSelectableTimes(set, "2026-03-08", "")
		require.Len(t, times, 5)
		assert.Equal(t, "02:30 AM", times[4].Label)
	})
}
