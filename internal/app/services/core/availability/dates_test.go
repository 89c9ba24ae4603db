package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekly(days ...time.Weekday) ScheduleSet {
	windows := make([]Window, 0, len(days))
	for _, day := range days {
		windows = append(windows, Window{Day: day, Start: Clock{Hour: 9}, End: Clock{Hour: 11}, Active: true})
	}
	return NewScheduleSet(windows...)
}

func TestEnumerateDates(t *testing.T) {
	loc := time.UTC
	// 2025-06-02 is a Monday.
	today := time.Date(2025, 6, 2, 15, 42, 10, 0, loc)
	midnight := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)

	t.Run("dates stay inside the horizon and ascend", func(t *testing.T) {
		dates := EnumerateDates(weekly(time.Monday, time.Wednesday, time.Saturday), 14, today)
		require.NotEmpty(t, dates)
		for i, date := range dates {
			assert.False(t, date.Before(midnight), "date %s before today", date)
			assert.True(t, date.Before(midnight.AddDate(0, 0, 14)), "date %s beyond horizon", date)
			if i > 0 {
				assert.True(t, dates[i-1].Before(date), "dates must strictly ascend")
			}
		}
		assert.Len(t, dates, 6)
	})

	t.Run("every date falls on a scheduled weekday", func(t *testing.T) {
		set := weekly(time.Tuesday, time.Thursday)
		for _, date := range EnumerateDates(set, 14, today) {
			assert.True(t, set.HasDay(date.Weekday()), "unexpected weekday %s", date.Weekday())
		}
	})

	t.Run("today is included and truncated to midnight", func(t *testing.T) {
		dates := EnumerateDates(weekly(time.Monday), 14, today)
		require.Len(t, dates, 2)
		assert.Equal(t, midnight, dates[0])
		assert.Equal(t, midnight.AddDate(0, 0, 7), dates[1])
	})

	t.Run("friday only schedule", func(t *testing.T) {
		fridays := weekly(time.Friday)
		twoWeeks := EnumerateDates(fridays, 14, today)
		assert.Len(t, twoWeeks, 2)
		for _, date := range twoWeeks {
			assert.Equal(t, time.Friday, date.Weekday())
		}
		assert.Len(t, EnumerateDates(fridays, 7, today), 1)
	})

	t.Run("zero or negative horizon", func(t *testing.T) {
		assert.Empty(t, EnumerateDates(weekly(time.Monday), 0, today))
		assert.Empty(t, EnumerateDates(weekly(time.Monday), -3, today))
	})

	t.Run("empty schedule", func(t *testing.T) {
		dates := EnumerateDates(NewScheduleSet(), 14, today)
		assert.NotNil(t, dates)
		assert.Empty(t, dates)
	})

	t.Run("keeps the location of today", func(t *testing.T) {
		tripoli := time.FixedZone("EET", 2*60*60)
		dates := EnumerateDates(weekly(time.Monday), 1, time.Date(2025, 6, 2, 1, 0, 0, 0, tripoli))
		require.Len(t, dates, 1)
		assert.Equal(t, tripoli, dates[0].Location())
		assert.Equal(t, 0, dates[0].Hour())
	})
}
