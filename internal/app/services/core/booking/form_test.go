package booking

import (
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"dialysis-portal-service/internal/pkg/locale"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *availability.Service {
	// 2025-06-02 is a Monday.
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	return availability.NewService(locale.NewArabic(),
		availability.WithNow(func() time.Time { return now }),
		availability.WithLocation(time.UTC),
	)
}

func mondaySchedule() availability.ScheduleSet {
	return availability.NewScheduleSet(
		availability.Window{ID: 1, Day: time.Monday, Start: availability.Clock{Hour: 9}, End: availability.Clock{Hour: 11}, Active: true},
	)
}

func TestFormHappyPath(t *testing.T) {
	service := newTestService()

	form := NewForm()
	assert.Equal(t, StageNoCenter, form.Stage)

	form = form.SelectCenter(3)
	assert.Equal(t, StageDatesLoading, form.Stage)

	form = form.SchedulesLoaded(service, 3, mondaySchedule())
	require.Equal(t, StageDatesReady, form.Stage)
	require.Len(t, form.Dates, 2)

	form = form.SelectDate("2025-06-09")
	assert.Equal(t, StageDateChosen, form.Stage)

	form = form.LoadTimes(service)
	require.Equal(t, StageTimesReady, form.Stage)
	require.NotNil(t, form.Window)
	assert.Len(t, form.Times, 4)

	form = form.SelectTime(service, "10:05")
	assert.Equal(t, StageTimeChosen, form.Stage)
	assert.Equal(t, "10:00", form.Time)
}

func TestFormCenterChangeResetsSelection(t *testing.T) {
	service := newTestService()

	chosen := NewForm().
		SelectCenter(3).
		SchedulesLoaded(service, 3, mondaySchedule()).
		SelectDate("2025-06-09").
		LoadTimes(service).
		SelectTime(service, "09:30")
	require.Equal(t, StageTimeChosen, chosen.Stage)

	same := chosen.SelectCenter(3)
	assert.Equal(t, StageTimeChosen, same.Stage)

	changed := chosen.SelectCenter(4)
	assert.Equal(t, StageDatesLoading, changed.Stage)
	assert.Equal(t, 4, changed.CenterID)
	assert.Empty(t, changed.Dates)
	assert.Empty(t, changed.Times)
	assert.Empty(t, changed.Date)
	assert.Empty(t, changed.Time)
	assert.Nil(t, changed.Window)

	// the original value is untouched
	assert.Equal(t, "09:30", chosen.Time)

	cleared := chosen.SelectCenter(0)
	assert.Equal(t, StageNoCenter, cleared.Stage)
}

func TestFormDropsStaleSchedules(t *testing.T) {
	service := newTestService()

	form := NewForm().SelectCenter(4).SchedulesLoaded(service, 3, mondaySchedule())

	assert.Equal(t, StageDatesLoading, form.Stage)
	assert.Empty(t, form.Dates)
}

func TestFormEmptySequencesAreValidStates(t *testing.T) {
	service := newTestService()

	form := NewForm().SelectCenter(5).SchedulesLoaded(service, 5, availability.NewScheduleSet())
	assert.Equal(t, StageDatesReady, form.Stage)
	assert.Empty(t, form.Dates)

	// 2025-06-10 is a Tuesday, the center is closed.
	form = form.SelectDate("2025-06-10").LoadTimes(service)
	assert.Equal(t, StageTimesReady, form.Stage)
	assert.Empty(t, form.Times)
	assert.Nil(t, form.Window)
}

func TestFormTimeOutsideToleranceStaysOnTimes(t *testing.T) {
	service := newTestService()

	form := NewForm().
		SelectCenter(3).
		SchedulesLoaded(service, 3, mondaySchedule()).
		SelectDate("2025-06-09").
		LoadTimes(service).
		SelectTime(service, "13:00")

	assert.Equal(t, StageTimesReady, form.Stage)
	assert.Empty(t, form.Time)
	for _, option := range form.Times {
		assert.False(t, option.Selected)
	}
}

func TestFormClearingDateReturnsToDates(t *testing.T) {
	service := newTestService()

	form := NewForm().
		SelectCenter(3).
		SchedulesLoaded(service, 3, mondaySchedule()).
		SelectDate("2025-06-09").
		LoadTimes(service).
		SelectDate("")

	assert.Equal(t, StageDatesReady, form.Stage)
	assert.Empty(t, form.Times)
	assert.Len(t, form.Dates, 2)
}

func TestFormIgnoresOutOfOrderTransitions(t *testing.T) {
	service := newTestService()

	form := NewForm().SelectDate("2025-06-09")
	assert.Equal(t, StageNoCenter, form.Stage)

	form = NewForm().SelectCenter(3).SelectTime(service, "09:00")
	assert.Equal(t, StageDatesLoading, form.Stage)
}

func TestValidateSubmission(t *testing.T) {
	service := newTestService()
	set := mondaySchedule()

	assert.NoError(t, ValidateSubmission(service, 3, set, "2025-06-09", "09:30:00"))

	err := ValidateSubmission(service, 3, set, "2025-06-09", "09:40")
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))

	// beyond the fourteen day horizon
	assert.Error(t, ValidateSubmission(service, 3, set, "2025-06-16", "09:00"))
	// closed weekday
	assert.Error(t, ValidateSubmission(service, 3, set, "2025-06-10", "09:00"))
}

func TestValidateSubmissionToday(t *testing.T) {
	// Monday 2025-06-02 at 09:45
	now := time.Date(2025, 6, 2, 9, 45, 0, 0, time.UTC)
	service := availability.NewService(locale.NewArabic(),
		availability.WithNow(func() time.Time { return now }),
		availability.WithLocation(time.UTC),
	)
	set := mondaySchedule()

	err := ValidateSubmission(service, 3, set, "2025-06-02", "09:30")
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))

	assert.NoError(t, ValidateSubmission(service, 3, set, "2025-06-02", "10:00"))
	assert.NoError(t, ValidateSubmission(service, 3, set, "2025-06-09", "09:00"))
}
