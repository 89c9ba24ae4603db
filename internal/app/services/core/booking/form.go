package booking

import (
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/pkg/dto/responses"
)

type Stage string

const (
	StageNoCenter     Stage = "no_center"
	StageDatesLoading Stage = "dates_loading"
	StageDatesReady   Stage = "dates_ready"
	StageDateChosen   Stage = "date_chosen"
	StageTimesReady   Stage = "times_ready"
	StageTimeChosen   Stage = "time_chosen"
)

// Form is the date and time step of the appointment form. Every transition
// returns the next Form and leaves the receiver untouched. Transitions that do
// not apply to the current stage return the form unchanged.
type Form struct {
	Stage     Stage
	CenterID  int
	Schedules availability.ScheduleSet
	Dates     []availability.DateOption
	Date      string
	Window    *availability.Window
	Times     []availability.TimeOption
	Time      string
}

func NewForm() Form {
	return Form{
		Stage: StageNoCenter,
		Dates: []availability.DateOption{},
		Times: []availability.TimeOption{},
	}
}

// SelectCenter discards dates, times and the selection whenever the center
// changes. Picking the current center again is a no-op.
func (f Form) SelectCenter(centerID int) Form {
	if centerID <= 0 {
		return NewForm()
	}
	if f.Stage != StageNoCenter && f.CenterID == centerID {
		return f
	}

	next := NewForm()
	next.Stage = StageDatesLoading
	next.CenterID = centerID
	return next
}

// SchedulesLoaded completes a DatesLoading form. Schedules fetched for a
// center that is no longer selected are dropped.
func (f Form) SchedulesLoaded(service *availability.Service, centerID int, set availability.ScheduleSet) Form {
	if f.Stage != StageDatesLoading || f.CenterID != centerID {
		return f
	}
	f.Schedules = set
	f.Dates = service.ListSelectableDates(set)
	f.Stage = StageDatesReady
	return f
}

// SelectDate accepts any date key, including one outside the listed dates,
// so an existing appointment can be edited. An empty key clears the date.
func (f Form) SelectDate(dateKey string) Form {
	if !f.hasDates() {
		return f
	}
	f.Window = nil
	f.Times = []availability.TimeOption{}
	f.Time = ""
	if dateKey == "" {
		f.Date = ""
		f.Stage = StageDatesReady
		return f
	}
	f.Date = dateKey
	f.Stage = StageDateChosen
	return f
}

// LoadTimes resolves the window and slots of the chosen date. A date without
// a window yields TimesReady with no times.
func (f Form) LoadTimes(service *availability.Service) Form {
	if f.Stage != StageDateChosen {
		return f
	}
	f.Times = service.ListSelectableTimes(f.Schedules, f.Date, "")
	f.Window = nil
	if window, ok := service.WindowFor(f.Schedules, f.Date); ok {
		f.Window = &window
	}
	f.Stage = StageTimesReady
	return f
}

// SelectTime highlights the slot nearest to value. The form only reaches
// TimeChosen when value falls within tolerance of a slot, and Time then holds
// that slot rather than the raw value.
func (f Form) SelectTime(service *availability.Service, value string) Form {
	if f.Stage != StageTimesReady && f.Stage != StageTimeChosen {
		return f
	}
	f.Times = service.ListSelectableTimes(f.Schedules, f.Date, value)
	f.Time = ""
	f.Stage = StageTimesReady
	for _, option := range f.Times {
		if option.Selected {
			f.Time = option.Value
			f.Stage = StageTimeChosen
			break
		}
	}
	return f
}

func (f Form) hasDates() bool {
	switch f.Stage {
	case StageDatesReady, StageDateChosen, StageTimesReady, StageTimeChosen:
		return true
	}
	return false
}

func (f Form) ConvertIntoResponse(service *availability.Service) *responses.BookingStep {
	response := &responses.BookingStep{
		Stage:        string(f.Stage),
		CenterID:     f.CenterID,
		SelectedDate: f.Date,
		SelectedTime: f.Time,
		Dates:        availability.ConvertDatesIntoResponse(f.Dates),
		Times:        availability.ConvertTimesIntoResponse(f.Times),
	}
	if f.Window != nil {
		window := service.DescribeWindow(*f.Window)
		response.Window = &window
	}
	return response
}
