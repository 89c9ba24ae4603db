package availability

import (
	"dialysis-portal-service/internal/pkg/dto/responses"
	"strings"
	"time"
)

func (o DateOption) ConvertIntoResponse() responses.DateOption {
	return responses.DateOption{
		Key:   o.Key,
		Label: o.Label,
	}
}

func (o TimeOption) ConvertIntoResponse() responses.TimeOption {
	return responses.TimeOption{
		Value:    o.Value,
		Label:    o.Label,
		Selected: o.Selected,
	}
}

func ConvertDatesIntoResponse(options []DateOption) []responses.DateOption {
	converted := make([]responses.DateOption, 0, len(options))
	for _, option := range options {
		converted = append(converted, option.ConvertIntoResponse())
	}
	return converted
}

func ConvertTimesIntoResponse(options []TimeOption) []responses.TimeOption {
	converted := make([]responses.TimeOption, 0, len(options))
	for _, option := range options {
		converted = append(converted, option.ConvertIntoResponse())
	}
	return converted
}

// DescribeWindow renders a window with its bounds labelled like slot times.
func (s *Service) DescribeWindow(w Window) responses.Window {
	today := wallDay(s.Now())
	return responses.Window{
		Start:      w.Start.String(),
		End:        w.End.String(),
		StartLabel: s.formatter.TimeLabel(w.Start.On(today)),
		EndLabel:   s.formatter.TimeLabel(w.End.On(today)),
	}
}

// wallDay is the calendar day of t in UTC, where every clock reading exists.
func wallDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekOrder is the order working days are listed in, Saturday first.
var WeekOrder = []time.Weekday{
	time.Saturday, time.Sunday, time.Monday, time.Tuesday,
	time.Wednesday, time.Thursday, time.Friday,
}

// WeeklyWindows returns the window each bookable weekday is served by, in
// WeekOrder.
func (s *Service) WeeklyWindows(set ScheduleSet) []Window {
	bookable := s.bookable(set)
	windows := make([]Window, 0, len(WeekOrder))
	for _, day := range WeekOrder {
		if window, ok := bookable.WindowFor(day); ok {
			windows = append(windows, window)
		}
	}
	return windows
}

// DayName is the lowercase English weekday name the dialysis API uses.
func DayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}
