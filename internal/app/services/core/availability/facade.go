package availability

import (
	"dialysis-portal-service/internal/pkg/constvars"
	"time"
)

const (
	DefaultHorizonDays = 14
	DefaultStep        = 30 * time.Minute
	DefaultTolerance   = 15 * time.Minute
)

// Formatter renders display labels for dates and slot times.
type Formatter interface {
	DateLabel(t time.Time) string
	TimeLabel(t time.Time) string
}

type DateOption struct {
	Date  time.Time
	Key   string
	Label string
}

type TimeOption struct {
	Value    string
	Label    string
	Selected bool
}

// Service answers which dates and times of a center may be booked. It holds
// no mutable state and is safe for concurrent use.
type Service struct {
	now             func() time.Time
	location        *time.Location
	horizonDays     int
	step            time.Duration
	tolerance       time.Duration
	includeInactive bool
	formatter       Formatter
}

type Option func(*Service)

func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLocation(location *time.Location) Option {
	return func(s *Service) { s.location = location }
}

func WithHorizonDays(days int) Option {
	return func(s *Service) { s.horizonDays = days }
}

func WithStep(step time.Duration) Option {
	return func(s *Service) { s.step = step }
}

func WithTolerance(tolerance time.Duration) Option {
	return func(s *Service) { s.tolerance = tolerance }
}

// WithInactiveWindows makes windows flagged inactive bookable as well.
func WithInactiveWindows(include bool) Option {
	return func(s *Service) { s.includeInactive = include }
}

func NewService(formatter Formatter, opts ...Option) *Service {
	s := &Service{
		now:         time.Now,
		location:    time.Local,
		horizonDays: DefaultHorizonDays,
		step:        DefaultStep,
		tolerance:   DefaultTolerance,
		formatter:   formatter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) HorizonDays() int {
	return s.horizonDays
}

// Now is the current time in the service location.
func (s *Service) Now() time.Time {
	return s.now().In(s.location)
}

// ListSelectableDates returns the bookable dates from today over the horizon.
func (s *Service) ListSelectableDates(set ScheduleSet) []DateOption {
	dates := EnumerateDates(s.bookable(set), s.horizonDays, s.now().In(s.location))

	options := make([]DateOption, 0, len(dates))
	for _, date := range dates {
		options = append(options, DateOption{
			Date:  date,
			Key:   date.Format(constvars.DateKeyLayout),
			Label: s.formatter.DateLabel(date),
		})
	}
	return options
}

// ListSelectableTimes returns the slots of the window serving dateKey's
// weekday. selectedTime is the stored appointment time; the slot closest to it
// within tolerance is flagged selected.
func (s *Service) ListSelectableTimes(set ScheduleSet, dateKey, selectedTime string) []TimeOption {
	date, window, ok := s.resolve(set, dateKey)
	if !ok {
		return []TimeOption{}
	}

	slots := GenerateSlots(window.Start, window.End, s.step)
	selected := nearestSelected(slots, selectedTime, s.tolerance)

	day := wallDay(date)

	options := make([]TimeOption, 0, len(slots))
	for i, slot := range slots {
		options = append(options, TimeOption{
			Value:    slot.String(),
			Label:    s.formatter.TimeLabel(slot.On(day)),
			Selected: i == selected,
		})
	}
	return options
}

// WindowFor returns the window that produces the slots of dateKey.
func (s *Service) WindowFor(set ScheduleSet, dateKey string) (Window, bool) {
	_, window, ok := s.resolve(set, dateKey)
	return window, ok
}

// IsSelectableDate reports whether dateKey is one of ListSelectableDates.
func (s *Service) IsSelectableDate(set ScheduleSet, dateKey string) bool {
	for _, option := range s.ListSelectableDates(set) {
		if option.Key == dateKey {
			return true
		}
	}
	return false
}

// IsOfferedSlot reports whether clock is exactly one of the generated slots
// of dateKey, ignoring seconds.
func (s *Service) IsOfferedSlot(set ScheduleSet, dateKey, clock string) bool {
	parsed, ok := ParseClock(clock)
	if !ok {
		return false
	}
	want := parsed.String()
	for _, option := range s.ListSelectableTimes(set, dateKey, "") {
		if option.Value == want {
			return true
		}
	}
	return false
}

func (s *Service) resolve(set ScheduleSet, dateKey string) (time.Time, Window, bool) {
	if dateKey == "" {
		return time.Time{}, Window{}, false
	}
	date, err := time.ParseInLocation(constvars.DateKeyLayout, dateKey, s.location)
	if err != nil {
		return time.Time{}, Window{}, false
	}
	window, ok := s.bookable(set).WindowFor(date.Weekday())
	if !ok {
		return time.Time{}, Window{}, false
	}
	return date, window, true
}

func (s *Service) bookable(set ScheduleSet) ScheduleSet {
	if s.includeInactive {
		return set
	}
	return set.Active()
}
