package availability

import (
	"dialysis-portal-service/internal/pkg/api_dto"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a local wall time inside a single day.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// ParseClock accepts HH:MM, HH:MM:SS and HH.MM.
func ParseClock(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, false
	}
	c := Clock{Hour: h, Minute: m}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return Clock{}, false
		}
		c.Second = sec
	}
	return c, true
}

func (c Clock) seconds() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

func clockFromSeconds(total int) Clock {
	return Clock{Hour: total / 3600, Minute: total % 3600 / 60, Second: total % 60}
}

func (c Clock) Before(other Clock) bool {
	return c.seconds() < other.seconds()
}

// On places the clock on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, c.Second, 0, date.Location())
}

// String renders HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseWeekday maps English weekday names and their common abbreviations.
func ParseWeekday(s string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tues", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thur", "thurs", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	}
	return time.Sunday, false
}

// Window is one weekly operating window of a center. Start is inclusive and
// End exclusive.
type Window struct {
	ID       int
	CenterID int
	Day      time.Weekday
	Start    Clock
	End      Clock
	Active   bool
}

// Usable reports whether the window can produce any slot at all.
func (w Window) Usable() bool {
	return w.Start.Before(w.End)
}

// ScheduleSet is the immutable weekly schedule of a center. Windows keep the
// order in which they were declared.
type ScheduleSet struct {
	windows []Window
}

func NewScheduleSet(windows ...Window) ScheduleSet {
	copied := make([]Window, len(windows))
	copy(copied, windows)
	return ScheduleSet{windows: copied}
}

// ScheduleSetFromAPI converts the schedules embedded in a center. Entries with
// an unknown day or an unparsable time are dropped.
func ScheduleSetFromAPI(schedules []api_dto.Schedule) ScheduleSet {
	windows := make([]Window, 0, len(schedules))
	for _, schedule := range schedules {
		day, ok := ParseWeekday(schedule.Day)
		if !ok {
			continue
		}
		start, ok := ParseClock(schedule.StartTime)
		if !ok {
			continue
		}
		end, ok := ParseClock(schedule.EndTime)
		if !ok {
			continue
		}
		windows = append(windows, Window{
			ID:       schedule.ID,
			CenterID: schedule.CenterID,
			Day:      day,
			Start:    start,
			End:      end,
			Active:   schedule.IsActive,
		})
	}
	return ScheduleSet{windows: windows}
}

func (s ScheduleSet) Windows() []Window {
	copied := make([]Window, len(s.windows))
	copy(copied, s.windows)
	return copied
}

func (s ScheduleSet) Len() int {
	return len(s.windows)
}

// Active returns the subset of windows flagged active.
func (s ScheduleSet) Active() ScheduleSet {
	active := make([]Window, 0, len(s.windows))
	for _, w := range s.windows {
		if w.Active {
			active = append(active, w)
		}
	}
	return ScheduleSet{windows: active}
}

// HasDay reports whether any window falls on the weekday.
func (s ScheduleSet) HasDay(day time.Weekday) bool {
	for _, w := range s.windows {
		if w.Day == day {
			return true
		}
	}
	return false
}

// WindowFor returns the first usable window of the weekday in declaration
// order. Later windows of the same weekday are not consulted.
func (s ScheduleSet) WindowFor(day time.Weekday) (Window, bool) {
	for _, w := range s.windows {
		if w.Day == day && w.Usable() {
			return w, true
		}
	}
	return Window{}, false
}
