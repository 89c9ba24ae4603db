package availability

import "time"

// EnumerateDates returns, in ascending order, the calendar days in
// [today, today+horizonDays) whose weekday carries at least one window.
// Today is truncated to local midnight in its own location.
func EnumerateDates(set ScheduleSet, horizonDays int, today time.Time) []time.Time {
	if horizonDays <= 0 || set.Len() == 0 {
		return []time.Time{}
	}

	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	dates := make([]time.Time, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		candidate := midnight.AddDate(0, 0, i)
		if set.HasDay(candidate.Weekday()) {
			dates = append(dates, candidate)
		}
	}
	return dates
}
