package availability

import "time"

// GenerateSlots returns the wall-clock slot starts within [windowStart,
// windowEnd), stepping by step. A slot is emitted while its start is before
// windowEnd, so the last slot may end after the window closes.
//
// Slots are clock readings, not instants: a daylight saving change on the day
// they are later placed on neither repeats nor skips any of them.
func GenerateSlots(windowStart, windowEnd Clock, step time.Duration) []Clock {
	stepSeconds := int(step / time.Second)
	if stepSeconds <= 0 || !windowStart.Before(windowEnd) {
		return []Clock{}
	}

	start, end := windowStart.seconds(), windowEnd.seconds()
	slots := make([]Clock, 0, (end-start)/stepSeconds+1)
	for current := start; current < end; current += stepSeconds {
		slots = append(slots, clockFromSeconds(current))
	}
	return slots
}
