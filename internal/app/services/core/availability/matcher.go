package availability

import "time"

// IsSelected reports whether slot is the rendering of selectedTime. Both are
// wall-clock readings of the same calendar day and must be strictly less than
// tolerance apart. An empty or unparsable selectedTime never selects anything.
func IsSelected(slot Clock, selectedTime string, tolerance time.Duration) bool {
	diff, ok := distance(slot, selectedTime)
	return ok && diff < tolerance
}

func distance(slot Clock, selectedTime string) (time.Duration, bool) {
	if selectedTime == "" {
		return 0, false
	}
	selected, ok := ParseClock(selectedTime)
	if !ok {
		return 0, false
	}

	diff := slot.seconds() - selected.seconds()
	if diff < 0 {
		diff = -diff
	}
	return time.Duration(diff) * time.Second, true
}

// nearestSelected returns the index of the single slot that should render as
// selected, or -1. Among slots within tolerance the closest wins and ties go
// to the earlier slot, so at most one slot is ever selected.
func nearestSelected(slots []Clock, selectedTime string, tolerance time.Duration) int {
	best := -1
	var bestDiff time.Duration
	for i, slot := range slots {
		diff, ok := distance(slot, selectedTime)
		if !ok {
			return -1
		}
		if diff >= tolerance {
			continue
		}
		if best == -1 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best
}
