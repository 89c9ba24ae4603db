package booking

import (
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
)

// ValidateSubmission accepts a booking only on a selectable date and on a
// slot the center actually offers that day. On today's date the slot must not
// have started yet.
func ValidateSubmission(service *availability.Service, centerID int, set availability.ScheduleSet, dateKey, clock string) error {
	if !service.IsSelectableDate(set, dateKey) || !service.IsOfferedSlot(set, dateKey, clock) {
		return exceptions.ErrSlotNotAvailable(centerID, dateKey, clock)
	}

	now := service.Now()
	if dateKey != now.Format(constvars.DateKeyLayout) {
		return nil
	}
	slot, _ := availability.ParseClock(clock)
	current := availability.Clock{Hour: now.Hour(), Minute: now.Minute(), Second: now.Second()}
	if slot.Before(current) {
		return exceptions.ErrSlotNotAvailable(centerID, dateKey, clock)
	}
	return nil
}
