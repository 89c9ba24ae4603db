package responses

import "dialysis-portal-service/internal/pkg/api_dto"

type Center struct {
	api_dto.Center
	WorkingDays []WorkingDay `json:"working_days"`
}

// WorkingDay is the bookable window of one weekday.
type WorkingDay struct {
	Day      string `json:"day"`
	DayLabel string `json:"day_label"`
	Window   Window `json:"window"`
}

type Notification struct {
	api_dto.Notification
	Label string `json:"label"`
}
