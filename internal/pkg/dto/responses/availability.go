package responses

type DateOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type TimeOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type Window struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	StartLabel string `json:"start_label"`
	EndLabel   string `json:"end_label"`
}

type AvailableDates struct {
	CenterID int          `json:"center_id"`
	Dates    []DateOption `json:"dates"`
}

type AvailableTimes struct {
	CenterID int          `json:"center_id"`
	Date     string       `json:"date"`
	Window   *Window      `json:"window,omitempty"`
	Times    []TimeOption `json:"times"`
}

type BookingStep struct {
	Stage        string       `json:"stage"`
	CenterID     int          `json:"center_id,omitempty"`
	SelectedDate string       `json:"selected_date,omitempty"`
	SelectedTime string       `json:"selected_time,omitempty"`
	Dates        []DateOption `json:"dates"`
	Window       *Window      `json:"window,omitempty"`
	Times        []TimeOption `json:"times"`
}
