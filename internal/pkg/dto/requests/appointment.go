package requests

// Appointment is the booking form submission. Time accepts HH:MM or HH:MM:SS.
type Appointment struct {
	CenterID int    `json:"center_id" validate:"required,gt=0"`
	DoctorID *int   `json:"doctor_id" validate:"omitempty,gt=0"`
	Date     string `json:"date" validate:"required,date_key"`
	Time     string `json:"time" validate:"required,clock"`
	Notes    string `json:"notes" validate:"max=1000"`
}

// AvailableTimes selects the slots of one date. An empty date lists no
// slots. Time is the stored appointment time used for highlighting and may be
// empty.
type AvailableTimes struct {
	CenterID int    `json:"center_id" validate:"required,gt=0"`
	Date     string `json:"date" validate:"omitempty,date_key"`
	Time     string `json:"time"`
}

// BookingStep replays the booking form from the center selection onwards.
type BookingStep struct {
	CenterID int    `json:"center_id" validate:"gte=0"`
	Date     string `json:"date" validate:"omitempty,date_key"`
	Time     string `json:"time" validate:"omitempty,clock"`
}
