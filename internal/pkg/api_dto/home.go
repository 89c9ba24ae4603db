package api_dto

type HomeData struct {
	AppointmentsCount  int            `json:"appointments_count"`
	OrdersCount        int            `json:"orders_count"`
	PrescriptionsCount int            `json:"prescriptions_count"`
	Appointments       []Appointment  `json:"appointments,omitempty"`
	Orders             []Order        `json:"orders,omitempty"`
	Prescriptions      []Prescription `json:"prescriptions,omitempty"`
}

type Notification struct {
	ID        int    `json:"id"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	HumanTime string `json:"human_time,omitempty"`
	InHours   *int   `json:"in_hours,omitempty"`
}

type Alert struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patient_id"`
	Type      string `json:"type"`
	TypeID    int    `json:"type_id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
