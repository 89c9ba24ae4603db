package responses

import "dialysis-portal-service/internal/pkg/api_dto"

type Appointment struct {
	api_dto.Appointment
	StatusLabel string `json:"status_label"`
	DateLabel   string `json:"date_label"`
	TimeLabel   string `json:"time_label"`
	TimeLeft    string `json:"time_left"`
	Editable    bool   `json:"editable"`
}

type Order struct {
	api_dto.Order
	StatusLabel string `json:"status_label"`
	Editable    bool   `json:"editable"`
}

type Prescription struct {
	api_dto.Prescription
	DateLabel string `json:"date_label"`
}

type Home struct {
	AppointmentsCount  int            `json:"appointments_count"`
	OrdersCount        int            `json:"orders_count"`
	PrescriptionsCount int            `json:"prescriptions_count"`
	Appointments       []Appointment  `json:"appointments"`
	Orders             []Order        `json:"orders"`
	Prescriptions      []Prescription `json:"prescriptions"`
}

type Alerts struct {
	Alerts      []api_dto.Alert `json:"alerts"`
	UnreadCount int             `json:"unread_count"`
}
