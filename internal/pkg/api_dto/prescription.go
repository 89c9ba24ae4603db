package api_dto

type Prescription struct {
	ID            int                `json:"id"`
	PatientID     int                `json:"patient_id"`
	DoctorID      *int               `json:"doctor_id,omitempty"`
	AppointmentID *int               `json:"appointment_id,omitempty"`
	Doctor        *Doctor            `json:"doctor,omitempty"`
	Date          string             `json:"date"`
	Notes         string             `json:"notes,omitempty"`
	Items         []PrescriptionItem `json:"items,omitempty"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}

type PrescriptionItem struct {
	ID               int      `json:"id"`
	PrescriptionID   int      `json:"prescription_id"`
	ProductID        int      `json:"product_id"`
	Frequency        string   `json:"frequency"`
	Interval         int      `json:"interval"`
	TimesPerInterval int      `json:"times_per_interval"`
	DoseAmount       string   `json:"dose_amount"`
	DoseUnit         string   `json:"dose_unit"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Product          *Product `json:"product,omitempty"`
}
