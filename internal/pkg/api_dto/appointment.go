package api_dto

type Appointment struct {
	ID        int     `json:"id"`
	CenterID  int     `json:"center_id"`
	Center    *Center `json:"center,omitempty"`
	PatientID int     `json:"patient_id"`
	Patient   *User   `json:"patient,omitempty"`
	DoctorID  *int    `json:"doctor_id,omitempty"`
	Doctor    *User   `json:"doctor,omitempty"`
	DeviceID  *int    `json:"device_id,omitempty"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Intended  bool    `json:"intended"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
	IsDirty   bool    `json:"is_dirty,omitempty"`
}

// AppointmentPayload is the body of POST /appointments and PUT /appointments/{id}.
// Date is yyyy-MM-dd and Time is HH:MM:SS.
type AppointmentPayload struct {
	CenterID int    `json:"center_id"`
	DoctorID *int   `json:"doctor_id,omitempty"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Notes    string `json:"notes,omitempty"`
}
