package api_dto

type Product struct {
	ID             int    `json:"id"`
	Type           string `json:"type"`
	Name           string `json:"name"`
	Image          string `json:"image,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	Description    string `json:"description,omitempty"`
	Usage          string `json:"usage,omitempty"`
	AlertThreshold *int   `json:"alert_threshold,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	DeletedAt      string `json:"deleted_at,omitempty"`
}

type Order struct {
	ID            int         `json:"id"`
	CenterID      int         `json:"center_id"`
	Center        *Center     `json:"center,omitempty"`
	PatientID     *int        `json:"patient_id,omitempty"`
	AppointmentID *int        `json:"appointment_id,omitempty"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"created_at,omitempty"`
	UpdatedAt     string      `json:"updated_at,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID        int      `json:"id"`
	OrderID   int      `json:"order_id"`
	ProductID int      `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
}

// OrderPayload is the body of POST /orders and PUT /orders/{id}. A nil
// AppointmentID is sent as an explicit null.
type OrderPayload struct {
	CenterID      int                `json:"center_id"`
	AppointmentID *int               `json:"appointment_id"`
	Items         []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
