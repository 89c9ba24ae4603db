package requests

type Order struct {
	CenterID      int         `json:"center_id" validate:"required,gt=0"`
	AppointmentID *int        `json:"appointment_id" validate:"omitempty,gt=0"`
	Items         []OrderItem `json:"items" validate:"dive"`
}

type OrderItem struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gte=1"`
}
