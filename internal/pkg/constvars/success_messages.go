package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess             = "successfully login"
	RegisterSuccess          = "successfully registered"
	LogoutSuccess            = "successfully logout"
	NationalIDCheckedSuccess = "national id checked"

	// Profile messages
	ProfileGetSuccess         = "get profile successfully"
	ProfileUpdatedSuccess     = "profile updated successfully"
	ProfileImageUploadSuccess = "profile image uploaded successfully"

	// Booking messages
	HomeGetSuccess            = "get home successfully"
	CentersGetSuccess         = "get centers successfully"
	AvailableDatesGetSuccess  = "get available dates successfully"
	AvailableTimesGetSuccess  = "get available times successfully"
	BookingStepSuccess        = "booking step resolved"
	AppointmentsGetSuccess    = "get appointments successfully"
	AppointmentGetSuccess     = "get appointment successfully"
	AppointmentCreatedSuccess = "appointment created successfully"
	AppointmentUpdatedSuccess = "appointment updated successfully"
	AppointmentIDsGetSuccess  = "get appointment ids successfully"

	// Order messages
	ProductsGetSuccess  = "get products successfully"
	OrdersGetSuccess    = "get orders successfully"
	OrderGetSuccess     = "get order successfully"
	OrderCreatedSuccess = "order created successfully"
	OrderUpdatedSuccess = "order updated successfully"

	// Prescription messages
	PrescriptionsGetSuccess = "get prescriptions successfully"
	PrescriptionGetSuccess  = "get prescription successfully"

	// Alert messages
	AlertsGetSuccess        = "get alerts successfully"
	NotificationsGetSuccess = "get notifications successfully"
	AlertReadSuccess        = "alert marked as read"
	AlertsReadAllSuccess    = "all alerts marked as read"
	AlertDeletedSuccess     = "alert deleted"
)
