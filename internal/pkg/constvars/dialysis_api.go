package constvars

// Resource paths on the dialysis API, relative to its /api base.
const (
	ResourceLogin           = "/login"
	ResourceRegister        = "/register"
	ResourceLogout          = "/logout"
	ResourceMe              = "/me"
	ResourceUpdateProfile   = "/update"
	ResourceUploadImage     = "/upload-image"
	ResourceCheckNationalID = "/check-national-id"
	ResourceHome            = "/home"
	ResourceCenters         = "/centers"
	ResourceCentersGet      = "/centers/get"
	ResourceAppointments    = "/appointments"
	ResourceAppointmentIDs  = "/appt-id"
	ResourceOrders          = "/orders"
	ResourceProducts        = "/products"
	ResourcePrescriptions   = "/prescriptions"
	ResourceAlerts          = "/alerts"
	ResourceNotifications   = "/notifications"
)

const (
	MultipartImageField = "image"
)

const (
	CacheKeyCenters            = "centers:all"
	CacheKeySessionPrefix      = "session:"
	CacheKeyAlertsFormat       = "session:%s:alerts"
	CacheKeyNotificationFormat = "session:%s:notifications"
	LimiterGroupBooking        = "BOOKING"
	LimiterGroupOrder          = "ORDER"
)
