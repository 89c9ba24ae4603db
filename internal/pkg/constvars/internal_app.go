package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DLYS_PRTL_"
)

const (
	// SessionCookieName is shared with the portal front end.
	SessionCookieName = "patient_token"
	SessionClaimKey   = "session_id"
)

const (
	AppPaginationUrlFormat = "%s?page=%d"
	DefaultPage            = 1
)

const (
	DateKeyLayout     = "2006-01-02"
	ClockLayout       = "15:04"
	ClockSecondLayout = "15:04:05"
	LibyanDateLayout  = "02/01/2006"
)

const (
	NationalIDLength = 12
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"

	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)
