package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"eqfield":      "must match %s",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"dive":         "is invalid",
	"national_id":  "must be exactly 12 digits",
	"libyan_phone": "must be a valid Libyan phone number",
	"date_key":     "must be a date formatted as YYYY-MM-DD",
	"clock":        "must be a time formatted as HH:MM",
	"birth_date":   "must be a past date formatted as DD/MM/YYYY or YYYY-MM-DD",
	"email":        "must be a valid email",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
}

// Tags whose message stands on its own without the field name
var TagsWithStandaloneMessage = map[string]bool{
	"libyan_phone": true,
}

// Client messages
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized, please login again"
	ErrClientInvalidCredentials            = "invalid phone number or password"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientResourceNotFound              = "the requested %s was not found"
	ErrClientUpstreamUnavailable           = "the clinic service is unavailable, please try again later"
	ErrClientUpstreamRejected              = "the clinic service rejected your request"
	ErrClientSlotNotAvailable              = "the selected date or time is not available for this center"
	ErrClientAppointmentLocked             = "this appointment has pending changes and cannot be edited"
	ErrClientOrderLocked                   = "only pending orders can be edited"
	ErrClientOrderWithoutItems             = "an order must contain at least one product"
	ErrClientImageTooLarge                 = "the image exceeds the allowed size"
	ErrClientInvalidImageFormat            = "the uploaded file must be an image"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientSubmissionInProgress          = "your previous request is still being processed"
	ErrClientCenterNotFound                = "the selected center does not exist"
)

// Developer messages
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form"
	ErrDevURLParamIDValidation      = "invalid URL param %s"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request to dialysis API"
	ErrDevDecodeResponse            = "failed to decode dialysis API response for %s"
	ErrDevUpstreamStatus            = "dialysis API responded %d for %s"
	ErrDevUpstreamUnauthorized      = "dialysis API rejected the bearer token"
	ErrDevUpstreamValidation        = "dialysis API validation failed for %s"
	ErrDevUpstreamThrottled         = "outbound limiter wait failed"
	ErrDevUpstreamResponseTooLarge  = "dialysis API response for %s exceeds %d bytes"
	ErrDevAuthTokenMissing          = "session token missing"
	ErrDevAuthTokenInvalid          = "session token invalid"
	ErrDevAuthSessionExpired        = "session not found or expired"
	ErrDevSignToken                 = "failed to sign session token"
	ErrDevRedisGet                  = "failed to get redis key"
	ErrDevRedisSet                  = "failed to set redis key"
	ErrDevRedisDelete               = "failed to delete redis key"
	ErrDevRedisIncrement            = "failed to increment redis key"
	ErrDevSlotNotAvailable          = "date %s time %s not offered by center %d"
	ErrDevAppointmentDirty          = "appointment %d is dirty"
	ErrDevOrderNotPending           = "order %d has status %s"
	ErrDevOrderWithoutItems         = "order has no items"
	ErrDevPasswordsDoNotMatch       = "password confirmation mismatch"
	ErrDevImageTooLarge             = "image is %d bytes, limit is %d"
	ErrDevInvalidImageFormat        = "unsupported image content type %s"
	ErrDevRateLimited               = "limiter %s exhausted for %s"
	ErrDevSubmissionLocked          = "submission lock %s is held"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevCenterNotFound            = "center %d not present in center list"
	ErrDevUnknownPanic              = "unknown panic"
	ErrDevSessionMissingFromContext = "session missing from request context"
)
