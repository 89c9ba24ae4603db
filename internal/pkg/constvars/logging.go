package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingUserIDKey         = "user_id"
	LoggingCenterIDKey       = "center_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingOrderIDKey        = "order_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingAlertIDKey        = "alert_id"
	LoggingDateKey           = "date"
	LoggingTimeKey           = "time"
	LoggingCountKey          = "count"
	LoggingPageKey           = "page"
	LoggingCacheKey          = "cache_key"
	LoggingCacheHitKey       = "cache_hit"
	LoggingStageKey          = "stage"
	LoggingResourceKey       = "resource"
	LoggingUpstreamURLKey    = "upstream_url"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingSuccessKey        = "success"
	LoggingErrorFieldsKey    = "error_fields"
)
