package config

import (
	"dialysis-portal-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "local"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			BaseUrl:                    utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Africa/Tripoli"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			ImageMaxUploadSizeInMB:     utils.GetEnvInt64("APP_IMAGE_UPLOAD_MAX_SIZE_IN_MB", 2),
			ShutdownTimeout:            utils.GetEnvDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
			RequestTimeout:             utils.GetEnvDuration("APP_REQUEST_TIMEOUT", 15*time.Second),
		},
		DialysisAPI: AppDialysisAPI{
			BaseUrl:             utils.GetEnvString("DIALYSIS_API_BASE_URL", "http://localhost:8000/api"),
			Timeout:             utils.GetEnvDuration("DIALYSIS_API_TIMEOUT", 10*time.Second),
			RatePerSecond:       utils.GetEnvInt("DIALYSIS_API_RATE_PER_SECOND", 20),
			Burst:               utils.GetEnvInt("DIALYSIS_API_BURST", 40),
			MaxResponseSizeInMB: utils.GetEnvInt64("DIALYSIS_API_MAX_RESPONSE_SIZE_IN_MB", 8),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "change-me"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: AppSession{
			TTL: utils.GetEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Booking: AppBooking{
			HorizonDays:              utils.GetEnvInt("BOOKING_HORIZON_DAYS", 14),
			IncludeInactiveSchedules: utils.GetEnvBool("BOOKING_INCLUDE_INACTIVE_SCHEDULES", false),
			SubmissionQuota:          utils.GetEnvInt("BOOKING_SUBMISSION_QUOTA", 10),
			SubmissionWindow:         utils.GetEnvDuration("BOOKING_SUBMISSION_WINDOW", time.Hour),
			SubmissionLockTTL:        utils.GetEnvDuration("BOOKING_SUBMISSION_LOCK_TTL", 30*time.Second),
		},
		Cache: AppCache{
			CentersTTL: utils.GetEnvDuration("CENTERS_CACHE_TTL", 10*time.Minute),
			AlertsTTL:  utils.GetEnvDuration("ALERTS_CACHE_TTL", time.Minute),
		},
	}
}
