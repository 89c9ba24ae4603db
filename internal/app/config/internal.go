package config

import (
	"fmt"
	"strings"
	"time"
)

type InternalConfig struct {
	App         App
	DialysisAPI AppDialysisAPI
	JWT         AppJWT
	Session     AppSession
	Booking     AppBooking
	Cache       AppCache
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	BaseUrl                    string
	Timezone                   string
	FrontendDomain             string
	EndpointPrefix             string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	ImageMaxUploadSizeInMB     int64
	ShutdownTimeout            time.Duration
	RequestTimeout       time.Duration
}

// AppDialysisAPI configures the upstream patient API this service fronts.
type AppDialysisAPI struct {
	BaseUrl       string
	Timeout       time.Duration
	RatePerSecond int
	Burst         int
	// MaxResponseSizeInMB caps how much of an upstream answer is read.
	MaxResponseSizeInMB int64
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSession struct {
	TTL time.Duration
}

type AppBooking struct {
	HorizonDays              int
	IncludeInactiveSchedules bool
	SubmissionQuota          int
	SubmissionWindow         time.Duration
	SubmissionLockTTL        time.Duration
}

type AppCache struct {
	CentersTTL time.Duration
	AlertsTTL  time.Duration
}

// ResourceURL is the absolute portal URL of a versioned resource, used in
// pagination links.
func (a App) ResourceURL(resource string) string {
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(a.BaseUrl, "/"), a.EndpointPrefix, a.Version, strings.TrimLeft(resource, "/"))
}
