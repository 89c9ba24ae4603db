package ratelimiter

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SubmissionLimiter caps how many writes one patient may submit per group
// (booking, order) inside a fixed window counted in Redis.
type SubmissionLimiter struct {
	redis  contracts.RedisRepository
	log    *zap.Logger
	quota  int
	window time.Duration
	now    func() time.Time
}

func NewSubmissionLimiter(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *SubmissionLimiter {
	return &SubmissionLimiter{
		redis:  redis,
		log:    log,
		quota:  cfg.Booking.SubmissionQuota,
		window: cfg.Booking.SubmissionWindow,
		now:    time.Now,
	}
}

// Decision reports the outcome of one evaluation.
type Decision struct {
	Allowed    bool
	Count      int
	RetryAfter time.Duration
}

// Evaluate counts one submission of subject within group. A quota of zero or
// less disables the limiter.
func (l *SubmissionLimiter) Evaluate(ctx context.Context, group, subject string) (*Decision, error) {
	if l.quota <= 0 {
		return &Decision{Allowed: true}, nil
	}

	group = strings.ToUpper(strings.TrimSpace(group))
	subject = strings.ToLower(strings.TrimSpace(subject))
	if group == "" || subject == "" {
		return &Decision{Allowed: false, RetryAfter: l.windowLength()}, nil
	}

	window := l.windowLength()
	now := l.now().UTC()
	windowID := now.Unix() / int64(window.Seconds())
	key := fmt.Sprintf("limiter:%s:%s:%d", group, subject, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		return nil, err
	}

	if count > l.quota {
		nextWindow := time.Unix((windowID+1)*int64(window.Seconds()), 0)
		return &Decision{Allowed: false, Count: count, RetryAfter: nextWindow.Sub(now)}, nil
	}
	return &Decision{Allowed: true, Count: count}, nil
}

// Allow is Evaluate folded into an error for use cases. Redis failures are
// logged and never block a submission.
func (l *SubmissionLimiter) Allow(ctx context.Context, group, subject string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	decision, err := l.Evaluate(ctx, group, subject)
	if err != nil {
		l.log.Warn("SubmissionLimiter.Allow cannot count submission, letting it through",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, group),
			zap.Error(err),
		)
		return nil
	}

	if !decision.Allowed {
		l.log.Warn("SubmissionLimiter.Allow quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, group),
			zap.Int(constvars.LoggingCountKey, decision.Count),
		)
		return exceptions.ErrTooManyRequests(group, subject)
	}
	return nil
}

func (l *SubmissionLimiter) windowLength() time.Duration {
	if l.window < time.Second {
		return time.Minute
	}
	return l.window.Truncate(time.Second)
}
