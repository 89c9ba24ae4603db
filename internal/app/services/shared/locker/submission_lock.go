package locker

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionLock keeps one patient from sending the same kind of write twice
// at once, e.g. a double tapped "book" button. A nil lock never blocks.
type SubmissionLock struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	ttl   time.Duration
}

func NewSubmissionLock(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *SubmissionLock {
	return &SubmissionLock{
		redis: redis,
		log:   log,
		ttl:   cfg.Booking.SubmissionLockTTL,
	}
}

// Acquire takes the lock of subject within group. The returned release must
// be called once the write finished; it never fails the caller.
func (l *SubmissionLock) Acquire(ctx context.Context, group, subject string) (func(), error) {
	if l == nil || l.ttl <= 0 {
		return func() {}, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := fmt.Sprintf("submission_lock:%s:%s", strings.ToUpper(group), strings.ToLower(subject))
	owner := uuid.NewString()

	acquired, err := l.redis.TrySetNX(ctx, key, owner, l.ttl)
	if err != nil {
		// Redis trouble should not block bookings; the upstream still
		// rejects real duplicates.
		l.log.Warn("SubmissionLock.Acquire redis unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return func() {}, nil
	}
	if !acquired {
		l.log.Info("SubmissionLock.Acquire lock busy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
		)
		return nil, exceptions.ErrSubmissionInProgress(key)
	}

	return func() {
		// The request context may already be cancelled here.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		err := l.release(releaseCtx, key, owner)
		if err != nil {
			l.log.Warn("SubmissionLock.release failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

// release drops the lock only while this request still owns it; after an
// expiry another request may hold the key.
func (l *SubmissionLock) release(ctx context.Context, key, owner string) error {
	deleted, err := l.redis.DeleteIfEqual(ctx, key, owner)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrRedisUnlock(fmt.Errorf("lock %s not owned by this request", key))
	}
	return nil
}
