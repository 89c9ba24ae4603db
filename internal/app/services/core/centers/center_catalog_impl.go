package centers

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/drivers/metrics"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const catalogResource = "centers"

// centerCatalog keeps the center list, schedules included, in Redis. Cache
// failures degrade to a direct API call.
type centerCatalog struct {
	CenterAPIClient contracts.CenterAPIClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Metrics         *metrics.UpstreamMetrics
	Log             *zap.Logger
}

var (
	centerCatalogInstance contracts.CenterCatalog
	onceCenterCatalog     sync.Once
)

func NewCenterCatalog(
	centerAPIClient contracts.CenterAPIClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	upstreamMetrics *metrics.UpstreamMetrics,
	logger *zap.Logger,
) contracts.CenterCatalog {
	onceCenterCatalog.Do(func() {
		centerCatalogInstance = &centerCatalog{
			CenterAPIClient: centerAPIClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Metrics:         upstreamMetrics,
			Log:             logger,
		}
	})
	return centerCatalogInstance
}

func (c *centerCatalog) FindAll(ctx context.Context, token string) ([]api_dto.Center, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if centers, ok := c.cached(ctx, requestID); ok {
		return centers, nil
	}

	centers, err := c.CenterAPIClient.FindAll(ctx, token)
	if err != nil {
		c.Log.Error("centerCatalog.FindAll error fetching centers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if c.InternalConfig.Cache.CentersTTL > 0 {
		err = c.RedisRepository.Set(ctx, constvars.CacheKeyCenters, centers, c.InternalConfig.Cache.CentersTTL)
		if err != nil {
			c.Log.Warn("centerCatalog.FindAll cannot cache centers",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	c.Log.Info("centerCatalog.FindAll loaded from dialysis API",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(centers)),
	)
	return centers, nil
}

func (c *centerCatalog) cached(ctx context.Context, requestID string) ([]api_dto.Center, bool) {
	data, err := c.RedisRepository.Get(ctx, constvars.CacheKeyCenters)
	if err != nil {
		c.Log.Warn("centerCatalog.cached redis lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if data == "" {
		c.Metrics.ObserveCache(catalogResource, false)
		return nil, false
	}

	var centers []api_dto.Center
	if err := json.Unmarshal([]byte(data), &centers); err != nil {
		c.Log.Warn("centerCatalog.cached dropping unreadable entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		c.Metrics.ObserveCache(catalogResource, false)
		return nil, false
	}

	c.Metrics.ObserveCache(catalogResource, true)
	return centers, true
}

func (c *centerCatalog) FindByID(ctx context.Context, token string, centerID int) (*api_dto.Center, error) {
	centers, err := c.FindAll(ctx, token)
	if err != nil {
		return nil, err
	}

	center, ok := api_dto.FindCenter(centers, centerID)
	if !ok {
		return nil, exceptions.ErrCenterNotFound(centerID)
	}
	return &center, nil
}

func (c *centerCatalog) Invalidate(ctx context.Context) error {
	return c.RedisRepository.Delete(ctx, constvars.CacheKeyCenters)
}
