package alerts

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/drivers/metrics"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/app/services/core/session"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type alertUsecase struct {
	AlertAPIClient  contracts.AlertAPIClient
	RedisRepository contracts.RedisRepository
	SessionManager  contracts.SessionManager
	InternalConfig  *config.InternalConfig
	Metrics         *metrics.UpstreamMetrics
	Log             *zap.Logger
	now             func() time.Time
}

var (
	alertUsecaseInstance contracts.AlertUsecase
	onceAlertUsecase     sync.Once
)

func NewAlertUsecase(
	alertAPIClient contracts.AlertAPIClient,
	redisRepository contracts.RedisRepository,
	sessionManager contracts.SessionManager,
	internalConfig *config.InternalConfig,
	upstreamMetrics *metrics.UpstreamMetrics,
	location *time.Location,
	logger *zap.Logger,
) contracts.AlertUsecase {
	onceAlertUsecase.Do(func() {
		alertUsecaseInstance = &alertUsecase{
			AlertAPIClient:  alertAPIClient,
			RedisRepository: redisRepository,
			SessionManager:  sessionManager,
			InternalConfig:  internalConfig,
			Metrics:         upstreamMetrics,
			Log:             logger,
			now:             func() time.Time { return time.Now().In(location) },
		}
	})
	return alertUsecaseInstance
}

func (uc *alertUsecase) FindAll(ctx context.Context, s *models.Session) (*responses.Alerts, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("alertUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var alerts []api_dto.Alert
	key := session.AlertsKey(s)
	if !uc.readCache(ctx, key, "alerts", &alerts) {
		fetched, err := uc.AlertAPIClient.FindAll(ctx, s.Token)
		if err != nil {
			uc.Log.Error("alertUsecase.FindAll error fetching alerts",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		alerts = fetched
		uc.writeCache(ctx, key, alerts)
	}
	if alerts == nil {
		alerts = []api_dto.Alert{}
	}

	unread := 0
	for _, alert := range alerts {
		if !alert.IsRead {
			unread++
		}
	}
	return &responses.Alerts{Alerts: alerts, UnreadCount: unread}, nil
}

func (uc *alertUsecase) FindNotifications(ctx context.Context, s *models.Session) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("alertUsecase.FindNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var notifications []api_dto.Notification
	key := session.NotificationsKey(s)
	if !uc.readCache(ctx, key, "notifications", &notifications) {
		fetched, err := uc.AlertAPIClient.FindNotifications(ctx, s.Token)
		if err != nil {
			uc.Log.Error("alertUsecase.FindNotifications error fetching notifications",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		notifications = fetched
		uc.writeCache(ctx, key, notifications)
	}

	now := uc.now()
	response := make([]responses.Notification, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, utils.MapNotificationToResponse(notification, now))
	}
	return response, nil
}

func (uc *alertUsecase) MarkAsRead(ctx context.Context, s *models.Session, alertID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("alertUsecase.MarkAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAlertIDKey, alertID),
	)

	err := uc.AlertAPIClient.MarkAsRead(ctx, s.Token, alertID)
	if err != nil {
		return err
	}
	uc.SessionManager.InvalidateAlerts(ctx, s)
	return nil
}

func (uc *alertUsecase) MarkAllAsRead(ctx context.Context, s *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("alertUsecase.MarkAllAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.AlertAPIClient.MarkAllAsRead(ctx, s.Token)
	if err != nil {
		return err
	}
	uc.SessionManager.InvalidateAlerts(ctx, s)
	return nil
}

func (uc *alertUsecase) Delete(ctx context.Context, s *models.Session, alertID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("alertUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAlertIDKey, alertID),
	)

	err := uc.AlertAPIClient.Delete(ctx, s.Token, alertID)
	if err != nil {
		return err
	}
	uc.SessionManager.InvalidateAlerts(ctx, s)
	return nil
}

func (uc *alertUsecase) readCache(ctx context.Context, key, resource string, out interface{}) bool {
	data, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("alertUsecase.readCache redis lookup failed",
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
	if data == "" || json.Unmarshal([]byte(data), out) != nil {
		uc.Metrics.ObserveCache(resource, false)
		return false
	}
	uc.Metrics.ObserveCache(resource, true)
	return true
}

func (uc *alertUsecase) writeCache(ctx context.Context, key string, value interface{}) {
	if uc.InternalConfig.Cache.AlertsTTL <= 0 {
		return
	}
	err := uc.RedisRepository.Set(ctx, key, value, uc.InternalConfig.Cache.AlertsTTL)
	if err != nil {
		uc.Log.Warn("alertUsecase.writeCache cannot cache",
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}
