package middlewares

import (
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/drivers/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionManager contracts.SessionManager
	HTTPMetrics    *metrics.HTTPMetrics
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionManager contracts.SessionManager,
	httpMetrics *metrics.HTTPMetrics,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionManager: sessionManager,
		HTTPMetrics:    httpMetrics,
		InternalConfig: internalConfig,
	}
}
