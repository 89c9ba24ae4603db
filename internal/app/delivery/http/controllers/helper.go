package controllers

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/pkg/exceptions"
	"dialysis-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// requestContext bounds usecase calls by the configured request timeout while
// keeping the request id and session stored by the middlewares.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeout > 0 {
		timeout = internalConfig.App.RequestTimeout
	}
	return context.WithTimeout(r.Context(), timeout)
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
