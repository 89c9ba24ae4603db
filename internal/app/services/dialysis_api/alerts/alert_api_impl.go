package dialysis_alerts

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"fmt"

	"go.uber.org/zap"
)

const resourceName = "alerts"

type alertAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAlertAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.AlertAPIClient {
	return &alertAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *alertAPIClient) FindAll(ctx context.Context, token string) ([]api_dto.Alert, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("alertAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var alerts []api_dto.Alert
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceAlerts,
		Token:    token,
		Resource: resourceName,
	}, &alerts)
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *alertAPIClient) FindNotifications(ctx context.Context, token string) ([]api_dto.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("alertAPIClient.FindNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var notifications []api_dto.Notification
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceNotifications,
		Token:    token,
		Resource: "notifications",
	}, &notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *alertAPIClient) MarkAsRead(ctx context.Context, token string, alertID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("alertAPIClient.MarkAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAlertIDKey, alertID),
	)

	return c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     fmt.Sprintf("%s/%d/read", constvars.ResourceAlerts, alertID),
		Token:    token,
		Resource: resourceName,
	}, nil)
}

func (c *alertAPIClient) MarkAllAsRead(ctx context.Context, token string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("alertAPIClient.MarkAllAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceAlerts + "/read-all",
		Token:    token,
		Resource: resourceName,
	}, nil)
}

func (c *alertAPIClient) Delete(ctx context.Context, token string, alertID int) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("alertAPIClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAlertIDKey, alertID),
	)

	return c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf("%s/%d", constvars.ResourceAlerts, alertID),
		Token:    token,
		Resource: resourceName,
	}, nil)
}
