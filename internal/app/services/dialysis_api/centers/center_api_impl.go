package dialysis_centers

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type centerAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewCenterAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.CenterAPIClient {
	return &centerAPIClient{
		Client: client,
		Log:    logger,
	}
}

// FindAll returns every center with its doctors and weekly schedules.
func (c *centerAPIClient) FindAll(ctx context.Context, token string) ([]api_dto.Center, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("centerAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var centers []api_dto.Center
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceCenters,
		Token:    token,
		Resource: "centers",
	}, &centers)
	if err != nil {
		return nil, err
	}
	return centers, nil
}

func (c *centerAPIClient) FindOptions(ctx context.Context, token string) ([]api_dto.Center, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("centerAPIClient.FindOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var centers []api_dto.Center
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceCentersGet,
		Token:    token,
		Resource: "centers-get",
	}, &centers)
	if err != nil {
		return nil, err
	}
	return centers, nil
}
