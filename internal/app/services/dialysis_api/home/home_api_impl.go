package dialysis_home

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type homeAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewHomeAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.HomeAPIClient {
	return &homeAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *homeAPIClient) Get(ctx context.Context, token string) (*api_dto.HomeData, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("homeAPIClient.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	home := new(api_dto.HomeData)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceHome,
		Token:    token,
		Resource: "home",
	}, home)
	if err != nil {
		return nil, err
	}
	return home, nil
}
