package dialysis_prescriptions

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type prescriptionAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewPrescriptionAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.PrescriptionAPIClient {
	return &prescriptionAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *prescriptionAPIClient) FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Prescription], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("prescriptionAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
	)

	result := new(api_dto.Paginated[api_dto.Prescription])
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourcePrescriptions,
		Token:    token,
		Query:    url.Values{"page": []string{strconv.Itoa(page)}},
		Resource: "prescriptions",
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *prescriptionAPIClient) FindByID(ctx context.Context, token string, prescriptionID int) (*api_dto.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("prescriptionAPIClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription := new(api_dto.Prescription)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf("%s/%d", constvars.ResourcePrescriptions, prescriptionID),
		Token:    token,
		Resource: "prescriptions",
	}, prescription)
	if err != nil {
		return nil, err
	}
	return prescription, nil
}
