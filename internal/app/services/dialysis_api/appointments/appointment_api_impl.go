package dialysis_appointments

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

const resourceName = "appointments"

type appointmentAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAppointmentAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.AppointmentAPIClient {
	return &appointmentAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *appointmentAPIClient) FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Appointment], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
	)

	result := new(api_dto.Paginated[api_dto.Appointment])
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceAppointments,
		Token:    token,
		Query:    url.Values{"page": []string{strconv.Itoa(page)}},
		Resource: resourceName,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *appointmentAPIClient) FindByID(ctx context.Context, token string, appointmentID int) (*api_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment := new(api_dto.Appointment)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf("%s/%d", constvars.ResourceAppointments, appointmentID),
		Token:    token,
		Resource: resourceName,
	}, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentAPIClient) Create(ctx context.Context, token string, payload *api_dto.AppointmentPayload) (*api_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, payload.CenterID),
		zap.String(constvars.LoggingDateKey, payload.Date),
		zap.String(constvars.LoggingTimeKey, payload.Time),
	)

	appointment := new(api_dto.Appointment)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceAppointments,
		Token:    token,
		Body:     payload,
		Resource: resourceName,
	}, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentAPIClient) Update(ctx context.Context, token string, appointmentID int, payload *api_dto.AppointmentPayload) (*api_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDateKey, payload.Date),
		zap.String(constvars.LoggingTimeKey, payload.Time),
	)

	appointment := new(api_dto.Appointment)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf("%s/%d", constvars.ResourceAppointments, appointmentID),
		Token:    token,
		Body:     payload,
		Resource: resourceName,
	}, appointment)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// FindOrderable lists the appointments an order can be attached to.
func (c *appointmentAPIClient) FindOrderable(ctx context.Context, token string) ([]api_dto.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.FindOrderable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var appointments []api_dto.Appointment
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceAppointmentIDs,
		Token:    token,
		Resource: "appt-id",
	}, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
